package cli

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/swiftinit-labs/swiftinit/internal/branding"
	"github.com/swiftinit-labs/swiftinit/internal/config"
	"github.com/swiftinit-labs/swiftinit/internal/updater"
)

var updateVersion string

func init() {
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Check a specific version (e.g., 1.2.0)")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"self-update"},
	Short:   "Check for a newer swiftinit release",
	Long: `Checks GitHub releases (or a configured mirror) for a newer version of
swiftinit and reports where to download it. The running binary is left
untouched.

  swiftinit update                  # check the latest release
  swiftinit update --version 1.2.0  # check a specific release`,
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	// Resolve mirror from config or env var.
	config.Load()
	mirror := config.Get(config.KeyMirror)
	if envMirror := os.Getenv(branding.EnvVar("MIRROR")); envMirror != "" {
		mirror = envMirror
	}

	var opts []updater.Option
	if mirror != "" {
		opts = append(opts, updater.WithMirror(mirror))
	}
	checker := updater.New(buildVersion, opts...)

	var release *updater.Release
	var err error
	if updateVersion != "" {
		fmt.Fprintf(os.Stderr, "Checking for version %s...\n", updateVersion)
		release, err = checker.ByTag(updateVersion)
	} else {
		fmt.Fprintln(os.Stderr, "Checking for updates...")
		release, err = checker.Latest()
	}
	if err != nil {
		return fmt.Errorf("checking for updates: %w", err)
	}

	newer, err := updater.IsNewer(release.TagName, buildVersion)
	if err != nil {
		// A dev build has no comparable version; always report the release.
		if buildVersion == "dev" {
			newer = true
		} else {
			return fmt.Errorf("comparing versions: %w", err)
		}
	}

	if !newer {
		fmt.Printf("You are on the latest version (%s)\n", buildVersion)
		recordCheck(release, false)
		return nil
	}

	fmt.Printf("Update available: %s -> %s\n", buildVersion, release.TagName)
	if release.PageURL != "" {
		fmt.Printf("Release notes: %s\n", release.PageURL)
	}
	printDownloadHint(release)

	recordCheck(release, true)
	return nil
}

// printDownloadHint points at the release asset matching this platform,
// falling back to the first asset.
func printDownloadHint(release *updater.Release) {
	want := fmt.Sprintf("%s_%s_%s", branding.CLIName(), runtime.GOOS, runtime.GOARCH)
	for _, a := range release.Assets {
		if strings.HasPrefix(a.Name, want) {
			fmt.Printf("Download: %s\n", a.DownloadURL)
			return
		}
	}
	if len(release.Assets) > 0 {
		fmt.Printf("Download: %s\n", release.Assets[0].DownloadURL)
	}
}

// recordCheck saves the check outcome so the startup banner agrees with
// what this command just reported.
func recordCheck(release *updater.Release, newer bool) {
	st := &updater.CheckState{
		Current:   buildVersion,
		Latest:    release.TagName,
		Newer:     newer,
		CheckedAt: time.Now(),
	}
	_ = st.Write(config.Dir())
}
