package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/swiftinit-labs/swiftinit/internal/branding"
	"github.com/swiftinit-labs/swiftinit/internal/config"
	"github.com/swiftinit-labs/swiftinit/internal/updater"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates the skeleton of a new Swift package: the manifest,
starter sources, and test layout for library, executable, and system-module
packages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		warnConfigIssues()

		// Skip the banner for update (it manages update state itself) and
		// init (its output is the scaffold progress).
		name := cmd.Name()
		if name == "update" || name == "self-update" || name == "init" {
			return
		}
		if updateCheckDisabled() {
			return
		}

		// Non-blocking banner from the recorded version check.
		updater.New(buildVersion).Banner(os.Stderr, config.Dir())
	},
}

// warnConfigIssues reports schema problems in the config file on stderr.
// A missing file is fine; problems never block the command.
func warnConfigIssues() {
	report, err := config.CheckFile(config.FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		PrintWarning(fmt.Sprintf("config file %s: %v", config.FilePath(), err))
		return
	}
	if report.OK {
		return
	}
	PrintWarning(fmt.Sprintf("config file %s has %d issue(s):", config.FilePath(), len(report.Problems)))
	for _, p := range report.Problems {
		if p.Field != "" {
			fmt.Fprintf(os.Stderr, "    - %s: %s\n", p.Field, p.Detail)
		} else {
			fmt.Fprintf(os.Stderr, "    - %s\n", p.Detail)
		}
	}
}

// updateCheckDisabled reports whether the startup version check is turned
// off via config or environment.
func updateCheckDisabled() bool {
	if env := os.Getenv(branding.EnvVar("CHECK_UPDATES")); env != "" {
		return strings.EqualFold(env, "false")
	}
	return strings.EqualFold(config.Get(config.KeyCheckUpdates), "false")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
