package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swiftinit-labs/swiftinit/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the bare version number")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE:  runVersion,
}

type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case versionShort:
		fmt.Fprintln(out, buildVersion)
	case versionJSON:
		data, err := json.MarshalIndent(buildInfo{buildVersion, buildCommit, buildDate}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding build info: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
	}
	return nil
}
