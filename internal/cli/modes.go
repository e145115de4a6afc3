package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/swiftinit-labs/swiftinit/internal/scaffold"
)

var modesJSON bool

func init() {
	modesCmd.Flags().BoolVar(&modesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(modesCmd)
}

// modeEntry represents one init mode for display.
type modeEntry struct {
	Mode        string   `json:"mode"`
	Description string   `json:"description"`
	Creates     []string `json:"creates"`
}

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List available package modes",
	Long:  `Show each init mode and the files it creates, for a package named Hello.`,
	RunE:  runModes,
}

func runModes(cmd *cobra.Command, args []string) error {
	entries := make([]modeEntry, 0, len(scaffold.Modes()))
	for _, m := range scaffold.Modes() {
		entries = append(entries, modeEntry{
			Mode:        m.String(),
			Description: m.Description(),
			Creates:     scaffold.Layout(m, "Hello"),
		})
	}

	if modesJSON {
		return printModesJSON(cmd, entries)
	}
	return printModesTable(cmd, entries)
}

func printModesTable(cmd *cobra.Command, entries []modeEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "MODE\tGENERATES\tCREATES")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Mode, e.Description, strings.Join(e.Creates, ", "))
	}
	return w.Flush()
}

func printModesJSON(cmd *cobra.Command, entries []modeEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
