package cli

import (
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// PrintSuccess prints a success message with a checkmark.
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message to stderr.
func PrintWarning(msg string) {
	_, _ = warningColor.Fprintf(os.Stderr, "⚠ %s\n", msg)
}
