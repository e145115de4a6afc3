package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/swiftinit-labs/swiftinit/internal/config"
	"github.com/swiftinit-labs/swiftinit/internal/scaffold"
)

var (
	initMode string
	initPath string
)

func init() {
	initCmd.Flags().StringVar(&initMode, "mode", "", "Package mode: library, executable, or system-module")
	initCmd.Flags().StringVar(&initPath, "path", "", "Target directory (default: current directory)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new Swift package skeleton",
	Long: `Create the skeleton of a new Swift package in the target directory.

The package is named after the directory. The directory must not already
contain a Package.swift; files that exist are left untouched.

  swiftinit init                      # library package in the current directory
  swiftinit init --mode executable    # runnable program
  swiftinit init --path ~/code/MyLib  # scaffold into another directory`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	mode, err := resolveMode(initMode)
	if err != nil {
		return err
	}

	dir := initPath
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	}

	p, err := scaffold.New(mode, dir, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if err := p.WritePackageStructure(); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Initialized %s package %s", mode, p.PackageName()))
	return nil
}

// resolveMode picks the init mode from the flag, then the default-mode
// config key, then falls back to a library package.
func resolveMode(flag string) (scaffold.InitMode, error) {
	if flag != "" {
		return scaffold.ParseMode(flag)
	}

	config.Load()
	if v := config.Get(config.KeyDefaultMode); v != "" {
		mode, err := scaffold.ParseMode(v)
		if err != nil {
			return 0, fmt.Errorf("config %s: %w", config.KeyDefaultMode, err)
		}
		return mode, nil
	}
	return scaffold.ModeLibrary, nil
}
