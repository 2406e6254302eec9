// Package commands implements the chromaspiral command line.
package commands

import (
	"chromaspiral/chroma"
	"chromaspiral/internal/buildinfo"
	"chromaspiral/internal/config"
	"chromaspiral/internal/printer"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chromaspiral",
		Short: "Chromatic scale spiral visualizer",
		Long: `chromaspiral draws one octave of the chromatic scale as a rising spiral of
colored spheres that slowly spins around its vertical axis.

Enharmonic pairs (C#/Db, ...) are drawn as spheres split into two colors.`,
		Version: buildinfo.Long(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCmd(), newLayoutCmd(), newPaletteCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig returns the defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// colorTable loads the palette described by the config at path.
func colorTable(path string) (*chroma.ColorTable, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		return nil, printer.Error("Could not load config", err.Error(), []string{"check the path passed to --config"})
	}
	colors, err := cfg.ColorTable()
	if err != nil {
		return nil, printer.Error("Invalid palette", err.Error(), nil)
	}
	return colors, nil
}
