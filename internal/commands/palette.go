package commands

import (
	"fmt"

	"chromaspiral/internal/printer"

	"github.com/spf13/cobra"
)

func newPaletteCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the note colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := colorTable(configPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range colors.Names() {
				c, err := colors.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %-3s %s\n", printer.Swatch(c.R, c.G, c.B, "    "), name, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a spiral.yml config file")
	return cmd
}
