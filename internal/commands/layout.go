package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"chromaspiral/chroma"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print where every note sits on the spiral",
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := colorTable(configPath)
			if err != nil {
				return err
			}
			rows, err := layoutRows(colors)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Index", "Note", "Angle°", "Height", "X", "Y", "Z", "Split", "Colors")
			if err := table.Bulk(rows); err != nil {
				return err
			}
			return table.Render()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a spiral.yml config file")
	return cmd
}

func layoutRows(colors *chroma.ColorTable) ([][]string, error) {
	notes := chroma.Octave()
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		p, err := chroma.Place(n.Index, len(notes), n.Enharmonic())
		if err != nil {
			return nil, err
		}
		var hex []string
		for _, name := range n.Names() {
			c, err := colors.Lookup(name)
			if err != nil {
				return nil, err
			}
			hex = append(hex, c.String())
		}
		split := "-"
		if p.Rotation != 0 {
			split = "π/2"
		}
		rows = append(rows, []string{
			strconv.Itoa(n.Index),
			n.Name,
			num(p.Angle * 180 / math.Pi),
			num(p.Height),
			num(p.Position.X),
			num(p.Position.Y),
			num(p.Position.Z),
			split,
			strings.Join(hex, " "),
		})
	}
	return rows, nil
}

// num formats to three decimals without a negative zero.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}
