// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcodagnone/recicla/recycling"
	"github.com/jcodagnone/recicla/spatial"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var pointsOptions = struct {
	Latitude  float64
	Longitude float64
	Materials bool
}{}

var pointsCmd = &cobra.Command{
	Use:   "points <material>",
	Short: "Lista os pontos de coleta que aceitam um material",
	Long: `Lista os pontos de coleta que aceitam o material, do mais próximo ao mais
distante de --lat/--lng. Sem consultar o modelo.

$ recicla points plástico --lat -23.5505 --lng -46.6333
$ recicla points --materials
`,
	Args: func(cmd *cobra.Command, args []string) error {
		if pointsOptions.Materials {
			return cobra.NoArgs(cmd, args)
		}

		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, err := loadDataset(cfg.PointsPath)
		if err != nil {
			return fmt.Errorf("loading recycling points: %w", err)
		}

		out := cmd.OutOrStdout()

		if pointsOptions.Materials {
			for _, m := range dataset.Materials() {
				fmt.Fprintln(out, m)
			}

			return nil
		}

		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
			return errors.New("--lat and --lng are required")
		}

		svc := recycling.NewService(nil, dataset)

		points, err := svc.FindPoints(strings.Join(args, " "), &spatial.Point{
			Lat: pointsOptions.Latitude,
			Lng: pointsOptions.Longitude,
		})
		if err != nil {
			return err
		}

		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			printPointsTable(out, points)

			return nil
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(points)
	},
}

func init() {
	pointsCmd.Flags().Float64Var(&pointsOptions.Latitude, "lat", 0, "Latitude de origem")
	pointsCmd.Flags().Float64Var(&pointsOptions.Longitude, "lng", 0, "Longitude de origem")
	pointsCmd.Flags().BoolVar(&pointsOptions.Materials, "materials", false, "Lista os materiais aceitos na base")
}

func printPointsTable(w io.Writer, points []recycling.MatchedPoint) {
	if len(points) == 0 {
		fmt.Fprintln(w, "Nenhum ponto de coleta encontrado.")

		return
	}

	a, b, c := strings.Repeat("─", 9), strings.Repeat("─", 40), strings.Repeat("─", 50)
	fmt.Fprintf(w, "╭─%9s─┬─%-40s─┬─%-50s╮\n", a, b, c)
	fmt.Fprintf(w, "│ %9s │ %-40s │ %-50s│\n", "km", "Nome", "Endereço")
	fmt.Fprintf(w, "├─%9s─┼─%-40s─┼─%-50s┤\n", a, b, c)

	for _, p := range points {
		distance := "-"
		if p.DistanceKm != nil {
			distance = fmt.Sprintf("%.2f", *p.DistanceKm)
		}

		fmt.Fprintf(w, "│ %9s │ %-40s │ %-50s│\n", distance, truncate(p.Name, 40), truncate(p.Address, 50))
	}

	fmt.Fprintf(w, "╰─%9s─┴─%-40s─┴─%-50s╯\n", a, b, c)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
