package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

var (
	resolveIndex int
	fallbackLat  float64
	fallbackLon  float64
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <location name>",
	Short: "Print the map coordinate for a location name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if resolveIndex < 0 {
			return fmt.Errorf("--index must be non-negative")
		}
		var fallback *domain.GeoPoint
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
			p := domain.GeoPoint{Lat: fallbackLat, Lon: fallbackLon}
			if !p.Valid() {
				return fmt.Errorf("fallback %v is outside lat [-90, 90] / lon [-180, 180]", p)
			}
			fallback = &p
		}

		svc, err := newSearchService()
		if err != nil {
			return err
		}
		p := svc.Resolve(args[0], resolveIndex, fallback)

		out := cmd.OutOrStdout()
		if wantJSON(out) {
			return printJSON(out, map[string]any{
				"name":       args[0],
				"index":      resolveIndex,
				"known":      svc.Known(args[0]),
				"coordinate": p,
			})
		}
		fmt.Fprintf(out, "%.6f,%.6f\n", p.Lat, p.Lon)
		return nil
	},
}

var viewportCmd = &cobra.Command{
	Use:   "viewport [search term]",
	Short: "Print the initial map viewport for a search term",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSearchService()
		if err != nil {
			return err
		}
		term := ""
		if len(args) == 1 {
			term = args[0]
		}
		vp := svc.Viewport(term)

		out := cmd.OutOrStdout()
		if wantJSON(out) {
			return printJSON(out, vp)
		}
		fmt.Fprintf(out, "%.4f,%.4f zoom %d %s\n", vp.Center.Lat, vp.Center.Lon, vp.Zoom, vp.Region)
		return nil
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List map regions in lookup order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newSearchService()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if wantJSON(out) {
			return printJSON(out, svc.Regions())
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "REGION\tMATCH\tCENTER\tZOOM")
		for _, r := range svc.Regions() {
			fmt.Fprintf(tw, "%s\t%s\t%.4f,%.4f\t%d\n", r.Name, r.Match, r.Center.Lat, r.Center.Lon, r.Zoom)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd, viewportCmd, regionsCmd)
	resolveCmd.Flags().IntVar(&resolveIndex, "index", 0, "position of the listing in the result")
	resolveCmd.Flags().Float64Var(&fallbackLat, "lat", 0, "fallback latitude for unknown names")
	resolveCmd.Flags().Float64Var(&fallbackLon, "lon", 0, "fallback longitude for unknown names")
}
