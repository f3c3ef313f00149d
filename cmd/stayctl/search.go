package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samirrijal/stayfinder/internal/core/usecases"
)

var (
	priceMin float64
	priceMax float64
	checkIn  string
	checkOut string
)

var searchCmd = &cobra.Command{
	Use:   "search [location]",
	Short: "Filter the catalog and place the matches on the map",
	Long: `Prints the matches in catalog order with their map coordinates.

$ stayctl search malibu --max 300
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newSearchService()
		if err != nil {
			return err
		}

		req := usecases.SearchRequest{CheckIn: checkIn, CheckOut: checkOut}
		if len(args) == 1 {
			req.Location = strings.TrimSpace(args[0])
		}
		if cmd.Flags().Changed("min") {
			req.PriceMin = &priceMin
		}
		if cmd.Flags().Changed("max") {
			req.PriceMax = &priceMax
		}

		res, err := svc.Search(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if wantJSON(out) {
			return printJSON(out, res)
		}

		region := res.Viewport.Region
		if region == "" {
			region = "world"
		}
		fmt.Fprintf(out, "%d listings, $%.0f-$%.0f, map: %s (zoom %d)", res.Count,
			res.Query.PriceMin, res.Query.PriceMax, region, res.Viewport.Zoom)
		if res.Nights > 0 {
			fmt.Fprintf(out, ", %d nights", res.Nights)
		}
		fmt.Fprintln(out)

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tPRICE\tLAT\tLON")
		for _, m := range res.Matches {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.0f\t%.5f\t%.5f\n", m.Listing.ID, m.Listing.Title,
				m.Listing.LocationName, m.Listing.Price, m.Coordinate.Lat, m.Coordinate.Lon)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	f := searchCmd.Flags()
	f.Float64Var(&priceMin, "min", 0, "minimum nightly price (default: catalog minimum)")
	f.Float64Var(&priceMax, "max", 0, "maximum nightly price (default: catalog maximum)")
	f.StringVar(&checkIn, "checkin", "", "check-in date, YYYY-MM-DD")
	f.StringVar(&checkOut, "checkout", "", "check-out date, YYYY-MM-DD")
}
