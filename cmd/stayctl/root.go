package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/samirrijal/stayfinder/internal/adapters/fixture"
	"github.com/samirrijal/stayfinder/internal/core/usecases"
	"github.com/samirrijal/stayfinder/internal/pkg/geodata"
	"github.com/samirrijal/stayfinder/internal/pkg/logging"
)

var (
	catalogPath string
	tablesPath  string
	jitter      float64
	asJSON      bool
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "stayctl",
	Short: "Search a listing catalog offline",
	Long: `
stayctl runs the search core against a listing file without any backing
services. With no --catalog it uses the built-in sample catalog.
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logging.Setup(logLevel, "auto")
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&catalogPath, "catalog", "", "listing JSON file (default: built-in sample)")
	f.StringVar(&tablesPath, "tables", "", "geo tables YAML file (default: built-in)")
	f.Float64Var(&jitter, "jitter", usecases.DefaultJitter, "spiral spacing in degrees")
	f.BoolVar(&asJSON, "json", false, "print JSON (default when stdout is not a terminal)")
	f.StringVar(&logLevel, "log-level", "warn", "debug, info, warn or error")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newSearchService wires the core over the selected catalog file.
func newSearchService() (*usecases.SearchService, error) {
	listings, err := fixture.Load(catalogPath)
	if err != nil {
		return nil, err
	}

	tables := geodata.Defaults()
	if tablesPath != "" {
		if tables, err = geodata.Load(tablesPath); err != nil {
			return nil, err
		}
	}

	assembler := usecases.NewAssembler(
		usecases.NewLocationResolver(tables.Locations, jitter),
		usecases.NewViewportLocator(tables.Regions, tables.Default),
	)
	listingSvc := usecases.NewListingService(fixture.NewRepo(listings), nil)
	return usecases.NewSearchService(listingSvc, assembler, nil, nil), nil
}

func wantJSON(w io.Writer) bool {
	if asJSON {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !isatty.IsTerminal(f.Fd())
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
