package geodata

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samirrijal/stayfinder/internal/core/domain"
)

// Tables holds the read-only geo lookup data injected into the search core.
type Tables struct {
	Locations domain.KnownLocations
	Regions   []domain.Region
	Default   domain.Viewport
}

// Defaults returns the built-in tables.
func Defaults() *Tables {
	return &Tables{
		Locations: DefaultKnownLocations(),
		Regions:   DefaultRegions(),
		Default:   DefaultViewport(),
	}
}

type fileFormat struct {
	Default *struct {
		Lat  float64 `yaml:"lat"`
		Lon  float64 `yaml:"lon"`
		Zoom int     `yaml:"zoom"`
	} `yaml:"default"`
	Locations []struct {
		Name string  `yaml:"name"`
		Lat  float64 `yaml:"lat"`
		Lon  float64 `yaml:"lon"`
	} `yaml:"locations"`
	Regions []struct {
		Name  string  `yaml:"name"`
		Match string  `yaml:"match"`
		Lat   float64 `yaml:"lat"`
		Lon   float64 `yaml:"lon"`
		Zoom  int     `yaml:"zoom"`
	} `yaml:"regions"`
}

// Load reads tables from a YAML file. Sections missing from the file keep
// the built-in defaults. Region order in the file is the lookup priority.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geo tables: %w", err)
	}
	return Parse(data)
}

// Parse decodes tables from YAML bytes.
func Parse(data []byte) (*Tables, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse geo tables: %w", err)
	}

	t := Defaults()
	var errs []string

	if f.Default != nil {
		t.Default = domain.Viewport{Center: domain.GeoPoint{Lat: f.Default.Lat, Lon: f.Default.Lon}, Zoom: f.Default.Zoom}
		if !t.Default.Center.Valid() {
			errs = append(errs, "default center out of range")
		}
	}

	if len(f.Locations) > 0 {
		t.Locations = make(domain.KnownLocations, len(f.Locations))
		for _, l := range f.Locations {
			p := domain.GeoPoint{Lat: l.Lat, Lon: l.Lon}
			switch {
			case l.Name == "":
				errs = append(errs, "location with empty name")
			case !p.Valid():
				errs = append(errs, fmt.Sprintf("location %q out of range", l.Name))
			default:
				t.Locations[l.Name] = p
			}
		}
	}

	if len(f.Regions) > 0 {
		t.Regions = make([]domain.Region, 0, len(f.Regions))
		for _, r := range f.Regions {
			p := domain.GeoPoint{Lat: r.Lat, Lon: r.Lon}
			switch {
			case r.Match == "":
				errs = append(errs, fmt.Sprintf("region %q has empty match", r.Name))
			case !p.Valid():
				errs = append(errs, fmt.Sprintf("region %q out of range", r.Name))
			default:
				name := r.Name
				if name == "" {
					name = r.Match
				}
				t.Regions = append(t.Regions, domain.Region{Name: name, Match: r.Match, Center: p, Zoom: r.Zoom})
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("geo tables invalid:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return t, nil
}
