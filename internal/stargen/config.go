package stargen

import "fmt"

// TuningBandConfig is one replacement band for a tunable table.
type TuningBandConfig struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Value float64 `json:"value"`
}

// TuningTableConfig replaces the bands of one named tunable table.
type TuningTableConfig struct {
	Name  string             `json:"name"`
	Bands []TuningBandConfig `json:"bands"`
}

// TuningConfig overrides the numeric roll tables of a TableSet. Only
// the flat float-valued tables can be tuned; the physically tabulated
// data (stellar evolution, world types) stays fixed.
type TuningConfig struct {
	Tables []TuningTableConfig `json:"tables"`
}

// tunable table names and the domains their replacements must cover.
var tunableTables = map[string][2]float64{
	"orbital_spacing":        {3, 19},
	"stellar_eccentricity":   {-3, 19},
	"planetary_eccentricity": {-6, 23},
}

// ValidateTuningConfig performs comprehensive validation of a
// TuningConfig, reporting every issue at once.
func ValidateTuningConfig(cfg TuningConfig) error {
	verr := &ValidationError{}

	seen := make(map[string]bool)
	for i, tc := range cfg.Tables {
		prefix := fmt.Sprintf("table at index %d", i)
		if tc.Name != "" {
			prefix = "table '" + tc.Name + "'"
		}

		domain, known := tunableTables[tc.Name]
		if tc.Name == "" {
			verr.Add(prefix + ": table name is required")
		} else if !known {
			verr.Add(prefix + ": unknown tunable table")
		} else if seen[tc.Name] {
			verr.Add("duplicate table override: " + tc.Name)
		} else {
			seen[tc.Name] = true
		}

		if len(tc.Bands) == 0 {
			verr.Add(prefix + ": at least one band is required")
			continue
		}
		for j, b := range tc.Bands {
			if b.Lo >= b.Hi {
				verr.Add(fmt.Sprintf("%s: band %d has reversed or empty range [%g, %g)", prefix, j, b.Lo, b.Hi))
			}
			if j > 0 && b.Lo < tc.Bands[j-1].Hi {
				verr.Add(fmt.Sprintf("%s: band %d overlaps previous band", prefix, j))
			}
		}
		if !known {
			continue
		}
		if tc.Bands[0].Lo > domain[0] {
			verr.Add(fmt.Sprintf("%s: bands start at %g, must cover down to %g", prefix, tc.Bands[0].Lo, domain[0]))
		}
		if tc.Bands[len(tc.Bands)-1].Hi < domain[1] {
			verr.Add(fmt.Sprintf("%s: bands end at %g, must cover up to %g", prefix, tc.Bands[len(tc.Bands)-1].Hi, domain[1]))
		}
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

// BuildTablesFromConfig returns the default table set with the tuning
// overrides applied. The config must already validate.
func BuildTablesFromConfig(cfg TuningConfig) (*TableSet, error) {
	if err := ValidateTuningConfig(cfg); err != nil {
		return nil, err
	}

	ts := DefaultTables()
	for _, tc := range cfg.Tables {
		bands := make([]Band[float64], 0, len(tc.Bands))
		for _, b := range tc.Bands {
			bands = append(bands, Band[float64]{Lo: b.Lo, Hi: b.Hi, Value: b.Value})
		}
		switch tc.Name {
		case "orbital_spacing":
			ts.OrbitalSpacing = NewTable("orbital spacing", bands...)
		case "stellar_eccentricity":
			ts.StellarEccentricity = NewTable("stellar orbital eccentricity", bands...)
		case "planetary_eccentricity":
			ts.PlanetaryEccentricity = NewTable("planetary eccentricity", bands...)
		}
	}

	if err := ValidateTableSet(ts); err != nil {
		return nil, fmt.Errorf("tuned table set: %w", err)
	}
	return ts, nil
}
