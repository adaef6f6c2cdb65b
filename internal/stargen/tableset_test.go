package stargen

import (
	"strings"
	"testing"
)

func TestValidateTableSet_Defaults(t *testing.T) {
	if err := ValidateTableSet(DefaultTables()); err != nil {
		t.Fatalf("stock tables failed validation: %v", err)
	}
}

func TestValidateTableSet_ReportsAllIssuesAtOnce(t *testing.T) {
	ts := DefaultTables()
	ts.OrbitalSpacing = NewTable("orbital spacing",
		Band[float64]{Lo: 5, Hi: 5, Value: 1.5}, // reversed/empty
	)
	ts.GasGiantSize = NewTable("gas giant size",
		Band[GiantSize]{Lo: 3, Hi: 10, Value: GiantSmall},
		Band[GiantSize]{Lo: 12, Hi: 23, Value: GiantLarge}, // gap 10..12
	)

	err := ValidateTableSet(ts)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Issues) < 2 {
		t.Fatalf("expected issues from both broken tables, got %d: %v", len(verr.Issues), verr.Issues)
	}
	if !strings.Contains(err.Error(), "orbital spacing") {
		t.Fatalf("expected spacing table named in error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Fatalf("expected gap reported, got: %v", err)
	}
}

func TestValidateTableSet_OverlapDetected(t *testing.T) {
	ts := DefaultTables()
	ts.StellarEccentricity = NewTable("stellar orbital eccentricity",
		Band[float64]{Lo: -3, Hi: 10, Value: 0},
		Band[float64]{Lo: 8, Hi: 19, Value: 0.5},
	)

	err := ValidateTableSet(ts)
	if err == nil {
		t.Fatal("expected validation error for overlapping bands, got nil")
	}
	if !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("expected overlap reported, got: %v", err)
	}
}

func TestValidateTableSet_ShortDomain(t *testing.T) {
	ts := DefaultTables()
	ts.OrbitContents = NewTable("orbit contents",
		Band[OrbitContent]{Lo: 3, Hi: 19, Value: OrbitContent{Kind: ContentEmpty}},
	)

	err := ValidateTableSet(ts)
	if err == nil {
		t.Fatal("expected validation error for short domain, got nil")
	}
	// Contextual modifiers can push the contents roll well below 3.
	if !strings.Contains(err.Error(), "domain starts") {
		t.Fatalf("expected domain start reported, got: %v", err)
	}
}

func TestDefaultTables_KnownLookups(t *testing.T) {
	ts := DefaultTables()

	stars, err := ts.MultipleStars.ResolveInt(10)
	if err != nil {
		t.Fatalf("multiple stars lookup: %v", err)
	}
	if stars != 1 {
		t.Fatalf("roll 10 gives %d stars, want 1", stars)
	}
	stars, _ = ts.MultipleStars.ResolveInt(16)
	if stars != 3 {
		t.Fatalf("roll 16 gives %d stars, want 3", stars)
	}

	evo, err := ts.StellarEvolution.Resolve(1.0)
	if err != nil {
		t.Fatalf("stellar evolution lookup: %v", err)
	}
	if evo.Type != "G2" || evo.Temperature != 5800 {
		t.Fatalf("mass 1.0 resolved to %s/%g, want G2/5800", evo.Type, evo.Temperature)
	}
	if evo.LMin != 0.68 || evo.LMax != 1.6 {
		t.Fatalf("mass 1.0 luminosity span [%g, %g], want [0.68, 1.6]", evo.LMin, evo.LMax)
	}

	evo, err = ts.StellarEvolution.Resolve(0.1)
	if err != nil {
		t.Fatalf("stellar evolution lookup: %v", err)
	}
	if evo.LMin != 0.0012 {
		t.Fatalf("mass 0.1 LMin %g, want 0.0012", evo.LMin)
	}
	if evo.SSpan != 0 {
		t.Fatalf("mass 0.1 has a subgiant span %g, want none", evo.SSpan)
	}

	spectral, err := ts.SpectralTypeByTemp.Resolve(5800)
	if err != nil {
		t.Fatalf("spectral type lookup: %v", err)
	}
	if spectral != "G2" {
		t.Fatalf("5800 K resolved to %s, want G2", spectral)
	}

	content, err := ts.OrbitContents.ResolveInt(-15)
	if err != nil {
		t.Fatalf("orbit contents at maximum stacked penalty: %v", err)
	}
	if content.Kind != ContentEmpty {
		t.Fatalf("orbit contents at -15 resolved to %s, want empty", content.Kind)
	}
}
