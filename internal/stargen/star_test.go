package stargen

import (
	"math"
	"testing"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(NewSeededRoller(seed), DefaultTables(), nil)
}

func floatPtr(v float64) *float64 { return &v }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGenerateStar_SolarMainSequence(t *testing.T) {
	g := newTestGenerator(1)

	s, err := g.GenerateStar(floatPtr(1.0), floatPtr(10.0), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Sequence != SequenceV {
		t.Fatalf("sequence = %s, want V", s.Sequence)
	}
	if s.Temperature == nil || *s.Temperature != 5800 {
		t.Fatalf("temperature = %v, want 5800", s.Temperature)
	}
	// Luminosity interpolates to LMax exactly at the end of the
	// main-sequence span.
	if !almostEqual(s.Luminosity, 1.6) {
		t.Fatalf("luminosity = %g, want 1.6", s.Luminosity)
	}
	if s.SpectralType == nil || *s.SpectralType != "G2" {
		t.Fatalf("spectral type = %v, want G2", s.SpectralType)
	}
	if s.Radius == nil {
		t.Fatal("radius is nil for a main-sequence star")
	}
	wantRadius := 155000 * math.Sqrt(1.6) / (5800 * 5800)
	if !almostEqual(*s.Radius, wantRadius) {
		t.Fatalf("radius = %g, want %g", *s.Radius, wantRadius)
	}
}

func TestGenerateStar_WhiteDwarf(t *testing.T) {
	g := newTestGenerator(1)

	s, err := g.GenerateStar(floatPtr(1.0), floatPtr(13.5), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Sequence != SequenceD {
		t.Fatalf("sequence = %s, want D", s.Sequence)
	}
	if s.Temperature != nil {
		t.Fatalf("temperature = %v, want nil for a white dwarf", *s.Temperature)
	}
	if s.SpectralType != nil {
		t.Fatalf("spectral type = %v, want nil for a white dwarf", *s.SpectralType)
	}
	if s.Radius != nil {
		t.Fatalf("radius = %v, want nil for a white dwarf", *s.Radius)
	}
	if s.Luminosity != 0.001 {
		t.Fatalf("luminosity = %g, want 0.001", s.Luminosity)
	}
	// Mass is resampled to model the loss of the envelope.
	if s.Mass < 0.9 || s.Mass > 1.4 {
		t.Fatalf("white dwarf mass = %g, want within [0.9, 1.4]", s.Mass)
	}
}

func TestGenerateStar_RedDwarfNeverLeavesMainSequence(t *testing.T) {
	g := newTestGenerator(1)

	s, err := g.GenerateStar(floatPtr(0.1), floatPtr(10.0), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Sequence != SequenceV {
		t.Fatalf("sequence = %s, want V", s.Sequence)
	}
	if !almostEqual(s.Luminosity, 0.0012) {
		t.Fatalf("luminosity = %g, want flat 0.0012", s.Luminosity)
	}
	if s.Temperature == nil || *s.Temperature != 3100 {
		t.Fatalf("temperature = %v, want 3100", s.Temperature)
	}
	if s.Radius == nil {
		t.Fatal("radius is nil for a red dwarf")
	}
}

func TestGenerateStar_LimitRadii(t *testing.T) {
	g := newTestGenerator(1)

	s, err := g.GenerateStar(floatPtr(1.0), floatPtr(10.0), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantInner := math.Max(0.1*1.0, 0.01*math.Sqrt(s.Luminosity))
	if !almostEqual(s.InnerLimitRadius, wantInner) {
		t.Fatalf("inner limit = %g, want %g", s.InnerLimitRadius, wantInner)
	}
	if !almostEqual(s.OuterLimitRadius, 40.0) {
		t.Fatalf("outer limit = %g, want 40", s.OuterLimitRadius)
	}
	// Snow line uses the zero-age luminosity, not the evolved one.
	if !almostEqual(s.SnowLineRadius, 4.85*math.Sqrt(0.68)) {
		t.Fatalf("snow line = %g, want %g", s.SnowLineRadius, 4.85*math.Sqrt(0.68))
	}
}

func TestStellarSequence(t *testing.T) {
	evo := StellarEvolution{MSpan: 10, SSpan: 1.6, GSpan: 1.0}

	tests := []struct {
		name string
		age  float64
		want Sequence
	}{
		{"zero age", 0, SequenceV},
		{"end of main sequence inclusive", 10, SequenceV},
		{"subgiant", 10.5, SequenceIV},
		{"giant", 12.0, SequenceIII},
		{"past all spans", 13.0, SequenceD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stellarSequence(evo, tt.age); got != tt.want {
				t.Fatalf("stellarSequence(age=%g) = %s, want %s", tt.age, got, tt.want)
			}
		})
	}
}

func TestStellarTemperature_SubgiantInterpolation(t *testing.T) {
	g := newTestGenerator(1)
	evo := StellarEvolution{Temperature: 5800, MSpan: 10, SSpan: 1.6}

	// Halfway through the subgiant span, halfway to 4800 K.
	got := g.stellarTemperature(evo, 10.8, SequenceIV)
	if got == nil {
		t.Fatal("nil temperature for a subgiant")
	}
	want := 5800 - 0.5*(5800-4800)
	if !almostEqual(*got, want) {
		t.Fatalf("subgiant temperature = %g, want %g", *got, want)
	}
}

func TestStellarLuminosity(t *testing.T) {
	evo := StellarEvolution{LMin: 0.68, LMax: 1.6, MSpan: 10, SSpan: 1.6, GSpan: 1.0}

	if got := stellarLuminosity(evo, 5, SequenceV); !almostEqual(got, 0.68+0.5*(1.6-0.68)) {
		t.Fatalf("mid-sequence luminosity = %g", got)
	}
	if got := stellarLuminosity(evo, 11, SequenceIV); got != 1.6 {
		t.Fatalf("subgiant luminosity = %g, want LMax", got)
	}
	if got := stellarLuminosity(evo, 12, SequenceIII); got != 1.6*25 {
		t.Fatalf("giant luminosity = %g, want 25x LMax", got)
	}
	if got := stellarLuminosity(evo, 14, SequenceD); got != 0.001 {
		t.Fatalf("white dwarf luminosity = %g, want 0.001", got)
	}
}

func TestRollStellarMass_RangeAndGardenBias(t *testing.T) {
	g := newTestGenerator(3)
	for i := 0; i < 500; i++ {
		mass, err := g.rollStellarMass(false)
		if err != nil {
			t.Fatalf("roll %d: %v", i, err)
		}
		if mass < 0.10 || mass > 2.0 {
			t.Fatalf("rolled mass %g outside tabulated range", mass)
		}
	}

	// Garden-world mode only draws from the four solar-like subtables.
	for i := 0; i < 500; i++ {
		mass, err := g.rollStellarMass(true)
		if err != nil {
			t.Fatalf("garden roll %d: %v", i, err)
		}
		if mass < 0.60 || mass > 1.50 {
			t.Fatalf("garden-biased mass %g outside solar-like range", mass)
		}
	}
}

func TestRollStellarAge_Range(t *testing.T) {
	g := newTestGenerator(9)
	for i := 0; i < 500; i++ {
		age, err := g.rollStellarAge(false)
		if err != nil {
			t.Fatalf("roll %d: %v", i, err)
		}
		if age < 0 || age > 14 {
			t.Fatalf("rolled age %g outside [0, 14]", age)
		}
	}
	// Garden-world mode skips the zero-age band entirely.
	for i := 0; i < 500; i++ {
		age, err := g.rollStellarAge(true)
		if err != nil {
			t.Fatalf("garden roll %d: %v", i, err)
		}
		if age < 0.1 {
			t.Fatalf("garden-biased age %g below the youngest nonzero band", age)
		}
	}
}
