package stargen

import (
	"errors"
	"sort"
	"testing"
)

func testStar(t *testing.T, g *Generator, mass, age float64) *Star {
	t.Helper()
	s, err := g.GenerateStar(&mass, &age, false)
	if err != nil {
		t.Fatalf("star fixture: %v", err)
	}
	return s
}

func TestRollArrangement_SnowLineInForbiddenZone(t *testing.T) {
	g := newTestGenerator(5)
	star := testStar(t, g, 1.0, 5.0)

	zones := []ForbiddenZone{{Inner: star.SnowLineRadius - 1, Outer: star.SnowLineRadius + 1}}
	arr, err := g.rollArrangement(star, zones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arr != ArrangementNone {
		t.Fatalf("arrangement = %s, want forced none", arr)
	}
}

func TestLayoutOrbits_Legality(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		g := newTestGenerator(seed)
		star := testStar(t, g, 1.0, 5.0)
		star.Arrangement = ArrangementConventional

		zones := []ForbiddenZone{{Inner: 8, Outer: 12}}
		slots, err := g.layoutOrbits(star, zones)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(slots) == 0 {
			t.Fatalf("seed %d: empty ladder", seed)
		}

		if !sort.SliceIsSorted(slots, func(i, j int) bool { return slots[i].Radius < slots[j].Radius }) {
			t.Fatalf("seed %d: ladder not sorted ascending", seed)
		}
		for i, s := range slots {
			if s.Radius < star.InnerLimitRadius || s.Radius > star.OuterLimitRadius {
				t.Fatalf("seed %d slot %d: radius %g outside limits [%g, %g]", seed, i, s.Radius, star.InnerLimitRadius, star.OuterLimitRadius)
			}
			// The forced seed slot is exempt from forbidden zone checks.
			if !s.ForcedGasGiant && inForbiddenZone(zones, s.Radius) {
				t.Fatalf("seed %d slot %d: radius %g inside a forbidden zone", seed, i, s.Radius)
			}
		}
		for i := 1; i < len(slots); i++ {
			gap := slots[i].Radius - slots[i-1].Radius
			if gap < 0.15-1e-9 {
				t.Fatalf("seed %d: slots %d/%d only %g AU apart", seed, i-1, i, gap)
			}
		}
	}
}

func TestLayoutOrbits_NoArrangementSeedSkipsForbiddenZone(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(seed)
		star := testStar(t, g, 1.0, 5.0)
		star.Arrangement = ArrangementNone

		// Zone covering the whole outer region swallows the seed orbit.
		zones := []ForbiddenZone{{Inner: 30, Outer: 45}}
		slots, err := g.layoutOrbits(star, zones)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		for i, s := range slots {
			if inForbiddenZone(zones, s.Radius) {
				t.Fatalf("seed %d slot %d: radius %g inside the zone", seed, i, s.Radius)
			}
		}
	}
}

func TestPlaceGasGiants_ForcedSlotAlwaysFilled(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(seed)
		star := testStar(t, g, 1.0, 5.0)
		star.Arrangement = ArrangementConventional

		slots, err := g.layoutOrbits(star, nil)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if err := g.placeGasGiants(star, slots); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		forcedFilled := false
		for _, s := range slots {
			if s.ForcedGasGiant {
				if s.Content != ContentGasGiant || s.Planet == nil {
					t.Fatalf("seed %d: forced slot not a gas giant", seed)
				}
				forcedFilled = true
			}
			if s.Content == ContentGasGiant && s.Planet.Kind != KindGasGiant {
				t.Fatalf("seed %d: gas giant slot carries kind %s", seed, s.Planet.Kind)
			}
		}
		if !forcedFilled {
			t.Fatalf("seed %d: conventional arrangement produced no forced slot", seed)
		}
	}
}

func TestPlaceGasGiants_NoneArrangementPlacesNothing(t *testing.T) {
	g := newTestGenerator(21)
	star := testStar(t, g, 1.0, 5.0)
	star.Arrangement = ArrangementNone

	slots, err := g.layoutOrbits(star, nil)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if err := g.placeGasGiants(star, slots); err != nil {
		t.Fatalf("place: %v", err)
	}
	for i, s := range slots {
		if s.Content == ContentGasGiant {
			t.Fatalf("slot %d: gas giant placed despite none arrangement", i)
		}
	}
}

func TestFillRemainingOrbits(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGenerator(seed)
		star := testStar(t, g, 1.0, 5.0)
		star.Arrangement = ArrangementConventional

		slots, err := g.layoutOrbits(star, nil)
		if err != nil {
			t.Fatalf("seed %d layout: %v", seed, err)
		}
		if err := g.placeGasGiants(star, slots); err != nil {
			t.Fatalf("seed %d giants: %v", seed, err)
		}
		if err := g.fillRemainingOrbits(star, slots, nil); err != nil {
			t.Fatalf("seed %d fill: %v", seed, err)
		}

		for i, s := range slots {
			if s.Content == "" {
				t.Fatalf("seed %d slot %d: left unresolved", seed, i)
			}
			if s.Content == ContentTerrestrial {
				if s.Planet == nil || s.Planet.Kind != KindTerrestrial {
					t.Fatalf("seed %d slot %d: terrestrial slot without planet", seed, i)
				}
				if s.Planet.Size == "" {
					t.Fatalf("seed %d slot %d: terrestrial planet without size", seed, i)
				}
			}
			if s.Content == ContentEmpty || s.Content == ContentAsteroidBelt {
				if s.Planet != nil {
					t.Fatalf("seed %d slot %d: %s carries a planet", seed, i, s.Content)
				}
			}
		}
	}
}

func TestLayoutOrbits_UnresolvableConfiguration(t *testing.T) {
	g := newTestGenerator(1)
	star := testStar(t, g, 1.0, 5.0)
	star.Arrangement = ArrangementConventional
	// A degenerate limit geometry forces the inward walk past its bound.
	star.InnerLimitRadius = -1e9

	_, err := g.layoutOrbits(star, nil)
	if err == nil {
		t.Fatal("expected unresolvable configuration error, got nil")
	}
	if !errors.Is(err, ErrUnresolvableOrbits) {
		t.Fatalf("expected ErrUnresolvableOrbits, got %v", err)
	}
}

func TestClosestSlot(t *testing.T) {
	slots := []OrbitSlot{{Radius: 0.5}, {Radius: 1.0}, {Radius: 4.0}}

	tests := []struct {
		target float64
		want   int
	}{
		{0.1, 0},
		{0.8, 1},
		{2.4, 1},
		{2.6, 2},
		{100, 2},
	}
	for _, tt := range tests {
		if got := closestSlot(slots, tt.target); got != tt.want {
			t.Fatalf("closestSlot(%g) = %d, want %d", tt.target, got, tt.want)
		}
	}
}
