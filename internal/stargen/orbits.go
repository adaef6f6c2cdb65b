package stargen

import (
	"fmt"
	"math"
	"sort"
)

// Arrangement is a star's gas giant arrangement category.
type Arrangement string

const (
	ArrangementNone         Arrangement = "No Gas Giant"
	ArrangementConventional Arrangement = "Conventional Gas Giant"
	ArrangementEccentric    Arrangement = "Eccentric Gas Giant"
	ArrangementEpistellar   Arrangement = "Epistellar Gas Giant"
)

// ContentKind is what an orbit slot resolved to.
type ContentKind string

const (
	ContentEmpty        ContentKind = "Empty Orbit"
	ContentAsteroidBelt ContentKind = "Asteroid Belt"
	ContentGasGiant     ContentKind = "Gas Giant"
	ContentTerrestrial  ContentKind = "Terrestrial Planet"
)

// GiantSize is the size class of a gas giant.
type GiantSize string

const (
	GiantSmall  GiantSize = "Small"
	GiantMedium GiantSize = "Medium"
	GiantLarge  GiantSize = "Large"
)

// OrbitSlot is one rung of a star's orbit ladder. Content is empty
// until assignment; Planet is set for gas giants and terrestrials.
type OrbitSlot struct {
	Radius         float64     `json:"radius"`
	ForcedGasGiant bool        `json:"forced_gas_giant,omitempty"`
	Content        ContentKind `json:"content"`
	Planet         *Planet     `json:"planet,omitempty"`
}

// maxOrbitSteps bounds the geometric expansion walk in each direction.
// The spacing factors terminate far sooner for any sane configuration;
// hitting the bound means the configuration is unresolvable.
const maxOrbitSteps = 64

// rollArrangement decides a star's gas giant arrangement. A snow line
// inside a forbidden zone rules out gas giants without a roll.
func (g *Generator) rollArrangement(star *Star, zones []ForbiddenZone) (Arrangement, error) {
	if inForbiddenZone(zones, star.SnowLineRadius) {
		return ArrangementNone, nil
	}
	return g.tables.GasGiantArrangement.ResolveInt(g.roller.Roll(3, 0))
}

// layoutOrbits computes the full ladder of candidate orbital radii for
// one star: one seed slot, then a geometric random walk inward and
// outward bounded by the limit radii and the forbidden zones.
//
// A forced gas giant seed is not validated against forbidden zones;
// that matches the published procedure and is deliberately preserved.
func (g *Generator) layoutOrbits(star *Star, zones []ForbiddenZone) ([]OrbitSlot, error) {
	var slots []OrbitSlot
	var seed float64

	switch star.Arrangement {
	case ArrangementConventional:
		seed = (1 + float64(g.roller.Roll(2, -2))*0.05) * star.SnowLineRadius
		slots = append(slots, OrbitSlot{Radius: seed, ForcedGasGiant: true})
	case ArrangementEccentric:
		seed = float64(g.roller.Roll(1, 0)) * 0.125 * star.SnowLineRadius
		slots = append(slots, OrbitSlot{Radius: seed, ForcedGasGiant: true})
	case ArrangementEpistellar:
		seed = (1 + float64(g.roller.Roll(3, 0))*0.1) * star.InnerLimitRadius
		slots = append(slots, OrbitSlot{Radius: seed, ForcedGasGiant: true})
	default:
		seed = star.OuterLimitRadius / (1 + 0.05*float64(g.roller.Roll(1, 0)))
		if !inForbiddenZone(zones, seed) {
			slots = append(slots, OrbitSlot{Radius: seed})
		}
	}

	// Inward walk. Dividing by the spacing factor steps at least
	// 0.15 AU; otherwise subtract the floor directly to avoid
	// degenerate clustering at small radii.
	r := seed
	for i := 0; ; i++ {
		if i >= maxOrbitSteps {
			return nil, fmt.Errorf("inward orbit expansion did not terminate: %w", ErrUnresolvableOrbits)
		}
		factor, err := g.tables.OrbitalSpacing.ResolveInt(g.roller.Roll(3, 0))
		if err != nil {
			return nil, err
		}
		if r/factor > r-0.15 {
			r -= 0.15
		} else {
			r /= factor
		}
		if r < star.InnerLimitRadius {
			break
		}
		if !inForbiddenZone(zones, r) {
			slots = append(slots, OrbitSlot{Radius: r})
		}
	}

	// Outward walk, symmetric with the same additive floor.
	r = seed
	for i := 0; ; i++ {
		if i >= maxOrbitSteps {
			return nil, fmt.Errorf("outward orbit expansion did not terminate: %w", ErrUnresolvableOrbits)
		}
		factor, err := g.tables.OrbitalSpacing.ResolveInt(g.roller.Roll(3, 0))
		if err != nil {
			return nil, err
		}
		if r*factor < r+0.15 {
			r += 0.15
		} else {
			r *= factor
		}
		if r > star.OuterLimitRadius {
			break
		}
		if !inForbiddenZone(zones, r) {
			slots = append(slots, OrbitSlot{Radius: r})
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Radius < slots[j].Radius })
	g.log.Debugf("orbit ladder: %d slots between %.3f and %.3f AU", len(slots), star.InnerLimitRadius, star.OuterLimitRadius)
	return slots, nil
}

// placeGasGiants assigns the forced slot its gas giant and rolls every
// other slot against arrangement-specific thresholds. Slots inside the
// snow line take a +4 size modifier, biasing toward larger giants.
func (g *Generator) placeGasGiants(star *Star, slots []OrbitSlot) error {
	if star.Arrangement == ArrangementNone {
		return nil
	}
	for i := range slots {
		if slots[i].ForcedGasGiant {
			size, err := g.tables.GasGiantSize.ResolveInt(g.roller.Roll(3, 4))
			if err != nil {
				return err
			}
			g.assignGasGiant(&slots[i], size)
			continue
		}

		beyondSnowLine := slots[i].Radius >= star.SnowLineRadius
		place := false
		sizeMod := 0
		switch star.Arrangement {
		case ArrangementConventional:
			place = beyondSnowLine && g.roller.Roll(3, 0) <= 15
		case ArrangementEccentric:
			if beyondSnowLine {
				place = g.roller.Roll(3, 0) <= 14
			} else {
				place = g.roller.Roll(3, 0) <= 8
				sizeMod = 4
			}
		case ArrangementEpistellar:
			if beyondSnowLine {
				place = g.roller.Roll(3, 0) <= 14
			} else {
				place = g.roller.Roll(3, 0) <= 6
				sizeMod = 4
			}
		}
		if !place {
			continue
		}
		size, err := g.tables.GasGiantSize.ResolveInt(g.roller.Roll(3, sizeMod))
		if err != nil {
			return err
		}
		g.assignGasGiant(&slots[i], size)
	}
	return nil
}

func (g *Generator) assignGasGiant(slot *OrbitSlot, size GiantSize) {
	slot.Content = ContentGasGiant
	slot.Planet = &Planet{
		Kind:      KindGasGiant,
		GiantSize: size,
		World:     World{Type: TypeGasGiant, OrbitalRadius: slot.Radius},
	}
}

// fillRemainingOrbits resolves every unassigned slot to empty, belt, or
// a sized terrestrial planet. The contextual modifiers push planets
// away from the limit radii, from gas giant neighbors, and from
// forbidden zone edges; only the first matching zone counts.
func (g *Generator) fillRemainingOrbits(star *Star, slots []OrbitSlot, zones []ForbiddenZone) error {
	for i := range slots {
		if slots[i].Content != "" {
			continue
		}
		mod := 0
		if i == closestSlot(slots, star.InnerLimitRadius) || i == closestSlot(slots, star.OuterLimitRadius) {
			mod -= 3
		}
		if i < len(slots)-1 && slots[i+1].Content == ContentGasGiant {
			mod -= 6
		}
		if i > 0 && slots[i-1].Content == ContentGasGiant {
			mod -= 3
		}
		for _, zone := range zones {
			if i == closestSlot(slots, zone.Inner) || i == closestSlot(slots, zone.Outer) {
				mod -= 6
				break
			}
		}

		content, err := g.tables.OrbitContents.ResolveInt(g.roller.Roll(3, mod))
		if err != nil {
			return err
		}
		slots[i].Content = content.Kind
		if content.Kind == ContentTerrestrial {
			slots[i].Planet = &Planet{
				Kind:  KindTerrestrial,
				World: World{Size: content.Size, OrbitalRadius: slots[i].Radius},
			}
		}
	}
	return nil
}

// closestSlot returns the index of the slot whose radius is nearest to
// target.
func closestSlot(slots []OrbitSlot, target float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, s := range slots {
		if d := math.Abs(s.Radius - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
