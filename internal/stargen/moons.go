package stargen

import (
	"fmt"
	"math"
)

// maxMoonRetries bounds the rejection-sampling repair of satellite
// orbital radii.
const maxMoonRetries = 32

func sizeIndex(s Size) int {
	switch s {
	case SizeTiny:
		return 0
	case SizeSmall:
		return 1
	case SizeStandard:
		return 2
	case SizeLarge:
		return 3
	default:
		// gas giant hosts count as large for moon sizing
		return 3
	}
}

func sizeFromIndex(i int) Size {
	switch {
	case i <= 0:
		return SizeTiny
	case i == 1:
		return SizeSmall
	case i == 2:
		return SizeStandard
	default:
		return SizeLarge
	}
}

// generateMoons rolls the moon family counts for a planet, builds each
// major moon's physical detail, and places their satellite orbits.
func (g *Generator) generateMoons(p *Planet, star *Star, gardenWorld bool) error {
	if p.Kind == KindGasGiant {
		g.rollGasGiantMoonCounts(p)
	} else {
		g.rollTerrestrialMoonCounts(p)
	}

	// A low early roll permits the innermost tiny ice moon of a gas
	// giant to be reclassified as a sulfur world once orbits are known.
	sulfurAllowed := false
	if p.Kind == KindGasGiant && p.MoonCounts.MajorMoons > 0 {
		sulfurAllowed = g.roller.Roll(1, 0) <= 3
	}

	for i := 0; i < p.MoonCounts.MajorMoons; i++ {
		m, err := g.buildMoon(p, star, gardenWorld)
		if err != nil {
			return err
		}
		p.MajorMoons = append(p.MajorMoons, m)
	}
	if err := g.placeSatelliteOrbits(p); err != nil {
		return err
	}
	if sulfurAllowed {
		return g.reclassifyInnermostSulfur(p)
	}
	return nil
}

func (g *Generator) rollGasGiantMoonCounts(p *Planet) {
	r := p.OrbitalRadius
	if r > 0.1 {
		mod := 0
		switch {
		case r <= 0.5:
			mod = -10
		case r <= 0.75:
			mod = -8
		case r <= 1.5:
			mod = -6
		}
		p.MoonCounts.InnerMoonlets = max(0, g.roller.Roll(2, mod))

		mod = 0
		switch {
		case r <= 0.5:
			mod = -5
		case r <= 0.75:
			mod = -4
		case r <= 1.5:
			mod = -1
		}
		p.MoonCounts.MajorMoons = max(0, g.roller.Roll(1, mod))
	}
	if r > 0.5 {
		mod := 0
		switch {
		case r <= 0.75:
			mod = -5
		case r <= 1.5:
			mod = -4
		case r <= 3:
			mod = -1
		}
		p.MoonCounts.OuterMoonlets = max(0, g.roller.Roll(1, mod))
	}
}

func (g *Generator) rollTerrestrialMoonCounts(p *Planet) {
	r := p.OrbitalRadius
	if r < 0.5 {
		return
	}
	mod := 0
	switch {
	case r <= 0.75:
		mod = -3
	case r <= 1.5:
		mod = -1
	}
	switch p.Size {
	case SizeTiny:
		mod -= 2
	case SizeSmall:
		mod--
	case SizeLarge:
		mod++
	}
	p.MoonCounts.MajorMoons = max(0, g.roller.Roll(1, mod-4))
	if p.MoonCounts.MajorMoons == 0 {
		p.MoonCounts.InnerMoonlets = max(0, g.roller.Roll(1, mod-2))
	}
}

func (g *Generator) buildMoon(p *Planet, star *Star, gardenWorld bool) (*Moon, error) {
	offset, err := g.tables.MoonSizeOffset.ResolveInt(g.roller.Roll(3, 0))
	if err != nil {
		return nil, err
	}
	m := &Moon{
		World: World{
			Size:          sizeFromIndex(sizeIndex(p.Size) + offset),
			OrbitalRadius: p.OrbitalRadius,
		},
	}
	if err := g.developSurfaceWorld(&m.World, star, gardenWorld); err != nil {
		return nil, err
	}
	return m, nil
}

// reclassifyInnermostSulfur converts the tiny ice moon with the
// smallest satellite orbit to a sulfur world and rederives its climate.
// The climate lookup draws no dice, so the reclassification never
// shifts the roll sequence.
func (g *Generator) reclassifyInnermostSulfur(p *Planet) error {
	var pick *Moon
	for _, m := range p.MajorMoons {
		if m.Size != SizeTiny || m.Type != TypeIce {
			continue
		}
		if pick == nil || m.SatelliteOrbitRadius < pick.SatelliteOrbitRadius {
			pick = m
		}
	}
	if pick == nil {
		return nil
	}
	pick.Type = TypeSulfur
	return g.resolveClimate(&pick.World)
}

// placeSatelliteOrbits rolls each moon's orbital radius (in planet
// diameters) and re-rolls until it clears the minimum separation from
// every previously placed sibling: five planet diameters around a
// terrestrial, one around a gas giant.
func (g *Generator) placeSatelliteOrbits(p *Planet) error {
	minSep := 5.0
	if p.Kind == KindGasGiant {
		minSep = 1.0
	}

	var placed []float64
	for _, m := range p.MajorMoons {
		radius := 0.0
		ok := false
		for try := 0; try < maxMoonRetries; try++ {
			radius = g.rollSatelliteRadius(p, m)
			ok = true
			for _, other := range placed {
				if math.Abs(radius-other) < minSep {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		if !ok {
			return fmt.Errorf("%d moons around one planet: %w", len(p.MajorMoons), ErrMoonPlacement)
		}
		placed = append(placed, radius)
		m.SatelliteOrbitRadius = radius
		m.SatelliteOrbitPeriod = satellitePeriodDays(radius, p, m)
	}
	return nil
}

func (g *Generator) rollSatelliteRadius(p *Planet, m *Moon) float64 {
	if p.Kind == KindGasGiant {
		roll := g.roller.Roll(3, 0)
		radius := float64(roll) * 3
		if roll >= 15 {
			radius += float64(g.roller.Roll(2, 0)) * 6
		}
		return radius
	}
	radius := float64(g.roller.Roll(2, 0)) * 2.5
	if sizeIndex(p.Size)-sizeIndex(m.Size) == 1 {
		radius *= 2
	}
	return radius
}

// satellitePeriodDays converts the satellite radius to Earth diameters
// and applies the ruleset's period formula with the combined mass.
func satellitePeriodDays(radius float64, p *Planet, m *Moon) float64 {
	d := radius * p.Diameter
	return 0.166 * math.Sqrt(d*d*d/(p.Mass+m.Mass))
}

// developMajorMoons layers orbital and rotational detail onto moons
// whose physical bodies were already built: tidal braking from the
// host planet, rotation against the satellite orbital period, and
// volcanic/tectonic activity with the gas-giant-moon bias.
func (g *Generator) developMajorMoons(p *Planet, star *Star, gardenWorld bool) error {
	for _, m := range p.MajorMoons {
		tidal := moonTidalEffect(p, m, star.Age)
		if err := g.rollRotation(&m.World, tidal, m.SatelliteOrbitPeriod*24); err != nil {
			return err
		}
		if err := g.rollActivity(&m.World, star, 0, p.Kind == KindGasGiant); err != nil {
			return err
		}
	}
	return nil
}

func ringSystemFor(innerMoonlets int) RingSystem {
	switch {
	case innerMoonlets >= 10:
		return RingsSpectacular
	case innerMoonlets >= 6:
		return RingsFaint
	default:
		return RingsNone
	}
}
