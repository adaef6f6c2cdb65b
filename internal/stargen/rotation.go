package stargen

import "math"

// totalTidalEffect accumulates the star's and every major moon's tidal
// braking on a planet, scaled by system age and the planet's mass,
// truncated to a whole number the way the ruleset tabulates it.
func (g *Generator) totalTidalEffect(p *Planet, star *Star) float64 {
	r := p.OrbitalRadius
	tidal := 0.46 * star.Mass * p.Diameter / (r * r * r)
	for _, m := range p.MajorMoons {
		d := m.SatelliteOrbitRadius * p.Diameter
		tidal += 2230000 * m.Mass * p.Diameter / (d * d * d)
	}
	return math.Trunc(tidal * star.Age / p.Mass)
}

// moonTidalEffect is the planet's tidal braking on one of its moons.
func moonTidalEffect(p *Planet, m *Moon, age float64) float64 {
	d := m.SatelliteOrbitRadius * p.Diameter
	tidal := 2230000 * p.Mass * m.Diameter / (d * d * d)
	return math.Trunc(tidal * age / m.Mass)
}

func rotationSizeModifier(size Size) int {
	switch size {
	case SizeTiny:
		return 18
	case SizeSmall:
		return 14
	case SizeStandard:
		return 10
	case SizeLarge:
		return 6
	default:
		return 0
	}
}

// rollRotation derives the rotation period in hours, applying the
// special-rotation override for extreme rolls, then tidal locking:
// whenever the tidal effect reaches 50 or the computed period exceeds
// the body's orbital period, rotation locks to the orbital period
// exactly. Axial tilt is only rolled for unlocked bodies.
func (g *Generator) rollRotation(w *World, tidalEffect, orbitalPeriodHours float64) error {
	raw := g.roller.Roll(3, 0)
	period := tidalEffect + float64(raw+rotationSizeModifier(w.Size))

	if raw >= 16 || period > 36 {
		mult, err := g.tables.SpecialRotation.ResolveInt(g.roller.Roll(2, 0))
		if err != nil {
			return err
		}
		if mult > 0 {
			period = float64(g.roller.Roll(1, 0)*mult) * 24
		}
	}

	if tidalEffect >= 50 || period > orbitalPeriodHours {
		w.TidallyLocked = true
		period = orbitalPeriodHours
	}
	w.RotationPeriod = period
	w.RetrogradeRotation = g.roller.Roll(3, 0) >= 13

	if w.TidallyLocked {
		return nil
	}
	return g.rollAxialTilt(w)
}

func (g *Generator) rollAxialTilt(w *World) error {
	base, err := g.tables.AxialTilt.ResolveInt(g.roller.Roll(3, 0))
	if err != nil {
		return err
	}
	if base == -1 {
		base, err = g.tables.ExtendedAxialTilt.ResolveInt(g.roller.Roll(1, 0))
		if err != nil {
			return err
		}
	}
	w.AxialTilt = base + g.roller.Roll(2, -2)
	return nil
}

// rollActivity resolves volcanic and tectonic activity. Volcanism
// scales with gravity over age, with extra bias for moons of gas
// giants, sulfur worlds, and planets with major moons; tectonics only
// applies to standard and large worlds.
func (g *Generator) rollActivity(w *World, star *Star, majorMoons int, gasGiantMoon bool) error {
	age := math.Max(star.Age, 0.1)
	mod := int(math.Round(w.SurfaceGravity / age * 40))
	switch {
	case majorMoons == 1:
		mod += 5
	case majorMoons > 1:
		mod += 10
	}
	if w.Type == TypeSulfur {
		mod += 60
	}
	if gasGiantMoon {
		mod += 5
	}
	volcanic, err := g.tables.VolcanicActivity.ResolveInt(g.roller.Roll(3, mod))
	if err != nil {
		return err
	}
	w.VolcanicActivity = volcanic

	if w.Size != SizeStandard && w.Size != SizeLarge {
		w.TectonicActivity = ActivityNone
		return nil
	}

	mod = 0
	switch volcanic {
	case ActivityNone:
		mod -= 8
	case ActivityLight:
		mod -= 4
	case ActivityHeavy:
		mod += 4
	case ActivityExtreme:
		mod += 8
	}
	if w.Surface != nil {
		if w.Surface.HydrographicCoverage == 0 {
			mod -= 4
		} else if w.Surface.HydrographicCoverage < 0.5 {
			mod -= 2
		}
	}
	switch {
	case majorMoons == 1:
		mod += 2
	case majorMoons > 1:
		mod += 4
	}
	tectonic, err := g.tables.TectonicActivity.ResolveInt(g.roller.Roll(3, mod))
	if err != nil {
		return err
	}
	w.TectonicActivity = tectonic
	return nil
}
