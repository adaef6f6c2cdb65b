package stargen

import "math"

// SeparationClass categorizes a companion star's orbital separation.
type SeparationClass string

const (
	SeparationVeryClose SeparationClass = "Very Close"
	SeparationClose     SeparationClass = "Close"
	SeparationModerate  SeparationClass = "Moderate"
	SeparationWide      SeparationClass = "Wide"
	SeparationDistant   SeparationClass = "Distant"
)

// Companion holds the orbital characteristics of a non-primary star.
// The star itself lives in the system's star list; StarIndex is a
// non-owning handle into it.
type Companion struct {
	StarIndex        int             `json:"star_index"`
	Designation      int             `json:"designation"`
	Separation       SeparationClass `json:"separation"`
	RadiusMultiplier float64         `json:"radius_multiplier"`
	SemiMajorAxis    float64         `json:"semi_major_axis"`
	Eccentricity     float64         `json:"eccentricity"`
	OrbitalPeriod    float64         `json:"orbital_period"`
}

// ForbiddenZone is the orbital band destabilized by one companion's
// gravity. Computed once after all stars exist, read-only afterward.
type ForbiddenZone struct {
	Inner     float64 `json:"inner"`
	Outer     float64 `json:"outer"`
	Companion int     `json:"companion"`
}

// Contains reports whether radius falls inside the zone. Both edges
// are inclusive.
func (z ForbiddenZone) Contains(radius float64) bool {
	return radius >= z.Inner && radius <= z.Outer
}

func inForbiddenZone(zones []ForbiddenZone, radius float64) bool {
	for _, z := range zones {
		if z.Contains(radius) {
			return true
		}
	}
	return false
}

// GenerateCompanion builds a companion star and its orbit. Mass is
// derived from the primary by the caller, never rolled from the base
// mass table; age always matches the primary. The separation roll takes
// +4 in garden-world mode and +6 for the third star, stacking.
func (g *Generator) GenerateCompanion(designation int, mass, age float64, primary *Star, gardenWorld bool) (*Star, *Companion, error) {
	star, err := g.GenerateStar(&mass, &age, false)
	if err != nil {
		return nil, nil, err
	}

	mod := 0
	if designation == 2 {
		mod += 6
	}
	if gardenWorld {
		mod += 4
	}
	sep, err := g.tables.OrbitalSeparation.ResolveInt(g.roller.Roll(3, mod))
	if err != nil {
		return nil, nil, err
	}

	axis := float64(g.roller.Roll(2, 0)) * sep.Multiplier

	ecc, err := g.tables.StellarEccentricity.ResolveInt(g.roller.Roll(3, eccentricityModifier(sep.Class)))
	if err != nil {
		return nil, nil, err
	}

	comp := &Companion{
		Designation:      designation,
		Separation:       sep.Class,
		RadiusMultiplier: sep.Multiplier,
		SemiMajorAxis:    axis,
		Eccentricity:     ecc,
		OrbitalPeriod:    orbitalPeriodYears(axis, star.Mass+primary.Mass),
	}
	return star, comp, nil
}

// eccentricityModifier biases closer pairs toward circular orbits.
func eccentricityModifier(class SeparationClass) int {
	switch class {
	case SeparationVeryClose:
		return -6
	case SeparationClose:
		return -4
	case SeparationModerate:
		return -2
	default:
		return 0
	}
}

// orbitalPeriodYears applies Kepler's third law with the semi-major
// axis in AU and the combined mass in solar masses.
func orbitalPeriodYears(semiMajorAxis, combinedMass float64) float64 {
	return math.Sqrt(semiMajorAxis * semiMajorAxis * semiMajorAxis / combinedMass)
}

// forbiddenZoneFor derives the instability band of one companion orbit.
func forbiddenZoneFor(c *Companion, index int) ForbiddenZone {
	return ForbiddenZone{
		Inner:     ((1 - c.Eccentricity) * c.SemiMajorAxis) / 3,
		Outer:     ((1 + c.Eccentricity) * c.SemiMajorAxis) * 3,
		Companion: index,
	}
}
