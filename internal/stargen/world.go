package stargen

import "math"

// Size is a world's size class.
type Size string

const (
	SizeTiny     Size = "Tiny"
	SizeSmall    Size = "Small"
	SizeStandard Size = "Standard"
	SizeLarge    Size = "Large"
)

// WorldType classifies a world's overall character.
type WorldType string

const (
	TypeRock       WorldType = "Rock"
	TypeIce        WorldType = "Ice"
	TypeSulfur     WorldType = "Sulfur"
	TypeHadean     WorldType = "Hadean"
	TypeAmmonia    WorldType = "Ammonia"
	TypeOcean      WorldType = "Ocean"
	TypeGarden     WorldType = "Garden"
	TypeGreenhouse WorldType = "Greenhouse"
	TypeChthonian  WorldType = "Chthonian"
	TypeGasGiant   WorldType = "Gas Giant"
)

// Climate is the banded classification of surface temperature.
type Climate string

const (
	ClimateFrozen   Climate = "Frozen"
	ClimateVeryCold Climate = "Very Cold"
	ClimateCold     Climate = "Cold"
	ClimateChilly   Climate = "Chilly"
	ClimateCool     Climate = "Cool"
	ClimateNormal   Climate = "Normal"
	ClimateWarm     Climate = "Warm"
	ClimateTropical Climate = "Tropical"
	ClimateHot      Climate = "Hot"
	ClimateVeryHot  Climate = "Very Hot"
	ClimateInfernal Climate = "Infernal"
)

// ActivityLevel grades volcanic and tectonic activity.
type ActivityLevel string

const (
	ActivityNone     ActivityLevel = "None"
	ActivityLight    ActivityLevel = "Light"
	ActivityModerate ActivityLevel = "Moderate"
	ActivityHeavy    ActivityLevel = "Heavy"
	ActivityExtreme  ActivityLevel = "Extreme"
)

// PlanetKind tags the two planet variants.
type PlanetKind string

const (
	KindGasGiant    PlanetKind = "Gas Giant"
	KindTerrestrial PlanetKind = "Terrestrial"
)

// RingSystem describes gas giant ring visibility.
type RingSystem string

const (
	RingsNone        RingSystem = ""
	RingsFaint       RingSystem = "Faint"
	RingsSpectacular RingSystem = "Spectacular"
)

// World is the physical detail shared by planets and major moons.
// Density, diameter, gravity, and mass are in Earth-relative units.
// Surface is nil for gas giants; atmosphere and hydrography do not
// apply to them.
type World struct {
	Size                 Size          `json:"size,omitempty"`
	Type                 WorldType     `json:"type"`
	OrbitalRadius        float64       `json:"orbital_radius"`
	BlackbodyTemperature float64       `json:"blackbody_temperature"`
	Density              float64       `json:"density"`
	Diameter             float64       `json:"diameter"`
	SurfaceGravity       float64       `json:"surface_gravity"`
	Mass                 float64       `json:"mass"`
	RotationPeriod       float64       `json:"rotation_period"`
	TidallyLocked        bool          `json:"tidally_locked"`
	RetrogradeRotation   bool          `json:"retrograde_rotation"`
	AxialTilt            int           `json:"axial_tilt"`
	VolcanicActivity     ActivityLevel `json:"volcanic_activity,omitempty"`
	TectonicActivity     ActivityLevel `json:"tectonic_activity,omitempty"`
	Surface              *Surface      `json:"surface,omitempty"`
}

// Surface holds the atmosphere, hydrography, and climate of a
// terrestrial-class world.
type Surface struct {
	AtmosphericMass        float64 `json:"atmospheric_mass"`
	AtmosphericComposition string  `json:"atmospheric_composition,omitempty"`
	MarginalAtmosphere     string  `json:"marginal_atmosphere,omitempty"`
	HydrographicCoverage   float64 `json:"hydrographic_coverage"`
	SurfaceTemperature     float64 `json:"surface_temperature"`
	Climate                Climate `json:"climate"`
}

// MoonCounts are the three moon families of a planet.
type MoonCounts struct {
	InnerMoonlets int `json:"inner_moonlets"`
	MajorMoons    int `json:"major_moons"`
	OuterMoonlets int `json:"outer_moonlets"`
}

// Planet is a world in a heliocentric orbit, tagged gas giant or
// terrestrial.
type Planet struct {
	World
	Kind                PlanetKind `json:"kind"`
	GiantSize           GiantSize  `json:"giant_size,omitempty"`
	RingSystem          RingSystem `json:"ring_system,omitempty"`
	OrbitalPeriod       float64    `json:"orbital_period"`
	OrbitalEccentricity float64    `json:"orbital_eccentricity"`
	MoonCounts          MoonCounts `json:"moon_counts"`
	MajorMoons          []*Moon    `json:"major_moons,omitempty"`
	TotalTidalEffect    float64    `json:"total_tidal_effect"`
}

// Moon is a major moon. It shares its host planet's heliocentric
// distance; the satellite orbit is a separate axis, measured in planet
// diameters.
type Moon struct {
	World
	SatelliteOrbitRadius float64 `json:"satellite_orbit_radius"`
	SatelliteOrbitPeriod float64 `json:"satellite_orbit_period"`
}

// blackbodyTemperature is the equilibrium temperature from stellar flux
// alone, in kelvin, before any atmospheric correction.
func blackbodyTemperature(luminosity, orbitalRadiusAU float64) float64 {
	return 278 * math.Pow(luminosity, 0.25) / math.Sqrt(orbitalRadiusAU)
}

// assignWorldType resolves the size-specific temperature-banded type
// table, then disambiguates the two-candidate bands: ice versus ammonia
// is gated on stellar mass, ocean versus garden on a habitability roll
// scaled by system age.
func (g *Generator) assignWorldType(size Size, bbt float64, star *Star, gardenWorld bool) (WorldType, error) {
	var table *Table[TypeBand]
	switch size {
	case SizeTiny:
		table = g.tables.WorldTypeTiny
	case SizeSmall:
		table = g.tables.WorldTypeSmall
	case SizeStandard:
		table = g.tables.WorldTypeStandard
	default:
		table = g.tables.WorldTypeLarge
	}
	band, err := table.Resolve(bbt)
	if err != nil {
		return "", err
	}
	switch band.Choose {
	case ChooseAmmonia:
		if star.Mass <= 0.65 {
			return band.Alt, nil
		}
		return band.Type, nil
	case ChooseGarden:
		bonus := int(star.Age / 0.5)
		if bonus > 10 {
			bonus = 10
		}
		if gardenWorld {
			bonus += 6
		}
		if g.roller.Roll(3, bonus) >= 18 {
			return band.Alt, nil
		}
		return band.Type, nil
	default:
		return band.Type, nil
	}
}

// holdsAtmosphere reports whether a world of this size and type retains
// a significant atmosphere.
func holdsAtmosphere(size Size, t WorldType) bool {
	if size == SizeSmall {
		return t == TypeIce
	}
	if size == SizeStandard || size == SizeLarge {
		switch t {
		case TypeAmmonia, TypeIce, TypeOcean, TypeGarden, TypeGreenhouse:
			return true
		}
	}
	return false
}

func (g *Generator) rollAtmosphere(w *World) error {
	s := w.Surface
	if !holdsAtmosphere(w.Size, w.Type) {
		return nil
	}
	s.AtmosphericMass = float64(g.roller.Roll(3, 0)) / 10

	switch w.Type {
	case TypeAmmonia:
		s.AtmosphericComposition = "Suffocating, Lethally Toxic, Corrosive"
	case TypeIce:
		s.AtmosphericComposition = "Suffocating, Mildly Toxic"
	case TypeOcean:
		s.AtmosphericComposition = "Suffocating"
	case TypeGreenhouse:
		s.AtmosphericComposition = "Suffocating, Lethally Toxic, Corrosive"
	case TypeGarden:
		if g.roller.Roll(3, 0) <= 11 {
			s.AtmosphericComposition = "Breathable"
		} else {
			marginal, err := g.tables.MarginalAtmospheres.ResolveInt(g.roller.Roll(3, 0))
			if err != nil {
				return err
			}
			s.AtmosphericComposition = "Marginal"
			s.MarginalAtmosphere = marginal
		}
	}
	return nil
}

func (g *Generator) rollHydrographics(w *World) {
	s := w.Surface
	var coverage float64
	switch {
	case w.Size == SizeSmall && w.Type == TypeIce:
		coverage = float64(g.roller.Roll(1, 2)) * 0.1
	case w.Type == TypeAmmonia:
		coverage = float64(g.roller.Roll(2, 0)) * 0.1
	case w.Type == TypeIce && (w.Size == SizeStandard || w.Size == SizeLarge):
		coverage = float64(g.roller.Roll(2, -10)) * 0.1
	case (w.Type == TypeOcean || w.Type == TypeGarden) && w.Size == SizeStandard:
		coverage = float64(g.roller.Roll(1, 4)) * 0.1
	case (w.Type == TypeOcean || w.Type == TypeGarden) && w.Size == SizeLarge:
		coverage = float64(g.roller.Roll(1, 6)) * 0.1
	case w.Type == TypeGreenhouse && w.Size == SizeStandard:
		coverage = float64(g.roller.Roll(2, -7)) * 0.1
	case w.Type == TypeGreenhouse && w.Size == SizeLarge:
		coverage = float64(g.roller.Roll(2, -10)) * 0.1
	default:
		return
	}
	s.HydrographicCoverage = math.Min(1, math.Max(0, coverage))
}

// densityColumn picks the core class column of the density table.
func densityColumn(size Size, t WorldType, triple DensityTriple) float64 {
	switch {
	case size == SizeTiny && (t == TypeIce || t == TypeSulfur),
		size == SizeSmall && (t == TypeHadean || t == TypeIce),
		size == SizeStandard && (t == TypeHadean || t == TypeAmmonia),
		size == SizeLarge && t == TypeAmmonia:
		return triple.Icy
	case (size == SizeTiny || size == SizeSmall) && t == TypeRock:
		return triple.SmallIron
	default:
		return triple.LargeIron
	}
}

func (g *Generator) rollDensity(w *World) error {
	triple, err := g.tables.WorldDensity.ResolveInt(g.roller.Roll(3, 0))
	if err != nil {
		return err
	}
	w.Density = densityColumn(w.Size, w.Type, triple)
	return nil
}

// rollDiameter derives diameter from the size-class factor range scaled
// by sqrt(blackbody/density); gravity and mass follow directly.
func (g *Generator) rollDiameter(w *World) {
	f := diameterFactorsFor(w.Size)
	variance := float64(g.roller.Roll(2, -2)) / 10
	w.Diameter = (f.Min + (f.Max-f.Min)*variance) * math.Sqrt(w.BlackbodyTemperature/w.Density)
	w.SurfaceGravity = w.Density * w.Diameter
	w.Mass = w.Density * w.Diameter * w.Diameter * w.Diameter
}

// absorptionGreenhouse returns the surface temperature correction
// factors for a world type. Ocean and garden absorption falls off as
// open water grows.
func absorptionGreenhouse(size Size, t WorldType, hydro float64) (float64, float64) {
	switch t {
	case TypeRock:
		if size == SizeTiny {
			return 0.97, 0
		}
		return 0.96, 0
	case TypeIce:
		if size == SizeSmall {
			return 0.93, 0.10
		}
		if size == SizeTiny {
			return 0.86, 0
		}
		return 0.86, 0.20
	case TypeSulfur:
		return 0.77, 0
	case TypeHadean:
		return 0.67, 0
	case TypeAmmonia:
		return 0.84, 0.20
	case TypeOcean, TypeGarden:
		switch {
		case hydro <= 0.20:
			return 0.95, 0.16
		case hydro <= 0.50:
			return 0.92, 0.16
		case hydro <= 0.90:
			return 0.88, 0.16
		default:
			return 0.84, 0.16
		}
	case TypeGreenhouse:
		return 0.77, 2.0
	default:
		return 0.97, 0
	}
}

func (g *Generator) resolveClimate(w *World) error {
	s := w.Surface
	absorption, greenhouse := absorptionGreenhouse(w.Size, w.Type, s.HydrographicCoverage)
	s.SurfaceTemperature = w.BlackbodyTemperature * absorption * (1 + s.AtmosphericMass*greenhouse)
	climate, err := g.tables.Climate.Resolve(s.SurfaceTemperature)
	if err != nil {
		return err
	}
	s.Climate = climate
	return nil
}

// developSurfaceWorld runs the shared derivation pipeline for
// terrestrial planets and major moons, up through climate. Orbital and
// rotational detail is layered on by the callers.
func (g *Generator) developSurfaceWorld(w *World, star *Star, gardenWorld bool) error {
	w.BlackbodyTemperature = blackbodyTemperature(star.Luminosity, w.OrbitalRadius)
	t, err := g.assignWorldType(w.Size, w.BlackbodyTemperature, star, gardenWorld)
	if err != nil {
		return err
	}
	w.Type = t
	w.Surface = &Surface{}

	if err := g.rollAtmosphere(w); err != nil {
		return err
	}
	g.rollHydrographics(w)
	if err := g.rollDensity(w); err != nil {
		return err
	}
	g.rollDiameter(w)
	return g.resolveClimate(w)
}

// orbitalEccentricityModifier encodes the gas giant biases: migrated
// conventional giants circularize, a forced eccentric-arrangement giant
// inside the snow line stays on its disturbed orbit.
func orbitalEccentricityModifier(p *Planet, star *Star, forced bool) int {
	if p.Kind != KindGasGiant {
		return 0
	}
	if star.Arrangement == ArrangementConventional {
		return -6
	}
	if star.Arrangement == ArrangementEccentric && forced && p.OrbitalRadius < star.SnowLineRadius {
		return 4
	}
	return 0
}

func (g *Generator) rollOrbitalEccentricity(p *Planet, star *Star, forced bool) error {
	ecc, err := g.tables.PlanetaryEccentricity.ResolveInt(g.roller.Roll(3, orbitalEccentricityModifier(p, star, forced)))
	if err != nil {
		return err
	}
	p.OrbitalEccentricity = ecc
	return nil
}

// planetOrbitalPeriodYears includes the planet's own mass; 332950 Earth
// masses per solar mass.
func planetOrbitalPeriodYears(semiMajorAxis, starMass, planetEarthMass float64) float64 {
	return math.Sqrt(semiMajorAxis * semiMajorAxis * semiMajorAxis / (starMass + planetEarthMass/332950))
}

// developTerrestrial runs the full pipeline for a terrestrial planet:
// surface detail, orbit, moons, tides, rotation, and activity.
func (g *Generator) developTerrestrial(p *Planet, star *Star, gardenWorld bool) error {
	if err := g.developSurfaceWorld(&p.World, star, gardenWorld); err != nil {
		return err
	}
	if err := g.rollOrbitalEccentricity(p, star, false); err != nil {
		return err
	}
	p.OrbitalPeriod = planetOrbitalPeriodYears(p.OrbitalRadius, star.Mass, p.Mass)

	if err := g.generateMoons(p, star, gardenWorld); err != nil {
		return err
	}
	p.TotalTidalEffect = g.totalTidalEffect(p, star)
	if err := g.rollRotation(&p.World, p.TotalTidalEffect, p.OrbitalPeriod*hoursPerYear); err != nil {
		return err
	}
	if err := g.rollActivity(&p.World, star, len(p.MajorMoons), false); err != nil {
		return err
	}
	return g.developMajorMoons(p, star, gardenWorld)
}

// developGasGiant runs the gas giant pipeline: bulk from the size
// table, orbit, moon families, rings, and rotation. Atmosphere and
// hydrography fields stay absent.
func (g *Generator) developGasGiant(p *Planet, star *Star, forced bool, gardenWorld bool) error {
	p.BlackbodyTemperature = blackbodyTemperature(star.Luminosity, p.OrbitalRadius)

	var bulkTable *Table[GiantBulk]
	switch p.GiantSize {
	case GiantSmall:
		bulkTable = g.tables.GasGiantBulkSmall
	case GiantMedium:
		bulkTable = g.tables.GasGiantBulkMedium
	default:
		bulkTable = g.tables.GasGiantBulkLarge
	}
	bulk, err := bulkTable.ResolveInt(g.roller.Roll(3, 0))
	if err != nil {
		return err
	}
	p.Mass = bulk.Mass
	p.Density = bulk.Density
	p.Diameter = math.Cbrt(bulk.Mass / bulk.Density)
	p.SurfaceGravity = p.Density * p.Diameter

	if err := g.rollOrbitalEccentricity(p, star, forced); err != nil {
		return err
	}
	p.OrbitalPeriod = planetOrbitalPeriodYears(p.OrbitalRadius, star.Mass, p.Mass)

	if err := g.generateMoons(p, star, gardenWorld); err != nil {
		return err
	}
	p.RingSystem = ringSystemFor(p.MoonCounts.InnerMoonlets)
	p.TotalTidalEffect = g.totalTidalEffect(p, star)
	if err := g.rollRotation(&p.World, p.TotalTidalEffect, p.OrbitalPeriod*hoursPerYear); err != nil {
		return err
	}
	return g.developMajorMoons(p, star, gardenWorld)
}

const hoursPerYear = 8766
