package stargen

// World-detail tables. Temperature-keyed tables take the blackbody
// temperature in kelvin and carry far tails so no physically reachable
// value escapes the domain; roll-keyed tables are stretched the same
// way the star tables are.

// TypeBand is one temperature band of a world type assignment table.
// When Choose is set the band holds two candidate types and the rule
// decides between Type (the colder/less hospitable pick) and Alt.
type TypeBand struct {
	Type   WorldType
	Alt    WorldType
	Choose ChooseRule
}

// ChooseRule disambiguates a two-candidate type band.
type ChooseRule int

const (
	ChooseNone ChooseRule = iota
	// ChooseAmmonia picks ammonia over ice when the star is dim
	// enough (mass at most 0.65 solar masses).
	ChooseAmmonia
	// ChooseGarden picks garden over ocean on a habitability roll
	// scaled by system age.
	ChooseGarden
)

func worldTypeTinyTable() *Table[TypeBand] {
	return NewTable("world type, tiny",
		Band[TypeBand]{0, 140.5, TypeBand{Type: TypeIce}},
		Band[TypeBand]{140.5, 100000, TypeBand{Type: TypeRock}},
	)
}

func worldTypeSmallTable() *Table[TypeBand] {
	return NewTable("world type, small",
		Band[TypeBand]{0, 80.5, TypeBand{Type: TypeHadean}},
		Band[TypeBand]{80.5, 140.5, TypeBand{Type: TypeIce}},
		Band[TypeBand]{140.5, 100000, TypeBand{Type: TypeRock}},
	)
}

func worldTypeStandardTable() *Table[TypeBand] {
	return NewTable("world type, standard",
		Band[TypeBand]{0, 80.5, TypeBand{Type: TypeHadean}},
		Band[TypeBand]{80.5, 150.5, TypeBand{Type: TypeIce, Alt: TypeAmmonia, Choose: ChooseAmmonia}},
		Band[TypeBand]{150.5, 240.5, TypeBand{Type: TypeIce}},
		Band[TypeBand]{240.5, 320.5, TypeBand{Type: TypeOcean, Alt: TypeGarden, Choose: ChooseGarden}},
		Band[TypeBand]{320.5, 500.5, TypeBand{Type: TypeGreenhouse}},
		Band[TypeBand]{500.5, 100000, TypeBand{Type: TypeChthonian}},
	)
}

func worldTypeLargeTable() *Table[TypeBand] {
	return NewTable("world type, large",
		Band[TypeBand]{0, 150.5, TypeBand{Type: TypeIce, Alt: TypeAmmonia, Choose: ChooseAmmonia}},
		Band[TypeBand]{150.5, 240.5, TypeBand{Type: TypeIce}},
		Band[TypeBand]{240.5, 320.5, TypeBand{Type: TypeOcean, Alt: TypeGarden, Choose: ChooseGarden}},
		Band[TypeBand]{320.5, 500.5, TypeBand{Type: TypeGreenhouse}},
		Band[TypeBand]{500.5, 100000, TypeBand{Type: TypeChthonian}},
	)
}

// DensityTriple holds the three density columns of the world density
// table: icy core, small iron core, large iron core.
type DensityTriple struct {
	Icy       float64
	SmallIron float64
	LargeIron float64
}

func worldDensityTable() *Table[DensityTriple] {
	return NewTable("world density",
		Band[DensityTriple]{3, 7, DensityTriple{0.3, 0.6, 0.8}},
		Band[DensityTriple]{7, 11, DensityTriple{0.4, 0.7, 0.9}},
		Band[DensityTriple]{11, 15, DensityTriple{0.5, 0.8, 1.0}},
		Band[DensityTriple]{15, 18, DensityTriple{0.6, 0.9, 1.1}},
		Band[DensityTriple]{18, 101, DensityTriple{0.7, 1.0, 1.2}},
	)
}

func marginalAtmosphereTable() *Table[string] {
	return NewTable("marginal atmospheres",
		Band[string]{3, 5, "Chlorine or Fluorine"},
		Band[string]{5, 7, "Sulfur Compounds"},
		Band[string]{7, 8, "Nitrogen Compounds"},
		Band[string]{8, 10, "Organic Toxins"},
		Band[string]{10, 12, "Low Oxygen"},
		Band[string]{12, 14, "Pollutants"},
		Band[string]{14, 15, "High Carbon Dioxide"},
		Band[string]{15, 17, "High Oxygen"},
		Band[string]{17, 101, "Inert Gases"},
	)
}

func planetaryEccentricityTable() *Table[float64] {
	return NewTable("planetary eccentricity",
		Band[float64]{-100, 4, 0},
		Band[float64]{4, 7, 0.05},
		Band[float64]{7, 10, 0.1},
		Band[float64]{10, 12, 0.15},
		Band[float64]{12, 13, 0.2},
		Band[float64]{13, 14, 0.3},
		Band[float64]{14, 15, 0.4},
		Band[float64]{15, 16, 0.5},
		Band[float64]{16, 17, 0.6},
		Band[float64]{17, 18, 0.7},
		Band[float64]{18, 101, 0.8},
	)
}

func climateTable() *Table[Climate] {
	return NewTable("climate",
		Band[Climate]{0, 244, ClimateFrozen},
		Band[Climate]{244, 255, ClimateVeryCold},
		Band[Climate]{255, 266, ClimateCold},
		Band[Climate]{266, 278, ClimateChilly},
		Band[Climate]{278, 289, ClimateCool},
		Band[Climate]{289, 300, ClimateNormal},
		Band[Climate]{300, 311, ClimateWarm},
		Band[Climate]{311, 322, ClimateTropical},
		Band[Climate]{322, 333, ClimateHot},
		Band[Climate]{333, 344, ClimateVeryHot},
		Band[Climate]{344, 100000, ClimateInfernal},
	)
}

// Special rotation override: the resolved value is a 1d6 multiplier in
// days, zero meaning the computed period stands.
func specialRotationTable() *Table[int] {
	return NewTable("special rotation",
		Band[int]{2, 8, 0},
		Band[int]{8, 9, 2},
		Band[int]{9, 10, 5},
		Band[int]{10, 11, 10},
		Band[int]{11, 12, 20},
		Band[int]{12, 101, 50},
	)
}

// Axial tilt base degrees; -1 flags the extended roll for extreme tilts.
func axialTiltTable() *Table[int] {
	return NewTable("axial tilt",
		Band[int]{3, 7, 0},
		Band[int]{7, 10, 10},
		Band[int]{10, 13, 20},
		Band[int]{13, 15, 30},
		Band[int]{15, 17, 40},
		Band[int]{17, 101, -1},
	)
}

func extendedAxialTiltTable() *Table[int] {
	return NewTable("extended axial tilt",
		Band[int]{1, 3, 50},
		Band[int]{3, 5, 60},
		Band[int]{5, 6, 70},
		Band[int]{6, 7, 80},
	)
}

func volcanicActivityTable() *Table[ActivityLevel] {
	return NewTable("volcanic activity",
		Band[ActivityLevel]{-1000, 17, ActivityNone},
		Band[ActivityLevel]{17, 21, ActivityLight},
		Band[ActivityLevel]{21, 27, ActivityModerate},
		Band[ActivityLevel]{27, 71, ActivityHeavy},
		Band[ActivityLevel]{71, 10000, ActivityExtreme},
	)
}

func tectonicActivityTable() *Table[ActivityLevel] {
	return NewTable("tectonic activity",
		Band[ActivityLevel]{-1000, 7, ActivityNone},
		Band[ActivityLevel]{7, 11, ActivityLight},
		Band[ActivityLevel]{11, 15, ActivityModerate},
		Band[ActivityLevel]{15, 19, ActivityHeavy},
		Band[ActivityLevel]{19, 10000, ActivityExtreme},
	)
}

// GiantBulk is a gas giant mass/density bucket in Earth masses and
// Earth-relative density.
type GiantBulk struct {
	Mass    float64
	Density float64
}

func gasGiantBulkSmallTable() *Table[GiantBulk] {
	return NewTable("gas giant bulk, small",
		Band[GiantBulk]{3, 9, GiantBulk{10, 0.42}},
		Band[GiantBulk]{9, 11, GiantBulk{15, 0.26}},
		Band[GiantBulk]{11, 12, GiantBulk{20, 0.22}},
		Band[GiantBulk]{12, 13, GiantBulk{30, 0.19}},
		Band[GiantBulk]{13, 14, GiantBulk{40, 0.17}},
		Band[GiantBulk]{14, 15, GiantBulk{50, 0.17}},
		Band[GiantBulk]{15, 16, GiantBulk{60, 0.17}},
		Band[GiantBulk]{16, 17, GiantBulk{70, 0.17}},
		Band[GiantBulk]{17, 101, GiantBulk{80, 0.17}},
	)
}

func gasGiantBulkMediumTable() *Table[GiantBulk] {
	return NewTable("gas giant bulk, medium",
		Band[GiantBulk]{3, 9, GiantBulk{100, 0.3}},
		Band[GiantBulk]{9, 11, GiantBulk{150, 0.19}},
		Band[GiantBulk]{11, 12, GiantBulk{200, 0.15}},
		Band[GiantBulk]{12, 13, GiantBulk{250, 0.13}},
		Band[GiantBulk]{13, 14, GiantBulk{300, 0.12}},
		Band[GiantBulk]{14, 15, GiantBulk{350, 0.12}},
		Band[GiantBulk]{15, 16, GiantBulk{400, 0.12}},
		Band[GiantBulk]{16, 17, GiantBulk{450, 0.12}},
		Band[GiantBulk]{17, 101, GiantBulk{500, 0.12}},
	)
}

func gasGiantBulkLargeTable() *Table[GiantBulk] {
	return NewTable("gas giant bulk, large",
		Band[GiantBulk]{3, 9, GiantBulk{600, 0.31}},
		Band[GiantBulk]{9, 11, GiantBulk{800, 0.24}},
		Band[GiantBulk]{11, 12, GiantBulk{1000, 0.21}},
		Band[GiantBulk]{12, 13, GiantBulk{1500, 0.16}},
		Band[GiantBulk]{13, 14, GiantBulk{2000, 0.14}},
		Band[GiantBulk]{14, 15, GiantBulk{2500, 0.14}},
		Band[GiantBulk]{15, 16, GiantBulk{3000, 0.13}},
		Band[GiantBulk]{16, 17, GiantBulk{3500, 0.13}},
		Band[GiantBulk]{17, 101, GiantBulk{4000, 0.13}},
	)
}

// diameterFactors holds the size-class diameter factor range.
type diameterFactors struct {
	Min float64
	Max float64
}

func diameterFactorsFor(size Size) diameterFactors {
	switch size {
	case SizeTiny:
		return diameterFactors{0.004, 0.024}
	case SizeSmall:
		return diameterFactors{0.024, 0.030}
	case SizeStandard:
		return diameterFactors{0.030, 0.065}
	default:
		return diameterFactors{0.065, 0.091}
	}
}
