package stargen

// Star-system generation tables. Roll-keyed tables use half-open integer
// bands; several have their lower or upper bounds stretched well past the
// nominal 3d6 range so stacked modifiers cannot escape the domain.
// The stellar mass data is a nested table: the first roll selects a
// sub-table which the second roll resolves against.

// StellarEvolution holds the tabulated characteristics for a stellar
// mass band. LMax is zero when no maximum luminosity is tabulated (the
// star stays at LMin for its whole life). MSpan/SSpan/GSpan are zero
// when the star never leaves the main sequence.
type StellarEvolution struct {
	Type        string
	Temperature float64
	LMin        float64
	LMax        float64
	MSpan       float64
	SSpan       float64
	GSpan       float64
}

// AgeStep holds the base age and the two step increments from the
// stellar age table; age = base + stepA*(1d6-1) + stepB*(1d6-1).
type AgeStep struct {
	Base  float64
	StepA float64
	StepB float64
}

// Separation holds a companion orbital separation class and its radius
// multiplier in AU.
type Separation struct {
	Class      SeparationClass
	Multiplier float64
}

func multipleStarsTable() *Table[int] {
	return NewTable("multiple stars",
		Band[int]{3, 11, 1},
		Band[int]{11, 16, 2},
		Band[int]{16, 30, 3},
	)
}

func stellarMassSecondRollTables() map[int]*Table[float64] {
	return map[int]*Table[float64]{
		3: NewTable("stellar mass, first roll 3",
			Band[float64]{3, 11, 2.00},
			Band[float64]{11, 19, 1.90},
		),
		4: NewTable("stellar mass, first roll 4",
			Band[float64]{3, 9, 1.80},
			Band[float64]{9, 12, 1.70},
			Band[float64]{12, 19, 1.60},
		),
		5: NewTable("stellar mass, first roll 5",
			Band[float64]{3, 8, 1.50},
			Band[float64]{8, 11, 1.45},
			Band[float64]{11, 13, 1.40},
			Band[float64]{13, 19, 1.35},
		),
		6: NewTable("stellar mass, first roll 6",
			Band[float64]{3, 8, 1.30},
			Band[float64]{8, 10, 1.25},
			Band[float64]{10, 11, 1.20},
			Band[float64]{11, 13, 1.15},
			Band[float64]{13, 19, 1.10},
		),
		7: NewTable("stellar mass, first roll 7",
			Band[float64]{3, 8, 1.05},
			Band[float64]{8, 10, 1.00},
			Band[float64]{10, 11, 0.95},
			Band[float64]{11, 13, 0.90},
			Band[float64]{13, 19, 0.85},
		),
		8: NewTable("stellar mass, first roll 8",
			Band[float64]{3, 8, 0.80},
			Band[float64]{8, 10, 0.75},
			Band[float64]{10, 11, 0.70},
			Band[float64]{11, 13, 0.65},
			Band[float64]{13, 19, 0.60},
		),
		9: NewTable("stellar mass, first roll 9",
			Band[float64]{3, 9, 0.55},
			Band[float64]{9, 12, 0.50},
			Band[float64]{12, 19, 0.45},
		),
		10: NewTable("stellar mass, first roll 10",
			Band[float64]{3, 9, 0.40},
			Band[float64]{9, 12, 0.35},
			Band[float64]{12, 19, 0.30},
		),
		11: NewTable("stellar mass, first roll 11",
			Band[float64]{3, 19, 0.25},
		),
		12: NewTable("stellar mass, first roll 12",
			Band[float64]{3, 19, 0.20},
		),
		13: NewTable("stellar mass, first roll 13",
			Band[float64]{3, 19, 0.15},
		),
		14: NewTable("stellar mass, first roll 14",
			Band[float64]{3, 19, 0.10},
		),
	}
}

func stellarMassFirstRollTable(second map[int]*Table[float64]) *Table[*Table[float64]] {
	return NewTable("stellar mass, first roll",
		Band[*Table[float64]]{3, 4, second[3]},
		Band[*Table[float64]]{4, 5, second[4]},
		Band[*Table[float64]]{5, 6, second[5]},
		Band[*Table[float64]]{6, 7, second[6]},
		Band[*Table[float64]]{7, 8, second[7]},
		Band[*Table[float64]]{8, 9, second[8]},
		Band[*Table[float64]]{9, 10, second[9]},
		Band[*Table[float64]]{10, 11, second[10]},
		Band[*Table[float64]]{11, 12, second[11]},
		Band[*Table[float64]]{12, 13, second[12]},
		Band[*Table[float64]]{13, 14, second[13]},
		Band[*Table[float64]]{14, 19, second[14]},
	)
}

// Garden-world mode substitutes a 1d6-keyed first roll biased toward
// solar-like masses.
func stellarMassGardenTable(second map[int]*Table[float64]) *Table[*Table[float64]] {
	return NewTable("stellar mass, garden world first roll",
		Band[*Table[float64]]{1, 2, second[5]},
		Band[*Table[float64]]{2, 3, second[6]},
		Band[*Table[float64]]{3, 5, second[7]},
		Band[*Table[float64]]{5, 7, second[8]},
	)
}

func stellarAgeTable() *Table[AgeStep] {
	return NewTable("stellar age",
		Band[AgeStep]{3, 4, AgeStep{0, 0, 0}},
		Band[AgeStep]{4, 7, AgeStep{0.1, 0.3, 0.05}},
		Band[AgeStep]{7, 11, AgeStep{2, 0.6, 0.1}},
		Band[AgeStep]{11, 15, AgeStep{5.6, 0.6, 0.1}},
		Band[AgeStep]{15, 18, AgeStep{8, 0.6, 0.1}},
		Band[AgeStep]{18, 19, AgeStep{10, 0.6, 0.1}},
	)
}

func stellarEvolutionTable() *Table[StellarEvolution] {
	return NewTable("stellar evolution",
		Band[StellarEvolution]{0.10, 0.15, StellarEvolution{"M7", 3100, 0.0012, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.15, 0.20, StellarEvolution{"M6", 3200, 0.0036, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.20, 0.25, StellarEvolution{"M5", 3200, 0.0079, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.25, 0.30, StellarEvolution{"M4", 3300, 0.015, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.30, 0.35, StellarEvolution{"M4", 3300, 0.024, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.35, 0.40, StellarEvolution{"M3", 3400, 0.037, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.40, 0.45, StellarEvolution{"M2", 3500, 0.054, 0, 0, 0, 0}},
		Band[StellarEvolution]{0.45, 0.50, StellarEvolution{"M1", 3600, 0.07, 0.08, 70, 0, 0}},
		Band[StellarEvolution]{0.50, 0.55, StellarEvolution{"M0", 3800, 0.09, 0.11, 59, 0, 0}},
		Band[StellarEvolution]{0.55, 0.60, StellarEvolution{"K8", 4000, 0.11, 0.15, 50, 0, 0}},
		Band[StellarEvolution]{0.60, 0.65, StellarEvolution{"K6", 4200, 0.13, 0.20, 42, 0, 0}},
		Band[StellarEvolution]{0.65, 0.70, StellarEvolution{"K5", 4400, 0.15, 0.25, 37, 0, 0}},
		Band[StellarEvolution]{0.70, 0.75, StellarEvolution{"K4", 4600, 0.19, 0.35, 30, 0, 0}},
		Band[StellarEvolution]{0.75, 0.80, StellarEvolution{"K2", 4900, 0.23, 0.48, 24, 0, 0}},
		Band[StellarEvolution]{0.80, 0.85, StellarEvolution{"K0", 5200, 0.28, 0.65, 20, 0, 0}},
		Band[StellarEvolution]{0.85, 0.90, StellarEvolution{"G8", 5400, 0.36, 0.84, 17, 0, 0}},
		Band[StellarEvolution]{0.90, 0.95, StellarEvolution{"G6", 5500, 0.45, 1.0, 14, 0, 0}},
		Band[StellarEvolution]{0.95, 1.00, StellarEvolution{"G4", 5700, 0.56, 1.3, 12, 1.8, 1.1}},
		Band[StellarEvolution]{1.00, 1.05, StellarEvolution{"G2", 5800, 0.68, 1.6, 10, 1.6, 1.0}},
		Band[StellarEvolution]{1.05, 1.10, StellarEvolution{"G1", 5900, 0.87, 1.9, 8.8, 1.4, 0.8}},
		Band[StellarEvolution]{1.10, 1.15, StellarEvolution{"G0", 6000, 1.1, 2.2, 7.7, 1.2, 0.7}},
		Band[StellarEvolution]{1.15, 1.20, StellarEvolution{"F9", 6100, 1.4, 2.6, 6.7, 1.0, 0.6}},
		Band[StellarEvolution]{1.20, 1.25, StellarEvolution{"F8", 6300, 1.7, 3.0, 5.9, 0.9, 0.6}},
		Band[StellarEvolution]{1.25, 1.30, StellarEvolution{"F7", 6400, 2.1, 3.5, 5.2, 0.8, 0.5}},
		Band[StellarEvolution]{1.30, 1.35, StellarEvolution{"F6", 6500, 2.5, 3.9, 4.6, 0.7, 0.4}},
		Band[StellarEvolution]{1.35, 1.40, StellarEvolution{"F5", 6600, 3.1, 4.5, 4.1, 0.6, 0.4}},
		Band[StellarEvolution]{1.40, 1.45, StellarEvolution{"F4", 6700, 3.7, 5.1, 3.7, 0.6, 0.4}},
		Band[StellarEvolution]{1.45, 1.50, StellarEvolution{"F3", 6900, 4.3, 5.7, 3.3, 0.5, 0.3}},
		Band[StellarEvolution]{1.50, 1.60, StellarEvolution{"F2", 7000, 5.1, 6.5, 3.0, 0.5, 0.3}},
		Band[StellarEvolution]{1.60, 1.70, StellarEvolution{"F0", 7300, 6.7, 8.2, 2.5, 0.4, 0.2}},
		Band[StellarEvolution]{1.70, 1.80, StellarEvolution{"A9", 7500, 8.6, 10, 2.1, 0.3, 0.2}},
		Band[StellarEvolution]{1.80, 1.90, StellarEvolution{"A7", 7800, 11, 13, 1.8, 0.3, 0.2}},
		Band[StellarEvolution]{1.90, 2.00, StellarEvolution{"A6", 8000, 13, 16, 1.5, 0.2, 0.1}},
		Band[StellarEvolution]{2.00, 2.10, StellarEvolution{"A5", 8200, 16, 20, 1.3, 0.2, 0.1}},
	)
}

// Reverse look-up: spectral type by temperature, for subgiants and
// giants whose temperature has drifted off the main-sequence value.
func spectralTypeByTemperatureTable() *Table[string] {
	return NewTable("spectral type by temperature",
		Band[string]{0, 3150, "M7"},
		Band[string]{3150, 3200, "M6"},
		Band[string]{3200, 3250, "M5"},
		Band[string]{3250, 3350, "M4"},
		Band[string]{3350, 3450, "M3"},
		Band[string]{3450, 3550, "M2"},
		Band[string]{3550, 3650, "M1"},
		Band[string]{3650, 3900, "M0"},
		Band[string]{3900, 4100, "K8"},
		Band[string]{4100, 4300, "K6"},
		Band[string]{4300, 4500, "K5"},
		Band[string]{4500, 4700, "K4"},
		Band[string]{4700, 5050, "K2"},
		Band[string]{5050, 5300, "K0"},
		Band[string]{5300, 5450, "G8"},
		Band[string]{5450, 5600, "G6"},
		Band[string]{5600, 5750, "G4"},
		Band[string]{5750, 5850, "G2"},
		Band[string]{5850, 5950, "G1"},
		Band[string]{5950, 6050, "G0"},
		Band[string]{6050, 6200, "F9"},
		Band[string]{6200, 6350, "F8"},
		Band[string]{6350, 6450, "F7"},
		Band[string]{6450, 6550, "F6"},
		Band[string]{6550, 6650, "F5"},
		Band[string]{6650, 6800, "F4"},
		Band[string]{6800, 6950, "F3"},
		Band[string]{6950, 7150, "F2"},
		Band[string]{7150, 7400, "F0"},
		Band[string]{7400, 7650, "A9"},
		Band[string]{7650, 7900, "A7"},
		Band[string]{7900, 8100, "A6"},
		Band[string]{8100, 10000, "A5"},
	)
}

func orbitalSeparationTable() *Table[Separation] {
	return NewTable("orbital separation",
		Band[Separation]{0, 7, Separation{SeparationVeryClose, 0.05}},
		Band[Separation]{7, 10, Separation{SeparationClose, 0.5}},
		Band[Separation]{10, 12, Separation{SeparationModerate, 2.0}},
		Band[Separation]{12, 15, Separation{SeparationWide, 10.0}},
		Band[Separation]{15, 101, Separation{SeparationDistant, 50.0}},
	)
}

func stellarEccentricityTable() *Table[float64] {
	return NewTable("stellar orbital eccentricity",
		Band[float64]{-3, 4, 0},
		Band[float64]{4, 5, 0.1},
		Band[float64]{5, 6, 0.2},
		Band[float64]{6, 7, 0.3},
		Band[float64]{7, 9, 0.4},
		Band[float64]{9, 12, 0.5},
		Band[float64]{12, 14, 0.6},
		Band[float64]{14, 16, 0.7},
		Band[float64]{16, 17, 0.8},
		Band[float64]{17, 18, 0.9},
		Band[float64]{18, 101, 0.95},
	)
}

func gasGiantArrangementTable() *Table[Arrangement] {
	return NewTable("gas giant arrangement",
		Band[Arrangement]{0, 11, ArrangementNone},
		Band[Arrangement]{11, 13, ArrangementConventional},
		Band[Arrangement]{13, 15, ArrangementEccentric},
		Band[Arrangement]{15, 19, ArrangementEpistellar},
	)
}

func orbitalSpacingTable() *Table[float64] {
	return NewTable("orbital spacing",
		Band[float64]{3, 5, 1.4},
		Band[float64]{5, 7, 1.5},
		Band[float64]{7, 9, 1.6},
		Band[float64]{9, 13, 1.7},
		Band[float64]{13, 15, 1.8},
		Band[float64]{15, 17, 1.9},
		Band[float64]{17, 19, 2.0},
	)
}

func gasGiantSizeTable() *Table[GiantSize] {
	return NewTable("gas giant size",
		Band[GiantSize]{3, 11, GiantSmall},
		Band[GiantSize]{11, 17, GiantMedium},
		Band[GiantSize]{17, 101, GiantLarge},
	)
}

// OrbitContent describes what a filled orbit slot resolves to.
// Size is only set for terrestrial planets.
type OrbitContent struct {
	Kind ContentKind
	Size Size
}

func orbitContentsTable() *Table[OrbitContent] {
	return NewTable("orbit contents",
		Band[OrbitContent]{-100, 4, OrbitContent{Kind: ContentEmpty}},
		Band[OrbitContent]{4, 7, OrbitContent{Kind: ContentAsteroidBelt}},
		Band[OrbitContent]{7, 9, OrbitContent{Kind: ContentTerrestrial, Size: SizeTiny}},
		Band[OrbitContent]{9, 12, OrbitContent{Kind: ContentTerrestrial, Size: SizeSmall}},
		Band[OrbitContent]{12, 16, OrbitContent{Kind: ContentTerrestrial, Size: SizeStandard}},
		Band[OrbitContent]{16, 101, OrbitContent{Kind: ContentTerrestrial, Size: SizeLarge}},
	)
}

func moonSizeOffsetTable() *Table[int] {
	return NewTable("moon size offset",
		Band[int]{0, 12, -3},
		Band[int]{12, 15, -2},
		Band[int]{15, 101, -1},
	)
}
