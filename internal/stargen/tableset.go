package stargen

import "fmt"

// rangeView lets validation walk band extents without caring about the
// outcome type.
type rangeView interface {
	TableName() string
	BandRanges() [][2]float64
}

// TableName returns the table's name for validation reporting.
func (t *Table[T]) TableName() string {
	return t.Name
}

// BandRanges returns the sorted [Lo, Hi) extents of every band.
func (t *Table[T]) BandRanges() [][2]float64 {
	out := make([][2]float64, len(t.bands))
	for i, b := range t.bands {
		out[i] = [2]float64{b.Lo, b.Hi}
	}
	return out
}

// TableSet aggregates every lookup table the generation pipeline
// consumes. A set is built once (from defaults, optionally tuned) and
// shared read-only by any number of sequential runs.
type TableSet struct {
	MultipleStars        *Table[int]
	StellarMassFirstRoll *Table[*Table[float64]]
	StellarMassGarden    *Table[*Table[float64]]
	StellarAge           *Table[AgeStep]
	StellarEvolution     *Table[StellarEvolution]
	SpectralTypeByTemp   *Table[string]
	OrbitalSeparation    *Table[Separation]
	StellarEccentricity  *Table[float64]
	GasGiantArrangement  *Table[Arrangement]
	OrbitalSpacing       *Table[float64]
	GasGiantSize         *Table[GiantSize]
	OrbitContents        *Table[OrbitContent]
	MoonSizeOffset       *Table[int]

	WorldTypeTiny     *Table[TypeBand]
	WorldTypeSmall    *Table[TypeBand]
	WorldTypeStandard *Table[TypeBand]
	WorldTypeLarge    *Table[TypeBand]

	WorldDensity          *Table[DensityTriple]
	MarginalAtmospheres   *Table[string]
	PlanetaryEccentricity *Table[float64]
	Climate               *Table[Climate]
	SpecialRotation       *Table[int]
	AxialTilt             *Table[int]
	ExtendedAxialTilt     *Table[int]
	VolcanicActivity      *Table[ActivityLevel]
	TectonicActivity      *Table[ActivityLevel]
	GasGiantBulkSmall     *Table[GiantBulk]
	GasGiantBulkMedium    *Table[GiantBulk]
	GasGiantBulkLarge     *Table[GiantBulk]
}

// DefaultTables returns the stock table set.
func DefaultTables() *TableSet {
	second := stellarMassSecondRollTables()
	return &TableSet{
		MultipleStars:        multipleStarsTable(),
		StellarMassFirstRoll: stellarMassFirstRollTable(second),
		StellarMassGarden:    stellarMassGardenTable(second),
		StellarAge:           stellarAgeTable(),
		StellarEvolution:     stellarEvolutionTable(),
		SpectralTypeByTemp:   spectralTypeByTemperatureTable(),
		OrbitalSeparation:    orbitalSeparationTable(),
		StellarEccentricity:  stellarEccentricityTable(),
		GasGiantArrangement:  gasGiantArrangementTable(),
		OrbitalSpacing:       orbitalSpacingTable(),
		GasGiantSize:         gasGiantSizeTable(),
		OrbitContents:        orbitContentsTable(),
		MoonSizeOffset:       moonSizeOffsetTable(),

		WorldTypeTiny:     worldTypeTinyTable(),
		WorldTypeSmall:    worldTypeSmallTable(),
		WorldTypeStandard: worldTypeStandardTable(),
		WorldTypeLarge:    worldTypeLargeTable(),

		WorldDensity:          worldDensityTable(),
		MarginalAtmospheres:   marginalAtmosphereTable(),
		PlanetaryEccentricity: planetaryEccentricityTable(),
		Climate:               climateTable(),
		SpecialRotation:       specialRotationTable(),
		AxialTilt:             axialTiltTable(),
		ExtendedAxialTilt:     extendedAxialTiltTable(),
		VolcanicActivity:      volcanicActivityTable(),
		TectonicActivity:      tectonicActivityTable(),
		GasGiantBulkSmall:     gasGiantBulkSmallTable(),
		GasGiantBulkMedium:    gasGiantBulkMediumTable(),
		GasGiantBulkLarge:     gasGiantBulkLargeTable(),
	}
}

// domainRequirement names the span a roll-keyed table must cover
// without gaps so stacked modifiers stay in domain.
type domainRequirement struct {
	table rangeView
	lo    float64
	hi    float64
}

// ValidateTableSet checks every table for well-formed, non-overlapping,
// gap-free bands and checks that roll-keyed tables cover their required
// domains. All issues are reported at once.
func ValidateTableSet(ts *TableSet) error {
	verr := &ValidationError{}

	reqs := []domainRequirement{
		{ts.MultipleStars, 3, 22},
		{ts.StellarMassFirstRoll, 3, 19},
		{ts.StellarMassGarden, 1, 7},
		{ts.StellarAge, 3, 19},
		{ts.OrbitalSeparation, 0, 29},
		{ts.StellarEccentricity, -3, 19},
		{ts.GasGiantArrangement, 3, 19},
		{ts.OrbitalSpacing, 3, 19},
		{ts.GasGiantSize, 3, 23},
		{ts.OrbitContents, -15, 19},
		{ts.MoonSizeOffset, 3, 19},
		{ts.WorldDensity, 3, 19},
		{ts.MarginalAtmospheres, 3, 19},
		{ts.PlanetaryEccentricity, -6, 23},
		{ts.SpecialRotation, 2, 13},
		{ts.AxialTilt, 3, 19},
		{ts.ExtendedAxialTilt, 1, 7},
		{ts.GasGiantBulkSmall, 3, 23},
		{ts.GasGiantBulkMedium, 3, 23},
		{ts.GasGiantBulkLarge, 3, 23},
	}

	continuous := []rangeView{
		ts.StellarEvolution,
		ts.SpectralTypeByTemp,
		ts.WorldTypeTiny,
		ts.WorldTypeSmall,
		ts.WorldTypeStandard,
		ts.WorldTypeLarge,
		ts.Climate,
		ts.VolcanicActivity,
		ts.TectonicActivity,
	}

	for _, req := range reqs {
		validateBands(req.table, verr)
		validateCoverage(req.table, req.lo, req.hi, verr)
	}
	for _, t := range continuous {
		validateBands(t, verr)
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

func validateBands(t rangeView, verr *ValidationError) {
	ranges := t.BandRanges()
	if len(ranges) == 0 {
		verr.Add(fmt.Sprintf("table %q: no bands defined", t.TableName()))
		return
	}
	for i, r := range ranges {
		if r[0] >= r[1] {
			verr.Add(fmt.Sprintf("table %q: band %d has reversed or empty range [%g, %g)", t.TableName(), i, r[0], r[1]))
		}
		if i > 0 && r[0] < ranges[i-1][1] {
			verr.Add(fmt.Sprintf("table %q: band %d overlaps previous band at %g", t.TableName(), i, r[0]))
		}
	}
}

func validateCoverage(t rangeView, lo, hi float64, verr *ValidationError) {
	ranges := t.BandRanges()
	if len(ranges) == 0 {
		return
	}
	if ranges[0][0] > lo {
		verr.Add(fmt.Sprintf("table %q: domain starts at %g, requires %g", t.TableName(), ranges[0][0], lo))
	}
	last := ranges[0][1]
	for i := 1; i < len(ranges); i++ {
		if ranges[i][0] > last {
			verr.Add(fmt.Sprintf("table %q: gap between %g and %g", t.TableName(), last, ranges[i][0]))
		}
		if ranges[i][1] > last {
			last = ranges[i][1]
		}
	}
	if last < hi {
		verr.Add(fmt.Sprintf("table %q: domain ends at %g, requires %g", t.TableName(), last, hi))
	}
}
