package stargen

import (
	"github.com/google/uuid"
)

// Options configures one generation run.
type Options struct {
	// Seed fixes the dice engine for reproducible output. SeedText is
	// an alternative string seed; Seed wins when both are set. With
	// neither, the engine self-seeds from the clock.
	Seed     *int64
	SeedText string

	// IsInOpenCluster adds +3 to the star count roll.
	IsInOpenCluster bool
	// GuaranteeGardenWorld biases stellar mass and age toward
	// solar-like values and the habitability rolls toward garden
	// worlds.
	GuaranteeGardenWorld bool

	// Tables overrides the stock table set. Logger defaults to no-op.
	Tables *TableSet
	Logger Logger
}

// StarSystem is the terminal artifact of a generation run: the full
// object graph of stars, companion orbits, forbidden zones, and the
// per-star orbit ladders with their worlds. Immutable once returned.
type StarSystem struct {
	ID             string          `json:"id"`
	InOpenCluster  bool            `json:"in_open_cluster"`
	GardenWorld    bool            `json:"garden_world"`
	NumberOfStars  int             `json:"number_of_stars"`
	Stars          []*Star         `json:"stars"`
	Companions     []*Companion    `json:"companions,omitempty"`
	ForbiddenZones []ForbiddenZone `json:"forbidden_zones,omitempty"`
	Orbits         [][]OrbitSlot   `json:"orbits"`
}

// Generate runs one complete star system generation. Any error aborts
// the run; no partial system is ever returned. Retries are the
// caller's decision, typically with a fresh seed.
func Generate(opts Options) (*StarSystem, error) {
	var roller *Roller
	switch {
	case opts.Seed != nil:
		roller = NewSeededRoller(*opts.Seed)
	case opts.SeedText != "":
		roller = NewStringSeededRoller(opts.SeedText)
	default:
		roller = NewRoller()
	}

	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}

	g := NewGenerator(roller, tables, opts.Logger)
	return g.GenerateSystem(opts.IsInOpenCluster, opts.GuaranteeGardenWorld)
}

// GenerateSystem sequences the whole pipeline: star count, stars and
// companions, forbidden zones, per-star arrangements and orbit
// ladders, then world detail for every placed body.
func (g *Generator) GenerateSystem(openCluster, gardenWorld bool) (*StarSystem, error) {
	sys := &StarSystem{
		ID:            uuid.NewString(),
		InOpenCluster: openCluster,
		GardenWorld:   gardenWorld,
	}

	mod := 0
	if openCluster {
		mod = 3
	}
	n, err := g.tables.MultipleStars.ResolveInt(g.roller.Roll(3, mod))
	if err != nil {
		return nil, err
	}
	sys.NumberOfStars = n
	g.log.Infof("generating system %s with %d star(s)", sys.ID, n)

	primary, err := g.GenerateStar(nil, nil, gardenWorld)
	if err != nil {
		return nil, err
	}
	sys.Stars = append(sys.Stars, primary)

	for designation := 1; designation < n; designation++ {
		mass := g.rollCompanionMass(primary)
		star, comp, err := g.GenerateCompanion(designation, mass, primary.Age, primary, gardenWorld)
		if err != nil {
			return nil, err
		}
		comp.StarIndex = len(sys.Stars)
		sys.Stars = append(sys.Stars, star)
		sys.Companions = append(sys.Companions, comp)
	}

	for i, comp := range sys.Companions {
		sys.ForbiddenZones = append(sys.ForbiddenZones, forbiddenZoneFor(comp, i))
	}

	for _, star := range sys.Stars {
		star.Arrangement, err = g.rollArrangement(star, sys.ForbiddenZones)
		if err != nil {
			return nil, err
		}
	}

	for _, star := range sys.Stars {
		slots, err := g.layoutOrbits(star, sys.ForbiddenZones)
		if err != nil {
			return nil, err
		}
		if err := g.placeGasGiants(star, slots); err != nil {
			return nil, err
		}
		if err := g.fillRemainingOrbits(star, slots, sys.ForbiddenZones); err != nil {
			return nil, err
		}
		sys.Orbits = append(sys.Orbits, slots)
	}

	for i, star := range sys.Stars {
		for j := range sys.Orbits[i] {
			slot := &sys.Orbits[i][j]
			if slot.Planet == nil {
				continue
			}
			switch slot.Planet.Kind {
			case KindGasGiant:
				err = g.developGasGiant(slot.Planet, star, slot.ForcedGasGiant, gardenWorld)
			default:
				err = g.developTerrestrial(slot.Planet, star, gardenWorld)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return sys, nil
}

// rollCompanionMass derives a companion's mass from the primary: a
// 1d6-1 roll of zero means a twin; otherwise the primary's mass less
// 0.05 per pip of that many further dice, floored at 0.10 solar
// masses.
func (g *Generator) rollCompanionMass(primary *Star) float64 {
	roll := g.roller.Roll(1, -1)
	if roll == 0 {
		return primary.Mass
	}
	mass := primary.Mass - 0.05*float64(g.roller.Roll(roll, 0))
	if mass < 0.10 {
		mass = 0.10
	}
	return mass
}
