package stargen

import "math"

// Sequence is the luminosity class of a star.
type Sequence string

const (
	SequenceV   Sequence = "V"   // main sequence
	SequenceIV  Sequence = "IV"  // subgiant
	SequenceIII Sequence = "III" // giant
	SequenceD   Sequence = "D"   // white dwarf
)

// Star holds the generated characteristics of a single star. Spectral
// type, temperature, and radius are nil for white dwarfs; the ruleset
// defines no way to compute them, so the absence is deliberate rather
// than a placeholder value.
type Star struct {
	Mass             float64     `json:"mass"`
	Age              float64     `json:"age"`
	Sequence         Sequence    `json:"sequence"`
	SpectralType     *string     `json:"spectral_type"`
	Temperature      *float64    `json:"temperature"`
	Luminosity       float64     `json:"luminosity"`
	Radius           *float64    `json:"radius"`
	InnerLimitRadius float64     `json:"inner_limit_radius"`
	OuterLimitRadius float64     `json:"outer_limit_radius"`
	SnowLineRadius   float64     `json:"snow_line_radius"`
	Arrangement      Arrangement `json:"gas_giant_arrangement"`
}

// Generator owns the entropy source, the table set, and the logger for
// one generation run. It is not safe for concurrent use; give each run
// its own Generator so draw order stays reproducible.
type Generator struct {
	roller *Roller
	tables *TableSet
	log    Logger
}

// NewGenerator creates a generator. A nil logger falls back to no-op.
func NewGenerator(roller *Roller, tables *TableSet, log Logger) *Generator {
	if log == nil {
		log = NewNoOpLogger()
	}
	return &Generator{roller: roller, tables: tables, log: log}
}

// GenerateStar builds a star from the given mass and age, rolling
// either when nil. Garden-world mode biases the rolls toward solar-like
// values.
func (g *Generator) GenerateStar(mass, age *float64, gardenWorld bool) (*Star, error) {
	s := &Star{}

	var err error
	if mass != nil {
		s.Mass = *mass
	} else if s.Mass, err = g.rollStellarMass(gardenWorld); err != nil {
		return nil, err
	}
	if age != nil {
		s.Age = *age
	} else if s.Age, err = g.rollStellarAge(gardenWorld); err != nil {
		return nil, err
	}

	evo, err := g.tables.StellarEvolution.Resolve(s.Mass)
	if err != nil {
		return nil, err
	}

	st := evo.Type
	s.SpectralType = &st
	s.Sequence = stellarSequence(evo, s.Age)
	s.Temperature = g.stellarTemperature(evo, s.Age, s.Sequence)
	s.Luminosity = stellarLuminosity(evo, s.Age, s.Sequence)
	s.Radius = stellarRadius(s.Temperature, s.Luminosity)

	s.InnerLimitRadius = innerLimitRadius(s.Mass, s.Luminosity)
	s.OuterLimitRadius = outerLimitRadius(s.Mass)
	s.SnowLineRadius = snowLineRadius(evo.LMin)

	if err := g.readjustStar(s); err != nil {
		return nil, err
	}

	g.log.Debugf("star: mass=%.2f age=%.2f sequence=%s luminosity=%g", s.Mass, s.Age, s.Sequence, s.Luminosity)
	return s, nil
}

func (g *Generator) rollStellarMass(gardenWorld bool) (float64, error) {
	first := g.tables.StellarMassFirstRoll
	firstRoll := g.roller.Roll(3, 0)
	if gardenWorld {
		first = g.tables.StellarMassGarden
		firstRoll = g.roller.Roll(1, 0)
	}
	sub, err := first.ResolveInt(firstRoll)
	if err != nil {
		return 0, err
	}
	return sub.ResolveInt(g.roller.Roll(3, 0))
}

func (g *Generator) rollStellarAge(gardenWorld bool) (float64, error) {
	roll := g.roller.Roll(3, 0)
	if gardenWorld {
		roll = g.roller.Roll(2, 2)
	}
	step, err := g.tables.StellarAge.ResolveInt(roll)
	if err != nil {
		return 0, err
	}
	return step.Base + step.StepA*float64(g.roller.Roll(1, -1)) + step.StepB*float64(g.roller.Roll(1, -1)), nil
}

// stellarSequence is the luminosity-class state machine: cumulative
// span thresholds from the evolution table, monotonic in age. Stars too
// light to ever leave the main sequence have no tabulated spans.
func stellarSequence(evo StellarEvolution, age float64) Sequence {
	if evo.SSpan == 0 {
		return SequenceV
	}
	switch {
	case age > evo.MSpan+evo.SSpan+evo.GSpan:
		return SequenceD
	case age > evo.MSpan+evo.SSpan:
		return SequenceIII
	case age > evo.MSpan:
		return SequenceIV
	default:
		return SequenceV
	}
}

func (g *Generator) stellarTemperature(evo StellarEvolution, age float64, seq Sequence) *float64 {
	var t float64
	switch seq {
	case SequenceV:
		t = evo.Temperature
	case SequenceIV:
		t = evo.Temperature - ((age-evo.MSpan)/evo.SSpan)*(evo.Temperature-4800)
	case SequenceIII:
		t = 3000 + 200*float64(g.roller.Roll(2, -2))
	default:
		return nil
	}
	return &t
}

func stellarLuminosity(evo StellarEvolution, age float64, seq Sequence) float64 {
	switch seq {
	case SequenceV:
		if evo.LMax == 0 {
			return evo.LMin
		}
		return evo.LMin + (age/evo.MSpan)*(evo.LMax-evo.LMin)
	case SequenceIV:
		return evo.LMax
	case SequenceIII:
		return evo.LMax * 25
	default:
		return 0.001
	}
}

func stellarRadius(temperature *float64, luminosity float64) *float64 {
	if temperature == nil {
		return nil
	}
	r := (155000 * math.Sqrt(luminosity)) / (*temperature * *temperature)
	return &r
}

func innerLimitRadius(mass, luminosity float64) float64 {
	return math.Max(0.1*mass, 0.01*math.Sqrt(luminosity))
}

func outerLimitRadius(mass float64) float64 {
	return 40.0 * mass
}

func snowLineRadius(lMin float64) float64 {
	return 4.85 * math.Sqrt(lMin)
}

// readjustStar fixes up the type and mass of a star that has left the
// main sequence. White dwarfs resample mass to model mass loss and drop
// their spectral type; subgiants and giants reverse-look-up their type
// from the drifted temperature.
func (g *Generator) readjustStar(s *Star) error {
	switch s.Sequence {
	case SequenceD:
		s.SpectralType = nil
		s.Mass = 0.9 + float64(g.roller.Roll(2, -2))*0.05
	case SequenceIV, SequenceIII:
		st, err := g.tables.SpectralTypeByTemp.Resolve(*s.Temperature)
		if err != nil {
			return err
		}
		s.SpectralType = &st
	}
	return nil
}
