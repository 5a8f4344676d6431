package convert

import (
	"fmt"

	"github.com/meerestier/espa-product-formatter/espa"
)

// GainBias is one TOA gain/bias pair.
type GainBias struct {
	Gain float64
	Bias float64
}

// Classification holds the instrument-family gain/bias vectors extracted
// from a product: reflective bands in band order, thermal bands in thermal
// order, and the panchromatic pair when the family has one.
type Classification struct {
	Reflective []GainBias
	Thermal    []GainBias
	Pan        *GainBias
}

// Classify extracts the gain/bias vectors for the instrument family. It is
// a pure function of its inputs.
//
// The vectors are extracted only when band index 0 carries both a TOA gain
// and bias; otherwise every vector is empty for the whole product. This
// first-band-only gate is deliberate. An unknown instrument yields an empty
// Classification without error. Once the gate passes, a family band index
// that is out of range or missing its gain/bias is an invariant violation.
func Classify(inst espa.Instrument, bands []espa.BandMetadata) (Classification, error) {
	var cls Classification

	if inst == espa.InstrumentUnknown {
		return cls, nil
	}

	// Gate on band index 0 only.
	if len(bands) == 0 || bands[0].TOAGain == nil || bands[0].TOABias == nil {
		return cls, nil
	}

	gainBias := func(i int) (GainBias, error) {
		if i >= len(bands) {
			return GainBias{}, fmt.Errorf("band index %d out of range for %s product with %d bands", i, inst, len(bands))
		}
		b := &bands[i]
		if b.TOAGain == nil || b.TOABias == nil {
			return GainBias{}, fmt.Errorf("band index %d (%s): gain/bias missing after activation", i, b.Name)
		}
		return GainBias{Gain: *b.TOAGain, Bias: *b.TOABias}, nil
	}

	switch inst {
	case espa.InstrumentTM:
		// Bands 1-7; index 5 (band 6) is thermal.
		for i := 0; i < 7; i++ {
			gb, err := gainBias(i)
			if err != nil {
				return Classification{}, err
			}
			if i == 5 {
				cls.Thermal = append(cls.Thermal, gb)
			} else {
				cls.Reflective = append(cls.Reflective, gb)
			}
		}

	case espa.InstrumentETM:
		// Bands 1-5, 61, 62, 7; indices 5 and 6 are thermal. Index 8 is
		// the pan band, handled after the loop.
		for i := 0; i < 8; i++ {
			gb, err := gainBias(i)
			if err != nil {
				return Classification{}, err
			}
			if i == 5 || i == 6 {
				cls.Thermal = append(cls.Thermal, gb)
			} else {
				cls.Reflective = append(cls.Reflective, gb)
			}
		}
		pan, err := gainBias(8)
		if err != nil {
			return Classification{}, err
		}
		cls.Pan = &pan

	case espa.InstrumentOLITIRS:
		// Bands 1-11; indices 9 and 10 (bands 10/11) are thermal, index 7
		// (band 8) is the pan band.
		for i := 0; i < 11; i++ {
			if i == 7 {
				continue
			}
			gb, err := gainBias(i)
			if err != nil {
				return Classification{}, err
			}
			if i == 9 || i == 10 {
				cls.Thermal = append(cls.Thermal, gb)
			} else {
				cls.Reflective = append(cls.Reflective, gb)
			}
		}
		pan, err := gainBias(7)
		if err != nil {
			return Classification{}, err
		}
		cls.Pan = &pan
	}

	// The pan pair is only emitted alongside a non-empty reflective vector.
	if len(cls.Reflective) == 0 {
		cls.Pan = nil
	}
	return cls, nil
}
