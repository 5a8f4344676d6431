package convert

import (
	"fmt"
	"strings"

	"github.com/meerestier/espa-product-formatter/espa"
)

// MaxDescriptionLen caps the descriptive attribute blocks. A block that
// would exceed the cap fails the conversion; output is never truncated.
const MaxDescriptionLen = 5000

// Versions of the legacy container libraries this writer emulates,
// recorded as global attributes.
const (
	hdfVersion    = "4.2.16"
	hdfeosVersion = "2.20"
)

// Attr is one attribute to be persisted: a name and a typed payload
// (string, int16, int32, float32, float64, or a slice of int32/float64).
type Attr struct {
	Name  string
	Value interface{}
}

// GlobalAttrs builds the ordered global attribute list for a product.
// Order is part of the output contract. Gain/bias attributes are emitted
// only when the corresponding classification vector is populated.
func GlobalAttrs(meta *espa.Metadata, cls Classification) ([]Attr, error) {
	if len(meta.Bands) == 0 {
		return nil, fmt.Errorf("product has no bands")
	}
	g := &meta.Global

	attrs := []Attr{
		{"DataProvider", g.DataProvider},
		{"Satellite", g.Satellite},
		{"Instrument", g.Instrument},
		{"AcquisitionDate", g.AcquisitionDate},
		{"Level1ProductionDate", g.Level1ProductionDate},
		{"LPGSMetadataFile", g.LPGSMetadataFile},
		{"SolarZenith", g.SolarZenith},
		{"SolarAzimuth", g.SolarAzimuth},
		{"WRS_System", g.WRSSystem},
		{"WRS_Path", g.WRSPath},
		{"WRS_Row", g.WRSRow},
	}

	if len(cls.Reflective) > 0 {
		gains := make([]float64, len(cls.Reflective))
		biases := make([]float64, len(cls.Reflective))
		for i, gb := range cls.Reflective {
			gains[i] = gb.Gain
			biases[i] = gb.Bias
		}
		attrs = append(attrs,
			Attr{"ReflGains", gains},
			Attr{"ReflBias", biases})
	}

	if len(cls.Thermal) > 0 {
		gains := make([]float64, len(cls.Thermal))
		biases := make([]float64, len(cls.Thermal))
		for i, gb := range cls.Thermal {
			gains[i] = gb.Gain
			biases[i] = gb.Bias
		}
		attrs = append(attrs,
			Attr{"ThermalGains", gains},
			Attr{"ThermalBias", biases})
	}

	if cls.Pan != nil {
		attrs = append(attrs,
			Attr{"PanGain", cls.Pan.Gain},
			Attr{"PanBias", cls.Pan.Bias})
	}

	attrs = append(attrs,
		Attr{"UpperLeftCornerLatLong", []float64{g.ULCorner[0], g.ULCorner[1]}},
		Attr{"LowerRightCornerLatLong", []float64{g.LRCorner[0], g.LRCorner[1]}},
		Attr{"WestBoundingCoordinate", g.BoundingCoords.West},
		Attr{"EastBoundingCoordinate", g.BoundingCoords.East},
		Attr{"NorthBoundingCoordinate", g.BoundingCoords.North},
		Attr{"SouthBoundingCoordinate", g.BoundingCoords.South},
		Attr{"HDFVersion", hdfVersion},
		Attr{"HDFEOSVersion", hdfeosVersion},
		Attr{"ProductionDate", meta.Bands[0].ProductionDate})

	return attrs, nil
}

// BandAttrs builds the ordered attribute list for one dataset. Optional
// attributes are emitted only when the band carries the field.
func BandAttrs(b *espa.BandMetadata) ([]Attr, error) {
	attrs := []Attr{
		{"long_name", b.LongName},
		{"units", b.DataUnits},
	}

	if b.ValidRange != nil {
		attrs = append(attrs, Attr{"valid_range", []int32{int32(b.ValidRange[0]), int32(b.ValidRange[1])}})
	}
	attrs = append(attrs, Attr{"_FillValue", int32(b.FillValue)})
	if b.SaturateValue != nil {
		attrs = append(attrs, Attr{"_SaturateValue", int32(*b.SaturateValue)})
	}
	if b.ScaleFactor != nil {
		attrs = append(attrs, Attr{"scale_factor", float32(*b.ScaleFactor)})
	}
	if b.AddOffset != nil {
		attrs = append(attrs, Attr{"add_offset", *b.AddOffset})
	}
	if b.CalibratedNT != nil {
		attrs = append(attrs, Attr{"calibrated_nt", float32(*b.CalibratedNT)})
	}

	if len(b.BitmapDescription) > 0 {
		block, err := bitmapDescription(b.BitmapDescription)
		if err != nil {
			return nil, fmt.Errorf("band %q: %w", b.Name, err)
		}
		attrs = append(attrs, Attr{"Bitmap description", block})
	}

	if len(b.ClassValues) > 0 {
		block, err := classDescription(b.ClassValues)
		if err != nil {
			return nil, fmt.Errorf("band %q: %w", b.Name, err)
		}
		attrs = append(attrs, Attr{"Class description", block})
	}

	if b.AppVersion != nil {
		attrs = append(attrs, Attr{"app_version", *b.AppVersion})
	}

	return attrs, nil
}

const bitmapHeader = "\n\tBits are numbered from right to left " +
	"(bit 0 = LSB, bit N = MSB):\n" +
	"\tBit    Description\n"

const classHeader = "\n\tClass  Description\n"

// bitmapDescription renders the bit list as a bounded descriptive block:
// header plus one row per bit index.
func bitmapDescription(bits []string) (string, error) {
	var sb strings.Builder
	sb.WriteString(bitmapHeader)
	for i, desc := range bits {
		row := fmt.Sprintf("\t%d      %s\n", i, desc)
		if sb.Len()+len(row) >= MaxDescriptionLen {
			return "", fmt.Errorf("attribute %q exceeds %d bytes at bit %d", "Bitmap description", MaxDescriptionLen, i)
		}
		sb.WriteString(row)
	}
	return sb.String(), nil
}

// classDescription renders the class list as a bounded descriptive block.
func classDescription(classes []espa.ClassValue) (string, error) {
	var sb strings.Builder
	sb.WriteString(classHeader)
	for _, c := range classes {
		row := fmt.Sprintf("\t%d      %s\n", c.Class, c.Description)
		if sb.Len()+len(row) >= MaxDescriptionLen {
			return "", fmt.Errorf("attribute %q exceeds %d bytes at class %d", "Class description", MaxDescriptionLen, c.Class)
		}
		sb.WriteString(row)
	}
	return sb.String(), nil
}
