// Package espa holds the generic metadata model for a multi-band satellite
// product: one global metadata block plus an ordered list of band
// descriptions, each pointing at a flat raw-binary pixel file.
//
// The model is produced by the XML reader in this package. Optional fields
// are nil pointers; the fill sentinels of the interchange format never
// survive past the parse boundary.
package espa

import (
	"fmt"
	"math"
)

// Fill sentinels used by the interchange format for absent values. Only the
// parser compares against these; the model stores absent values as nil.
const (
	IntMetaFill    = -3333
	FloatMetaFill  = -3333.0
	StringMetaFill = "undefined"

	// Epsilon is the tolerance for float fill comparison.
	Epsilon = 1e-5
)

// IsFloatFill reports whether v is the float fill sentinel, within Epsilon.
// Float sentinels are never compared with ==.
func IsFloatFill(v float64) bool {
	return math.Abs(v-FloatMetaFill) < Epsilon
}

// IsIntFill reports whether v is the integer fill sentinel.
func IsIntFill(v int64) bool {
	return v == IntMetaFill
}

// DataType is the pixel element type of a band, using the interchange
// format's vocabulary.
type DataType string

const (
	Int8    DataType = "INT8"
	Uint8   DataType = "UINT8"
	Int16   DataType = "INT16"
	Uint16  DataType = "UINT16"
	Int32   DataType = "INT32"
	Uint32  DataType = "UINT32"
	Float32 DataType = "FLOAT32"
	Float64 DataType = "FLOAT64"
)

// Valid reports whether the data type is one of the closed set.
func (d DataType) Valid() bool {
	switch d {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Float32, Float64:
		return true
	}
	return false
}

// Size returns the bytes per pixel, or 0 for an invalid type.
func (d DataType) Size() int {
	switch d {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Float64:
		return 8
	}
	return 0
}

// Instrument is the closed set of instrument families the band classifier
// understands. Free-form instrument strings are resolved once at the
// boundary with ResolveInstrument.
type Instrument int

const (
	InstrumentUnknown Instrument = iota
	InstrumentTM
	InstrumentETM
	InstrumentOLITIRS
)

func (i Instrument) String() string {
	switch i {
	case InstrumentTM:
		return "TM"
	case InstrumentETM:
		return "ETM"
	case InstrumentOLITIRS:
		return "OLI_TIRS"
	}
	return "unknown"
}

// ResolveInstrument maps the free-form global instrument string to the
// closed enum: exact "TM", prefix "ETM", exact "OLI_TIRS". Anything else is
// InstrumentUnknown, which is a valid value, not an error.
func ResolveInstrument(s string) Instrument {
	switch {
	case s == "TM":
		return InstrumentTM
	case len(s) >= 3 && s[:3] == "ETM":
		return InstrumentETM
	case s == "OLI_TIRS":
		return InstrumentOLITIRS
	}
	return InstrumentUnknown
}

// Metadata is the parsed product: global metadata plus bands in input
// order. The parser preserves band order verbatim.
type Metadata struct {
	Global GlobalMetadata
	Bands  []BandMetadata
}

// BoundingCoords are the product's geographic bounding coordinates in
// decimal degrees.
type BoundingCoords struct {
	West  float64
	East  float64
	North float64
	South float64
}

// GlobalMetadata describes the product as a whole.
type GlobalMetadata struct {
	DataProvider         string
	Satellite            string
	Instrument           string // free-form; resolve with ResolveInstrument
	AcquisitionDate      string
	Level1ProductionDate string
	LPGSMetadataFile     string
	SolarZenith          float32
	SolarAzimuth         float32
	WRSSystem            int16
	WRSPath              int16
	WRSRow               int16
	BoundingCoords       BoundingCoords
	ULCorner             [2]float64 // lat, long
	LRCorner             [2]float64 // lat, long
}

// ClassValue is one entry of a band's class description list.
type ClassValue struct {
	Class       int64
	Description string
}

// BandMetadata describes one band. FileName points at the flat raw-binary
// pixel file; converters reference it externally and never copy pixels.
// Optional fields are nil when the interchange document carried the fill
// sentinel.
type BandMetadata struct {
	Name           string
	FileName       string
	DataType       DataType
	NLines         int
	NSamps         int
	FillValue      int64
	LongName       string
	DataUnits      string
	ProductionDate string

	ValidRange    *[2]int64
	SaturateValue *int64
	ScaleFactor   *float64
	AddOffset     *float64
	CalibratedNT  *float64
	TOAGain       *float64
	TOABias       *float64
	AppVersion    *string

	BitmapDescription []string // index = bit number
	ClassValues       []ClassValue
}

// Band returns the band with the given name, or nil if absent.
func (m *Metadata) Band(name string) *BandMetadata {
	for i := range m.Bands {
		if m.Bands[i].Name == name {
			return &m.Bands[i]
		}
	}
	return nil
}

// Validate checks the model invariants the parser enforces: unique band
// names, positive dimensions, non-empty file names, valid data types.
func (m *Metadata) Validate() error {
	seen := make(map[string]bool, len(m.Bands))
	for i := range m.Bands {
		b := &m.Bands[i]
		if b.Name == "" {
			return fmt.Errorf("band %d: name is empty", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("band %q: duplicate band name", b.Name)
		}
		seen[b.Name] = true
		if b.FileName == "" {
			return fmt.Errorf("band %q: file_name is empty", b.Name)
		}
		if !b.DataType.Valid() {
			return fmt.Errorf("band %q: invalid data type %q", b.Name, b.DataType)
		}
		if b.NLines <= 0 || b.NSamps <= 0 {
			return fmt.Errorf("band %q: dimensions must be positive, got %dx%d", b.Name, b.NLines, b.NSamps)
		}
	}
	return nil
}
