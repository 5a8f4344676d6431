package espa

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Raw document structure of the interchange XML. Optional numeric fields
// are pointers so a missing attribute and a fill-sentinel attribute both
// collapse to nil in the model.
type xmlDoc struct {
	XMLName xml.Name  `xml:"espa_metadata"`
	Global  xmlGlobal `xml:"global_metadata"`
	Bands   []xmlBand `xml:"bands>band"`
}

type xmlGlobal struct {
	DataProvider         string      `xml:"data_provider"`
	Satellite            string      `xml:"satellite"`
	Instrument           string      `xml:"instrument"`
	AcquisitionDate      string      `xml:"acquisition_date"`
	Level1ProductionDate string      `xml:"level1_production_date"`
	LPGSMetadataFile     string      `xml:"lpgs_metadata_file"`
	SolarAngles          xmlSolar    `xml:"solar_angles"`
	WRS                  xmlWRS      `xml:"wrs"`
	Corners              []xmlCorner `xml:"corner"`
	Bounding             xmlBounds   `xml:"bounding_coordinates"`
}

type xmlSolar struct {
	Zenith  float32 `xml:"zenith,attr"`
	Azimuth float32 `xml:"azimuth,attr"`
}

type xmlWRS struct {
	System int16 `xml:"system,attr"`
	Path   int16 `xml:"path,attr"`
	Row    int16 `xml:"row,attr"`
}

type xmlCorner struct {
	Location  string  `xml:"location,attr"`
	Latitude  float64 `xml:"latitude,attr"`
	Longitude float64 `xml:"longitude,attr"`
}

type xmlBounds struct {
	West  float64 `xml:"west"`
	East  float64 `xml:"east"`
	North float64 `xml:"north"`
	South float64 `xml:"south"`
}

type xmlBand struct {
	Name          string   `xml:"name,attr"`
	DataType      string   `xml:"data_type,attr"`
	NLines        int      `xml:"nlines,attr"`
	NSamps        int      `xml:"nsamps,attr"`
	FillValue     int64    `xml:"fill_value,attr"`
	SaturateValue *int64   `xml:"saturate_value,attr"`
	ScaleFactor   *float64 `xml:"scale_factor,attr"`
	AddOffset     *float64 `xml:"add_offset,attr"`
	AppVersion    *string  `xml:"app_version,attr"`

	FileName       string     `xml:"file_name"`
	LongName       string     `xml:"long_name"`
	DataUnits      string     `xml:"data_units"`
	ProductionDate string     `xml:"production_date"`
	ValidRange     *xmlRange  `xml:"valid_range"`
	CalibratedNT   *float64   `xml:"calibrated_nt"`
	TOA            *xmlTOA    `xml:"toa_reflectance"`
	Bits           []xmlBit   `xml:"bitmap_description>bit"`
	Classes        []xmlClass `xml:"class_values>class"`
}

type xmlRange struct {
	Min int64 `xml:"min,attr"`
	Max int64 `xml:"max,attr"`
}

type xmlTOA struct {
	Gain float64 `xml:"gain,attr"`
	Bias float64 `xml:"bias,attr"`
}

type xmlBit struct {
	Num  int    `xml:"num,attr"`
	Desc string `xml:",chardata"`
}

type xmlClass struct {
	Num  int64  `xml:"num,attr"`
	Desc string `xml:",chardata"`
}

// ParseFile reads and parses an interchange metadata document from disk.
func ParseFile(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata file: %w", err)
	}
	defer f.Close()

	meta, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return meta, nil
}

// Parse decodes an interchange metadata document. Sentinel values are
// converted to nil optionals here; the returned model never carries them.
func Parse(r io.Reader) (*Metadata, error) {
	var doc xmlDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding metadata XML: %w", err)
	}

	meta := &Metadata{
		Global: convertGlobal(&doc.Global),
	}
	if err := validateGlobal(&meta.Global); err != nil {
		return nil, err
	}

	meta.Bands = make([]BandMetadata, 0, len(doc.Bands))
	for i := range doc.Bands {
		band, err := convertBand(&doc.Bands[i])
		if err != nil {
			return nil, err
		}
		meta.Bands = append(meta.Bands, band)
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return meta, nil
}

func convertGlobal(g *xmlGlobal) GlobalMetadata {
	out := GlobalMetadata{
		DataProvider:         g.DataProvider,
		Satellite:            g.Satellite,
		Instrument:           g.Instrument,
		AcquisitionDate:      g.AcquisitionDate,
		Level1ProductionDate: g.Level1ProductionDate,
		LPGSMetadataFile:     g.LPGSMetadataFile,
		SolarZenith:          g.SolarAngles.Zenith,
		SolarAzimuth:         g.SolarAngles.Azimuth,
		WRSSystem:            g.WRS.System,
		WRSPath:              g.WRS.Path,
		WRSRow:               g.WRS.Row,
		BoundingCoords: BoundingCoords{
			West:  g.Bounding.West,
			East:  g.Bounding.East,
			North: g.Bounding.North,
			South: g.Bounding.South,
		},
	}
	for _, c := range g.Corners {
		switch c.Location {
		case "UL":
			out.ULCorner = [2]float64{c.Latitude, c.Longitude}
		case "LR":
			out.LRCorner = [2]float64{c.Latitude, c.Longitude}
		}
	}
	return out
}

func validateGlobal(g *GlobalMetadata) error {
	required := []struct {
		name  string
		value string
	}{
		{"satellite", g.Satellite},
		{"instrument", g.Instrument},
		{"acquisition_date", g.AcquisitionDate},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("global metadata: missing required field %s", f.name)
		}
	}
	return nil
}

func convertBand(b *xmlBand) (BandMetadata, error) {
	out := BandMetadata{
		Name:           b.Name,
		FileName:       b.FileName,
		DataType:       DataType(b.DataType),
		NLines:         b.NLines,
		NSamps:         b.NSamps,
		FillValue:      b.FillValue,
		LongName:       b.LongName,
		DataUnits:      b.DataUnits,
		ProductionDate: b.ProductionDate,
	}

	if !out.DataType.Valid() {
		return out, fmt.Errorf("band %q: invalid data type %q", b.Name, b.DataType)
	}

	// Sentinel boundary: absent attributes and fill-carrying attributes
	// both become nil in the model.
	if b.ValidRange != nil && !IsIntFill(b.ValidRange.Min) && !IsIntFill(b.ValidRange.Max) {
		out.ValidRange = &[2]int64{b.ValidRange.Min, b.ValidRange.Max}
	}
	if b.SaturateValue != nil && !IsIntFill(*b.SaturateValue) {
		out.SaturateValue = b.SaturateValue
	}
	// Scale factor and add offset are populated from integer-fill defaults
	// by the interchange writer, so they compare against the integer fill.
	if b.ScaleFactor != nil && *b.ScaleFactor != IntMetaFill {
		out.ScaleFactor = b.ScaleFactor
	}
	if b.AddOffset != nil && *b.AddOffset != IntMetaFill {
		out.AddOffset = b.AddOffset
	}
	if b.CalibratedNT != nil && !IsFloatFill(*b.CalibratedNT) {
		out.CalibratedNT = b.CalibratedNT
	}
	if b.TOA != nil {
		if !IsFloatFill(b.TOA.Gain) {
			gain := b.TOA.Gain
			out.TOAGain = &gain
		}
		if !IsFloatFill(b.TOA.Bias) {
			bias := b.TOA.Bias
			out.TOABias = &bias
		}
	}
	if b.AppVersion != nil && *b.AppVersion != StringMetaFill {
		out.AppVersion = b.AppVersion
	}

	if len(b.Bits) > 0 {
		maxBit := 0
		for _, bit := range b.Bits {
			if bit.Num < 0 {
				return out, fmt.Errorf("band %q: negative bit number %d", b.Name, bit.Num)
			}
			if bit.Num > maxBit {
				maxBit = bit.Num
			}
		}
		out.BitmapDescription = make([]string, maxBit+1)
		for _, bit := range b.Bits {
			out.BitmapDescription[bit.Num] = bit.Desc
		}
	}

	for _, c := range b.Classes {
		out.ClassValues = append(out.ClassValues, ClassValue{Class: c.Num, Description: c.Desc})
	}

	return out, nil
}
