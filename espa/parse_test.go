package espa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<espa_metadata version="1.0">
  <global_metadata>
    <data_provider>USGS/EROS</data_provider>
    <satellite>LANDSAT_7</satellite>
    <instrument>ETM</instrument>
    <acquisition_date>2020-07-11</acquisition_date>
    <level1_production_date>2020-07-12T10:21:42Z</level1_production_date>
    <lpgs_metadata_file>LE07_L1TP_MTL.txt</lpgs_metadata_file>
    <solar_angles zenith="42.5" azimuth="127.9" units="degrees"/>
    <wrs system="2" path="45" row="28"/>
    <corner location="UL" latitude="46.5123" longitude="-120.2345"/>
    <corner location="LR" latitude="44.3210" longitude="-117.8765"/>
    <bounding_coordinates>
      <west>-120.2345</west>
      <east>-117.8765</east>
      <north>46.5123</north>
      <south>44.3210</south>
    </bounding_coordinates>
  </global_metadata>
  <bands>
    <band name="sr_band1" data_type="INT16" nlines="7021" nsamps="7931"
          fill_value="-9999" saturate_value="20000" scale_factor="0.0001"
          add_offset="-3333" app_version="LEDAPS_2.2.1">
      <long_name>band 1 surface reflectance</long_name>
      <file_name>LE07_sr_band1.img</file_name>
      <data_units>reflectance</data_units>
      <valid_range min="-2000" max="16000"/>
      <toa_reflectance gain="0.77569" bias="-6.97874"/>
      <production_date>2020-07-13T08:15:00Z</production_date>
    </band>
    <band name="sr_fill_qa" data_type="UINT8" nlines="7021" nsamps="7931"
          fill_value="255" saturate_value="-3333" scale_factor="-3333"
          add_offset="-3333" app_version="undefined">
      <long_name>fill QA</long_name>
      <file_name>LE07_sr_fill_qa.img</file_name>
      <data_units>quality/feature classification</data_units>
      <valid_range min="-3333" max="-3333"/>
      <toa_reflectance gain="-3333.0" bias="-3333.0"/>
      <production_date>2020-07-13T08:15:00Z</production_date>
      <bitmap_description>
        <bit num="0">fill</bit>
        <bit num="1">cloud</bit>
      </bitmap_description>
      <class_values>
        <class num="0">clear</class>
        <class num="255">fill</class>
      </class_values>
    </band>
  </bands>
</espa_metadata>`

func TestParse(t *testing.T) {
	meta, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	g := meta.Global
	assert.Equal(t, "USGS/EROS", g.DataProvider)
	assert.Equal(t, "LANDSAT_7", g.Satellite)
	assert.Equal(t, "ETM", g.Instrument)
	assert.Equal(t, float32(42.5), g.SolarZenith)
	assert.Equal(t, float32(127.9), g.SolarAzimuth)
	assert.Equal(t, int16(2), g.WRSSystem)
	assert.Equal(t, int16(45), g.WRSPath)
	assert.Equal(t, int16(28), g.WRSRow)
	assert.Equal(t, [2]float64{46.5123, -120.2345}, g.ULCorner)
	assert.Equal(t, [2]float64{44.3210, -117.8765}, g.LRCorner)
	assert.Equal(t, -120.2345, g.BoundingCoords.West)

	require.Len(t, meta.Bands, 2)
	b := meta.Bands[0]
	assert.Equal(t, "sr_band1", b.Name)
	assert.Equal(t, Int16, b.DataType)
	assert.Equal(t, 7021, b.NLines)
	assert.Equal(t, 7931, b.NSamps)
	assert.Equal(t, int64(-9999), b.FillValue)
	assert.Equal(t, "band 1 surface reflectance", b.LongName)
	assert.Equal(t, "reflectance", b.DataUnits)
	assert.Equal(t, "LE07_sr_band1.img", b.FileName)

	require.NotNil(t, b.ValidRange)
	assert.Equal(t, [2]int64{-2000, 16000}, *b.ValidRange)
	require.NotNil(t, b.SaturateValue)
	assert.Equal(t, int64(20000), *b.SaturateValue)
	require.NotNil(t, b.ScaleFactor)
	assert.Equal(t, 0.0001, *b.ScaleFactor)
	require.NotNil(t, b.TOAGain)
	assert.Equal(t, 0.77569, *b.TOAGain)
	require.NotNil(t, b.TOABias)
	assert.Equal(t, -6.97874, *b.TOABias)
	require.NotNil(t, b.AppVersion)
	assert.Equal(t, "LEDAPS_2.2.1", *b.AppVersion)
	// add_offset carried the integer fill, so it must be absent
	assert.Nil(t, b.AddOffset)
}

func TestParseSentinelsBecomeNil(t *testing.T) {
	meta, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	qa := meta.Bands[1]
	assert.Nil(t, qa.ValidRange)
	assert.Nil(t, qa.SaturateValue)
	assert.Nil(t, qa.ScaleFactor)
	assert.Nil(t, qa.AddOffset)
	assert.Nil(t, qa.TOAGain)
	assert.Nil(t, qa.TOABias)
	assert.Nil(t, qa.AppVersion)

	assert.Equal(t, []string{"fill", "cloud"}, qa.BitmapDescription)
	assert.Equal(t, []ClassValue{
		{Class: 0, Description: "clear"},
		{Class: 255, Description: "fill"},
	}, qa.ClassValues)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want string
	}{
		{
			name: "malformed XML",
			xml:  "<espa_metadata><bands>",
			want: "decoding metadata XML",
		},
		{
			name: "missing satellite",
			xml: `<espa_metadata><global_metadata>
				<instrument>TM</instrument>
				<acquisition_date>2020-01-01</acquisition_date>
			</global_metadata></espa_metadata>`,
			want: "missing required field satellite",
		},
		{
			name: "invalid data type",
			xml: `<espa_metadata><global_metadata>
				<satellite>LANDSAT_5</satellite>
				<instrument>TM</instrument>
				<acquisition_date>2020-01-01</acquisition_date>
			</global_metadata><bands>
				<band name="b1" data_type="COMPLEX64" nlines="10" nsamps="10">
					<file_name>b1.img</file_name>
				</band>
			</bands></espa_metadata>`,
			want: "invalid data type",
		},
		{
			name: "duplicate band name",
			xml: `<espa_metadata><global_metadata>
				<satellite>LANDSAT_5</satellite>
				<instrument>TM</instrument>
				<acquisition_date>2020-01-01</acquisition_date>
			</global_metadata><bands>
				<band name="b1" data_type="INT16" nlines="10" nsamps="10">
					<file_name>b1.img</file_name>
				</band>
				<band name="b1" data_type="INT16" nlines="10" nsamps="10">
					<file_name>b1b.img</file_name>
				</band>
			</bands></espa_metadata>`,
			want: "duplicate band name",
		},
		{
			name: "non-positive dimensions",
			xml: `<espa_metadata><global_metadata>
				<satellite>LANDSAT_5</satellite>
				<instrument>TM</instrument>
				<acquisition_date>2020-01-01</acquisition_date>
			</global_metadata><bands>
				<band name="b1" data_type="INT16" nlines="0" nsamps="10">
					<file_name>b1.img</file_name>
				</band>
			</bands></espa_metadata>`,
			want: "dimensions must be positive",
		},
		{
			name: "empty file name",
			xml: `<espa_metadata><global_metadata>
				<satellite>LANDSAT_5</satellite>
				<instrument>TM</instrument>
				<acquisition_date>2020-01-01</acquisition_date>
			</global_metadata><bands>
				<band name="b1" data_type="INT16" nlines="10" nsamps="10">
				</band>
			</bands></espa_metadata>`,
			want: "file_name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.xml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFillPredicates(t *testing.T) {
	assert.True(t, IsFloatFill(-3333.0))
	assert.True(t, IsFloatFill(-3333.000001))
	assert.False(t, IsFloatFill(-3333.1))
	assert.False(t, IsFloatFill(0))

	assert.True(t, IsIntFill(-3333))
	assert.False(t, IsIntFill(-3332))
}

func TestResolveInstrument(t *testing.T) {
	tests := []struct {
		in   string
		want Instrument
	}{
		{"TM", InstrumentTM},
		{"ETM", InstrumentETM},
		{"ETM+", InstrumentETM},
		{"OLI_TIRS", InstrumentOLITIRS},
		{"MSS", InstrumentUnknown},
		{"", InstrumentUnknown},
		{"TM2", InstrumentUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveInstrument(tt.in), "input %q", tt.in)
	}
}

func TestDataType(t *testing.T) {
	assert.True(t, Int16.Valid())
	assert.False(t, DataType("COMPLEX64").Valid())

	assert.Equal(t, 1, Uint8.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 0, DataType("bogus").Size())
}

func TestBandLookup(t *testing.T) {
	meta, err := Parse(strings.NewReader(sampleXML))
	require.NoError(t, err)

	b := meta.Band("sr_fill_qa")
	require.NotNil(t, b)
	assert.Equal(t, "sr_fill_qa", b.Name)

	assert.Nil(t, meta.Band("nope"))
}
