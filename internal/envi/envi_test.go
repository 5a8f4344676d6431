package envi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meerestier/espa-product-formatter/espa"
)

func TestFromBand(t *testing.T) {
	b := &espa.BandMetadata{
		Name:     "band1",
		LongName: "band 1 surface reflectance",
		DataType: espa.Int16,
		NLines:   7021,
		NSamps:   7931,
	}

	h, err := FromBand(b)
	require.NoError(t, err)

	assert.Equal(t, 7931, h.Samples)
	assert.Equal(t, 7021, h.Lines)
	assert.Equal(t, 1, h.Bands)
	assert.Equal(t, 0, h.HeaderOffset)
	assert.Equal(t, FileTypeHDF, h.FileType)
	assert.Equal(t, 2, h.DataType)
	assert.Equal(t, "bsq", h.Interleave)
	assert.Equal(t, 0, h.ByteOrder)
	assert.Equal(t, []string{"band1"}, h.BandNames)
}

func TestDataTypeCodes(t *testing.T) {
	tests := []struct {
		dt   espa.DataType
		code int
	}{
		{espa.Int8, 1},
		{espa.Uint8, 1},
		{espa.Int16, 2},
		{espa.Uint16, 12},
		{espa.Int32, 3},
		{espa.Uint32, 13},
		{espa.Float32, 4},
		{espa.Float64, 5},
	}
	for _, tt := range tests {
		code, err := dataTypeCode(tt.dt)
		require.NoError(t, err, "type %s", tt.dt)
		assert.Equal(t, tt.code, code, "type %s", tt.dt)
	}

	_, err := dataTypeCode(espa.DataType("bogus"))
	assert.Error(t, err)
}

func TestWrite(t *testing.T) {
	h := &Header{
		Description:  "band 1 surface reflectance",
		Samples:      100,
		Lines:        200,
		Bands:        1,
		HeaderOffset: 0,
		FileType:     FileTypeHDF,
		DataType:     2,
		Interleave:   "bsq",
		ByteOrder:    0,
		BandNames:    []string{"band1"},
	}

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf))

	want := `ENVI
description = {band 1 surface reflectance}
samples = 100
lines = 200
bands = 1
header offset = 0
file type = HDF scientific data
data type = 2
interleave = bsq
byte order = 0
band names = {band1}
`
	assert.Equal(t, want, buf.String())
}
