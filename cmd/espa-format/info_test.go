package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/meerestier/espa-product-formatter/espa"
)

func TestFootprintFeature(t *testing.T) {
	meta := &espa.Metadata{
		Global: espa.GlobalMetadata{
			Satellite:       "LANDSAT_7",
			Instrument:      "ETM",
			AcquisitionDate: "2020-07-11",
			BoundingCoords:  espa.BoundingCoords{West: -120.2, East: -117.8, North: 46.5, South: 44.3},
		},
		Bands: []espa.BandMetadata{{Name: "sr_band1"}, {Name: "sr_band2"}},
	}

	feature := footprintFeature(meta)

	polygon, ok := feature.Geometry.(*geojson.Polygon)
	require.True(t, ok)
	require.Len(t, polygon.Coordinates, 1)

	ring := polygon.Coordinates[0]
	require.Len(t, ring, 5)
	assert.Equal(t, []float64{-120.2, 46.5}, ring[0])
	assert.Equal(t, ring[0], ring[4], "ring must close on its first vertex")

	assert.Equal(t, "LANDSAT_7", feature.Properties["satellite"])
	assert.Equal(t, "ETM", feature.Properties["instrument"])
	assert.Equal(t, "2020-07-11", feature.Properties["acquisition_date"])
	assert.Equal(t, 2, feature.Properties["band_count"])

	require.Len(t, feature.Bbox, 4)
	assert.Equal(t, geojson.BoundingBox{-120.2, 44.3, -117.8, 46.5}, feature.Bbox)
}
