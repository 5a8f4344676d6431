package convert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meerestier/espa-product-formatter/espa"
)

// gainBands builds n bands with distinct gain/bias pairs derived from the
// band index.
func gainBands(n int) []espa.BandMetadata {
	bands := make([]espa.BandMetadata, n)
	for i := range bands {
		gain := 0.5 * float64(i+1)
		bias := -1.0 * float64(i+1)
		bands[i] = espa.BandMetadata{
			Name:    fmt.Sprintf("b%d", i+1),
			TOAGain: &gain,
			TOABias: &bias,
		}
	}
	return bands
}

func TestClassifyETM(t *testing.T) {
	bands := gainBands(9)
	cls, err := Classify(espa.InstrumentETM, bands)
	require.NoError(t, err)

	// Bands 1-5 and 7 reflective, 61/62 thermal, 8 pan.
	require.Len(t, cls.Reflective, 6)
	require.Len(t, cls.Thermal, 2)
	require.NotNil(t, cls.Pan)

	assert.Equal(t, GainBias{Gain: 0.5, Bias: -1}, cls.Reflective[0])
	assert.Equal(t, GainBias{Gain: 4.0, Bias: -8}, cls.Reflective[5])
	assert.Equal(t, GainBias{Gain: 3.0, Bias: -6}, cls.Thermal[0])
	assert.Equal(t, GainBias{Gain: 3.5, Bias: -7}, cls.Thermal[1])
	assert.Equal(t, GainBias{Gain: 4.5, Bias: -9}, *cls.Pan)
}

func TestClassifyTM(t *testing.T) {
	bands := gainBands(7)
	cls, err := Classify(espa.InstrumentTM, bands)
	require.NoError(t, err)

	require.Len(t, cls.Reflective, 6)
	require.Len(t, cls.Thermal, 1)
	assert.Nil(t, cls.Pan)

	// Index 5 (band 6) is the thermal band.
	assert.Equal(t, GainBias{Gain: 3.0, Bias: -6}, cls.Thermal[0])
	assert.Equal(t, GainBias{Gain: 3.5, Bias: -7}, cls.Reflective[5])
}

func TestClassifyOLITIRS(t *testing.T) {
	bands := gainBands(11)
	cls, err := Classify(espa.InstrumentOLITIRS, bands)
	require.NoError(t, err)

	require.Len(t, cls.Reflective, 8)
	require.Len(t, cls.Thermal, 2)
	require.NotNil(t, cls.Pan)

	// Index 7 (band 8) is the pan band, 9/10 (bands 10/11) thermal.
	assert.Equal(t, GainBias{Gain: 4.0, Bias: -8}, *cls.Pan)
	assert.Equal(t, GainBias{Gain: 5.0, Bias: -10}, cls.Thermal[0])
	assert.Equal(t, GainBias{Gain: 5.5, Bias: -11}, cls.Thermal[1])
	// Reflective skips pan and thermal: last reflective is index 8 (band 9).
	assert.Equal(t, GainBias{Gain: 4.5, Bias: -9}, cls.Reflective[7])
}

func TestClassifyGateOnFirstBand(t *testing.T) {
	// Band 0 has no gain/bias: every vector stays empty even though the
	// other bands carry values.
	bands := gainBands(9)
	bands[0].TOAGain = nil
	bands[0].TOABias = nil

	cls, err := Classify(espa.InstrumentETM, bands)
	require.NoError(t, err)
	assert.Empty(t, cls.Reflective)
	assert.Empty(t, cls.Thermal)
	assert.Nil(t, cls.Pan)
}

func TestClassifyUnknownInstrument(t *testing.T) {
	cls, err := Classify(espa.InstrumentUnknown, gainBands(9))
	require.NoError(t, err)
	assert.Empty(t, cls.Reflective)
	assert.Empty(t, cls.Thermal)
	assert.Nil(t, cls.Pan)
}

func TestClassifyInvariantViolations(t *testing.T) {
	t.Run("band missing gain after gate", func(t *testing.T) {
		bands := gainBands(9)
		bands[3].TOAGain = nil
		_, err := Classify(espa.InstrumentETM, bands)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "band index 3")
	})

	t.Run("too few bands", func(t *testing.T) {
		_, err := Classify(espa.InstrumentETM, gainBands(5))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestClassifyPure(t *testing.T) {
	bands := gainBands(9)
	a, err := Classify(espa.InstrumentETM, bands)
	require.NoError(t, err)
	b, err := Classify(espa.InstrumentETM, bands)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
