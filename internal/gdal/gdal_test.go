package gdal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	req := TranslateRequest{
		Input:     "LE07_sr_band1.img",
		Output:    "LE07_sr_band1.tif",
		NoData:    -9999,
		WorldFile: true,
		Quiet:     true,
	}

	want := []string{
		"-of", "Gtiff",
		"-a_nodata", "-9999",
		"-co", "TFW=YES",
		"-q",
		"LE07_sr_band1.img", "LE07_sr_band1.tif",
	}
	assert.Equal(t, want, req.Args())
}

func TestArgsMinimal(t *testing.T) {
	req := TranslateRequest{Input: "in.img", Output: "out.tif", NoData: 0}
	assert.Equal(t, []string{"-of", "Gtiff", "-a_nodata", "0", "in.img", "out.tif"}, req.Args())
}

func TestNewDefaultBinary(t *testing.T) {
	assert.Equal(t, DefaultBinary, New("").binary)
	assert.Equal(t, "/opt/gdal/bin/gdal_translate", New("/opt/gdal/bin/gdal_translate").binary)
}

func TestTranslateSpawnFailure(t *testing.T) {
	tr := New("/nonexistent/gdal_translate")
	err := tr.Translate(context.Background(), TranslateRequest{Input: "in.img", Output: "out.tif"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in.img")
}

func TestTranslateNonZeroExit(t *testing.T) {
	// "false" exits non-zero without touching its arguments.
	tr := New("false")
	err := tr.Translate(context.Background(), TranslateRequest{Input: "in.img", Output: "out.tif"})
	require.Error(t, err)
}
