// Package gdal runs the external gdal_translate process to produce
// GeoTIFF rasters.
package gdal

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
)

// DefaultBinary is the translator executable resolved from PATH when no
// override is configured.
const DefaultBinary = "gdal_translate"

// Translator invokes gdal_translate.
type Translator struct {
	binary string
}

// New returns a Translator using the given binary path, or DefaultBinary
// when empty.
func New(binary string) *Translator {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Translator{binary: binary}
}

// TranslateRequest describes one raster translation.
type TranslateRequest struct {
	Input     string
	Output    string
	NoData    int64 // fill value recorded as the no-data marker
	WorldFile bool  // emit a TFW world-file sidecar
	Quiet     bool
}

// Args returns the argument vector for the request, without the binary.
func (r TranslateRequest) Args() []string {
	args := []string{"-of", "Gtiff", "-a_nodata", strconv.FormatInt(r.NoData, 10)}
	if r.WorldFile {
		args = append(args, "-co", "TFW=YES")
	}
	if r.Quiet {
		args = append(args, "-q")
	}
	return append(args, r.Input, r.Output)
}

// Translate runs the translator. A spawn failure or non-zero exit is an
// error carrying the captured stderr.
func (t *Translator) Translate(ctx context.Context, req TranslateRequest) error {
	cmd := exec.CommandContext(ctx, t.binary, req.Args()...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("%s %s: %w: %s", t.binary, req.Input, err, stderr.String())
		}
		return fmt.Errorf("%s %s: %w", t.binary, req.Input, err)
	}
	return nil
}
