// Package envi writes ENVI-style text headers describing a raster file.
package envi

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meerestier/espa-product-formatter/espa"
)

// FileTypeHDF is the file type descriptor for headers that accompany a
// scientific-data container.
const FileTypeHDF = "HDF scientific data"

// Header holds the fields of an ENVI header file.
type Header struct {
	Description  string
	Samples      int
	Lines        int
	Bands        int
	HeaderOffset int
	FileType     string
	DataType     int // ENVI numeric data type code
	Interleave   string
	ByteOrder    int
	BandNames    []string
}

// dataTypeCode maps the model's pixel types to ENVI numeric codes.
func dataTypeCode(dt espa.DataType) (int, error) {
	switch dt {
	case espa.Int8, espa.Uint8:
		return 1, nil
	case espa.Int16:
		return 2, nil
	case espa.Uint16:
		return 12, nil
	case espa.Int32:
		return 3, nil
	case espa.Uint32:
		return 13, nil
	case espa.Float32:
		return 4, nil
	case espa.Float64:
		return 5, nil
	}
	return 0, fmt.Errorf("no ENVI data type for %q", dt)
}

// FromBand builds a single-band header from the band metadata.
func FromBand(b *espa.BandMetadata) (*Header, error) {
	code, err := dataTypeCode(b.DataType)
	if err != nil {
		return nil, fmt.Errorf("band %q: %w", b.Name, err)
	}
	return &Header{
		Description:  b.LongName,
		Samples:      b.NSamps,
		Lines:        b.NLines,
		Bands:        1,
		HeaderOffset: 0,
		FileType:     FileTypeHDF,
		DataType:     code,
		Interleave:   "bsq",
		ByteOrder:    0,
		BandNames:    []string{b.Name},
	}, nil
}

// Write serializes the header in the fixed ENVI key-value text layout.
func (h *Header) Write(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("ENVI\n")
	fmt.Fprintf(&sb, "description = {%s}\n", h.Description)
	fmt.Fprintf(&sb, "samples = %d\n", h.Samples)
	fmt.Fprintf(&sb, "lines = %d\n", h.Lines)
	fmt.Fprintf(&sb, "bands = %d\n", h.Bands)
	fmt.Fprintf(&sb, "header offset = %d\n", h.HeaderOffset)
	fmt.Fprintf(&sb, "file type = %s\n", h.FileType)
	fmt.Fprintf(&sb, "data type = %d\n", h.DataType)
	fmt.Fprintf(&sb, "interleave = %s\n", h.Interleave)
	fmt.Fprintf(&sb, "byte order = %d\n", h.ByteOrder)
	if len(h.BandNames) > 0 {
		fmt.Fprintf(&sb, "band names = {%s}\n", strings.Join(h.BandNames, ", "))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing ENVI header: %w", err)
	}
	return nil
}

// WriteFile writes the header to the given path, truncating any existing
// file.
func (h *Header) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ENVI header %s: %w", path, err)
	}
	if err := h.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
