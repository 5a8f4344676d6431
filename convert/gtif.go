package convert

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/meerestier/espa-product-formatter/espa"
	"github.com/meerestier/espa-product-formatter/internal/gdal"
)

// GeoTIFFName composes the output raster name for a band: base + "_" +
// band name + ".tif", with every blank replaced by an underscore.
func GeoTIFFName(basePath, bandName string) string {
	name := basePath + "_" + bandName + ".tif"
	return strings.ReplaceAll(name, " ", "_")
}

// ConvertToGeoTIFF translates every band of the product, in input order,
// into a GeoTIFF named after basePath and the band name. The band's fill
// value becomes the no-data marker and a world-file sidecar is requested.
// A spawn failure or non-zero translator exit aborts the conversion.
func ConvertToGeoTIFF(ctx context.Context, meta *espa.Metadata, basePath string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger

	for i := range meta.Bands {
		b := &meta.Bands[i]
		output := GeoTIFFName(basePath, b.Name)

		log.Info("Converting",
			zap.String("source", b.FileName),
			zap.String("target", output))

		req := gdal.TranslateRequest{
			Input:     b.FileName,
			Output:    output,
			NoData:    b.FillValue,
			WorldFile: true,
			Quiet:     true,
		}
		if err := o.translator.Translate(ctx, req); err != nil {
			return fmt.Errorf("translating band %q: %w", b.Name, err)
		}
	}
	return nil
}
