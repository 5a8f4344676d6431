package convert

import (
	"go.uber.org/zap"

	"github.com/meerestier/espa-product-formatter/internal/gdal"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	translator *gdal.Translator
}

func defaultOptions() *options {
	return &options{
		logger:     zap.NewNop(),
		translator: gdal.New(""),
	}
}

// WithLogger sets the logger for conversion progress. The default is a nop
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTranslator overrides the raster translator used by the GeoTIFF path.
func WithTranslator(t *gdal.Translator) Option {
	return func(o *options) {
		if t != nil {
			o.translator = t
		}
	}
}
