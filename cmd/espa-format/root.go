package main

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// config holds the environment overrides.
type config struct {
	GDALTranslate string `env:"ESPA_GDAL_TRANSLATE" envDefault:"gdal_translate"`
	LogLevel      string `env:"ESPA_LOG_LEVEL" envDefault:"info"`
}

var (
	verbose bool

	cfg    config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "espa-format",
	Short: "Format a satellite product for distribution",
	Long: `espa-format reads a product's XML metadata and converts the
raw-binary band files it describes into a distribution format: a legacy
multi-SDS HDF container with external band references, or one GeoTIFF
per band.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := env.Parse(&cfg); err != nil {
			return fmt.Errorf("parsing environment: %w", err)
		}

		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("parsing ESPA_LOG_LEVEL: %w", err)
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logger = logger.With(zap.String("run_id", uuid.NewString()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
