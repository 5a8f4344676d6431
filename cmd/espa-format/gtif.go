package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meerestier/espa-product-formatter/convert"
	"github.com/meerestier/espa-product-formatter/espa"
	"github.com/meerestier/espa-product-formatter/internal/gdal"
)

var (
	gtifXMLPath  string
	gtifBasePath string
)

var gtifCmd = &cobra.Command{
	Use:   "gtif",
	Short: "Translate every band to a GeoTIFF",
	Long: `Reads the product's XML metadata and runs gdal_translate once per
band, producing <base>_<band>.tif rasters with the band's fill value as
the no-data marker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := espa.ParseFile(gtifXMLPath)
		if err != nil {
			return fmt.Errorf("reading metadata %s: %w", gtifXMLPath, err)
		}

		logger.Info("translating bands to GeoTIFF",
			zap.String("xml", gtifXMLPath),
			zap.String("base", gtifBasePath),
			zap.String("translator", cfg.GDALTranslate),
			zap.Int("bands", len(meta.Bands)))

		err = convert.ConvertToGeoTIFF(cmd.Context(), meta, gtifBasePath,
			convert.WithLogger(logger),
			convert.WithTranslator(gdal.New(cfg.GDALTranslate)))
		if err != nil {
			return fmt.Errorf("converting %s: %w", gtifXMLPath, err)
		}
		return nil
	},
}

func init() {
	gtifCmd.Flags().StringVar(&gtifXMLPath, "xml", "", "product XML metadata file")
	gtifCmd.Flags().StringVar(&gtifBasePath, "gtif", "", "output base path for the per-band rasters")
	_ = gtifCmd.MarkFlagRequired("xml")
	_ = gtifCmd.MarkFlagRequired("gtif")
	rootCmd.AddCommand(gtifCmd)
}
