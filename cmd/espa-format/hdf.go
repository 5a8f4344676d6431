package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meerestier/espa-product-formatter/convert"
	"github.com/meerestier/espa-product-formatter/espa"
)

var (
	hdfXMLPath string
	hdfOutPath string
)

var hdfCmd = &cobra.Command{
	Use:   "hdf",
	Short: "Assemble the legacy multi-SDS HDF container",
	Long: `Reads the product's XML metadata and writes an HDF container whose
datasets reference the raw band files externally, plus an ENVI-style
header sidecar describing the primary band.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := espa.ParseFile(hdfXMLPath)
		if err != nil {
			return fmt.Errorf("reading metadata %s: %w", hdfXMLPath, err)
		}

		logger.Info("assembling HDF container",
			zap.String("xml", hdfXMLPath),
			zap.String("hdf", hdfOutPath),
			zap.Int("bands", len(meta.Bands)))

		if err := convert.ConvertToHDF(meta, hdfOutPath, convert.WithLogger(logger)); err != nil {
			return fmt.Errorf("converting %s: %w", hdfXMLPath, err)
		}
		return nil
	},
}

func init() {
	hdfCmd.Flags().StringVar(&hdfXMLPath, "xml", "", "product XML metadata file")
	hdfCmd.Flags().StringVar(&hdfOutPath, "hdf", "", "output HDF container path")
	_ = hdfCmd.MarkFlagRequired("xml")
	_ = hdfCmd.MarkFlagRequired("hdf")
	rootCmd.AddCommand(hdfCmd)
}
