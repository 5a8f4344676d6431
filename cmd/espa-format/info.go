package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/venicegeo/geojson-go/geojson"

	"github.com/meerestier/espa-product-formatter/espa"
)

var infoXMLPath string

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize a product and print its GeoJSON footprint",
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := espa.ParseFile(infoXMLPath)
		if err != nil {
			return fmt.Errorf("reading metadata %s: %w", infoXMLPath, err)
		}

		out := cmd.OutOrStdout()
		g := &meta.Global
		fmt.Fprintf(out, "Satellite:        %s\n", g.Satellite)
		fmt.Fprintf(out, "Instrument:       %s\n", g.Instrument)
		fmt.Fprintf(out, "Acquisition date: %s\n", g.AcquisitionDate)
		fmt.Fprintf(out, "WRS path/row:     %d/%d\n", g.WRSPath, g.WRSRow)
		fmt.Fprintf(out, "Bands:            %d\n", len(meta.Bands))
		for i := range meta.Bands {
			b := &meta.Bands[i]
			fmt.Fprintf(out, "  %-24s %-8s %dx%d  %s\n",
				b.Name, b.DataType, b.NLines, b.NSamps, b.FileName)
		}

		feature := footprintFeature(meta)
		raw, err := json.MarshalIndent(feature, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding footprint: %w", err)
		}
		fmt.Fprintf(out, "\n%s\n", raw)
		return nil
	},
}

// footprintFeature builds a GeoJSON Feature whose geometry is the product's
// bounding-coordinate ring, closed back on its first vertex.
func footprintFeature(meta *espa.Metadata) *geojson.Feature {
	bc := meta.Global.BoundingCoords
	ring := [][]float64{
		{bc.West, bc.North},
		{bc.East, bc.North},
		{bc.East, bc.South},
		{bc.West, bc.South},
		{bc.West, bc.North},
	}
	polygon := geojson.NewPolygon([][][]float64{ring})

	feature := geojson.NewFeature(polygon, nil, map[string]interface{}{
		"satellite":        meta.Global.Satellite,
		"instrument":       meta.Global.Instrument,
		"acquisition_date": meta.Global.AcquisitionDate,
		"band_count":       len(meta.Bands),
	})
	feature.Bbox = feature.ForceBbox()
	return feature
}

func init() {
	infoCmd.Flags().StringVar(&infoXMLPath, "xml", "", "product XML metadata file")
	_ = infoCmd.MarkFlagRequired("xml")
	rootCmd.AddCommand(infoCmd)
}
