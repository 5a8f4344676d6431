// Command espa-format converts a raw-binary satellite product into its
// distribution formats: a legacy multi-SDS HDF container or per-band
// GeoTIFFs.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
