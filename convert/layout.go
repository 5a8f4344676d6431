// Package convert implements the metadata-driven format-mapping engine:
// band layout resolution, instrument band classification, attribute
// emission, and assembly of the legacy container and per-band GeoTIFF
// outputs.
package convert

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/meerestier/espa-product-formatter/espa"
)

//go:embed hdf_layout.yaml
var hdfLayoutYAML []byte

// LayoutEntry maps one source band name to a target dataset name. Missing
// required entries fail a conversion; missing optional entries are skipped.
type LayoutEntry struct {
	Source   string `yaml:"source"`
	Target   string `yaml:"target"`
	Required bool   `yaml:"required"`
}

// Layout is an ordered band mapping table. Output order is table order.
type Layout []LayoutEntry

// HDFLayout is the legacy container's band table, loaded from the embedded
// configuration at init.
var HDFLayout Layout

func init() {
	var err error
	HDFLayout, err = LoadLayout(bytes.NewReader(hdfLayoutYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded layout table is malformed: %v", err))
	}
}

// LoadLayout reads a layout table from YAML. Exported so alternate tables
// can be supplied in place of the embedded one.
func LoadLayout(r io.Reader) (Layout, error) {
	var layout Layout
	if err := yaml.NewDecoder(r).Decode(&layout); err != nil {
		return nil, fmt.Errorf("decoding layout table: %w", err)
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("layout table is empty")
	}
	for i, e := range layout {
		if e.Source == "" || e.Target == "" {
			return nil, fmt.Errorf("layout entry %d: source and target must be non-empty", i)
		}
	}
	return layout, nil
}

// ResolvedSlot is one layout row after resolution: either matched to a band
// or recorded as missing.
type ResolvedSlot struct {
	Source   string
	Target   string
	Required bool
	Band     *espa.BandMetadata // nil when the source band is absent
}

// Matched reports whether the slot resolved to a band.
func (s ResolvedSlot) Matched() bool { return s.Band != nil }

// ResolveLayout matches each table entry against the product bands by exact
// name, first match wins. The result is in table order, never input order.
// A missing required entry fails the whole resolution.
func ResolveLayout(layout Layout, bands []espa.BandMetadata) ([]ResolvedSlot, error) {
	slots := make([]ResolvedSlot, 0, len(layout))
	for _, entry := range layout {
		slot := ResolvedSlot{
			Source:   entry.Source,
			Target:   entry.Target,
			Required: entry.Required,
		}
		for i := range bands {
			if bands[i].Name == entry.Source {
				slot.Band = &bands[i]
				break
			}
		}
		if slot.Band == nil && entry.Required {
			return nil, fmt.Errorf("required band %q not found in product", entry.Source)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
