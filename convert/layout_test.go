package convert

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meerestier/espa-product-formatter/espa"
)

func TestEmbeddedLayout(t *testing.T) {
	require.Len(t, HDFLayout, 17)

	assert.Equal(t, LayoutEntry{Source: "sr_band1", Target: "band1", Required: true}, HDFLayout[0])
	assert.Equal(t, LayoutEntry{Source: "toa_band6_qa", Target: "band6_fill_QA", Required: true}, HDFLayout[15])
	assert.Equal(t, LayoutEntry{Source: "fmask", Target: "fmask_band", Required: false}, HDFLayout[16])

	// Only the last row is optional.
	for _, e := range HDFLayout[:16] {
		assert.True(t, e.Required, "entry %s", e.Source)
	}
}

func TestLoadLayout(t *testing.T) {
	yaml := `
- {source: a, target: x, required: true}
- {source: b, target: y, required: false}
`
	layout, err := LoadLayout(strings.NewReader(yaml))
	require.NoError(t, err)

	want := Layout{
		{Source: "a", Target: "x", Required: true},
		{Source: "b", Target: "y", Required: false},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	_, err := LoadLayout(strings.NewReader("not: [valid"))
	assert.Error(t, err)

	_, err = LoadLayout(strings.NewReader("[]"))
	assert.ErrorContains(t, err, "empty")

	_, err = LoadLayout(strings.NewReader(`[{source: "", target: x}]`))
	assert.ErrorContains(t, err, "non-empty")
}

func namedBands(names ...string) []espa.BandMetadata {
	bands := make([]espa.BandMetadata, len(names))
	for i, n := range names {
		bands[i] = espa.BandMetadata{Name: n}
	}
	return bands
}

func TestResolveLayoutOrder(t *testing.T) {
	layout := Layout{
		{Source: "b", Target: "B", Required: true},
		{Source: "a", Target: "A", Required: true},
	}
	// Input order differs from table order; output must be table order.
	slots, err := ResolveLayout(layout, namedBands("a", "b"))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "B", slots[0].Target)
	assert.Equal(t, "b", slots[0].Band.Name)
	assert.Equal(t, "A", slots[1].Target)
	assert.Equal(t, "a", slots[1].Band.Name)
}

func TestResolveLayoutFirstMatchWins(t *testing.T) {
	layout := Layout{{Source: "a", Target: "A", Required: true}}
	bands := []espa.BandMetadata{
		{Name: "a", FileName: "first.img"},
		{Name: "a", FileName: "second.img"},
	}
	slots, err := ResolveLayout(layout, bands)
	require.NoError(t, err)
	assert.Equal(t, "first.img", slots[0].Band.FileName)
}

func TestResolveLayoutMissingRequired(t *testing.T) {
	layout := Layout{{Source: "gone", Target: "G", Required: true}}
	_, err := ResolveLayout(layout, namedBands("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"gone"`)
}

func TestResolveLayoutMissingOptional(t *testing.T) {
	layout := Layout{
		{Source: "a", Target: "A", Required: true},
		{Source: "gone", Target: "G", Required: false},
	}
	slots, err := ResolveLayout(layout, namedBands("a"))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].Matched())
	assert.False(t, slots[1].Matched())
	assert.Equal(t, "gone", slots[1].Source)
}
