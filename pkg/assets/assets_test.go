package assets

import (
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/godice/pkg/dice"
)

func TestImages_CoverEveryDie(t *testing.T) {
	imgs := Images()
	assert.Len(t, imgs, 2*dice.Count)

	for _, k := range dice.Kinds() {
		spec := k.Spec()
		icon, ok := imgs[spec.Icon]
		require.True(t, ok, spec.Icon)
		glyph, ok := imgs[spec.Glyph]
		require.True(t, ok, spec.Glyph)

		assert.Equal(t, GlyphSize, glyph.Bounds().Dx())
		if k == dice.D20 {
			assert.Equal(t, EmblemSize, icon.Bounds().Dx())
		} else {
			assert.Equal(t, IconSize, icon.Bounds().Dx())
		}
	}
}

func TestVertices(t *testing.T) {
	pts := Vertices(10, 10, 5, 4, 0)
	require.Len(t, pts, 4)
	assert.InDelta(t, 15, pts[0][0], 1e-4)
	assert.InDelta(t, 10, pts[0][1], 1e-4)
	assert.InDelta(t, 10, pts[1][0], 1e-4)
	assert.InDelta(t, 15, pts[1][1], 1e-4)

	for _, p := range Vertices(0, 0, 3, 7, 0.3) {
		assert.InDelta(t, 3, math32.Hypot(p[0], p[1]), 1e-4)
	}
}

func TestPolygon_Filled(t *testing.T) {
	col := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	img := Polygon(20, 4, math32.Pi/4, col, 0)

	assert.Equal(t, col, img.RGBAAt(10, 10), "center is filled")
	assert.Equal(t, uint8(0), img.RGBAAt(10, 0).A, "outside the square")
}

func TestPolygon_Outline(t *testing.T) {
	col := color.RGBA{R: 9, A: 255}
	img := Polygon(GlyphSize, 32, 0, col, 4)

	assert.Equal(t, uint8(0), img.RGBAAt(GlyphSize/2, GlyphSize/2).A, "outline leaves the center empty")
	assert.Equal(t, col, img.RGBAAt(2, GlyphSize/2), "ring drawn near the edge")
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}
