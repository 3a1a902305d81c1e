package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/deltae/model"
)

func TestCIE94(t *testing.T) {
	tests := []struct {
		name        string
		c1, c2      model.Triplet
		graphicArts float64
		textiles    float64
	}{
		{"Blue", model.Triplet{50, 2.6772, -79.7751}, model.Triplet{50, 0, -82.7485}, 1.395038867859, 1.423046205421},
		{"BlueSwapped", model.Triplet{50, 0, -82.7485}, model.Triplet{50, 2.6772, -79.7751}, 1.365285221359, 1.393630276077},
		{"Large", model.Triplet{50, 2.5, 0}, model.Triplet{61, -5, 29}, 29.441373277787, 27.730807801385},
		{"LargeSwapped", model.Triplet{61, -5, 29}, model.Triplet{50, 2.5, 0}, 18.386885475391, 15.529749543717},
		{"Mixed", model.Triplet{10, 20, -5}, model.Triplet{40, -30, 10}, 49.514485276456, 42.704595547506},
		{"ZeroChroma", model.Triplet{50, 0, 0}, model.Triplet{50, 3, 4}, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.graphicArts, CIE94GraphicArts(tt.c1, tt.c2), 1e-9)
			assert.InDelta(t, tt.textiles, CIE94Textiles(tt.c1, tt.c2), 1e-9)
		})
	}
}

func TestCIE94Properties(t *testing.T) {
	c1 := model.Triplet{50, 2.5, 0}
	c2 := model.Triplet{61, -5, 29}

	t.Run("Identity", func(t *testing.T) {
		for _, c := range []model.Triplet{c1, c2, {0, 0, 0}, {100, -128, 127}} {
			assert.Equal(t, 0.0, CIE94GraphicArts(c, c))
			assert.Equal(t, 0.0, CIE94Textiles(c, c))
		}
	})

	t.Run("Asymmetric", func(t *testing.T) {
		assert.NotEqual(t, CIE94GraphicArts(c1, c2), CIE94GraphicArts(c2, c1))
		assert.NotEqual(t, CIE94Textiles(c1, c2), CIE94Textiles(c2, c1))
	})

	t.Run("GeneralForm", func(t *testing.T) {
		assert.Equal(t, CIE94GraphicArts(c1, c2), CIE94(c1, c2, GraphicArts))
		assert.Equal(t, CIE94Textiles(c1, c2), CIE94(c1, c2, Textiles))
	})

	t.Run("NegativeHueTermClamped", func(t *testing.T) {
		// Near-identical colors where rounding can push the hue term below zero.
		a := model.Triplet{50, 1e-8, 1e-8}
		b := model.Triplet{50, 1e-8 + 1e-17, 1e-8}
		got := CIE94GraphicArts(a, b)
		assert.False(t, math.IsNaN(got))
		assert.GreaterOrEqual(t, got, 0.0)
	})
}
