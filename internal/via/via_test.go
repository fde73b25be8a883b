package via

import (
	"testing"

	"spiralgen/pkg/geometry"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0.6, p.PadDiameter)
	assert.Equal(t, 0.3, p.Drill)
	assert.NoError(t, p.Validate())
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, DefaultParams().WithSize(0.6, 0).Validate(), ErrInvalidSize)
	assert.ErrorIs(t, DefaultParams().WithSize(0.3, 0.3).Validate(), ErrInvalidSize)
	assert.ErrorIs(t, DefaultParams().WithSize(0.2, 0.3).Validate(), ErrInvalidSize)
	assert.NoError(t, DefaultParams().WithSize(0.8, 0.4).Validate())
}

func TestViaGeometry(t *testing.T) {
	v := DefaultParams().At(geometry.NewPoint2D(100, 100))

	assert.InDelta(t, 0.3, v.Radius(), 1e-12)

	b := v.Bounds()
	assert.InDelta(t, 99.7, b.X, 1e-12)
	assert.InDelta(t, 0.6, b.Width, 1e-12)
	assert.InDelta(t, 100.3, b.BottomRight().X, 1e-12)
	assert.InDelta(t, 100.3, b.BottomRight().Y, 1e-12)
}
