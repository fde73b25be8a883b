package spiral

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, Circular, p.Shape)
	assert.Equal(t, 5.0, p.Turns)
	assert.Equal(t, 0.2, p.TrackWidth)
	assert.Equal(t, 0.2, p.Spacing)
	assert.Equal(t, 1.0, p.InnerRadius)
	assert.NoError(t, p.Validate())
}

func TestParamsWithReturnsCopy(t *testing.T) {
	base := DefaultParams()
	p := base.WithShape(Square).WithTurns(3).WithTrack(0.5, 0.25).WithInnerRadius(4)

	assert.Equal(t, Params{Shape: Square, Turns: 3, TrackWidth: 0.5, Spacing: 0.25, InnerRadius: 4}, p)
	assert.Equal(t, DefaultParams(), base)
	assert.Equal(t, 0.75, p.Pitch())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"zero turns", DefaultParams().WithTurns(0), nil},
		{"zero spacing", DefaultParams().WithTrack(0.2, 0), nil},
		{"zero radius", DefaultParams().WithInnerRadius(0), nil},
		{"negative turns", DefaultParams().WithTurns(-1), ErrInvalidParams},
		{"zero width", DefaultParams().WithTrack(0, 0.2), ErrInvalidParams},
		{"negative spacing", DefaultParams().WithTrack(0.2, -0.1), ErrInvalidParams},
		{"negative radius", DefaultParams().WithInnerRadius(-1), ErrInvalidParams},
		{"NaN turns", DefaultParams().WithTurns(math.NaN()), ErrInvalidParams},
		{"infinite radius", DefaultParams().WithInnerRadius(math.Inf(1)), ErrInvalidParams},
		{"unknown shape", DefaultParams().WithShape(ShapeKind(9)), ErrUnknownShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDimensionsScenario(t *testing.T) {
	d := scenarioParams(Square).Dimensions()
	assert.Equal(t, 10.0, d.InnerDiameter)
	assert.Equal(t, 16.0, d.OuterDiameter)
	assert.Equal(t, 13.0, d.AverageDiameter)
	assert.InDelta(t, 0.230769, d.FillRatio, 1e-6)
}

func TestDimensionsDegenerate(t *testing.T) {
	d := DefaultParams().WithTurns(0).WithInnerRadius(0).Dimensions()
	assert.Equal(t, Dimensions{}, d)
}

func TestParamsJSONUsesShapeName(t *testing.T) {
	data, err := json.Marshal(scenarioParams(Octagonal))
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":"Octagonal","turns":3,"track_width":0.5,"spacing":0.5,"inner_radius":5}`, string(data))

	var p Params
	require.NoError(t, json.Unmarshal([]byte(`{"shape":"square","turns":2}`), &p))
	assert.Equal(t, Square, p.Shape)
}
