package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spiralgen/internal/board"
	"spiralgen/internal/inductance"
	"spiralgen/internal/spiral"
	"spiralgen/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

var scenario = []string{"--shape", "square", "--turns", "3", "--width", "0.5", "--spacing", "0.5", "--radius", "5"}

func TestPathJSON(t *testing.T) {
	out, err := run(t, append([]string{"path", "--json"}, scenario...)...)
	require.NoError(t, err)

	var points []geometry.Point2D
	require.NoError(t, json.Unmarshal([]byte(out), &points))
	assert.Len(t, points, 13)
}

func TestPathTable(t *testing.T) {
	out, err := run(t, "path", "--shape", "circ", "--turns", "3", "--width", "0.5", "--spacing", "0.5", "--radius", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Points: 193 (64 per turn)")
	assert.Contains(t, out, "Radius: 5.0000 - 8.0000 mm")
}

func TestInductance(t *testing.T) {
	out, err := run(t, append([]string{"inductance"}, scenario...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated L: 210.47 nH")
	assert.Contains(t, out, "d_avg:      13.0000 mm")

	out, err = run(t, append([]string{"l", "--json"}, scenario...)...)
	require.NoError(t, err)
	var r inductance.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, spiral.Square, r.Shape)
	assert.InDelta(t, 210.4728108630132, r.Nanohenries, 1e-9)
}

func TestInductanceDefaults(t *testing.T) {
	out, err := run(t, "inductance")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated L: 101.89 nH")
}

func TestPlace(t *testing.T) {
	out, err := run(t, append([]string{"place", "--json", "--layer", "back", "--via"}, scenario...)...)
	require.NoError(t, err)

	var layout board.Layout
	require.NoError(t, json.Unmarshal([]byte(out), &layout))
	assert.Len(t, layout.Tracks, 12)
	assert.Equal(t, board.BackCopper, layout.Tracks[0].Layer)
	require.NotNil(t, layout.Via)
	assert.Equal(t, int64(100_000_000), layout.Via.Position.X)

	out, err = run(t, append([]string{"place", "-v"}, scenario...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Tracks: 12")
	assert.NotContains(t, out, "Via:")
	assert.Equal(t, 12, strings.Count(out, " -> "))
}

func TestExport(t *testing.T) {
	name := filepath.Join(t.TempDir(), "coil.svg")
	_, err := run(t, append([]string{"export", "-o", name}, scenario...)...)
	require.NoError(t, err)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<polyline")

	_, err = run(t, "export")
	assert.Error(t, err)
}

func TestInvalidInput(t *testing.T) {
	_, err := run(t, "path", "--shape", "hexagonal")
	assert.ErrorIs(t, err, spiral.ErrUnknownShape)

	_, err = run(t, "inductance", "--turns=-1")
	assert.ErrorIs(t, err, spiral.ErrInvalidParams)

	_, err = run(t, "place", "--layer", "F.SilkS")
	assert.ErrorIs(t, err, board.ErrInvalidLayer)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "spiralgen "))
}
