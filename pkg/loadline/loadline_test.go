package loadline_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/semilab/pkg/curve"
	"github.com/edp1096/semilab/pkg/device"
	"github.com/edp1096/semilab/pkg/loadline"
)

func silicon() *device.Diode {
	d := device.NewDiode()
	d.Is = 10e-12
	d.N = 1.5
	return d
}

func TestSolve_Found(t *testing.T) {
	const supply, load = 5.0, 220.0

	q, err := loadline.SolveDiode(silicon(), 0, supply, 1000, supply, load)
	require.NoError(t, err)
	require.True(t, q.Found)
	assert.Greater(t, q.V, 0.0)
	assert.Less(t, q.V, supply)
	assert.Greater(t, q.I, 0.0)
	assert.LessOrEqual(t, q.Lo, q.V)
	assert.GreaterOrEqual(t, q.Hi, q.V)
	assert.InDelta(t, supply/999, q.Hi-q.Lo, 1e-9)

	// ~0.8 V across the junction, ~19 mA through it
	assert.InDelta(t, 0.8, q.V, 0.15)
	assert.InDelta(t, 0.019, loadline.Line(q.V, supply, load), 0.002)
}

func TestSolve_NotFound(t *testing.T) {
	d := device.NewDiode()
	c, err := d.Curve(-1, 0.3, 200)
	require.NoError(t, err)

	q, err := loadline.Solve(c, 5, 220)
	require.NoError(t, err)
	assert.False(t, q.Found)
	assert.Equal(t, loadline.QPoint{}, q)
}

func TestSolve_PicksNearerSample(t *testing.T) {
	// line I = 2 - V crosses I = V at V = 1
	c := curve.Curve{{0, 0}, {0.9, 0.9}, {1.5, 1.5}, {2, 2}}
	q, err := loadline.Solve(c, 2, 1)
	require.NoError(t, err)
	require.True(t, q.Found)
	assert.Equal(t, 1, q.Index)
	assert.Equal(t, 0.9, q.V)
	assert.Equal(t, 0.9, q.Lo)
	assert.Equal(t, 1.5, q.Hi)

	c = curve.Curve{{0, 0}, {0.5, 0.5}, {1.05, 1.05}, {2, 2}}
	q, err = loadline.Solve(c, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, q.Index)
	assert.Equal(t, 1.05, q.V)
}

func TestSolve_ExactHit(t *testing.T) {
	c := curve.Curve{{0, 0}, {1, 1}, {2, 2}}
	q, err := loadline.Solve(c, 2, 1)
	require.NoError(t, err)
	require.True(t, q.Found)
	assert.Equal(t, 1, q.Index)
	assert.Equal(t, 1.0, q.I)
}

func TestSolve_Guards(t *testing.T) {
	c := curve.Curve{{0, 0}, {1, 1}}
	_, err := loadline.Solve(c, 5, 0)
	require.ErrorIs(t, err, loadline.ErrNonPositiveLoad)
	_, err = loadline.Solve(c, 5, math.Inf(1))
	require.ErrorIs(t, err, loadline.ErrNonPositiveLoad)
	_, err = loadline.Solve(c[:1], 5, 100)
	require.ErrorIs(t, err, curve.ErrTooFewSamples)
}

func TestRefine(t *testing.T) {
	const supply, load = 5.0, 220.0
	d := silicon()

	q, err := loadline.SolveDiode(d, 0, supply, 1000, supply, load)
	require.NoError(t, err)
	require.True(t, q.Found)

	r, err := loadline.Refine(d, q, supply, load)
	require.NoError(t, err)
	require.True(t, r.Found)
	assert.Equal(t, -1, r.Index)
	assert.GreaterOrEqual(t, r.V, q.Lo)
	assert.LessOrEqual(t, r.V, q.Hi)

	id, err := d.Current(r.V)
	require.NoError(t, err)
	assert.InDelta(t, loadline.Line(r.V, supply, load), id, 1e-9)
	assert.InDelta(t, id, r.I, 1e-15)
}

func TestRefine_Guards(t *testing.T) {
	d := silicon()
	_, err := loadline.Refine(d, loadline.QPoint{}, 5, 220)
	require.ErrorIs(t, err, loadline.ErrNotFound)

	q := loadline.QPoint{Found: true, V: 0.1, Lo: 0.1, Hi: 0.2}
	_, err = loadline.Refine(d, q, 5, 220)
	require.ErrorIs(t, err, loadline.ErrNoBracket)

	q = loadline.QPoint{Found: true, V: 0.7, Lo: 0.5, Hi: 1}
	_, err = loadline.Refine(d, q, 5, -1)
	require.ErrorIs(t, err, loadline.ErrNonPositiveLoad)
}
