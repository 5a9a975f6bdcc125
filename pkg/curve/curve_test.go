package curve_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/semilab/pkg/curve"
)

func TestGrid_Endpoints(t *testing.T) {
	xs, err := curve.Grid(-1, 1, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, xs)
}

func TestGrid_TooFewSamples(t *testing.T) {
	_, err := curve.Grid(0, 1, 1)
	require.ErrorIs(t, err, curve.ErrTooFewSamples)
}

func TestGrid_BadDomain(t *testing.T) {
	_, err := curve.Grid(math.Inf(-1), 1, 10)
	require.ErrorIs(t, err, curve.ErrBadDomain)
}

func TestSample_Square(t *testing.T) {
	c, err := curve.Sample(0, 2, 3, func(x float64) (float64, error) { return x * x, nil })
	require.NoError(t, err)
	require.Equal(t, curve.Curve{{0, 0}, {1, 1}, {2, 4}}, c)
	require.Equal(t, 3, c.Len())

	x, y := c.XY(2)
	require.Equal(t, 2.0, x)
	require.Equal(t, 4.0, y)

	lo, hi := c.Bounds()
	require.Equal(t, 0.0, lo)
	require.Equal(t, 4.0, hi)
}

func TestSample_RejectsNonFinite(t *testing.T) {
	_, err := curve.Sample(-1, 1, 3, func(x float64) (float64, error) { return 1 / x, nil })
	require.ErrorIs(t, err, curve.ErrNonFinite)
}

func TestSample_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := curve.Sample(0, 1, 4, func(float64) (float64, error) { return 0, boom })
	require.ErrorIs(t, err, boom)
}

func TestScale(t *testing.T) {
	c := curve.Curve{{1, 0.002}, {2, 0.004}}
	require.InDeltaSlice(t, []float64{2, 4}, c.Scale(1e3).Ys(), 1e-12)
	require.Equal(t, []float64{1, 2}, c.Xs())
	require.Equal(t, 0.002, c[0].Y, "Scale must not modify the receiver")
}
