package device

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainCurrent_Regions(t *testing.T) {
	const vth, k = 1.0, 0.5e-3

	id, region, err := DrainCurrent(0.8, 3, vth, k)
	require.NoError(t, err)
	assert.Equal(t, 0.0, id)
	assert.Equal(t, CUTOFF, region)

	id, region, err = DrainCurrent(3, 1, vth, k)
	require.NoError(t, err)
	assert.Equal(t, LINEAR, region)
	assert.InDelta(t, k*(2*2*1-1), id, 1e-15)

	id, region, err = DrainCurrent(3, 5, vth, k)
	require.NoError(t, err)
	assert.Equal(t, SATURATION, region)
	assert.InDelta(t, k*4, id, 1e-15)

	id, region, err = DrainCurrent(3, -0.5, vth, k)
	require.NoError(t, err)
	assert.Equal(t, 0.0, id)
	assert.Equal(t, LINEAR, region)
}

func TestDrainCurrent_Guards(t *testing.T) {
	_, _, err := DrainCurrent(3, 1, -1, 1e-3)
	require.ErrorIs(t, err, ErrThreshold)

	_, _, err = DrainCurrent(3, 1, 0.7, -5)
	require.ErrorIs(t, err, ErrTransconductance)

	_, _, err = DrainCurrent(3, 1, 0.7, math.Inf(1))
	require.ErrorIs(t, err, ErrTransconductance)

	_, _, err = DrainCurrent(math.NaN(), 1, 0.7, 1e-3)
	require.ErrorIs(t, err, ErrNotANumber)

	_, _, err = DrainCurrent(3, math.NaN(), 0.7, 1e-3)
	require.ErrorIs(t, err, ErrNotANumber)
}

func TestDrainCurrent_Continuity(t *testing.T) {
	for _, vgs := range []float64{1.2, 2, 3.3, 5} {
		const vth, k = 0.7, 2e-3
		vov := vgs - vth

		triode := k * (2*vov*vov - vov*vov)
		id, region, err := DrainCurrent(vgs, vov, vth, k)
		require.NoError(t, err)
		assert.Equal(t, SATURATION, region)
		assert.InDelta(t, k*vov*vov, id, 1e-15)
		assert.InDelta(t, triode, id, 1e-15)

		below, _, err := DrainCurrent(vgs, vov-1e-9, vth, k)
		require.NoError(t, err)
		assert.InDelta(t, id, below, 1e-9)
	}
}

func TestMosfet_LambdaKeepsContinuity(t *testing.T) {
	m := &Mosfet{Vth: 0.7, K: 1e-3, Lambda: 0.02}
	vov := 1.3
	sat, _ := m.DrainCurrent(2, vov)
	tri, _ := m.DrainCurrent(2, vov-1e-9)
	assert.InDelta(t, sat, tri, 1e-9)

	far, _ := m.DrainCurrent(2, 5)
	assert.Greater(t, far, sat)
}

func TestMosfet_Validate(t *testing.T) {
	require.NoError(t, NewMosfet().Validate())
	require.ErrorIs(t, (&Mosfet{Vth: -1, K: 1}).Validate(), ErrThreshold)
	require.ErrorIs(t, (&Mosfet{Vth: 1, K: 0}).Validate(), ErrTransconductance)
	require.ErrorIs(t, (&Mosfet{Vth: 1, K: 1, Lambda: -0.1}).Validate(), ErrLambda)

	_, err := MosfetCurve(0, 5, 10, 3, 1, 0)
	require.ErrorIs(t, err, ErrTransconductance)
}

func TestMosfetCurve(t *testing.T) {
	c, err := MosfetCurve(0, 5, 101, 3, 1, 1e-3)
	require.NoError(t, err)
	require.Len(t, c, 101)
	assert.Equal(t, 0.0, c[0].Y)
	assert.InDelta(t, 4e-3, c[100].Y, 1e-15)
	for i := 1; i < len(c); i++ {
		assert.GreaterOrEqual(t, c[i].Y, c[i-1].Y)
	}
}

func TestMosfet_OutputFamilyOrderedByVgs(t *testing.T) {
	m := NewMosfet()
	family, err := m.OutputFamily([]float64{1, 2, 3, 4}, 0, 5, 51)
	require.NoError(t, err)
	require.Len(t, family, 4)
	for i := 1; i < len(family); i++ {
		for j := range family[i] {
			assert.GreaterOrEqual(t, family[i][j].Y, family[i-1][j].Y)
		}
	}
}

func TestMosfet_TransferCurve(t *testing.T) {
	m := NewMosfet()
	c, err := m.TransferCurve(5, 0, 3, 31)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c[0].Y)
	assert.InDelta(t, m.K*(3-m.Vth)*(3-m.Vth), c[30].Y, 1e-12)
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "triode", LINEAR.String())
	assert.Equal(t, "saturation", SATURATION.String())
	assert.Equal(t, "cutoff", CUTOFF.String())
}
