package device

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThermalVoltage(t *testing.T) {
	vt, err := ThermalVoltage(300.15)
	require.NoError(t, err)
	assert.InDelta(t, 0.025865, vt, 1e-6)

	_, err = ThermalVoltage(0)
	require.ErrorIs(t, err, ErrNonPositiveTemperature)
	_, err = ThermalVoltage(-10)
	require.ErrorIs(t, err, ErrNonPositiveTemperature)
}

func TestDiodeCurrent_ZeroBias(t *testing.T) {
	for _, is := range []float64{1e-15, 1e-12, 1e-9} {
		for _, n := range []float64{1, 1.5, 2} {
			for _, vt := range []float64{0.019, 0.0259, 0.035} {
				i, err := DiodeCurrent(0, is, n, vt)
				require.NoError(t, err)
				assert.Equal(t, 0.0, i)
			}
		}
	}
}

func TestDiodeCurrent_Shockley(t *testing.T) {
	const is, n, vt = 1e-12, 1.5, 0.025865
	i, err := DiodeCurrent(0.6, is, n, vt)
	require.NoError(t, err)
	assert.InEpsilon(t, is*(math.Exp(0.6/(n*vt))-1), i, 1e-12)

	// deep reverse bias saturates at -Is
	i, err = DiodeCurrent(-1, is, n, vt)
	require.NoError(t, err)
	assert.InEpsilon(t, -is, i, 1e-9)
}

func TestDiodeCurrent_ClippedAtLargeForwardBias(t *testing.T) {
	for _, v := range []float64{2, 10, 1e3, math.Inf(1)} {
		i, err := DiodeCurrent(v, 1e-12, 1, 0.0259)
		require.NoError(t, err)
		assert.False(t, math.IsInf(i, 0) || math.IsNaN(i))
		assert.LessOrEqual(t, i, CurrentLimit)
	}
}

func TestDiodeCurrent_Guards(t *testing.T) {
	_, err := DiodeCurrent(0.5, 1e-12, 1, 0)
	require.ErrorIs(t, err, ErrThermalProduct)
	_, err = DiodeCurrent(0.5, 1e-12, 0, 0.0259)
	require.ErrorIs(t, err, ErrThermalProduct)
	_, err = DiodeCurrent(0.5, 0, 1, 0.0259)
	require.ErrorIs(t, err, ErrSaturationCurrent)
	_, err = DiodeCurrent(math.NaN(), 1e-12, 1, 0.0259)
	require.ErrorIs(t, err, ErrNotANumber)

	// Is*expm1(0) would be Inf*0.
	_, err = DiodeCurrent(0, math.Inf(1), 1, 0.0259)
	require.ErrorIs(t, err, ErrSaturationCurrent)
	_, err = DiodeCurve(-1, 1, 10, math.Inf(1), 1, 0.0259)
	require.ErrorIs(t, err, ErrSaturationCurrent)
}

func TestDiodeCurve(t *testing.T) {
	c, err := DiodeCurve(-1, 1, 500, 10e-12, 1.5, 0.025865)
	require.NoError(t, err)
	require.Len(t, c, 500)
	assert.Equal(t, -1.0, c[0].X)
	assert.Equal(t, 1.0, c[len(c)-1].X)
	for i := 1; i < len(c); i++ {
		assert.GreaterOrEqual(t, c[i].Y, c[i-1].Y, "I-V curve must be non-decreasing")
	}

	_, err = DiodeCurve(-1, 1, 500, 10e-12, 1.5, 0)
	require.ErrorIs(t, err, ErrThermalProduct)
}

func TestDiode_Defaults(t *testing.T) {
	d := NewDiode()
	require.NoError(t, d.Validate())
	assert.Equal(t, 1e-14, d.Is)
	assert.Equal(t, REFTEMP, d.Temp)

	i, err := d.Current(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, i)

	c, err := d.Curve(-0.5, 0.8, 50)
	require.NoError(t, err)
	assert.Len(t, c, 50)
}

func TestDiode_Validate(t *testing.T) {
	d := NewDiode()
	d.N = 2.5
	require.ErrorIs(t, d.Validate(), ErrIdealityFactor)

	d = NewDiode()
	d.Temp = 0
	require.ErrorIs(t, d.Validate(), ErrNonPositiveTemperature)
	_, err := d.Curve(0, 1, 10)
	require.ErrorIs(t, err, ErrNonPositiveTemperature)

	d = NewDiode()
	d.Is = -1
	_, err = d.Current(0.3)
	require.ErrorIs(t, err, ErrSaturationCurrent)

	d.Is = math.Inf(1)
	require.ErrorIs(t, d.Validate(), ErrSaturationCurrent)
}

func TestDiode_SaturationCurrentAt(t *testing.T) {
	d := NewDiode()
	is, err := d.SaturationCurrentAt(d.Tnom)
	require.NoError(t, err)
	assert.InEpsilon(t, d.Is, is, 1e-12)

	hot, err := d.SaturationCurrentAt(d.Tnom + 50)
	require.NoError(t, err)
	assert.Greater(t, hot, d.Is)

	_, err = d.SaturationCurrentAt(0)
	require.ErrorIs(t, err, ErrNonPositiveTemperature)
}

func TestDiode_ConductanceIsSlope(t *testing.T) {
	d := NewDiode()
	const v, h = 0.6, 1e-6
	i1, _ := d.Current(v - h)
	i2, _ := d.Current(v + h)
	gd, err := d.Conductance(v)
	require.NoError(t, err)
	assert.InEpsilon(t, (i2-i1)/(2*h), gd-d.Gmin, 1e-4)
}

type recorder struct {
	a   map[[2]int]float64
	rhs map[int]float64
}

func newRecorder() *recorder {
	return &recorder{a: map[[2]int]float64{}, rhs: map[int]float64{}}
}

func (r *recorder) AddElement(i, j int, v float64) { r.a[[2]int{i, j}] += v }
func (r *recorder) AddRHS(i int, v float64)        { r.rhs[i] += v }

func TestDiode_StampToGround(t *testing.T) {
	d := NewDiode()
	rec := newRecorder()
	require.NoError(t, d.Stamp(rec, 1, 0, 0.65))

	id, _ := d.Current(0.65)
	gd, _ := d.Conductance(0.65)
	assert.Equal(t, gd, rec.a[[2]int{1, 1}])
	assert.Len(t, rec.a, 1)
	assert.InDelta(t, -(id - gd*0.65), rec.rhs[1], 1e-15)
}

func TestResistorAndSourceStamp(t *testing.T) {
	src, r, err := Norton(5, 220)
	require.NoError(t, err)
	rec := newRecorder()
	require.NoError(t, r.Stamp(rec, 1, 2, 0))
	require.NoError(t, src.Stamp(rec, 1, 0, 0))

	g := 1 / 220.0
	assert.Equal(t, g, rec.a[[2]int{1, 1}])
	assert.Equal(t, -g, rec.a[[2]int{1, 2}])
	assert.Equal(t, -g, rec.a[[2]int{2, 1}])
	assert.Equal(t, g, rec.a[[2]int{2, 2}])
	assert.InDelta(t, 5/220.0, rec.rhs[1], 1e-15)

	_, _, err = Norton(5, 0)
	require.ErrorIs(t, err, ErrResistance)
	require.ErrorIs(t, (&Resistor{}).Stamp(rec, 1, 0, 0), ErrResistance)
}
