package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Two-resistor divider driven by a Norton source, as in the sparse package example.
func TestCircuitMatrix_Divider(t *testing.T) {
	const (
		R1  = 1000.0
		R2  = 2000.0
		Vin = 5.0
	)
	G1, G2 := 1/R1, 1/R2

	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	m.Clear()
	m.AddElement(1, 1, G1)
	m.AddElement(1, 2, -G1)
	m.AddElement(2, 1, -G1)
	m.AddElement(2, 2, G1+G2)
	m.AddRHS(1, Vin/(R1+R2))

	require.NoError(t, m.Solve())
	x := m.Solution()
	require.InDelta(t, Vin*R2/(R1+R2), x[2], 1e-9)
	require.InDelta(t, x[2]+R1*Vin/(R1+R2), x[1], 1e-9)
}

func TestCircuitMatrix_OutOfBounds(t *testing.T) {
	m, err := NewMatrix(1)
	require.NoError(t, err)
	defer m.Destroy()

	m.AddElement(1, 1, 1)
	m.AddElement(2, 1, 1)
	require.ErrorIs(t, m.Solve(), ErrIndexOutOfBounds)

	m.Clear()
	m.AddElement(1, 1, 2)
	m.AddRHS(1, 4)
	require.NoError(t, m.Solve())
	require.InDelta(t, 2.0, m.Solution()[1], 1e-12)
}

// Newton loops clear and re-stamp the same matrix after every factorization.
func TestCircuitMatrix_Restamp(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	for _, g := range []float64{1e-3, 2e-3, 5e-3} {
		m.Clear()
		m.AddElement(1, 1, g+1e-3)
		m.AddElement(1, 2, -g)
		m.AddElement(2, 1, -g)
		m.AddElement(2, 2, g+1e-3)
		m.AddRHS(1, 1e-3)
		require.NoError(t, m.Solve())

		x := m.Solution()
		require.InDelta(t, 1e-3, (g+1e-3)*x[1]-g*x[2], 1e-12)
		require.InDelta(t, 0, -g*x[1]+(g+1e-3)*x[2], 1e-12)
	}
}

func TestNewMatrix_InvalidSize(t *testing.T) {
	_, err := NewMatrix(0)
	require.Error(t, err)
}
