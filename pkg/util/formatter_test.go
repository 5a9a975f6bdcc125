package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValueFactor(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
		want  string
	}{
		{0, "A", "0.000 A"},
		{1000, "Ω", "1.000 kΩ"},
		{4.7e6, "Ω", "4.700 MΩ"},
		{2.2e9, "Ω", "2.200 GΩ"},
		{5, "V", "5.000 V"},
		{0.0253, "V", "25.300 mV"},
		{-1e-5, "A", "-10.000 uA"},
		{1e-14, "A", "1.000e-14 A"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatValueFactor(tc.value, tc.unit))
	}
}

func TestFormatScientific(t *testing.T) {
	assert.Equal(t, "1.234e+15 ions/cm²", FormatScientific(1.234e15, "ions/cm²"))
}

func TestFormatMagnitude(t *testing.T) {
	assert.Equal(t, "1.00e+03", FormatMagnitude(1000))
	assert.Equal(t, "     0.5", FormatMagnitude(0.5))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "5%", FormatPercent(5))
	assert.Equal(t, "0.25%", FormatPercent(0.25))
}
