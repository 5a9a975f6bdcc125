package resistor

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownColor = errors.New("resistor: unknown color")

type Color int

const (
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White
	Gold
	Silver
	None // no tolerance band
)

var colorNames = [...]string{
	Black:  "black",
	Brown:  "brown",
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	White:  "white",
	Gold:   "gold",
	Silver: "silver",
	None:   "none",
}

func (c Color) String() string {
	if c < Black || c > None {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor accepts the English color name, case-insensitive. "gray" is an alias of grey.
func ParseColor(name string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "gray" {
		return Grey, nil
	}
	for c, n := range colorNames {
		if n == s {
			return Color(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Digit is the significant-figure value of bands 1 and 2.
func (c Color) Digit() int {
	switch c {
	case Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White:
		return int(c)
	}
	panic(fmt.Sprintf("resistor: %s is not a digit band", c))
}

// Multiplier is the factor of band 3.
func (c Color) Multiplier() float64 {
	switch c {
	case Black:
		return 1
	case Brown:
		return 10
	case Red:
		return 100
	case Orange:
		return 1e3
	case Yellow:
		return 1e4
	case Green:
		return 1e5
	case Blue:
		return 1e6
	case Violet:
		return 1e7
	case Grey:
		return 1e8
	case White:
		return 1e9
	case Gold:
		return 0.1
	case Silver:
		return 0.01
	}
	panic(fmt.Sprintf("resistor: %s is not a multiplier band", c))
}

// Tolerance is band 4 in percent.
func (c Color) Tolerance() float64 {
	switch c {
	case Brown:
		return 1
	case Red:
		return 2
	case Green:
		return 0.5
	case Blue:
		return 0.25
	case Violet:
		return 0.1
	case Grey:
		return 0.05
	case Gold:
		return 5
	case Silver:
		return 10
	case None:
		return 20
	}
	panic(fmt.Sprintf("resistor: %s is not a tolerance band", c))
}

func Digits() []Color {
	return []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White}
}

func Multipliers() []Color {
	return []Color{Black, Brown, Red, Orange, Yellow, Green, Blue, Violet, Grey, White, Gold, Silver}
}

func Tolerances() []Color {
	return []Color{Brown, Red, Green, Blue, Violet, Grey, Gold, Silver, None}
}
