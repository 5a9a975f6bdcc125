// Package logic evaluates the basic Boolean gates from fixed truth tables.
package logic

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownGate = errors.New("logic: unknown gate")

type Gate int

const (
	AND Gate = iota
	OR
	NOT
	NAND
	NOR
	XOR
)

func (g Gate) String() string {
	switch g {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	case XOR:
		return "XOR"
	}
	return fmt.Sprintf("Gate(%d)", int(g))
}

// Arity is 1 for NOT and 2 for every other gate.
func (g Gate) Arity() int {
	switch g {
	case NOT:
		return 1
	case AND, OR, NAND, NOR, XOR:
		return 2
	}
	panic(fmt.Sprintf("logic: invalid gate %s", g))
}

func Gates() []Gate { return []Gate{AND, OR, NOT, NAND, NOR, XOR} }

func ParseGate(name string) (Gate, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range Gates() {
		if g.String() == s {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, name)
}

type Row struct {
	A bool
	B bool // unused for NOT
	Y bool
}

// Rows are ordered 00, 01, 10, 11 (NOT: 0, 1).
var (
	andTable  = []Row{{false, false, false}, {false, true, false}, {true, false, false}, {true, true, true}}
	orTable   = []Row{{false, false, false}, {false, true, true}, {true, false, true}, {true, true, true}}
	nandTable = []Row{{false, false, true}, {false, true, true}, {true, false, true}, {true, true, false}}
	norTable  = []Row{{false, false, true}, {false, true, false}, {true, false, false}, {true, true, false}}
	xorTable  = []Row{{false, false, false}, {false, true, true}, {true, false, true}, {true, true, false}}
	notTable  = []Row{{A: false, Y: true}, {A: true, Y: false}}
)

func table(g Gate) []Row {
	switch g {
	case AND:
		return andTable
	case OR:
		return orTable
	case NOT:
		return notTable
	case NAND:
		return nandTable
	case NOR:
		return norTable
	case XOR:
		return xorTable
	}
	panic(fmt.Sprintf("logic: invalid gate %s", g))
}

// TruthTable returns a copy of the gate's table.
func TruthTable(g Gate) []Row {
	t := table(g)
	out := make([]Row, len(t))
	copy(out, t)
	return out
}

// Evaluate looks the output up in the gate's truth table. NOT ignores b.
func Evaluate(g Gate, a, b bool) bool {
	if g == NOT {
		return notTable[index(a)].Y
	}
	return table(g)[2*index(a)+index(b)].Y
}

// Bit converts a level to 0/1 for display.
func Bit(v bool) int { return index(v) }

func index(v bool) int {
	if v {
		return 1
	}
	return 0
}
