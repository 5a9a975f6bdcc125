package wiki

import "fmt"

// Step is one stage of the basic photolithography flow, in process order.
type Step int

const (
	WaferPrep Step = iota
	Oxidation
	ResistCoat
	Exposure
	Etch
	ResistStrip
)

var stepText = [...]struct{ name, desc string }{
	WaferPrep:   {"Wafer preparation", "Wafers are sliced from a single-crystal ingot and polished to a mirror finish."},
	Oxidation:   {"Oxidation", "A thin SiO2 layer is grown to insulate and protect the surface: Si + O2 -> SiO2."},
	ResistCoat:  {"Photoresist coating", "A light-sensitive resist is spin-coated over the wafer."},
	Exposure:    {"Exposure", "UV light passes through a mask; exposed resist changes its chemistry."},
	Etch:        {"Etching", "Chemicals or plasma remove the SiO2 wherever the resist no longer protects it."},
	ResistStrip: {"Resist strip", "Remaining resist is removed, leaving the pattern in the SiO2."},
}

func Steps() []Step {
	return []Step{WaferPrep, Oxidation, ResistCoat, Exposure, Etch, ResistStrip}
}

func (s Step) valid() bool { return s >= WaferPrep && s <= ResistStrip }

func (s Step) String() string {
	if !s.valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepText[s].name
}

func (s Step) Description() string {
	if !s.valid() {
		panic(fmt.Sprintf("wiki: invalid process step %d", int(s)))
	}
	return stepText[s].desc
}

// Progress is the fraction of the flow completed once s is done.
func (s Step) Progress() float64 {
	if !s.valid() {
		panic(fmt.Sprintf("wiki: invalid process step %d", int(s)))
	}
	return float64(s+1) / float64(len(stepText))
}

// StepAt maps a 1-based step number to its Step.
func StepAt(n int) (Step, error) {
	s := Step(n - 1)
	if !s.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStep, n)
	}
	return s, nil
}
