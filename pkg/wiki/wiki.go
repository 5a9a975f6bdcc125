// Package wiki is the lab's static knowledge base: short semiconductor
// topics and the photolithography process flow.
package wiki

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTopic = errors.New("wiki: unknown topic")
	ErrUnknownStep  = errors.New("wiki: unknown process step")
)

type Topic struct {
	Key   string
	Title string
	Body  string
}

var topics = []Topic{
	{
		Key:   "semiconductor",
		Title: "Semiconductor",
		Body: `A material whose conductivity lies between a conductor (copper) and an insulator (glass).
Its conductivity can be changed by temperature, light and doping.
Examples: silicon (Si), germanium (Ge), gallium arsenide (GaAs).`,
	},
	{
		Key:   "bands",
		Title: "Band theory",
		Body: `Electron states in a solid form energy bands.
  1. Valence band: bound electrons.
  2. Conduction band: free electrons that carry current.
  3. Band gap Eg: the energy between the two. Eg(Si) ~ 1.12 eV.`,
	},
	{
		Key:   "doping",
		Title: "Doping",
		Body: `Adding impurities to a pure crystal to change its electrical behaviour.
  n-type: group V dopants (P, As) give extra electrons.
  p-type: group III dopants (B, Ga) give extra holes.`,
	},
}

func Topics() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}

func Lookup(key string) (Topic, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, t := range topics {
		if t.Key == k {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("%w: %q", ErrUnknownTopic, key)
}
