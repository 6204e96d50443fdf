// internal/library/mode.go
package library

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Mode selects an annotation policy: which reference set to use and how to
// derive thresholds from it.
type Mode string

const ModePBSV Mode = "pbsv"

var ErrUnknownMode = errors.New("unknown annotation mode")

// Policy is what a Mode resolves to.
type Policy struct {
	Description string
	Thresholds  Thresholds
	Builtin     func() ([]Entry, error)
}

var policies = map[Mode]Policy{
	ModePBSV: {
		Description: "pbsv-compatible mobile element annotations",
		Thresholds:  Thresholds{Similarity: 0.6, SizeFraction: 0.75},
		Builtin:     pbsvEntries,
	},
}

// Modes lists the registered modes, sorted.
func Modes() []Mode {
	out := make([]Mode, 0, len(policies))
	for m := range policies {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ParseMode maps a command-line value to a registered Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := policies[m]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
	}
	return m, nil
}

func Lookup(m Mode) (Policy, error) {
	p, ok := policies[m]
	if !ok {
		return Policy{}, fmt.Errorf("%w %q", ErrUnknownMode, string(m))
	}
	return p, nil
}

// Build returns the mode's built-in library.
func Build(m Mode) (*Library, error) {
	p, err := Lookup(m)
	if err != nil {
		return nil, err
	}
	entries, err := p.Builtin()
	if err != nil {
		return nil, fmt.Errorf("built-in %s library: %w", m, err)
	}
	return New(entries, p.Thresholds)
}

// BuildFrom applies the mode's thresholds to caller-supplied entries.
func BuildFrom(m Mode, entries []Entry) (*Library, error) {
	p, err := Lookup(m)
	if err != nil {
		return nil, err
	}
	return New(entries, p.Thresholds)
}
