// Package strength classifies passwords by a fixed set of character-class
// requirements. Every function in this package is pure and safe for
// concurrent use.
package strength

import (
	"fmt"
	"strings"
)

// Strength is the three-level classification of a password.
// The zero value is Weak, and levels compare with the usual integer ordering.
type Strength int

const (
	// Weak is reported when at most one requirement holds.
	Weak Strength = iota
	// Medium is reported when two or three requirements hold.
	Medium
	// Strong is reported when all requirements hold.
	Strong
)

var strengthNames = [...]string{
	Weak:   "weak",
	Medium: "medium",
	Strong: "strong",
}

var strengthPercentages = [...]string{
	Weak:   "33%",
	Medium: "66%",
	Strong: "100%",
}

// String returns the lower-case name of the level.
func (s Strength) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strength(%d)", int(s))
	}
	return strengthNames[s]
}

// Percentage returns the progress-bar fill for the level.
// It is a fixed lookup and does not depend on how many requirements were met.
func (s Strength) Percentage() string {
	if !s.valid() {
		return ""
	}
	return strengthPercentages[s]
}

// Label returns the caption shown under the meter, e.g. "Medium password".
func (s Strength) Label() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:] + " password"
}

// MarshalText encodes the level by name.
func (s Strength) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("invalid strength %d", int(s))
	}
	return []byte(strengthNames[s]), nil
}

// UnmarshalText decodes a level previously produced by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	parsed, err := ParseStrength(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStrength maps a level name back to its Strength.
func ParseStrength(name string) (Strength, error) {
	for i, n := range strengthNames {
		if n == name {
			return Strength(i), nil
		}
	}
	return Weak, fmt.Errorf("unknown strength %q", name)
}

// Levels lists every level in ascending order.
func Levels() []Strength {
	return []Strength{Weak, Medium, Strong}
}

func (s Strength) valid() bool {
	return s >= Weak && s <= Strong
}

// Result is the outcome of evaluating one password.
type Result struct {
	// Satisfied holds the outcome of every requirement, indexed by Requirement.
	Satisfied [RequirementCount]bool
	// Strength is derived from the number of satisfied requirements.
	Strength Strength
}

// Met reports whether requirement r holds.
func (r Result) Met(req Requirement) bool {
	if !req.valid() {
		return false
	}
	return r.Satisfied[req]
}

// Count returns how many requirements hold.
func (r Result) Count() int {
	n := 0
	for _, ok := range r.Satisfied {
		if ok {
			n++
		}
	}
	return n
}

// Evaluate checks password against every requirement and classifies it.
// All requirements are evaluated regardless of earlier outcomes.
func Evaluate(password string) Result {
	var res Result
	for _, req := range Requirements() {
		res.Satisfied[req] = req.Check(password)
	}
	res.Strength = Classify(res.Count())
	return res
}

// Classify maps a count of satisfied requirements to a Strength.
func Classify(satisfied int) Strength {
	switch {
	case satisfied <= 1:
		return Weak
	case satisfied <= 3:
		return Medium
	default:
		return Strong
	}
}
