package strength

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// MinLength is the shortest password that satisfies MinimumLength, in UTF-16 code units.
const MinLength = 8

// SpecialCharacters is the punctuation set accepted by ContainsSpecialCharacter.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// Requirement identifies one of the fixed checks applied to a password.
type Requirement int

const (
	// MinimumLength holds for passwords of at least MinLength UTF-16 code units.
	MinimumLength Requirement = iota
	// ContainsDigit holds when an ASCII digit is present.
	ContainsDigit
	// ContainsSpecialCharacter holds when a rune from SpecialCharacters is present.
	ContainsSpecialCharacter
	// ContainsMixedCase holds when both ASCII cases are present.
	ContainsMixedCase

	// RequirementCount is the number of requirements.
	RequirementCount = 4
)

type requirementInfo struct {
	name  string
	label string
	check func(string) bool
}

var requirementTable = [RequirementCount]requirementInfo{
	MinimumLength:            {"minimum_length", "At least 8 characters", HasMinimumLength},
	ContainsDigit:            {"contains_digit", "Contains numbers", HasDigit},
	ContainsSpecialCharacter: {"contains_special", "Contains special characters", HasSpecialCharacter},
	ContainsMixedCase:        {"contains_mixed_case", "Contains uppercase & lowercase", HasMixedCase},
}

// Requirements returns every requirement in display order.
func Requirements() []Requirement {
	return []Requirement{MinimumLength, ContainsDigit, ContainsSpecialCharacter, ContainsMixedCase}
}

// Name returns a stable snake_case identifier for the requirement.
func (r Requirement) Name() string {
	if !r.valid() {
		return fmt.Sprintf("requirement_%d", int(r))
	}
	return requirementTable[r].name
}

// Label returns the human-readable checklist text.
func (r Requirement) Label() string {
	if !r.valid() {
		return ""
	}
	return requirementTable[r].label
}

// String implements fmt.Stringer.
func (r Requirement) String() string { return r.Name() }

// Check reports whether password satisfies r. Unknown requirements never hold.
func (r Requirement) Check(password string) bool {
	if !r.valid() {
		return false
	}
	return requirementTable[r].check(password)
}

func (r Requirement) valid() bool {
	return r >= 0 && r < RequirementCount
}

// HasMinimumLength reports whether password is at least MinLength UTF-16 code
// units long, so a character outside the Basic Multilingual Plane counts twice.
func HasMinimumLength(password string) bool {
	return Length(password) >= MinLength
}

// Length returns the number of UTF-16 code units in password.
// Invalid UTF-8 bytes decode to U+FFFD and count as one unit each.
func Length(password string) int {
	n := 0
	for _, r := range password {
		n += utf16.RuneLen(r)
	}
	return n
}

// HasDigit reports whether password contains an ASCII digit.
func HasDigit(password string) bool {
	return strings.ContainsFunc(password, isASCIIDigit)
}

// HasSpecialCharacter reports whether password contains a rune from SpecialCharacters.
func HasSpecialCharacter(password string) bool {
	return strings.ContainsAny(password, SpecialCharacters)
}

// HasMixedCase reports whether password has both an ASCII lower-case and
// an ASCII upper-case letter.
func HasMixedCase(password string) bool {
	return strings.ContainsFunc(password, isASCIILower) &&
		strings.ContainsFunc(password, isASCIIUpper)
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
