package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMinimumLength(t *testing.T) {
	assert.False(t, HasMinimumLength(""))
	assert.False(t, HasMinimumLength("1234567"))
	assert.True(t, HasMinimumLength("12345678"))
	assert.False(t, HasMinimumLength("ééééééé"))
	// surrogate pairs count as two units
	assert.True(t, HasMinimumLength("😀😀😀😀"))
	assert.False(t, HasMinimumLength("😀😀😀"))
}

func TestLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"é", 1},
		{"😀", 2},
		{"Ab1!😀😀", 8},
		{"\xff", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Length(tt.in), "input %q", tt.in)
	}
}

func TestHasDigit(t *testing.T) {
	assert.False(t, HasDigit("abc"))
	assert.True(t, HasDigit("a0"))
	assert.True(t, HasDigit("9"))
}

func TestHasSpecialCharacter(t *testing.T) {
	for _, r := range SpecialCharacters {
		assert.True(t, HasSpecialCharacter("a"+string(r)), "rune %q", r)
	}
	for _, s := range []string{"", "abc", "-", "_", "+", "=", "'", ";", "[", "]", "~", "`", "/", `\`} {
		assert.False(t, HasSpecialCharacter(s), "input %q", s)
	}
}

func TestHasMixedCase(t *testing.T) {
	assert.False(t, HasMixedCase("abc"))
	assert.False(t, HasMixedCase("ABC"))
	assert.True(t, HasMixedCase("aB"))
	assert.False(t, HasMixedCase("aÉ"))
}

func TestRequirements_Order(t *testing.T) {
	reqs := Requirements()
	assert.Len(t, reqs, RequirementCount)

	labels := make([]string, 0, len(reqs))
	for _, r := range reqs {
		labels = append(labels, r.Label())
	}
	assert.Equal(t, []string{
		"At least 8 characters",
		"Contains numbers",
		"Contains special characters",
		"Contains uppercase & lowercase",
	}, labels)
}

func TestRequirement_Unknown(t *testing.T) {
	r := Requirement(42)
	assert.False(t, r.Check("Abcdefg1!"))
	assert.Equal(t, "requirement_42", r.Name())
	assert.Empty(t, r.Label())
}
