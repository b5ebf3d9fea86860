package meter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atinyakov/passmeter/internal/strength"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeter_String(t *testing.T) {
	got := Meter{Width: 10}.String(strength.Evaluate("abcdefg1"))

	want := "[######....] 66%\n" +
		"Medium password\n" +
		"  ✓ At least 8 characters\n" +
		"  ✓ Contains numbers\n" +
		"  o Contains special characters\n" +
		"  o Contains uppercase & lowercase\n"
	assert.Equal(t, want, got)
}

func TestMeter_Fill(t *testing.T) {
	tests := []struct {
		password string
		filled   int
	}{
		{"", 9},
		{"Abcdefg1", 19},
		{"Abcdefg1!", 30},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			bar := strings.SplitN(Meter{}.String(strength.Evaluate(tt.password)), "\n", 2)[0]
			assert.Equal(t, tt.filled, strings.Count(bar, "#"))
			assert.Equal(t, DefaultWidth-tt.filled, strings.Count(bar, "."))
		})
	}
}

func TestMeter_Color(t *testing.T) {
	out := Meter{Width: 10, Color: true}.String(strength.Evaluate("Abcdefg1!"))
	assert.Contains(t, out, ansiGreen+"##########"+ansiReset)
	assert.Contains(t, out, "Strong password")

	weak := Meter{Width: 10, Color: true}.String(strength.Evaluate(""))
	assert.Contains(t, weak, ansiRed+"###"+ansiReset)
	assert.Contains(t, weak, ansiGray+"o At least 8 characters"+ansiReset)
}

func TestMeter_Render(t *testing.T) {
	var buf bytes.Buffer
	res := strength.Evaluate("x")
	require.NoError(t, Meter{}.Render(&buf, res))
	assert.Equal(t, Meter{}.String(res), buf.String())
}
