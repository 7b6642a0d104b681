package expr_test

import (
	"testing"

	"github.com/isam10/curveplot/expr"
	"github.com/stretchr/testify/assert"
)

// TestNormalize_ImplicitMultiplication covers every insertion rule and
// a handful of compounds.
func TestNormalize_ImplicitMultiplication(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"DigitLetter", "2x", "2*x"},
		{"DigitFunction", "3sin(x)", "3*sin(x)"},
		{"ParenParen", "(x+1)(x-1)", "(x+1)*(x-1)"},
		{"ParenDigit", "(x+1)2", "(x+1)*2"},
		{"ParenLetter", "(x+1)y", "(x+1)*y"},
		{"DigitParen", "2(x+1)", "2*(x+1)"},
		{"NoChange", "a*x + b", "a*x + b"},
		{"Chain", "2x(x+1)3", "2*x(x+1)*3"},
		{"Empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, expr.Normalize(tc.in))
		})
	}
}

// TestNormalize_UnicodeAliases verifies θ and π rewriting happens before
// the multiplication rules, so "2π" gains its product sign too.
func TestNormalize_UnicodeAliases(t *testing.T) {
	assert.Equal(t, "theta", expr.Normalize("θ"))
	assert.Equal(t, "2*pi", expr.Normalize("2π"))
	assert.Equal(t, "sin(theta)", expr.Normalize("sin(θ)"))
}

// TestNormalize_Idempotent: normalizing twice changes nothing further.
func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"2x", "3sin(θ)", "(x)(y)", "r=2θ"} {
		once := expr.Normalize(in)
		assert.Equal(t, once, expr.Normalize(once), "input %q", in)
	}
}
