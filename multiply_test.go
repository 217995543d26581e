package decimal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulSmall(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"2", "3", "6"},
		{"0", "5", "0"},
		{"-2", "3", "-6"},
		{"-2", "-3", "6"},
		{"1.5", "2", "3.0"},
		{"0.1", "0.1", "0.01"},
		{"100", "100", "10000"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		d := New()
		require.NoError(t, d.Mul(bg(), a, b, -1))
		assert.Equal(t, c.want, d.String(), "Mul(%s, %s)", c.a, c.b)
	}
}

func TestMulKaratsubaNinesSquared(t *testing.T) {
	// 40 limbs of 9s each, well above KaratsubaLen (32), forcing the
	// Karatsuba path; a string of 9s squared is easy to sanity-check the
	// digit count of without an independent reference implementation.
	digits := strings.Repeat("9", 40*BaseDigs)
	a := mustParse(t, digits, 10)
	b := mustParse(t, digits, 10)

	d := New()
	require.NoError(t, d.Mul(bg(), a, b, -1))

	// (10^n - 1)^2 = 10^2n - 2*10^n + 1, which has exactly 2n digits.
	assert.Equal(t, 2*len(digits), d.Digits())
	assert.True(t, strings.HasPrefix(d.String(), strings.Repeat("9", len(digits)-1)+"8"))
	assert.True(t, strings.HasSuffix(d.String(), strings.Repeat("0", len(digits)-2)+"1"))
}

func TestMulScaleTruncation(t *testing.T) {
	a := mustParse(t, "1", 10)
	b := mustParse(t, "3", 10)
	third := New()
	require.NoError(t, third.Quo(bg(), a, b, 5))
	assert.Equal(t, "0.33333", third.String())

	d := New()
	require.NoError(t, d.Mul(bg(), third, b, 2))
	assert.Equal(t, "0.99", d.String())
}
