package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqrtPerfectSquares(t *testing.T) {
	cases := []struct{ a, want string }{
		{"4", "2.000000"},
		{"9", "3.000000"},
		{"100", "10.000000"},
		{"0", "0.000000"},
		{"1", "1.000000"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		d := New()
		require.NoError(t, d.Sqrt(bg(), a, 6))
		assert.Equal(t, c.want, d.String(), "Sqrt(%s)", c.a)
	}
}

func TestSqrtNonPerfectSquare(t *testing.T) {
	a := mustParse(t, "2", 10)
	d := New()
	require.NoError(t, d.Sqrt(bg(), a, 10))
	// sqrt(2) == 1.4142135623730950488...
	assert.Equal(t, "1.4142135623", d.String())
}

func TestSqrtNegativeRejected(t *testing.T) {
	a := mustParse(t, "-4", 10)
	d := New()
	err := d.Sqrt(bg(), a, 2)
	require.Error(t, err)
}
