package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	cases := []struct {
		a, b, want string
		scale      int
	}{
		{"2", "10", "1024", 0},
		{"2", "0", "1", 0},
		{"0", "5", "0", 0},
		{"1", "100", "1", 0},
		{"-2", "3", "-8", 0},
		{"-2", "2", "4", 0},
		{"1.5", "2", "2.25", 2},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		d := New()
		require.NoError(t, d.Pow(bg(), a, b, c.scale))
		assert.Equal(t, c.want, d.String(), "Pow(%s, %s)", c.a, c.b)
	}
}

func TestPowNegativeExponent(t *testing.T) {
	a := mustParse(t, "2", 10)
	b := mustParse(t, "-1", 10)
	d := New()
	require.NoError(t, d.Pow(bg(), a, b, 4))
	assert.Equal(t, "0.5000", d.String())
}

func TestPowNegativeExponentOfOne(t *testing.T) {
	a := mustParse(t, "1", 10)
	b := mustParse(t, "-5", 10)
	d := New()
	require.NoError(t, d.Pow(bg(), a, b, 3))
	assert.Equal(t, "1.000", d.String())
}

func TestInv(t *testing.T) {
	a := mustParse(t, "4", 10)
	d := New()
	require.NoError(t, d.Inv(bg(), a, 2))
	assert.Equal(t, "0.25", d.String())
}

func TestPowNonIntegerExponent(t *testing.T) {
	a := mustParse(t, "2", 10)
	b := mustParse(t, "1.5", 10)
	d := New()
	err := d.Pow(bg(), a, b, 0)
	require.Error(t, err)
}
