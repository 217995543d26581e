package decimal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuo(t *testing.T) {
	cases := []struct {
		a, b  string
		scale int
		want  string
	}{
		{"10", "2", 0, "5"},
		{"1", "3", 5, "0.33333"},
		{"7", "2", 2, "3.50"},
		{"-7", "2", 0, "-3"},
		{"0", "5", 2, "0.00"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		d := New()
		require.NoError(t, d.Quo(bg(), a, b, c.scale))
		assert.Equal(t, c.want, d.String(), "Quo(%s, %s, %d)", c.a, c.b, c.scale)
	}
}

func TestQuoDivideByZero(t *testing.T) {
	a := mustParse(t, "1", 10)
	b := mustParse(t, "0", 10)
	d := New()
	err := d.Quo(bg(), a, b, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
}

func TestDivMod(t *testing.T) {
	a := mustParse(t, "17", 10)
	b := mustParse(t, "5", 10)
	quot, rem := New(), New()
	require.NoError(t, DivMod(bg(), quot, rem, a, b, 0))
	assert.Equal(t, "3", quot.String())
	assert.Equal(t, "2", rem.String())
}

func TestDivModNegativeDividend(t *testing.T) {
	a := mustParse(t, "-17", 10)
	b := mustParse(t, "5", 10)
	quot, rem := New(), New()
	require.NoError(t, DivMod(bg(), quot, rem, a, b, 0))
	assert.Equal(t, "-3", quot.String())
	assert.Equal(t, "-2", rem.String())
}

func TestRem(t *testing.T) {
	a := mustParse(t, "17", 10)
	b := mustParse(t, "5", 10)
	d := New()
	require.NoError(t, d.Rem(bg(), a, b, 0))
	assert.Equal(t, "2", d.String())
}

func TestRemSelfAliasing(t *testing.T) {
	a := mustParse(t, "17", 10)
	b := mustParse(t, "5", 10)
	require.NoError(t, a.Rem(bg(), a, b, 0))
	assert.Equal(t, "2", a.String())
}
