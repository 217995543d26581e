package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModExp(t *testing.T) {
	cases := []struct{ a, b, c, want string }{
		{"4", "13", "497", "445"},
		{"2", "10", "1000", "24"},
		{"5", "0", "7", "1"},
		{"10", "3", "1", "0"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		m := mustParse(t, c.c, 10)
		d := New()
		require.NoError(t, ModExp(bg(), d, a, b, m))
		assert.Equal(t, c.want, d.String(), "ModExp(%s, %s, %s)", c.a, c.b, c.c)
	}
}

func TestModExpZeroModulus(t *testing.T) {
	a := mustParse(t, "2", 10)
	b := mustParse(t, "3", 10)
	m := mustParse(t, "0", 10)
	d := New()
	err := ModExp(bg(), d, a, b, m)
	require.Error(t, err)
}

func TestModExpNegativeExponentRejected(t *testing.T) {
	a := mustParse(t, "2", 10)
	b := mustParse(t, "-3", 10)
	m := mustParse(t, "5", 10)
	d := New()
	err := ModExp(bg(), d, a, b, m)
	require.Error(t, err)
}
