package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"1", "2", "3"},
		{"0.1", "0.2", "0.3"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891"},
		{"1.5", "1.25", "2.75"},
		{"0", "0", "0"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		d := New()
		require.NoError(t, d.Add(bg(), a, b))
		assert.Equal(t, c.want, d.String(), "Add(%s, %s)", c.a, c.b)
	}
}

func TestSub(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"5", "3", "2"},
		{"3", "5", "-2"},
		{"0.3", "0.1", "0.2"},
		{"-5", "-3", "-2"},
		{"5", "5", "0"},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		d := New()
		require.NoError(t, d.Sub(bg(), a, b))
		assert.Equal(t, c.want, d.String(), "Sub(%s, %s)", c.a, c.b)
	}
}

func TestAddSelfAliasing(t *testing.T) {
	a := mustParse(t, "7", 10)
	require.NoError(t, a.Add(bg(), a, a))
	assert.Equal(t, "14", a.String())
}

func TestSubSharedOperandAliasing(t *testing.T) {
	a := mustParse(t, "10", 10)
	b := mustParse(t, "3", 10)
	require.NoError(t, a.Sub(bg(), a, b))
	assert.Equal(t, "7", a.String())
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"2", "1", 1},
		{"1", "1", 0},
		{"-1", "1", -1},
		{"0", "-0", 0},
		{"1.50", "1.5", 0},
	}
	for _, c := range cases {
		a := mustParse(t, c.a, 10)
		b := mustParse(t, c.b, 10)
		got, err := Cmp(bg(), a, b)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "Cmp(%s, %s)", c.a, c.b)
	}
}
