package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsZero(t *testing.T) {
	n := New()
	assert.True(t, n.IsZero())
	assert.Equal(t, 0, n.Sign())
	assert.Equal(t, 0, n.Scale())
	assert.Equal(t, "0", n.String())
}

func TestNewFromInt64(t *testing.T) {
	cases := []struct {
		in   int64
		want string
		sign int
	}{
		{0, "0", 0},
		{42, "42", 1},
		{-42, "-42", -1},
		{1000000000, "1000000000", 1},
	}
	for _, c := range cases {
		n := NewFromInt64(c.in)
		assert.Equal(t, c.want, n.String())
		assert.Equal(t, c.sign, n.Sign())
	}
}

func TestCreateFromBigdig(t *testing.T) {
	n := CreateFromBigdig(123456789012345)
	assert.Equal(t, "123456789012345", n.String())
}

func TestCreateCopyIndependence(t *testing.T) {
	a := CreateFromBigdig(7)
	b := CreateCopy(a)
	b.digits[0] = 9
	assert.Equal(t, "7", a.String())
}

func TestCopySelfIsNoop(t *testing.T) {
	a := CreateFromBigdig(5)
	a.Copy(a)
	assert.Equal(t, "5", a.String())
}

func TestIntDigitsAndDigits(t *testing.T) {
	n, err := Parse(bg(), "123.4500", 10, false)
	assert.NoError(t, err)
	assert.Equal(t, 3, n.IntDigits())
	assert.Equal(t, 7, n.Digits())
	assert.Equal(t, 4, n.Scale())
}
