package decimal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "-1", "123.456", "-0.001", "1000000000.000000001"}
	for _, s := range cases {
		n := mustParse(t, s, 10)
		assert.Equal(t, s, n.String())
	}
}

func TestStringZeroPreservesScale(t *testing.T) {
	n := mustParse(t, "0.00", 10)
	assert.Equal(t, "0.00", n.String())
}

func TestFormatVerbs(t *testing.T) {
	n := mustParse(t, "42.5", 10)
	assert.Equal(t, "42.5", fmt.Sprintf("%s", n))
	assert.Equal(t, "42.5", fmt.Sprintf("%v", n))
	assert.Equal(t, "42.5", fmt.Sprintf("%d", n))
}

func TestTextHex(t *testing.T) {
	n := mustParse(t, "255", 10)
	s, err := n.Text(bg(), 16)
	require.NoError(t, err)
	assert.Equal(t, "FF", s)
}

func TestTextZeroWithScale(t *testing.T) {
	n := mustParse(t, "0.00", 10)
	s, err := n.Text(bg(), 16)
	require.NoError(t, err)
	assert.Equal(t, "0.00", s)
}

func TestTextFraction(t *testing.T) {
	n := mustParse(t, "10.5", 10)
	s, err := n.Text(bg(), 16)
	require.NoError(t, err)
	assert.Equal(t, "A.8", s)
}

func TestTextAboveHexUsesDigitGroups(t *testing.T) {
	// Above base 16 bc's engine switches from one-character-per-digit to
	// space-separated, zero-padded decimal digit groups (bc_num_printDigits),
	// including a leading separator before the very first integer digit.
	n := mustParse(t, "255", 10)
	s, err := n.Text(bg(), 20)
	require.NoError(t, err)
	assert.Equal(t, " 12 15", s)
}

func TestTextAboveHexNegative(t *testing.T) {
	n := mustParse(t, "-255", 10)
	s, err := n.Text(bg(), 20)
	require.NoError(t, err)
	assert.Equal(t, "- 12 15", s)
}

func TestTextAboveHexFraction(t *testing.T) {
	n := mustParse(t, "0.5", 10)
	s, err := n.Text(bg(), 20)
	require.NoError(t, err)
	assert.Equal(t, " 00.10", s)
}

func TestTextExponent(t *testing.T) {
	n := mustParse(t, "12345", 10)
	assert.Equal(t, "1.2345e+04", n.TextExponent(false))

	n2 := mustParse(t, "0.00012345", 10)
	assert.Equal(t, "1.2345e-04", n2.TextExponent(false))

	n3 := mustParse(t, "0", 10)
	assert.Equal(t, "0e+00", n3.TextExponent(false))
}
