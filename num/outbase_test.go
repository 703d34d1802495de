package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collectOutNum(n *Num, base int, leadingZero bool) string {
	var buf []byte
	OutNum(n, base, func(b byte) { buf = append(buf, b) }, leadingZero)
	return string(buf)
}

func TestOutNumBase10MatchesFormat(t *testing.T) {
	var n *Num
	Parse(&n, "-123.45", 4)
	defer Release(&n)
	require.Equal(t, Format(n), collectOutNum(n, 10, false))
}

func TestOutNumBinary(t *testing.T) {
	var n *Num
	Parse(&n, "10", 0)
	defer Release(&n)
	require.Equal(t, "1010", collectOutNum(n, 2, false))
}

func TestOutNumHex(t *testing.T) {
	var n *Num
	Parse(&n, "255", 0)
	defer Release(&n)
	require.Equal(t, "FF", collectOutNum(n, 16, false))
}

func TestOutNumZero(t *testing.T) {
	var z *Num
	InitZero(&z)
	defer Release(&z)
	require.Equal(t, "0", collectOutNum(z, 16, false))
	require.Equal(t, "0", collectOutNum(z, 10, false))
}

func TestOutNumNegativeBinary(t *testing.T) {
	var n *Num
	Parse(&n, "-5", 0)
	defer Release(&n)
	require.Equal(t, "-101", collectOutNum(n, 2, false))
}

func TestOutNumBaseAbove16UsesOutLongPerDigit(t *testing.T) {
	var n *Num
	Parse(&n, "255", 0)
	defer Release(&n)
	// max digit value for base 256 is 255, three decimal digits wide, so a
	// single base-256 digit of 255 needs no padding...
	require.Equal(t, " 255", collectOutNum(n, 256, false))

	var small *Num
	Parse(&small, "5", 0)
	defer Release(&small)
	// ...but a digit value of 5 is zero-padded to that same width 3.
	require.Equal(t, " 005", collectOutNum(small, 256, false))
}

func TestOutNumFractionalDigitsNonDecimalBase(t *testing.T) {
	var half *Num
	Parse(&half, "0.5", 1)
	defer Release(&half)
	require.Equal(t, ".8", collectOutNum(half, 16, false))

	var tenth *Num
	Parse(&tenth, "0.10", 2)
	defer Release(&tenth)
	require.Equal(t, ".19", collectOutNum(tenth, 16, false))
}

// The fractional-digit loop stops once the decimal digit length of the
// accumulated base power exceeds the operand's scale, not once the
// remainder reaches zero. For small output bases that grows slowly, so the
// expansion can run past the point the value is exactly represented,
// trailing zero digits and all.
func TestOutNumFractionalDigitsSmallBaseRunsToDigitLengthBound(t *testing.T) {
	var half *Num
	Parse(&half, "0.5", 1)
	defer Release(&half)
	require.Equal(t, ".1000", collectOutNum(half, 2, false))

	var tenth *Num
	Parse(&tenth, "0.1", 1)
	defer Release(&tenth)
	require.Equal(t, ".0001", collectOutNum(tenth, 2, false))
}

func TestOutLongPadsToWidth(t *testing.T) {
	var got []byte
	OutLong(7, 3, false, func(b byte) { got = append(got, b) })
	require.Equal(t, "007", string(got))
}

func TestOutLongLeadingSpace(t *testing.T) {
	var got []byte
	OutLong(7, 1, true, func(b byte) { got = append(got, b) })
	require.Equal(t, " 7", string(got))
}
