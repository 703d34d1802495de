package num

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivideByZero(t *testing.T) {
	var a, out *Num
	Parse(&a, "1", 0)
	defer Release(&a)
	err := Divide(a, Zero, &out, 4)
	require.ErrorIs(t, err, ErrDivByZero)
}

func TestDivideTruncatesTowardZero(t *testing.T) {
	var a, b, q *Num
	Parse(&a, "10", 0)
	Parse(&b, "3", 0)
	defer Release(&a)
	defer Release(&b)
	defer Release(&q)

	require.NoError(t, Divide(a, b, &q, 4))
	require.Equal(t, "3.3333", Format(q))
}

func TestDivideNegativeTruncatesTowardZero(t *testing.T) {
	var a, b, q *Num
	Parse(&a, "-10", 0)
	Parse(&b, "3", 0)
	defer Release(&a)
	defer Release(&b)
	defer Release(&q)

	require.NoError(t, Divide(a, b, &q, 4))
	require.Equal(t, "-3.3333", Format(q))
}

func TestDivideIdentity(t *testing.T) {
	var a, q *Num
	Parse(&a, "19.75", 4)
	defer Release(&a)
	defer Release(&q)

	require.NoError(t, Divide(a, One, &q, a.Scale()))
	require.Equal(t, Format(a), Format(q))
}

func TestDivmodReconstructsDividend(t *testing.T) {
	var a, b, q, r, prod, sum *Num
	Parse(&a, "17", 0)
	Parse(&b, "5", 0)
	defer Release(&a)
	defer Release(&b)
	defer Release(&q)
	defer Release(&r)
	defer Release(&prod)
	defer Release(&sum)

	require.NoError(t, Divmod(a, b, &q, &r, 0))
	require.Equal(t, "3", Format(q))
	require.Equal(t, "2", Format(r))

	Multiply(q, b, &prod, 0)
	Add(prod, r, &sum, 0)
	require.Equal(t, Format(a), Format(sum))
}

func TestModuloByZero(t *testing.T) {
	var a, out *Num
	Parse(&a, "1", 0)
	defer Release(&a)
	err := Modulo(a, Zero, &out, 0)
	require.ErrorIs(t, err, ErrDivByZero)
}

func TestModuloMatchesDivmodRemainder(t *testing.T) {
	var a, b, r1, q, r2 *Num
	Parse(&a, "100", 0)
	Parse(&b, "7", 0)
	defer Release(&a)
	defer Release(&b)
	defer Release(&r1)
	defer Release(&q)
	defer Release(&r2)

	require.NoError(t, Modulo(a, b, &r1, 0))
	require.NoError(t, Divmod(a, b, &q, &r2, 0))
	require.Equal(t, Format(r1), Format(r2))
}
