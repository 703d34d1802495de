package num

import "math/big"

// bigTen seeds exp10.
var bigTen = big.NewInt(10)

// exp10Cache memoizes 10**i for the range most operations actually need.
var exp10Cache [64]big.Int = func() [64]big.Int {
	var cache [64]big.Int
	p := big.NewInt(1)
	for i := range cache {
		cache[i].Set(p)
		p = new(big.Int).Mul(p, bigTen)
	}
	return cache
}()

// exp10 returns 10**x as a *big.Int. x must be non-negative.
func exp10(x int32) *big.Int {
	if int(x) < len(exp10Cache) {
		return &exp10Cache[x]
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(x)), nil)
}

// shiftTo returns value shifted from fromScale to toScale: multiplied
// through a power of ten when the target scale is larger (exact), or
// truncate-divided when it is smaller. Equal scales return value unchanged.
func shiftTo(value *big.Int, fromScale, toScale int32) *big.Int {
	switch {
	case toScale > fromScale:
		return new(big.Int).Mul(value, exp10(toScale-fromScale))
	case toScale < fromScale:
		return new(big.Int).Quo(value, exp10(fromScale-toScale))
	default:
		return value
	}
}

// upscale returns the unscaled values of n1 and n2 as if both were shifted
// up to scale s. Comparisons and additive operations only ever raise the
// smaller-scale operand; they never lower either one.
func upscale(n1, n2 *Num, s int32) (*big.Int, *big.Int) {
	return shiftTo(&n1.unscaled, n1.scale, s), shiftTo(&n2.unscaled, n2.scale, s)
}

func maxScale(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func minScale(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxScale3(a, b, c int32) int32 {
	return maxScale(a, maxScale(b, c))
}

