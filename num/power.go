package num

import "math/big"

// Raise sets out to base**expo. expo is interpreted as an integer: if it
// carries a non-zero scale, Diagnostics.Warnf is called and only the
// integer part is used. An exponent too large to fit a native int is a hard
// error: Raise reports it by panicking with an *ExponentOverflowError after
// routing it through Diagnostics.Errorf, rather than through a recoverable
// return.
func Raise(base, expo *Num, out **Num, scale int32) {
	if expo.scale != 0 {
		currentDiagnostics().Warnf("non-zero scale in exponent")
	}

	if !Fits(expo) && CompareMagnitude(expo, One) > 0 {
		currentDiagnostics().Errorf("exponent too large in raise")
		panic(&ExponentOverflowError{Exponent: Format(expo)})
	}
	e := Int64(expo)

	if e == 0 {
		install(out, Retain(One))
		return
	}

	neg := e < 0
	eAbs := e
	if neg {
		eAbs = -e
	}

	var rscale int32
	if neg {
		rscale = scale
	} else {
		rscale = minScale(base.scale*int32(eAbs), maxScale(scale, base.scale))
	}

	temp := NewNum(rscale)
	temp.unscaled.Exp(&base.unscaled, big.NewInt(eAbs), nil)

	diff := base.scale*int32(eAbs) - rscale
	switch {
	case diff < 0:
		temp.unscaled.Mul(&temp.unscaled, exp10(-diff))
	case diff > 0:
		temp.unscaled.Quo(&temp.unscaled, exp10(diff))
	}

	if neg {
		defer Release(&temp)
		Divide(One, temp, out, rscale)
		return
	}
	install(out, temp)
}

// Raisemod sets out to base**expo mod m, computed by square-and-multiply
// with every intermediate product reduced modulo m. It returns ErrDivByZero
// if m is zero and ErrNegativeExponent if expo is negative. A non-zero
// scale on base, expo or m triggers a Diagnostics.Warnf; only expo is then
// truncated to its integer part, while base and m are used as given.
func Raisemod(base, expo, mod *Num, out **Num, scale int32) error {
	if IsZero(mod) {
		return ErrDivByZero
	}
	if IsNeg(expo) {
		return ErrNegativeExponent
	}

	if base.scale != 0 {
		currentDiagnostics().Warnf("non-zero scale in base")
	}
	if mod.scale != 0 {
		currentDiagnostics().Warnf("non-zero scale in modulus")
	}

	var exponent *Num
	if expo.scale != 0 {
		currentDiagnostics().Warnf("non-zero scale in exponent")
		if err := Divide(expo, One, &exponent, 0); err != nil {
			return err
		}
	} else {
		exponent = Retain(expo)
	}
	defer Release(&exponent)

	power := Retain(base)
	defer Release(&power)
	temp := Retain(One)
	defer Release(&temp)
	var parity *Num
	InitZero(&parity)
	defer Release(&parity)

	rscale := maxScale(scale, base.scale)

	for !IsZero(exponent) {
		if err := Divmod(exponent, Two, &exponent, &parity, 0); err != nil {
			return err
		}
		if !IsZero(parity) {
			Multiply(temp, power, &temp, rscale)
			if err := Modulo(temp, mod, &temp, scale); err != nil {
				return err
			}
		}
		Multiply(power, power, &power, rscale)
		if err := Modulo(power, mod, &power, scale); err != nil {
			return err
		}
	}

	install(out, Retain(temp))
	return nil
}
