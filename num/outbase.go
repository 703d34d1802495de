package num

import "golang.org/x/exp/slices"

const refDigits = "0123456789ABCDEF"

// OutLong emits exactly size characters for val, zero-padded on the left,
// preceded by a single space if space is true. Used for a single digit of a
// base greater than 16, where each digit itself needs multiple characters.
func OutLong(val int64, size int, space bool, emit func(byte)) {
	if space {
		emit(' ')
	}
	digits := []byte(formatInt64(val))
	for size > len(digits) {
		emit('0')
		size--
	}
	for _, b := range digits {
		emit(b)
	}
}

func formatInt64(v int64) string {
	n := FromInt(v)
	defer Release(&n)
	return Format(n)
}

// OutNum writes n in the given base (2..), one character (or, for bases
// above 16, one zero-padded multi-character group) at a time through emit.
// Base 10 is the common case and is written straight from n's decimal text.
// leadingZero is accepted for interface symmetry with callers that suppress
// a leading zero elsewhere in their own output; zero is always rendered as
// "0" here regardless of base.
func OutNum(n *Num, base int, emit func(byte), leadingZero bool) {
	if IsNeg(n) {
		emit('-')
	}

	if IsZero(n) {
		emit('0')
		return
	}

	if base == 10 {
		s := Format(n)
		for i := 0; i < len(s); i++ {
			if s[i] == '-' {
				continue
			}
			emit(s[i])
		}
		return
	}

	baseNum := FromInt(int64(base))
	defer Release(&baseNum)
	maxDigit := FromInt(int64(base - 1))
	defer Release(&maxDigit)
	width := Length(maxDigit)

	var intPart, fracPart *Num
	if err := Divide(n, One, &intPart, 0); err != nil {
		panic(err)
	}
	defer Release(&intPart)
	Sub(n, intPart, &fracPart, 0)
	defer Release(&fracPart)
	intPart.unscaled.Abs(&intPart.unscaled)
	fracPart.unscaled.Abs(&fracPart.unscaled)

	var digitStack []int64
	var curDig *Num
	for !IsZero(intPart) {
		if err := Modulo(intPart, baseNum, &curDig, 0); err != nil {
			panic(err)
		}
		digitStack = append(digitStack, Int64(curDig))
		if err := Divide(intPart, baseNum, &intPart, 0); err != nil {
			panic(err)
		}
	}
	Release(&curDig)
	slices.Reverse(digitStack)

	for _, d := range digitStack {
		if base <= 16 {
			emit(refDigits[d])
		} else {
			OutLong(d, width, true, emit)
		}
	}

	if n.scale > 0 {
		emit('.')
		preSpace := false
		tNum := Retain(One)
		defer Release(&tNum)
		for int32(Length(tNum)) <= n.scale {
			Multiply(fracPart, baseNum, &fracPart, n.scale)
			fdigit := Int64(fracPart)
			digitNum := FromInt(fdigit)
			Sub(fracPart, digitNum, &fracPart, 0)
			Release(&digitNum)

			if base <= 16 {
				emit(refDigits[fdigit])
			} else {
				OutLong(fdigit, width, preSpace, emit)
				preSpace = true
			}
			Multiply(tNum, baseNum, &tNum, 0)
		}
	}
}
