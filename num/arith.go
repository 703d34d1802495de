package num

// Add sets out to n1+n2. The result's scale is the greater of n1's and
// n2's scales, raised further to scaleMin if that floor is higher. The
// smaller-scale operand is stepped up first so no precision is lost
// aligning the two.
func Add(n1, n2 *Num, out **Num, scaleMin int32) {
	s := maxScale(n1.scale, n2.scale)
	x, y := upscale(n1, n2, s)

	resultScale := maxScale(s, scaleMin)
	sum := NewNum(resultScale)
	sum.unscaled.Add(x, y)
	if s < scaleMin {
		sum.unscaled.Mul(&sum.unscaled, exp10(scaleMin-s))
	}
	install(out, sum)
}

// Sub sets out to n1-n2, with the same scale rule as Add. Operand order
// matters for the sign of the result.
func Sub(n1, n2 *Num, out **Num, scaleMin int32) {
	s := maxScale(n1.scale, n2.scale)
	x, y := upscale(n1, n2, s)

	resultScale := maxScale(s, scaleMin)
	diff := NewNum(resultScale)
	diff.unscaled.Sub(x, y)
	if s < scaleMin {
		diff.unscaled.Mul(&diff.unscaled, exp10(scaleMin-s))
	}
	install(out, diff)
}
