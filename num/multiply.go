package num

// Multiply sets out to n1*n2. The exact scale of the big-integer product is
// n1.Scale()+n2.Scale(); the stored result scale is the smallest of that
// exact scale and max(scale, n1.Scale(), n2.Scale()) — at least as precise
// as either operand and never more precise than the exact product. The
// result exceeds the caller's requested scale when an operand's own scale
// is larger.
func Multiply(n1, n2 *Num, out **Num, scale int32) {
	fullScale := n1.scale + n2.scale
	resultScale := minScale(fullScale, maxScale3(scale, n1.scale, n2.scale))

	prod := NewNum(resultScale)
	prod.unscaled.Mul(&n1.unscaled, &n2.unscaled)
	if fullScale > resultScale {
		prod.unscaled.Quo(&prod.unscaled, exp10(fullScale-resultScale))
	}
	install(out, prod)
}
