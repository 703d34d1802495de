package num

// Sqrt replaces the slot's value with floor(sqrt(v)) computed at working
// scale rscale = max(scale, v.Scale()). It returns false (leaving the slot
// unchanged) if v is negative. The radicand is shifted by
// step = v.Scale() + 2*(rscale-v.Scale()) before taking the integer square
// root, which is exact up to truncation because the shifted radicand then
// carries scale 2*rscale, which is always even.
func Sqrt(slot **Num, scale int32) bool {
	v := *slot
	switch Compare(v, Zero) {
	case -1:
		return false
	case 0:
		install(slot, Retain(Zero))
		return true
	}
	if Compare(v, One) == 0 {
		install(slot, Retain(One))
		return true
	}

	rscale := maxScale(scale, v.scale)
	step := v.scale + 2*(rscale-v.scale)

	result := NewNum(rscale)
	radicand := shiftTo(&v.unscaled, 0, step)
	result.unscaled.Sqrt(radicand)
	install(slot, result)
	return true
}
