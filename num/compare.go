package num

// Compare aligns n1 and n2 to their common (larger) scale and returns -1, 0
// or +1 according to their signed ordering.
func Compare(n1, n2 *Num) int {
	return doCompare(n1, n2, true)
}

// CompareMagnitude compares |n1| to |n2| after the same scale alignment as
// Compare, ignoring sign.
func CompareMagnitude(n1, n2 *Num) int {
	return doCompare(n1, n2, false)
}

func doCompare(n1, n2 *Num, useSign bool) int {
	s := maxScale(n1.scale, n2.scale)
	x, y := upscale(n1, n2, s)
	var c int
	if useSign {
		c = x.Cmp(y)
	} else {
		c = x.CmpAbs(y)
	}
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
