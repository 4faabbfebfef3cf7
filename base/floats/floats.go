package floats

func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// Lerp interpolates linearly between (x0, y0) and (x1, y1) at x.
// A zero-width segment yields y1.
func Lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 == x0 {
		return y1
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

func Sum(fs []float64) float64 {
	s := 0.0
	for _, f := range fs {
		s += f
	}
	return s
}

func Dot(xs, ys []float64) float64 {
	if len(xs) != len(ys) {
		panic("unexpected number of values")
	}
	s := 0.0
	for i := range xs {
		s += xs[i] * ys[i]
	}
	return s
}
