package fuzzy

import (
	"example.com/fuzzy-steer/base/floats"
)

// A Point is one control point of a piecewise-linear membership function.
type Point struct {
	X      float64
	Degree float64
}

// A MembershipFunction is a piecewise-linear fuzzy set described by 3 or 4
// control points with non-decreasing x values and degrees in [0, 1].
// Evaluation beyond the first or last control point holds that point's
// degree, which is how shoulder shapes stay flat out to the domain edge;
// for triangles and trapezoids the edge degrees are 0, so values outside
// the support evaluate to 0.
type MembershipFunction struct {
	points []Point
}

func newMembershipFunction(pts ...Point) (MembershipFunction, error) {
	if len(pts) < 2 {
		return MembershipFunction{}, ErrBadMembershipPoints
	}
	for i, p := range pts {
		if p.Degree < 0 || p.Degree > 1 {
			return MembershipFunction{}, ErrBadMembershipPoints
		}
		if i > 0 && p.X < pts[i-1].X {
			return MembershipFunction{}, ErrBadMembershipPoints
		}
	}
	points := make([]Point, len(pts))
	copy(points, pts)
	return MembershipFunction{points: points}, nil
}

// Trimf builds a triangular membership function rising from 0 at a to 1 at
// b and falling back to 0 at c.
func Trimf(a, b, c float64) (MembershipFunction, error) {
	return newMembershipFunction(Point{a, 0}, Point{b, 1}, Point{c, 0})
}

// Trapmf builds a trapezoidal membership function with feet at a and d and
// a flat top between b and c.
func Trapmf(a, b, c, d float64) (MembershipFunction, error) {
	return newMembershipFunction(Point{a, 0}, Point{b, 1}, Point{c, 1}, Point{d, 0})
}

// LeftShoulder is flat at degree 1 from the domain edge lo to peak and
// falls linearly to 0 at foot.
func LeftShoulder(lo, peak, foot float64) (MembershipFunction, error) {
	return newMembershipFunction(Point{lo, 1}, Point{peak, 1}, Point{foot, 0})
}

// RightShoulder rises linearly from 0 at foot to 1 at peak and stays flat
// out to the domain edge hi.
func RightShoulder(foot, peak, hi float64) (MembershipFunction, error) {
	return newMembershipFunction(Point{foot, 0}, Point{peak, 1}, Point{hi, 1})
}

func (m MembershipFunction) Points() []Point {
	pts := make([]Point, len(m.points))
	copy(pts, m.points)
	return pts
}

// Evaluate returns the membership degree at the crisp value x.
// The result is exact at control points.
func (m MembershipFunction) Evaluate(x float64) float64 {
	pts := m.points
	if x <= pts[0].X {
		return pts[0].Degree
	}
	last := pts[len(pts)-1]
	if x >= last.X {
		return last.Degree
	}
	for i := 1; i < len(pts); i++ {
		if x <= pts[i].X {
			if x == pts[i].X {
				return pts[i].Degree
			}
			return floats.Lerp(pts[i-1].X, pts[i-1].Degree, pts[i].X, pts[i].Degree, x)
		}
	}
	return last.Degree
}

// Sample evaluates the membership function at every sample of u.
func (m MembershipFunction) Sample(u Universe) []float64 {
	ds := make([]float64, u.Len())
	for i, x := range u.Samples() {
		ds[i] = m.Evaluate(x)
	}
	return ds
}
