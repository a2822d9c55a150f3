package geom

// ClosestOnSegment returns the point on segment [a, b] closest to p.
// For a zero-length segment it returns a.
func ClosestOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	l2 := ab.Size2()
	if l2 == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab)
	if t <= 0 {
		return a
	}
	if t >= l2 {
		return b
	}
	return Point{
		X: a.X + ab.X*t/l2,
		Y: a.Y + ab.Y*t/l2,
	}
}

// DistToSegment returns the distance from p to segment [a, b], rounded
// to the nearest micron.
func DistToSegment(p, a, b Point) int64 {
	return Dist(p, ClosestOnSegment(p, a, b))
}
