package core

// SquaredDistancePointToSegment returns the squared distance from p to the
// closest point of segment [a, b]. A zero-length segment degrades to the
// point distance |a-p|².
func SquaredDistancePointToSegment(p, a, b Vec2) float64 {
	d := b.Sub(a)
	w := a.Sub(p)

	// e = (p-a)·d, the projection parameter scaled by |d|²
	e := -d.Dot(w)
	if e <= 0 {
		return w.LenSq()
	}

	f := d.LenSq()
	if e >= f {
		return b.Sub(p).LenSq()
	}

	sq := w.LenSq() - (e*e)/f
	if sq < 0 {
		// rounding on near-collinear points
		return 0
	}
	return sq
}

// SphereCapsuleCollision reports whether a sphere (center, r) overlaps the
// capsule formed by segment [a, b] with radius capR. Touching counts.
func SphereCapsuleCollision(center Vec2, r float64, a, b Vec2, capR float64) bool {
	sum := r + capR
	return SquaredDistancePointToSegment(center, a, b) <= sum*sum
}

// SweptHit tests a stationary target against a mover's one-frame sweep:
// the capsule from pos to pos+vel with radius r.
func SweptHit(target Vec2, targetR float64, pos, vel Vec2, r float64) bool {
	return SphereCapsuleCollision(target, targetR, pos, pos.Add(vel), r)
}
