package resolve

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// signedDists classifies t's corners against plane (n, d). Distances
// within eps of the plane are snapped to zero.
func (s *splitter) signedDists(t triangle, n v3.Vec, d float64) [3]float64 {
	var out [3]float64
	for i, idx := range t {
		dist := n.Dot(s.verts[idx]) - d
		if dist > -s.eps && dist < s.eps {
			dist = 0
		}
		out[i] = dist
	}
	return out
}

// properIntersect reports whether input facet j actually cuts across
// triangle t, i.e. whether t must be split by j's supporting plane.
// That is the case when t straddles the plane and the two triangles
// overlap along the plane-plane intersection line for more than eps.
// The interval of facet j may degenerate to one of its edges lying in
// t's plane: an edge-on-face touch still partitions t's neighborhood
// into different winding regions and must produce a cut.
func (s *splitter) properIntersect(t triangle, j int, nj v3.Vec, dj float64) bool {
	dt := s.signedDists(t, nj, dj)
	if !straddles(dt) {
		return false
	}

	nt, dtOff, ok := s.trianglePlane(t)
	if !ok {
		return false
	}
	df := s.signedDists(triangle(s.src.Faces[j]), nt, dtOff)
	if df[0] == 0 && df[1] == 0 && df[2] == 0 {
		// Coplanar: never split, coincident overlap is resolved by
		// duplicate voting downstream.
		return false
	}

	dir := nt.Cross(nj)
	if dir.Length2() < s.eps*s.eps {
		return false
	}

	lo1, hi1, ok1 := s.lineInterval(t, dt, dir)
	lo2, hi2, ok2 := s.lineInterval(triangle(s.src.Faces[j]), df, dir)
	if !ok1 || !ok2 {
		return false
	}
	lo := lo1
	if lo2 > lo {
		lo = lo2
	}
	hi := hi1
	if hi2 < hi {
		hi = hi2
	}
	return hi-lo > s.eps
}

func straddles(d [3]float64) bool {
	var pos, neg bool
	for _, v := range d {
		if v > 0 {
			pos = true
		} else if v < 0 {
			neg = true
		}
	}
	return pos && neg
}

// trianglePlane is facePlane for an intermediate (already split) piece.
func (s *splitter) trianglePlane(t triangle) (v3.Vec, float64, bool) {
	a, b, c := s.verts[t[0]], s.verts[t[1]], s.verts[t[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	l := n.Length()
	if l < s.eps*s.eps {
		return v3.Vec{}, 0, false
	}
	n = n.DivScalar(l)
	return n, n.Dot(a), true
}

// lineInterval projects the intersection of a triangle with the other
// triangle's plane onto direction dir. The intersection is the set of
// on-plane corners plus the crossing points of sign-changing edges: a
// segment for a straddling or edge-touching triangle, a point for a
// corner touch, empty when the triangle misses the plane entirely.
func (s *splitter) lineInterval(t triangle, d [3]float64, dir v3.Vec) (float64, float64, bool) {
	var pts []float64
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			pts = append(pts, dir.Dot(s.verts[t[i]]))
		}
		j := (i + 1) % 3
		if d[i]*d[j] < 0 {
			f := d[i] / (d[i] - d[j])
			a, b := s.verts[t[i]], s.verts[t[j]]
			p := a.Add(b.Sub(a).MulScalar(f))
			pts = append(pts, dir.Dot(p))
		}
	}
	if len(pts) == 0 {
		return 0, 0, false
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi, true
}

// splitByPlane cuts t by plane (n, d) into the pieces on each side.
// The caller guarantees t straddles the plane. Both sides are built by
// walking t's edges in order, so every piece keeps t's orientation.
// Cut vertices are deduplicated through the splitter's coordinate map,
// which keeps triangulations of shared cut lines index-identical.
func (s *splitter) splitByPlane(t triangle, n v3.Vec, d float64) []triangle {
	dists := s.signedDists(t, n, d)

	var front, back []int
	for i := 0; i < 3; i++ {
		idx := t[i]
		switch {
		case dists[i] > 0:
			front = append(front, idx)
		case dists[i] < 0:
			back = append(back, idx)
		default:
			front = append(front, idx)
			back = append(back, idx)
		}
		j := (i + 1) % 3
		if dists[i]*dists[j] < 0 {
			cut := s.cutEdge(t[i], t[j], dists[i], dists[j])
			front = append(front, cut)
			back = append(back, cut)
		}
	}

	var out []triangle
	out = appendFan(out, front)
	out = appendFan(out, back)
	return out
}

// appendFan fan-triangulates a convex polygon (3 or 4 corners here),
// skipping degenerate slivers that reuse a corner.
func appendFan(out []triangle, poly []int) []triangle {
	for i := 1; i+1 < len(poly); i++ {
		a, b, c := poly[0], poly[i], poly[i+1]
		if a == b || b == c || a == c {
			continue
		}
		out = append(out, triangle{a, b, c})
	}
	return out
}

// cutEdge interpolates the crossing point of edge (a,b) with the
// current plane and interns it in the vertex buffer. The interpolation
// always runs from the lower-indexed endpoint so that the two triangles
// sharing the edge compute bit-identical coordinates.
func (s *splitter) cutEdge(a, b int, da, db float64) int {
	if a > b {
		a, b = b, a
		da, db = db, da
	}
	f := da / (da - db)
	va, vb := s.verts[a], s.verts[b]
	p := va.Add(vb.Sub(va).MulScalar(f))
	return s.addVertex(p)
}

// addVertex interns a coordinate, returning the index of an existing
// exactly equal vertex when one is present.
func (s *splitter) addVertex(p v3.Vec) int {
	k := coordKey{p.X, p.Y, p.Z}
	if i, ok := s.byCoord[k]; ok {
		return i
	}
	i := len(s.verts)
	s.verts = append(s.verts, p)
	s.byCoord[k] = i
	return i
}
