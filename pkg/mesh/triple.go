package mesh

// CanonicalTriple returns the unordered identity of a facet: its three
// vertex indices sorted ascending. Two facets describe the same
// triangle (in either orientation) iff their canonical triples match.
func CanonicalTriple(f [3]int) [3]int {
	a, b, c := f[0], f[1], f[2]
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

// SameCycle reports whether two facets with the same unordered triple
// have the same cyclic orientation, i.e. b is a rotation of a.
func SameCycle(a, b [3]int) bool {
	return (a[0] == b[0] && a[1] == b[1] && a[2] == b[2]) ||
		(a[0] == b[1] && a[1] == b[2] && a[2] == b[0]) ||
		(a[0] == b[2] && a[1] == b[0] && a[2] == b[1])
}
