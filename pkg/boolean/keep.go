package boolean

// keepInside decides whether a facet lies on the result boundary, given
// the reduced inside/outside verdicts on its two sides. A facet is on
// the boundary iff the verdict flips across it:
//
//	inside behind, outside in front  -> +1, keep with original orientation
//	outside behind, inside in front  -> -1, keep reversed
//	same verdict on both sides       ->  0, drop (interior or exterior)
func keepInside(wOut, wIn int) int {
	switch {
	case wIn == 1 && wOut == 0:
		return 1
	case wOut == 1 && wIn == 0:
		return -1
	default:
		return 0
	}
}

// signedRef encodes a kept facet as (index+1) with the sign carrying
// its orientation: positive keeps the facet as-is, negative reversed.
type signedRef int

func newSignedRef(i, orientation int) signedRef {
	return signedRef((i + 1) * orientation)
}

func (r signedRef) index() int {
	if r < 0 {
		return int(-r) - 1
	}
	return int(r) - 1
}

func (r signedRef) reversed() bool {
	return r < 0
}

// reverseFace flips a facet's orientation.
func reverseFace(f [3]int) [3]int {
	return [3]int{f[2], f[1], f[0]}
}
