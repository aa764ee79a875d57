package boolean

import "errors"

// Operation selects which boolean combination of the two solids to
// extract. The zero value is Union.
type Operation int

const (
	// Union keeps the volume covered by either solid.
	Union Operation = iota
	// Intersect keeps the volume covered by both solids.
	Intersect
	// Minus keeps the volume of A not covered by B.
	Minus
	// Xor keeps the volume covered by exactly one solid.
	Xor
	// Resolve performs no boolean combination: the merged mesh is
	// re-triangulated conflict-free and every facet is retained.
	Resolve
)

// ErrInvalidOperation is returned when an Operation value is not one of
// the five recognized constants. It is raised before any computation.
var ErrInvalidOperation = errors.New("boolean: invalid operation")

// Valid reports whether op is a recognized operation.
func (op Operation) Valid() bool {
	return op >= Union && op <= Resolve
}

func (op Operation) String() string {
	switch op {
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case Minus:
		return "minus"
	case Xor:
		return "xor"
	case Resolve:
		return "resolve"
	default:
		return "unknown"
	}
}

// combine reduces the pair of per-solid winding numbers on one side of
// a facet into a single inside/outside verdict (1 = inside the result).
// Each case is a pure function of the integer pair; Resolve has no
// reduction and is never dispatched here.
func (op Operation) combine(wa, wb int) int {
	insideA := wa > 0
	insideB := wb > 0
	var in bool
	switch op {
	case Union:
		in = insideA || insideB
	case Intersect:
		in = insideA && insideB
	case Minus:
		in = insideA && !insideB
	case Xor:
		in = insideA != insideB
	}
	if in {
		return 1
	}
	return 0
}
