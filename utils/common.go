package utils

// NODETOL bounds the slack allowed when comparing GLL/quadrature coordinates
// against the reference [0,1] parametric square.
const NODETOL = 1.e-12

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

// Compare applies op to x against val, the same scalar test the teacher's
// Matrix.Find switches on per entry, reduced to the bare scalar case the
// tolerance checks in invmap/remap actually need.
func Compare(op EvalOp, x, val float64) bool {
	switch op {
	case Equal:
		return x == val
	case Less:
		return x < val
	case Greater:
		return x > val
	case LessOrEqual:
		return x <= val
	case GreaterOrEqual:
		return x >= val
	default:
		return false
	}
}
