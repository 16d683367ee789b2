package utils

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		op   EvalOp
		x    float64
		val  float64
		want bool
	}{
		{Equal, 1.0, 1.0, true},
		{Equal, 1.0, 1.0 + NODETOL, false},
		{Less, 0.5, 1.0, true},
		{Less, 1.5, 1.0, false},
		{Greater, 1.5, 1.0, true},
		{LessOrEqual, 1.0, 1.0, true},
		{GreaterOrEqual, 1.0, 1.0, true},
	}
	for _, c := range cases {
		if got := Compare(c.op, c.x, c.val); got != c.want {
			t.Errorf("Compare(%v, %v, %v) = %v, want %v", c.op, c.x, c.val, got, c.want)
		}
	}
}
