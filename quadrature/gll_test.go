package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestGaussLobattoEndpoints(t *testing.T) {
	for _, nP := range []int{2, 3, 4, 5, 8} {
		g, w := GaussLobatto(nP)
		assert.True(t, near(g.AtVec(0), 0, 1e-13), "nP=%d first node", nP)
		assert.True(t, near(g.AtVec(nP-1), 1, 1e-13), "nP=%d last node", nP)

		var sum float64
		for i := 0; i < nP; i++ {
			assert.True(t, w.AtVec(i) > 0, "nP=%d weight %d must be positive", nP, i)
			sum += w.AtVec(i)
		}
		assert.True(t, near(sum, 1, 1e-12), "nP=%d weights must sum to 1", nP)
	}
}

func TestGaussLobattoSymmetric(t *testing.T) {
	nP := 6
	g, w := GaussLobatto(nP)
	for i := 0; i < nP; i++ {
		j := nP - 1 - i
		assert.True(t, near(g.AtVec(i)+g.AtVec(j), 1, 1e-12), "nodes must be symmetric about 0.5")
		assert.True(t, near(w.AtVec(i), w.AtVec(j), 1e-12), "weights must be symmetric")
	}
}

func TestGaussLobattoExactForLinear(t *testing.T) {
	// GLL quadrature on [0,1] must integrate f(x) = x exactly for nP >= 2.
	nP := 4
	g, w := GaussLobatto(nP)
	var integral float64
	for i := 0; i < nP; i++ {
		integral += w.AtVec(i) * g.AtVec(i)
	}
	assert.True(t, near(integral, 0.5, 1e-12))
}
