// Copyright 2025 Certen Protocol
//
// Commitment — additively-homomorphic Pedersen-style commitment over
// curve.Default. The hiding generator coincides with the binding
// generator (both are curve.Default's G) — this collapses hiding and is
// a known limitation inherited from the reference implementation, not
// a design choice of this port. A production deployment should sample
// an independent H at setup and distribute it with the shared
// parameters instead.
package commitment

import (
	"errors"
	"math/big"

	"github.com/simonebottoni/viper/pkg/curve"
)

// ErrOpenFailed is returned by Open when the claimed opening does not
// match the committed point.
var ErrOpenFailed = errors.New("commitment: open failed")

// Commitment holds a single SmallCurve point. The zero value is the
// commitment to nothing (point at infinity, the additive identity).
type Commitment struct {
	C curve.Point
}

// Commit computes commit(w, r) = w·G + r·G.
func Commit(w, r *big.Int) Commitment {
	c := curve.Default
	g := c.Generator()
	wg := c.Mul(g, w)
	rg := c.Mul(g, r)
	return Commitment{C: c.Add(wg, rg)}
}

// Open succeeds iff c == Commit(w, r).C.
func (c Commitment) Open(w, r *big.Int) error {
	if !c.C.Equal(Commit(w, r).C) {
		return ErrOpenFailed
	}
	return nil
}

// Add returns the commitment whose point is the sum of c and other —
// additive homomorphism: Add(Commit(w1,r1), Commit(w2,r2)) opens to
// (w1+w2, r1+r2).
func (c Commitment) Add(other Commitment) Commitment {
	return Commitment{C: curve.Default.Add(c.C, other.C)}
}

// Sum folds a sequence of commitments starting from the additive
// identity (the point at infinity).
func Sum(commitments []Commitment) Commitment {
	total := Commitment{C: curve.Infinity()}
	for _, c := range commitments {
		total = total.Add(c)
	}
	return total
}
