// Copyright 2025 Certen Protocol
//
// DLogSolver — Pollard's-rho discrete-log recovery over curve.Default.
// Given the generator G and a target point Q = w·G with w in [0, n),
// recovers w. Used by the aggregator to open Pedersen commitments
// after subtracting the combined blinding factor.
package dlog

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/simonebottoni/viper/pkg/curve"
)

// ErrExhausted is returned when Pollard's rho completes all allotted
// restarts without finding a non-degenerate collision.
var ErrExhausted = errors.New("dlog: pollard's rho exhausted all restarts")

const maxRestarts = 3

// sequence tracks one walk's running (a, b, X) state together with the
// base points p1, p2 and the two fixed jump points x1 = a1·p1 + b1·p2
// and x2 = a2·p1 + b2·p2 that drive it.
type sequence struct {
	c curve.Curve

	p1, p2 curve.Point
	a1, b1 *big.Int
	x1     curve.Point
	a2, b2 *big.Int
	x2     curve.Point

	a, b *big.Int
	x    curve.Point
}

func newSequence(c curve.Curve, p1, p2 curve.Point) (*sequence, error) {
	a1, err := randRange(c.N)
	if err != nil {
		return nil, err
	}
	b1, err := randRange(c.N)
	if err != nil {
		return nil, err
	}
	a2, err := randRange(c.N)
	if err != nil {
		return nil, err
	}
	b2, err := randRange(c.N)
	if err != nil {
		return nil, err
	}

	x1 := c.Add(c.Mul(p1, a1), c.Mul(p2, b1))
	x2 := c.Add(c.Mul(p1, a2), c.Mul(p2, b2))

	return &sequence{
		c:  c,
		p1: p1, p2: p2,
		a1: a1, b1: b1, x1: x1,
		a2: a2, b2: b2, x2: x2,
		a: big.NewInt(0), b: big.NewInt(0), x: curve.Infinity(),
	}, nil
}

func (s *sequence) clone() *sequence {
	cp := *s
	cp.a = new(big.Int).Set(s.a)
	cp.b = new(big.Int).Set(s.b)
	return &cp
}

// partition classifies the current X into one of three regions by
// floor(X.x / (p/3 + 1)); infinity is treated as region 0.
func (s *sequence) partition() int {
	if s.x.IsInfinity() {
		return 0
	}
	third := new(big.Int).Add(new(big.Int).Div(s.c.P, big.NewInt(3)), big.NewInt(1))
	i := new(big.Int).Div(s.x.X, third)
	return int(i.Int64())
}

// step advances (a, b, X) by one transition and returns the new X, a, b.
func (s *sequence) step() (curve.Point, *big.Int, *big.Int) {
	switch s.partition() {
	case 0:
		s.a.Add(s.a, s.a1)
		s.b.Add(s.b, s.b1)
		s.x = s.c.Add(s.x, s.x1)
	case 1:
		s.a.Mul(s.a, big.NewInt(2))
		s.b.Mul(s.b, big.NewInt(2))
		s.x = s.c.Double(s.x)
	case 2:
		s.a.Add(s.a, s.a2)
		s.b.Add(s.b, s.b2)
		s.x = s.c.Add(s.x, s.x2)
	default:
		panic("dlog: partition out of range")
	}

	s.a.Mod(s.a, s.c.N)
	s.b.Mod(s.b, s.c.N)

	return s.x, s.a, s.b
}

func randRange(n *big.Int) (*big.Int, error) {
	// Uniform in [1, n]: sample [0, n) then shift up by one.
	v, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}

// Solve recovers w such that target == w·G, retrying up to three fresh
// random restarts of at most n steps each before reporting ErrExhausted.
func Solve(g, target curve.Point) (*big.Int, error) {
	return SolveOn(curve.Default, g, target)
}

// SolveOn is Solve parameterized over an explicit curve instance.
func SolveOn(c curve.Curve, g, target curve.Point) (*big.Int, error) {
	steps := c.N.Uint64()

	for attempt := 0; attempt < maxRestarts; attempt++ {
		seq, err := newSequence(c, g, target)
		if err != nil {
			return nil, err
		}

		tortoise := seq
		hare := seq.clone()

		for i := uint64(0); i < steps; i++ {
			x1, a1, b1 := tortoise.step()
			hare.step()
			x2, a2, b2 := hare.step()

			if x1.Equal(x2) {
				if b1.Cmp(b2) == 0 {
					break
				}
				diff := new(big.Int).Sub(a1, a2)
				denom := new(big.Int).Sub(b2, b1)
				denom.Mod(denom, c.N)
				inv := new(big.Int).ModInverse(denom, c.N)
				if inv == nil {
					break
				}
				w := new(big.Int).Mul(diff, inv)
				w.Mod(w, c.N)
				return w, nil
			}
		}
	}

	return nil, ErrExhausted
}
