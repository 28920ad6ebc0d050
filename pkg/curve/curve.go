// Copyright 2025 Certen Protocol
//
// SmallCurve — affine point arithmetic on a ~32-bit prime-order
// short-Weierstrass curve. Used only as the group underlying the
// VIPER Pedersen commitment and its Pollard's-rho discrete-log solver;
// it is not meant to offer cryptographic strength on its own.
package curve

import (
	"errors"
	"math/big"
)

// ErrInvariantViolation indicates corrupt parameters or inputs outside
// the protocol's domain — e.g. a required modular inverse does not
// exist. It always indicates a programmer error, never an input the
// protocol is expected to tolerate.
var ErrInvariantViolation = errors.New("curve: invariant violation")

// invariantPanic is raised by modInverse when an inverse does not
// exist, mirroring the reference implementation's use of
// Option::unwrap() on every modular inverse. A caller that defers
// Recover gets it back as an error carrying ErrInvariantViolation; no
// package in this module does so, so the panic ends the round.
type invariantPanic struct{ err error }

func panicInvariant(detail string) {
	panic(invariantPanic{err: errors.New("curve: " + detail)})
}

// Recover, deferred as `defer curve.Recover(&err)`, turns an
// invariantPanic propagating out of the enclosing function into an
// error stored in *err. Any other panic is re-raised unchanged.
func Recover(err *error) {
	if r := recover(); r != nil {
		if ip, ok := r.(invariantPanic); ok {
			*err = errors.Join(ErrInvariantViolation, ip.err)
			return
		}
		panic(r)
	}
}

// Curve fixes the short-Weierstrass parameters y² = x³ + ax + b (mod p)
// of a prime-order n group, plus a distinguished generator. The
// protocol uses a single, global instance (Default) — the zero value is
// never meaningful on its own.
type Curve struct {
	A, B, P, N *big.Int
	Gx, Gy     *big.Int
}

// Default is the protocol-wide SmallCurve instance. Its parameters are
// process-wide constants (spec §9 "Global state"); treat it as an
// immutable context value rather than mutating any of its fields.
var Default = Curve{
	A:  big.NewInt(203298074),
	B:  big.NewInt(2030070442),
	P:  big.NewInt(2756527723),
	N:  big.NewInt(2756629331),
	Gx: big.NewInt(1668671046),
	Gy: big.NewInt(372808598),
}

// Generator returns the curve's distinguished base point G.
func (c Curve) Generator() Point {
	return Point{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
}

// Point is either the point at infinity (the additive identity) or an
// affine pair (x, y) with x, y in [0, p). Equality is structural.
type Point struct {
	X, Y *big.Int // both nil at the point at infinity
}

// Infinity returns the point at infinity.
func Infinity() Point { return Point{} }

// IsInfinity reports whether p is the additive identity.
func (p Point) IsInfinity() bool { return p.X == nil }

// Equal reports structural equality of two points.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

func modInverse(a, m *big.Int) *big.Int {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		panicInvariant("modular inverse does not exist")
	}
	return inv
}

func mod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	return r
}

// Negate returns -P. The point at infinity negates to itself.
func (c Curve) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return Point{X: new(big.Int).Set(p.X), Y: mod(new(big.Int).Neg(p.Y), c.P)}
}

// Double returns P + P using the tangent-line formula.
func (c Curve) Double(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	if p.Y.Sign() == 0 {
		return Infinity()
	}

	// lambda = (3x^2 + a) * (2y)^-1 mod p
	threeX2 := new(big.Int).Mul(big.NewInt(3), new(big.Int).Exp(p.X, big.NewInt(2), c.P))
	num := mod(new(big.Int).Add(threeX2, c.A), c.P)
	den := modInverse(mod(new(big.Int).Mul(big.NewInt(2), p.Y), c.P), c.P)
	lambda := mod(new(big.Int).Mul(num, den), c.P)

	x3 := mod(new(big.Int).Sub(new(big.Int).Exp(lambda, big.NewInt(2), c.P), new(big.Int).Mul(big.NewInt(2), p.X)), c.P)
	y3 := mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y), c.P)

	return Point{X: x3, Y: y3}
}

// Add returns P + Q, dispatching to Double when the operands coincide.
func (c Curve) Add(p, q Point) Point {
	if p.Equal(q) {
		return c.Double(p)
	}
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if q.Equal(c.Negate(p)) {
		return Infinity()
	}

	num := mod(new(big.Int).Sub(q.Y, p.Y), c.P)
	den := modInverse(mod(new(big.Int).Sub(q.X, p.X), c.P), c.P)
	lambda := mod(new(big.Int).Mul(num, den), c.P)

	x3 := mod(new(big.Int).Sub(new(big.Int).Sub(new(big.Int).Exp(lambda, big.NewInt(2), c.P), p.X), q.X), c.P)
	y3 := mod(new(big.Int).Sub(new(big.Int).Mul(lambda, new(big.Int).Sub(p.X, x3)), p.Y), c.P)

	return Point{X: x3, Y: y3}
}

// Mul returns k·P via double-and-add scanning k's bits from least to
// most significant. A negative k returns -(|k|·P).
func (c Curve) Mul(p Point, k *big.Int) Point {
	if p.IsInfinity() || k.Sign() == 0 {
		return Infinity()
	}

	acc := Infinity()
	cur := p
	scalar := new(big.Int).Abs(k)

	zero := big.NewInt(0)
	one := big.NewInt(1)
	for scalar.Cmp(zero) > 0 {
		bit := new(big.Int).And(scalar, one)
		scalar.Rsh(scalar, 1)
		if bit.Cmp(one) == 0 {
			acc = c.Add(acc, cur)
		}
		cur = c.Double(cur)
	}

	if k.Sign() < 0 {
		acc = c.Negate(acc)
	}

	return acc
}
