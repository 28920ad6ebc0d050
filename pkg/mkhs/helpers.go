package mkhs

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// addG1 folds a, b through Jacobian coordinates (the zero Jacobian
// value is the point at infinity) and converts the sum back to affine.
func addG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var res bls12381.G1Affine
	res.FromJacobian(&aj)
	return res
}

func sumG1(points []bls12381.G1Affine) bls12381.G1Affine {
	var acc bls12381.G1Jac
	for _, p := range points {
		var j bls12381.G1Jac
		j.FromAffine(&p)
		acc.AddAssign(&j)
	}
	var res bls12381.G1Affine
	res.FromJacobian(&acc)
	return res
}

func sumG2(points []bls12381.G2Affine) bls12381.G2Affine {
	var acc bls12381.G2Jac
	for _, p := range points {
		var j bls12381.G2Jac
		j.FromAffine(&p)
		acc.AddAssign(&j)
	}
	var res bls12381.G2Affine
	res.FromJacobian(&acc)
	return res
}

func frBigInt(e fr.Element) *big.Int {
	var b big.Int
	e.BigInt(&b)
	return &b
}

func mulG1(p bls12381.G1Affine, scalar fr.Element) bls12381.G1Affine {
	exp := frBigInt(scalar)
	var res bls12381.G1Affine
	res.ScalarMultiplication(&p, exp)
	return res
}

func mulG2(p bls12381.G2Affine, scalar fr.Element) bls12381.G2Affine {
	exp := frBigInt(scalar)
	var res bls12381.G2Affine
	res.ScalarMultiplication(&p, exp)
	return res
}

func pair(p bls12381.G1Affine, q bls12381.G2Affine) (bls12381.GT, error) {
	return bls12381.Pair([]bls12381.G1Affine{p}, []bls12381.G2Affine{q})
}

// sumGT multiplies a sequence of GT elements; the empty product is the
// identity (SetOne).
func sumGT(values []bls12381.GT) bls12381.GT {
	var acc bls12381.GT
	acc.SetOne()
	for _, v := range values {
		acc.Mul(&acc, &v)
	}
	return acc
}

// hashToG1 maps an arbitrary-length seed to a point in G1 using the
// "hash and pray" method: the seed is hashed and the hash is tried as a
// compressed-point encoding; failing that, it is reduced to a scalar
// and multiplied against the generator.
func hashToG1(g1Gen bls12381.G1Affine, seed []byte) bls12381.G1Affine {
	h := sha256.New()
	h.Write([]byte("VIPER_MKHS_BLS12381G1_"))
	h.Write(seed)

	var counter uint64
	for {
		h2 := sha256.New()
		h2.Write(h.Sum(nil))
		binary.Write(h2, binary.BigEndian, counter)
		hash := h2.Sum(nil)

		var point bls12381.G1Affine
		if _, err := point.SetBytes(hash); err == nil && !point.IsInfinity() {
			return point
		}

		var scalar fr.Element
		scalar.SetBytes(hash)
		result := mulG1(g1Gen, scalar)
		if !result.IsInfinity() {
			return result
		}

		counter++
		if counter > 1000 {
			return g1Gen
		}
	}
}

// serializeG2 returns the compressed encoding of a G2 point, the input
// to the Ed25519 tag signature over a Lam's Z.
func serializeG2(p bls12381.G2Affine) []byte {
	b := p.Bytes()
	return b[:]
}
