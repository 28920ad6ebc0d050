// Copyright 2025 Certen Protocol
//
// MKHS — multi-key homomorphic signature over BLS12-381. Distinct
// clients each sign coordinates of a row vector; the aggregator
// combines their signatures into one that verifies against the set of
// the signers' public keys on the coordinate-wise sum of the rows.
package mkhs

import (
	"crypto/ed25519"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SK is a client's MKHS secret key: its session identifier k, an
// Ed25519 signing key binding that identifier to the tag each
// signature carries, a per-client vector x of n field elements (n is
// the number of signers the Mkhs instance was set up for), and a
// per-client scalar y.
type SK struct {
	K     uint64
	SKSig ed25519.PrivateKey
	X     []fr.Element
	Y     fr.Element
}

// PK is a client's MKHS public key: the Ed25519 verifying key, the
// vector hs[i] = e(G1,G2)^x[i], and Y = y·G2.
type PK struct {
	PKSig ed25519.PublicKey
	Hs    []bls12381.GT
	Y     bls12381.G2Affine
}

// KeyPair bundles an SK with its matching PK.
type KeyPair struct {
	SK SK
	PK PK
}

// Lam is one signer's share inside an aggregated Signature.
type Lam struct {
	ClientID uint64
	Sig      []byte // Ed25519 signature over SHA-256(serialize(Z))
	Z        bls12381.G2Affine
	A        bls12381.G1Affine
	C        bls12381.G1Affine
}

// Signature is lams (one per distinct signer once aggregated) plus the
// pooled randomizers R and S.
type Signature struct {
	Lams []Lam
	R    bls12381.G1Affine
	S    bls12381.G2Affine
}

// Mkhs holds the shared, read-only parameters of one protocol session:
// the BLS12-381 generators and pairing value, the signer count n, the
// row width t, and t public random points in G1.
type Mkhs struct {
	G1    bls12381.G1Affine
	G2    bls12381.G2Affine
	GT    bls12381.GT
	N     int
	T     int
	BigHs []bls12381.G1Affine
}
