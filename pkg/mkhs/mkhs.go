package mkhs

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"
)

// Setup instantiates the shared parameters for a session with n
// signers and a row width of t: the BLS12-381 generators, the base
// pairing value e(G1,G2), and t independent public random points in
// G1 sampled via hash-and-pray over fresh randomness.
func Setup(n, t int) (*Mkhs, error) {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	gt, err := pair(g1Gen, g2Gen)
	if err != nil {
		return nil, err
	}

	bigHs := make([]bls12381.G1Affine, t)
	for i := 0; i < t; i++ {
		seed := make([]byte, 32)
		if _, err := rand.Read(seed); err != nil {
			return nil, err
		}
		bigHs[i] = hashToG1(g1Gen, seed)
	}

	return &Mkhs{
		G1:    g1Gen,
		G2:    g2Gen,
		GT:    gt,
		N:     n,
		T:     t,
		BigHs: bigHs,
	}, nil
}

// GenerateKeys produces a fresh KeyPair for clientID: an Ed25519
// signing key, an independently sampled vector of n field elements
// (one component per signer slot, drawn separately — a shared draw
// cloned across slots would make every component of the vector
// equal), the scalar y with its G2 image Y, and the GT images
// hs[i] = e(G1,G2)^x[i].
func (mk *Mkhs) GenerateKeys(clientID uint64) (*KeyPair, error) {
	pubSig, privSig, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	xs := make([]fr.Element, mk.N)
	for i := range xs {
		if _, err := xs[i].SetRandom(); err != nil {
			return nil, err
		}
	}

	var y fr.Element
	if _, err := y.SetRandom(); err != nil {
		return nil, err
	}
	bigY := mulG2(mk.G2, y)

	hs := make([]bls12381.GT, mk.N)
	for i, x := range xs {
		hs[i].Exp(mk.GT, frBigInt(x))
	}

	return &KeyPair{
		SK: SK{K: clientID, SKSig: privSig, X: xs, Y: y},
		PK: PK{PKSig: pubSig, Hs: hs, Y: bigY},
	}, nil
}

// GenerateKeysForClients runs GenerateKeys for every id in ids
// concurrently, short-circuiting on the first failure — the
// per-client key generation work item is embarrassingly parallel
// since each client's key material is independent of every other's.
func (mk *Mkhs) GenerateKeysForClients(ctx context.Context, ids []uint64) (map[uint64]*KeyPair, error) {
	g, _ := errgroup.WithContext(ctx)
	keys := make([]*KeyPair, len(ids))

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			kp, err := mk.GenerateKeys(id)
			if err != nil {
				return err
			}
			keys[i] = kp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[uint64]*KeyPair, len(ids))
	for i, id := range ids {
		out[id] = keys[i]
	}
	return out, nil
}

// Sign produces a single-signer Signature over a row of t messages.
func (mk *Mkhs) Sign(sk *SK, message []fr.Element) (*Signature, error) {
	if len(message) != mk.T {
		return nil, ErrRowLength
	}
	if len(sk.X) != mk.N {
		return nil, ErrKeyVectorLength
	}

	var z fr.Element
	z.SetUint64(sk.K)
	bigZ := mulG2(mk.G2, z)

	tag := sha256.Sum256(serializeG2(bigZ))
	sig := ed25519.Sign(sk.SKSig, tag[:])

	var r, s fr.Element
	if _, err := r.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := s.SetRandom(); err != nil {
		return nil, err
	}

	var x0r fr.Element
	x0r.Add(&sk.X[0], &r)
	bigA := mulG1(mk.G1, x0r)

	bigC := mulG1(mk.G1, s)

	for i, h := range mk.BigHs {
		var ym fr.Element
		ym.Add(&sk.Y, &message[i])
		bigA = addG1(bigA, mulG1(h, ym))
		bigC = addG1(bigC, mulG1(h, message[i]))
	}

	var zInv fr.Element
	zInv.Inverse(&z)
	bigA = mulG1(bigA, zInv)

	var ys fr.Element
	ys.Add(&sk.Y, &s)
	var rMinusYS fr.Element
	rMinusYS.Sub(&r, &ys)
	bigR := mulG1(mk.G1, rMinusYS)

	var negS fr.Element
	negS.Neg(&s)
	bigS := mulG2(mk.G2, negS)

	return &Signature{
		Lams: []Lam{{
			ClientID: sk.K,
			Sig:      sig,
			Z:        bigZ,
			A:        bigA,
			C:        bigC,
		}},
		R: bigR,
		S: bigS,
	}, nil
}

// Eval folds up to n single-signer signatures into one aggregated
// signature: each distinct client_id's A and C shares are summed, the
// first Lam seen for that id lends its Sig and Z, and the R/S
// randomizers are pooled across every input signature.
func (mk *Mkhs) Eval(sigs []*Signature) (*Signature, error) {
	if len(sigs) == 0 {
		return nil, ErrNoSignatures
	}

	take := sigs
	if len(take) > mk.N {
		take = take[:mk.N]
	}

	var rs []bls12381.G1Affine
	var ss []bls12381.G2Affine
	idLam := make(map[uint64]Lam)

	for _, sig := range take {
		rs = append(rs, sig.R)
		ss = append(ss, sig.S)

		for _, lam := range sig.Lams {
			existing, ok := idLam[lam.ClientID]
			if !ok {
				idLam[lam.ClientID] = lam
				continue
			}
			existing.A = addG1(existing.A, lam.A)
			existing.C = addG1(existing.C, lam.C)
			idLam[lam.ClientID] = existing
		}
	}

	lams := make([]Lam, 0, len(idLam))
	for _, lam := range idLam {
		lams = append(lams, lam)
	}

	return &Signature{
		Lams: lams,
		R:    sumG1(rs),
		S:    sumG2(ss),
	}, nil
}

// Verify checks an aggregated Signature against the public keys of
// every client named in it and the combined row of t messages.
//
// Each Lam's Ed25519 tag is checked first (in parallel, short-
// circuiting on the first failure), then the pairing identity is
// evaluated as a biconditional: (AZ == P2) == (P3 == P4). This mirrors
// the reference implementation's check exactly — it rejects only when
// exactly one of the two equalities holds, and accepts when both hold
// or when both fail.
func (mk *Mkhs) Verify(ctx context.Context, pks map[uint64]PK, messages []fr.Element, signature *Signature) error {
	if len(messages) != mk.T {
		return ErrRowLength
	}

	g, _ := errgroup.WithContext(ctx)
	for _, lam := range signature.Lams {
		lam := lam
		g.Go(func() error {
			pk, ok := pks[lam.ClientID]
			if !ok {
				return ErrUnknownSigner
			}
			tag := sha256.Sum256(serializeG2(lam.Z))
			if !ed25519.Verify(pk.PKSig, tag[:], lam.Sig) {
				return ErrTagAuthFailed
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var azPairs, cyPairs []bls12381.GT
	var cTot []bls12381.G1Affine

	for _, lam := range signature.Lams {
		pk := pks[lam.ClientID]

		azp, err := pair(lam.A, lam.Z)
		if err != nil {
			return err
		}
		azPairs = append(azPairs, azp)

		cyp, err := pair(lam.C, pk.Y)
		if err != nil {
			return err
		}
		cyPairs = append(cyPairs, cyp)

		cTot = append(cTot, lam.C)
	}

	azTotal := sumGT(azPairs)
	cyTotal := sumGT(cyPairs)
	cTotal := sumG1(cTot)

	rPair, err := pair(signature.R, mk.G2)
	if err != nil {
		return err
	}
	sPair, err := pair(mk.G1, signature.S)
	if err != nil {
		return err
	}

	var tagsScale []bls12381.GT
	for _, pk := range pks {
		tagsScale = append(tagsScale, pk.Hs[0])
	}
	tagsScaleTotal := sumGT(tagsScale)

	msgPart := make([]bls12381.G1Affine, len(messages))
	for i, m := range messages {
		msgPart[i] = mulG1(mk.BigHs[i], m)
	}
	msgTotal := sumG1(msgPart)

	cTotalPair, err := pair(cTotal, mk.G2)
	if err != nil {
		return err
	}
	msgTotalPair, err := pair(msgTotal, mk.G2)
	if err != nil {
		return err
	}

	p2 := sumGT([]bls12381.GT{tagsScaleTotal, cyTotal, rPair})
	p3 := sumGT([]bls12381.GT{sPair, cTotalPair})
	p4 := msgTotalPair

	e1 := azTotal.Equal(&p2)
	e2 := p3.Equal(&p4)

	if e1 != e2 {
		return ErrVerifyFailed
	}
	return nil
}
