// Copyright 2025 Certen Protocol
//
// client models one data holder in a VIPER session: it commits to its
// rows under a single blinding secret, signs each row with its MKHS
// key, and can check openings and aggregated signatures it receives
// back from the aggregator.
package client

import (
	"context"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/sync/errgroup"

	"github.com/simonebottoni/viper/pkg/commitment"
	"github.com/simonebottoni/viper/pkg/mkhs"
)

// Client is one participant's local state: its identity, its MKHS key
// pair, the raw values it holds, and the blinding secret it commits
// every value under.
type Client struct {
	ID      uint64
	KeyPair mkhs.KeyPair
	Dataset [][]uint64
	Secret  *big.Int
}

// New constructs a Client from its already-provisioned key pair,
// dataset, and blinding secret.
func New(id uint64, keyPair mkhs.KeyPair, dataset [][]uint64, secret *big.Int) *Client {
	return &Client{ID: id, KeyPair: keyPair, Dataset: dataset, Secret: secret}
}

// ComputeCommitments flattens the client's dataset row-major and
// commits to every value under the client's single blinding secret,
// one commitment per cell, computed concurrently.
func (c *Client) ComputeCommitments(ctx context.Context) ([]commitment.Commitment, error) {
	var flat []*big.Int
	for _, row := range c.Dataset {
		for _, v := range row {
			flat = append(flat, new(big.Int).SetUint64(v))
		}
	}

	commitments := make([]commitment.Commitment, len(flat))
	g, _ := errgroup.WithContext(ctx)
	for i, v := range flat {
		i, v := i, v
		g.Go(func() error {
			commitments[i] = commitment.Commit(v, c.Secret)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return commitments, nil
}

// VerifyCommitment checks that each of commitments opens to the
// matching entry of aggregatedData under the shared random blinding
// factor, stopping at the first failure.
func VerifyCommitment(ctx context.Context, commitments []commitment.Commitment, aggregatedData []*big.Int, random *big.Int) error {
	g, _ := errgroup.WithContext(ctx)
	for i, c := range commitments {
		i, c := i, c
		g.Go(func() error {
			return c.Open(aggregatedData[i], random)
		})
	}
	return g.Wait()
}

// ComputeSignature produces one MKHS signature per row of messages,
// computed concurrently — each row is signed independently under the
// client's MKHS secret key.
func (c *Client) ComputeSignature(ctx context.Context, mk *mkhs.Mkhs, messages [][]fr.Element) ([]*mkhs.Signature, error) {
	signatures := make([]*mkhs.Signature, len(messages))
	g, _ := errgroup.WithContext(ctx)
	for i, row := range messages {
		i, row := i, row
		g.Go(func() error {
			sig, err := mk.Sign(&c.KeyPair.SK, row)
			if err != nil {
				return err
			}
			signatures[i] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return signatures, nil
}

// VerifySignature checks every aggregated row signature against the
// matching row of aggregated data and the full signer key set,
// concurrently, stopping at the first failure.
func VerifySignature(ctx context.Context, mk *mkhs.Mkhs, pks map[uint64]mkhs.PK, aggregatedData [][]fr.Element, aggregatedSignatures []*mkhs.Signature) error {
	g, _ := errgroup.WithContext(ctx)
	for i, sig := range aggregatedSignatures {
		i, sig := i, sig
		g.Go(func() error {
			return mk.Verify(ctx, pks, aggregatedData[i], sig)
		})
	}
	return g.Wait()
}
