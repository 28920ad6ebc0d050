// Copyright 2025 Certen Protocol
//
// viper-demo exercises one full VIPER round end to end: session setup,
// per-client key generation/commitment/signing, aggregation, opening,
// and verification of both the opened commitments and the aggregated
// signature against the ground-truth column sums.
package main

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"

	"github.com/simonebottoni/viper/pkg/aggregator"
	"github.com/simonebottoni/viper/pkg/client"
	"github.com/simonebottoni/viper/pkg/commitment"
	"github.com/simonebottoni/viper/pkg/config"
	"github.com/simonebottoni/viper/pkg/curve"
	"github.com/simonebottoni/viper/pkg/dataset"
	"github.com/simonebottoni/viper/pkg/mkhs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("viper-demo: config: %v", err)
	}

	log.Printf("starting VIPER round: n=%d clients, t=%d columns, %d rows each",
		cfg.NumClients, cfg.RowWidth, cfg.NumRows)

	ctx := context.Background()

	mk, err := mkhs.Setup(cfg.NumClients, cfg.RowWidth)
	if err != nil {
		log.Fatalf("viper-demo: mkhs setup: %v", err)
	}

	clientIDs := make([]uint64, cfg.NumClients)
	for i := range clientIDs {
		clientIDs[i] = uint64(i + 1)
	}

	keys, err := mk.GenerateKeysForClients(ctx, clientIDs)
	if err != nil {
		log.Fatalf("viper-demo: key generation: %v", err)
	}

	allCommitments := make([][]commitment.Commitment, cfg.NumClients)
	allSignatures := make([][]*mkhs.Signature, cfg.NumClients)
	secrets := make([]*big.Int, cfg.NumClients)
	pks := make(map[uint64]mkhs.PK, cfg.NumClients)
	groundTruth := make([][]uint64, cfg.NumRows)
	for i := range groundTruth {
		groundTruth[i] = make([]uint64, cfg.RowWidth)
	}

	for i, id := range clientIDs {
		raw, err := dataset.Init(cfg.NumRows, cfg.RowWidth)
		if err != nil {
			log.Fatalf("viper-demo: dataset for client %d: %v", id, err)
		}
		for r, row := range raw {
			for c, v := range row {
				groundTruth[r][c] += v
			}
		}

		secret, err := rand.Int(rand.Reader, curve.Default.N)
		if err != nil {
			log.Fatalf("viper-demo: secret for client %d: %v", id, err)
		}

		c := client.New(id, *keys[id], raw, secret)
		secrets[i] = secret
		pks[id] = keys[id].PK

		commitments, err := c.ComputeCommitments(ctx)
		if err != nil {
			log.Fatalf("viper-demo: commitments for client %d: %v", id, err)
		}
		allCommitments[i] = commitments

		messageRows := dataset.ToFrRows(raw)
		signatures, err := c.ComputeSignature(ctx, mk, messageRows)
		if err != nil {
			log.Fatalf("viper-demo: signatures for client %d: %v", id, err)
		}
		allSignatures[i] = signatures
	}

	log.Printf("aggregating %d clients' commitments and signatures", cfg.NumClients)

	aggregatedCommitments, err := aggregator.AggregateCommitments(ctx, allCommitments)
	if err != nil {
		log.Fatalf("viper-demo: aggregate commitments: %v", err)
	}

	aggregatedSignatures, err := aggregator.AggregateSignatures(ctx, mk, allSignatures)
	if err != nil {
		log.Fatalf("viper-demo: aggregate signatures: %v", err)
	}

	aggregatedSecret := new(big.Int)
	for _, s := range secrets {
		aggregatedSecret.Add(aggregatedSecret, s)
	}
	aggregatedSecret.Mod(aggregatedSecret, curve.Default.N)

	opened, err := aggregator.OpenCommitments(ctx, aggregatedCommitments, aggregatedSecret)
	if err != nil {
		log.Fatalf("viper-demo: open commitments: %v", err)
	}

	groundTruthFlat := flattenRowMajor(groundTruth)
	for i, w := range opened {
		if w.Uint64() != groundTruthFlat[i] {
			log.Fatalf("viper-demo: opened value at %d is %s, want %d", i, w.String(), groundTruthFlat[i])
		}
	}
	log.Printf("opened commitments match the true column sums")

	groundTruthBigInt := make([]*big.Int, len(groundTruthFlat))
	for i, v := range groundTruthFlat {
		groundTruthBigInt[i] = new(big.Int).SetUint64(v)
	}
	if err := client.VerifyCommitment(ctx, aggregatedCommitments, groundTruthBigInt, aggregatedSecret); err != nil {
		log.Fatalf("viper-demo: verify commitment: %v", err)
	}

	groundTruthFrRows := dataset.ToFrRows(groundTruth)
	if err := client.VerifySignature(ctx, mk, pks, groundTruthFrRows, aggregatedSignatures); err != nil {
		log.Fatalf("viper-demo: verify signature: %v", err)
	}

	log.Printf("round complete: aggregated signature verifies over %d rows", cfg.NumRows)
}

// flattenRowMajor lays a matrix out row by row, the ordering
// Client.ComputeCommitments and Aggregator.AggregateCommitments both
// assume.
func flattenRowMajor(rows [][]uint64) []uint64 {
	var out []uint64
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}
