package client

import (
	"context"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/simonebottoni/viper/pkg/aggregator"
	"github.com/simonebottoni/viper/pkg/commitment"
	"github.com/simonebottoni/viper/pkg/curve"
	"github.com/simonebottoni/viper/pkg/mkhs"
)

func frRow(values ...int64) []fr.Element {
	row := make([]fr.Element, len(values))
	for i, v := range values {
		row[i].SetInt64(v)
	}
	return row
}

func TestTwoClientRoundEndToEnd(t *testing.T) {
	ctx := context.Background()
	mk, err := mkhs.Setup(2, 2)
	require.NoError(t, err)

	key1, err := mk.GenerateKeys(1)
	require.NoError(t, err)
	key2, err := mk.GenerateKeys(2)
	require.NoError(t, err)

	secret1 := big.NewInt(11)
	secret2 := big.NewInt(13)

	c1 := New(1, *key1, [][]uint64{{1, 2}, {3, 4}}, secret1)
	c2 := New(2, *key2, [][]uint64{{1, 2}, {3, 4}}, secret2)

	commitments1, err := c1.ComputeCommitments(ctx)
	require.NoError(t, err)
	commitments2, err := c2.ComputeCommitments(ctx)
	require.NoError(t, err)

	aggregatedCommitments, err := aggregator.AggregateCommitments(ctx, [][]commitment.Commitment{commitments1, commitments2})
	require.NoError(t, err)

	aggregatedSecret := new(big.Int).Add(secret1, secret2)
	aggregatedSecret.Mod(aggregatedSecret, curve.Default.N)

	opened, err := aggregator.OpenCommitments(ctx, aggregatedCommitments, aggregatedSecret)
	require.NoError(t, err)

	want := []int64{2, 4, 6, 8}
	require.Len(t, opened, len(want))
	for i, w := range want {
		require.Equal(t, w, opened[i].Int64())
	}

	require.NoError(t, VerifyCommitment(ctx, aggregatedCommitments, toBigInt(want), aggregatedSecret))

	messages1 := [][]fr.Element{frRow(1, 2), frRow(3, 4)}
	messages2 := [][]fr.Element{frRow(1, 2), frRow(3, 4)}

	sigs1, err := c1.ComputeSignature(ctx, mk, messages1)
	require.NoError(t, err)
	sigs2, err := c2.ComputeSignature(ctx, mk, messages2)
	require.NoError(t, err)

	aggregatedSignatures, err := aggregator.AggregateSignatures(ctx, mk, [][]*mkhs.Signature{sigs1, sigs2})
	require.NoError(t, err)

	combinedMessages := [][]fr.Element{frRow(2, 4), frRow(6, 8)}
	pks := map[uint64]mkhs.PK{1: key1.PK, 2: key2.PK}
	require.NoError(t, VerifySignature(ctx, mk, pks, combinedMessages, aggregatedSignatures))
}

func toBigInt(values []int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}
