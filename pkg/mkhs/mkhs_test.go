package mkhs

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func frRow(values ...uint64) []fr.Element {
	row := make([]fr.Element, len(values))
	for i, v := range values {
		row[i].SetUint64(v)
	}
	return row
}

func TestSingleSignatureVerifies(t *testing.T) {
	mk, err := Setup(2, 2)
	require.NoError(t, err)

	key, err := mk.GenerateKeys(7)
	require.NoError(t, err)

	messages := frRow(2, 10)
	sig, err := mk.Sign(&key.SK, messages)
	require.NoError(t, err)

	pks := map[uint64]PK{7: key.PK}
	require.NoError(t, mk.Verify(context.Background(), pks, messages, sig))
}

func TestAggregatedSignatureVerifies(t *testing.T) {
	mk, err := Setup(2, 2)
	require.NoError(t, err)

	key1, err := mk.GenerateKeys(1)
	require.NoError(t, err)
	key2, err := mk.GenerateKeys(2)
	require.NoError(t, err)

	messages1 := frRow(2, 10)
	messages2 := frRow(2, 10)

	sig1, err := mk.Sign(&key1.SK, messages1)
	require.NoError(t, err)
	sig2, err := mk.Sign(&key2.SK, messages2)
	require.NoError(t, err)

	combined := make([]fr.Element, mk.T)
	for i := range combined {
		combined[i].Add(&messages1[i], &messages2[i])
	}

	aggregated, err := mk.Eval([]*Signature{sig1, sig2})
	require.NoError(t, err)
	require.Len(t, aggregated.Lams, 2)

	pks := map[uint64]PK{1: key1.PK, 2: key2.PK}
	require.NoError(t, mk.Verify(context.Background(), pks, combined, aggregated))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	mk, err := Setup(1, 2)
	require.NoError(t, err)

	key, err := mk.GenerateKeys(1)
	require.NoError(t, err)

	messages := frRow(2, 10)
	sig, err := mk.Sign(&key.SK, messages)
	require.NoError(t, err)

	tampered := frRow(3, 10)
	pks := map[uint64]PK{1: key.PK}
	require.ErrorIs(t, mk.Verify(context.Background(), pks, tampered, sig), ErrVerifyFailed)
}

func TestVerifyRejectsUnknownSigner(t *testing.T) {
	mk, err := Setup(1, 1)
	require.NoError(t, err)

	key, err := mk.GenerateKeys(1)
	require.NoError(t, err)

	messages := frRow(5)
	sig, err := mk.Sign(&key.SK, messages)
	require.NoError(t, err)

	require.ErrorIs(t, mk.Verify(context.Background(), map[uint64]PK{}, messages, sig), ErrUnknownSigner)
}

func TestGenerateKeysSamplesIndependentVector(t *testing.T) {
	mk, err := Setup(4, 1)
	require.NoError(t, err)

	key, err := mk.GenerateKeys(1)
	require.NoError(t, err)

	for i := 0; i < len(key.SK.X); i++ {
		for j := i + 1; j < len(key.SK.X); j++ {
			require.False(t, key.SK.X[i].Equal(&key.SK.X[j]), "key vector components must be sampled independently")
		}
	}
}

func TestGenerateKeysForClientsConcurrent(t *testing.T) {
	mk, err := Setup(3, 1)
	require.NoError(t, err)

	ids := []uint64{10, 20, 30}
	keys, err := mk.GenerateKeysForClients(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, keys, 3)
	for _, id := range ids {
		require.NotNil(t, keys[id])
		require.Equal(t, id, keys[id].SK.K)
	}
}
