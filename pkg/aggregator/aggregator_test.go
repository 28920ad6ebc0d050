package aggregator

import (
	"context"
	"math/big"
	"testing"

	"github.com/simonebottoni/viper/pkg/commitment"
)

func commitRow(row []int64, secret *big.Int) []commitment.Commitment {
	out := make([]commitment.Commitment, len(row))
	for i, v := range row {
		out[i] = commitment.Commit(big.NewInt(v), secret)
	}
	return out
}

func TestAggregateCommitmentsAndOpen(t *testing.T) {
	secret1 := big.NewInt(11)
	secret2 := big.NewInt(13)

	client1 := commitRow([]int64{1, 2, 3, 4}, secret1)
	client2 := commitRow([]int64{1, 2, 3, 4}, secret2)

	aggregated, err := AggregateCommitments(context.Background(), [][]commitment.Commitment{client1, client2})
	if err != nil {
		t.Fatalf("AggregateCommitments failed: %v", err)
	}

	aggregatedSecret := new(big.Int).Add(secret1, secret2)
	opened, err := OpenCommitments(context.Background(), aggregated, aggregatedSecret)
	if err != nil {
		t.Fatalf("OpenCommitments failed: %v", err)
	}

	want := []int64{2, 4, 6, 8}
	if len(opened) != len(want) {
		t.Fatalf("got %d opened values, want %d", len(opened), len(want))
	}
	for i, w := range want {
		if opened[i].Int64() != w {
			t.Fatalf("opened[%d] = %s, want %d", i, opened[i].String(), w)
		}
	}
}

func TestAggregateCommitmentsEmptyDataset(t *testing.T) {
	if _, err := AggregateCommitments(context.Background(), nil); err != ErrEmptyDataset {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}
