// Copyright 2025 Certen Protocol
//
// aggregator combines the per-client commitments and signatures that
// flow into a VIPER session into the pooled values the coordinator
// publishes: summed commitments, folded MKHS signatures, and opened
// plaintext sums.
package aggregator

import (
	"context"
	"errors"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/simonebottoni/viper/pkg/commitment"
	"github.com/simonebottoni/viper/pkg/curve"
	"github.com/simonebottoni/viper/pkg/dlog"
	"github.com/simonebottoni/viper/pkg/mkhs"
)

// ErrEmptyDataset is returned when transpose is given no rows.
var ErrEmptyDataset = errors.New("aggregator: dataset has no rows")

// AggregateCommitments takes one flat slice of commitments per client
// (all sharing the same length and cell ordering) and returns, for
// each cell position, the sum of that position's commitment across
// every client.
func AggregateCommitments(ctx context.Context, commitments [][]commitment.Commitment) ([]commitment.Commitment, error) {
	columns, err := transpose(commitments)
	if err != nil {
		return nil, err
	}

	out := make([]commitment.Commitment, len(columns))
	g, _ := errgroup.WithContext(ctx)
	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			out[i] = commitment.Sum(col)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregateSignatures takes one slice of per-row signatures per client
// and folds, for each row index, every client's signature for that
// row into a single aggregated MKHS signature.
func AggregateSignatures(ctx context.Context, mk *mkhs.Mkhs, signatures [][]*mkhs.Signature) ([]*mkhs.Signature, error) {
	rows, err := transpose(signatures)
	if err != nil {
		return nil, err
	}

	out := make([]*mkhs.Signature, len(rows))
	g, _ := errgroup.WithContext(ctx)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			evaled, err := mk.Eval(row)
			if err != nil {
				return err
			}
			out[i] = evaled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// OpenCommitments recovers the plaintext value behind each aggregated
// commitment given the combined blinding secret: it subtracts
// secret·G from the commitment point and runs Pollard's rho on the
// residual against the generator.
func OpenCommitments(ctx context.Context, commitments []commitment.Commitment, secret *big.Int) ([]*big.Int, error) {
	c := curve.Default
	g := c.Generator()
	offset := c.Negate(c.Mul(g, secret))

	out := make([]*big.Int, len(commitments))
	eg, _ := errgroup.WithContext(ctx)
	for i, com := range commitments {
		i, com := i, com
		eg.Go(func() error {
			residual := c.Add(com.C, offset)
			w, err := dlog.Solve(g, residual)
			if err != nil {
				return err
			}
			out[i] = w
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// transpose turns a per-client slice of equal-length rows into a
// per-position slice of one entry per client.
func transpose[T any](dataset [][]T) ([][]T, error) {
	if len(dataset) == 0 || len(dataset[0]) == 0 {
		return nil, ErrEmptyDataset
	}

	width := len(dataset[0])
	out := make([][]T, width)
	for col := 0; col < width; col++ {
		out[col] = make([]T, len(dataset))
		for row := range dataset {
			out[col][row] = dataset[row][col]
		}
	}
	return out, nil
}
