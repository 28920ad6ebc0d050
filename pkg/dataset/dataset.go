// Copyright 2025 Certen Protocol
//
// dataset stands in for the external data collaborator in spec scenarios:
// it produces the n_row x n_col matrix of raw values each simulated client
// holds before committing to and signing its rows.
package dataset

import (
	"crypto/rand"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

const valueCeiling = 100

// Init builds an nRow x nCol matrix. A pool of nRow*nCol values in
// [0, 100) is drawn first, then each row samples nCol values out of
// that shared pool without repeating a position within the row.
func Init(nRow, nCol int) ([][]uint64, error) {
	pool := make([]uint64, nRow*nCol)
	for i := range pool {
		v, err := randUint64(valueCeiling)
		if err != nil {
			return nil, err
		}
		pool[i] = v
	}

	rows := make([][]uint64, nRow)
	for i := range rows {
		row, err := sampleValues(pool, nCol)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

// sampleValues returns nCol values chosen uniformly at random without
// replacement from pool, via a partial Fisher-Yates shuffle.
func sampleValues(pool []uint64, nCol int) ([]uint64, error) {
	shuffled := make([]uint64, len(pool))
	copy(shuffled, pool)

	for i := 0; i < nCol && i < len(shuffled); i++ {
		j, err := randIntn(len(shuffled) - i)
		if err != nil {
			return nil, err
		}
		swap := i + j
		shuffled[i], shuffled[swap] = shuffled[swap], shuffled[i]
	}

	if nCol > len(shuffled) {
		nCol = len(shuffled)
	}
	return shuffled[:nCol], nil
}

// ToBigInt converts a matrix of raw values to its *big.Int view, the
// form Commitment.Commit consumes.
func ToBigInt(rows [][]uint64) [][]*big.Int {
	out := make([][]*big.Int, len(rows))
	for i, row := range rows {
		converted := make([]*big.Int, len(row))
		for j, v := range row {
			converted[j] = new(big.Int).SetUint64(v)
		}
		out[i] = converted
	}
	return out
}

// ToFrRows converts a matrix of raw values to its BLS12-381 scalar
// field view, the form Mkhs.Sign consumes as a message row.
func ToFrRows(rows [][]uint64) [][]fr.Element {
	out := make([][]fr.Element, len(rows))
	for i, row := range rows {
		converted := make([]fr.Element, len(row))
		for j, v := range row {
			converted[j].SetUint64(v)
		}
		out[i] = converted
	}
	return out
}

func randUint64(ceiling uint64) (uint64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(ceiling)))
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func randIntn(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
