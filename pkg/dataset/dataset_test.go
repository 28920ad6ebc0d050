package dataset

import "testing"

func TestInitShape(t *testing.T) {
	rows, err := Init(3, 4)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for _, row := range rows {
		if len(row) != 4 {
			t.Fatalf("got row of length %d, want 4", len(row))
		}
	}
}

func TestInitValuesWithinCeiling(t *testing.T) {
	rows, err := Init(5, 5)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	for _, row := range rows {
		for _, v := range row {
			if v >= valueCeiling {
				t.Fatalf("value %d exceeds ceiling %d", v, valueCeiling)
			}
		}
	}
}

func TestSampleValuesNoDuplicatesWithinRow(t *testing.T) {
	pool := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	row, err := sampleValues(pool, 5)
	if err != nil {
		t.Fatalf("sampleValues failed: %v", err)
	}
	seen := make(map[uint64]bool)
	for _, v := range row {
		if seen[v] {
			t.Fatalf("row contains a repeated position: %v", row)
		}
		seen[v] = true
	}
}
