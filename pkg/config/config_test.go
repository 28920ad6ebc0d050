package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VIPER_NUM_CLIENTS", "VIPER_ROW_WIDTH", "VIPER_NUM_ROWS", "VIPER_WORKER_POOL_SIZE"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NumClients != 2 || cfg.RowWidth != 2 {
		t.Fatalf("got n=%d t=%d, want n=2 t=2", cfg.NumClients, cfg.RowWidth)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	cfg := &Config{NumClients: 0, RowWidth: 2, NumRows: 1, WorkerPoolSize: 1}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for zero NumClients")
	}
}
