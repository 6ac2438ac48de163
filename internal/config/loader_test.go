package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadG2048Defaults(t *testing.T) {
	cfg, err := LoadG2048("")
	if err != nil {
		t.Fatalf("LoadG2048() failed: %v", err)
	}

	if cfg.Board.Size != 4 {
		t.Errorf("default board size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Board.WinTarget != 2048 {
		t.Errorf("default win target = %d, want 2048", cfg.Board.WinTarget)
	}
	if cfg.Board.Spawn4Prob != 0.10 {
		t.Errorf("default spawn4 prob = %v, want 0.10", cfg.Board.Spawn4Prob)
	}
	if cfg.Input.SwipeThreshold != 3 {
		t.Errorf("default swipe threshold = %d, want 3", cfg.Input.SwipeThreshold)
	}
}

func TestLoadG2048CustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "g2048.yaml")

	yamlData := "board:\n  size: 5\n  win_target: 1024\n  spawn4_prob: 0.2\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadG2048(path)
	if err != nil {
		t.Fatalf("LoadG2048(%s) failed: %v", path, err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("board size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Board.WinTarget != 1024 {
		t.Errorf("win target = %d, want 1024", cfg.Board.WinTarget)
	}
	// Omitted fields keep their defaults
	if cfg.Input.SwipeThreshold != 3 {
		t.Errorf("swipe threshold = %d, want default 3", cfg.Input.SwipeThreshold)
	}
}

func TestLoadG2048ClampsBoardSize(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		yaml string
		want int
	}{
		{"too small", "board:\n  size: 1\n", 3},
		{"too large", "board:\n  size: 50\n", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatalf("cannot write test config: %v", err)
			}

			cfg, err := LoadG2048(path)
			if err != nil {
				t.Fatalf("LoadG2048() failed: %v", err)
			}
			if cfg.Board.Size != tt.want {
				t.Errorf("board size = %d, want %d", cfg.Board.Size, tt.want)
			}
		})
	}
}

func TestLoadG2048MissingCustomPath(t *testing.T) {
	if _, err := LoadG2048("/does/not/exist.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadSnakeDefaults(t *testing.T) {
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Speed.MoveEveryTicks != 8 {
		t.Errorf("move_every_ticks = %d, want 8", cfg.Speed.MoveEveryTicks)
	}
	if cfg.Map.Width != 40 || cfg.Map.Height != 18 {
		t.Errorf("map = %dx%d, want 40x18", cfg.Map.Width, cfg.Map.Height)
	}
}

func TestLoadTetrisDefaults(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Map.Width != 10 || cfg.Map.Height != 18 {
		t.Errorf("well = %dx%d, want 10x18", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Speed.FallEveryTicks != 30 {
		t.Errorf("fall_every_ticks = %d, want 30", cfg.Speed.FallEveryTicks)
	}
}

func TestLoadTetrisClampsWell(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tetris.yaml")

	yamlData := "map:\n  width: 2\n  height: 4\nspeed:\n  fall_every_ticks: 1\n  min_every_ticks: 0\n"
	if err := os.WriteFile(path, []byte(yamlData), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris(%s) failed: %v", path, err)
	}

	if cfg.Map.Width != 6 {
		t.Errorf("well width = %d, want clamped 6", cfg.Map.Width)
	}
	if cfg.Map.Height != 8 {
		t.Errorf("well height = %d, want clamped 8", cfg.Map.Height)
	}
	if cfg.Speed.MinEveryTicks != 1 {
		t.Errorf("min_every_ticks = %d, want clamped 1", cfg.Speed.MinEveryTicks)
	}
}

func TestLoadRacerDefaults(t *testing.T) {
	cfg, err := LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer() failed: %v", err)
	}

	if cfg.Lanes != 3 {
		t.Errorf("lanes = %d, want 3", cfg.Lanes)
	}
}
