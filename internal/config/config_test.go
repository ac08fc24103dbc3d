package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	want := DefaultLaddersConfig()
	if parsed.Board.Size != want.Board.Size || parsed.Board.Terminal != want.Board.Terminal {
		t.Errorf("board = %d/%d, want %d/%d",
			parsed.Board.Size, parsed.Board.Terminal, want.Board.Size, want.Board.Terminal)
	}
	if len(parsed.Board.Shortcuts) != len(want.Board.Shortcuts) {
		t.Fatalf("shortcuts = %v, want %v", parsed.Board.Shortcuts, want.Board.Shortcuts)
	}
	for src, dst := range want.Board.Shortcuts {
		if parsed.Board.Shortcuts[src] != dst {
			t.Errorf("shortcut %d = %d, want %d", src, parsed.Board.Shortcuts[src], dst)
		}
	}
	if parsed.Computer.DelayMS != want.Computer.DelayMS {
		t.Errorf("delay_ms = %d, want %d", parsed.Computer.DelayMS, want.Computer.DelayMS)
	}
	if parsed.Display.Columns != want.Display.Columns {
		t.Errorf("columns = %d, want %d", parsed.Display.Columns, want.Display.Columns)
	}
}

func TestDefaultConfigIsEngineDefault(t *testing.T) {
	cfg := DefaultLaddersConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	board := cfg.EngineBoard()
	def := engine.DefaultBoard()
	if board.Size != def.Size || board.Terminal != def.Terminal {
		t.Errorf("EngineBoard() = %+v, want %+v", board, def)
	}
	for src, dst := range def.Shortcuts {
		if board.Shortcuts[src] != dst {
			t.Errorf("shortcut %d = %d, want %d", src, board.Shortcuts[src], dst)
		}
	}
	if cfg.ComputerDelay() != time.Second {
		t.Errorf("ComputerDelay() = %v, want 1s", cfg.ComputerDelay())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("computer:\n  delay_ms: 0\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Computer.DelayMS != 0 {
		t.Errorf("delay_ms = %d, want 0", cfg.Computer.DelayMS)
	}
	if cfg.Board.Size != 30 || len(cfg.Board.Shortcuts) != 6 {
		t.Errorf("board should keep defaults, got %+v", cfg.Board)
	}
}

func TestParseSizeMovesTerminal(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  size: 36\n  shortcuts:\n    3: 22\n    33: 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Terminal != 36 {
		t.Errorf("terminal = %d, want 36", cfg.Board.Terminal)
	}
	if len(cfg.Board.Shortcuts) != 2 || cfg.Board.Shortcuts[33] != 2 {
		t.Errorf("shortcuts = %v", cfg.Board.Shortcuts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LaddersConfig)
	}{
		{"terminal beyond size", func(c *LaddersConfig) { c.Board.Terminal = 40 }},
		{"shortcut off board", func(c *LaddersConfig) { c.Board.Shortcuts[12] = 99 }},
		{"shortcut on terminal", func(c *LaddersConfig) { c.Board.Shortcuts[30] = 1 }},
		{"negative delay", func(c *LaddersConfig) { c.Computer.DelayMS = -1 }},
		{"zero columns", func(c *LaddersConfig) { c.Display.Columns = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLaddersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadLaddersCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("display:\n  columns: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLadders(path)
	if err != nil {
		t.Fatalf("LoadLadders() failed: %v", err)
	}
	if cfg.Display.Columns != 5 {
		t.Errorf("columns = %d, want 5", cfg.Display.Columns)
	}
}

func TestLoadLaddersCustomPathErrors(t *testing.T) {
	if _, err := LoadLadders(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  terminal: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLadders(bad); err == nil {
		t.Error("expected validation error")
	}
}
