package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panelboard/internal/engine"
	"github.com/vovakirdan/panelboard/internal/storage"
)

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	logger.Debug("hello", "box", 1)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("debug output missing: %q", buf.String())
	}
}

func TestLoadBoardConfigGrid(t *testing.T) {
	flagConfig = ""

	cfg, err := loadBoardConfig("coarse")
	if err != nil {
		t.Fatalf("loadBoardConfig() error = %v", err)
	}
	if cfg.Engine.GridUnit != 4 || cfg.Engine.MinWidth < 16 {
		t.Errorf("coarse config = %+v", cfg.Engine)
	}

	if _, err := loadBoardConfig("huge"); err == nil {
		t.Error("unknown grid preset should fail")
	}
}

func TestPrintStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printStats(&empty, store, "", 10); err != nil {
		t.Fatalf("printStats() error = %v", err)
	}
	if !strings.Contains(empty.String(), "No sessions recorded yet.") {
		t.Errorf("empty journal output = %q", empty.String())
	}

	now := time.Now()
	for _, id := range []string{"pair", "grid", "pair"} {
		_, err := store.SaveSession(storage.SessionRecord{
			Arrangement: id,
			Stats:       engine.Stats{Added: 2, Moves: 3, Snaps: 1},
			StartedAt:   now.Add(-time.Minute),
			EndedAt:     now,
		})
		if err != nil {
			t.Fatalf("SaveSession() error = %v", err)
		}
	}

	var out bytes.Buffer
	if err := printStats(&out, store, "pair", 1); err != nil {
		t.Fatalf("printStats() error = %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Session Journal - pair") {
		t.Errorf("missing header: %q", text)
	}
	if got := strings.Count(text, " pair "); got != 1 {
		t.Errorf("printed %d pair rows, want 1 (limit)", got)
	}
	if strings.Contains(text, " grid ") {
		t.Error("grid sessions should be filtered out")
	}
	if !strings.Contains(text, "Sessions: 2") {
		t.Errorf("totals should cover both pair sessions: %q", text)
	}
}
