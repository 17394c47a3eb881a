package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/juan-jump/internal/storage"
)

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	var empty bytes.Buffer
	if err := printScores(&empty, store, "juan", "Juan Jump", 10); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(empty.String(), "No scores recorded yet.") {
		t.Errorf("empty output missing placeholder:\n%s", empty.String())
	}

	for _, s := range []int{1500, 1234567, 90} {
		if _, err := store.SaveScore("juan", s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	var out bytes.Buffer
	if err := printScores(&out, store, "juan", "Juan Jump", 2); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	text := out.String()

	for _, want := range []string{"High Scores - Juan Jump", "1,234,567", "1,500", "Best: 1,234,567 over 3 games"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "  3 ") {
		t.Errorf("limit not applied:\n%s", text)
	}
}

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveScore("juan", 420); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	if err := store.Keeper("juan").Store("HighScore", 420); err != nil {
		t.Fatalf("Store: %v", err)
	}

	var out bytes.Buffer
	if err := clearScores(&out, store, "juan", "Juan Jump"); err != nil {
		t.Fatalf("clearScores: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared all scores for Juan Jump.") {
		t.Errorf("unexpected output %q", out.String())
	}

	if best, err := store.HighScore("juan"); err != nil || best != 0 {
		t.Errorf("HighScore after clear = %d, %v; want 0", best, err)
	}
	if _, ok, err := store.Value("juan", "HighScore"); err != nil || ok {
		t.Errorf("kv HighScore after clear: ok=%v err=%v", ok, err)
	}
}

func TestGameInfo(t *testing.T) {
	info, ok := gameInfo("juan")
	if !ok || info.Title != "Juan Jump" {
		t.Errorf("gameInfo(juan) = %+v, %v", info, ok)
	}
	if _, ok := gameInfo("nope"); ok {
		t.Error("unknown game should not be found")
	}
}
