package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opsdesk/loareturn/internal/recon"
)

func TestNewestMatch(t *testing.T) {
	dir := t.TempDir()
	old := writeFile(t, dir, "Sales Compensation Report Q1.xlsx")
	newer := writeFile(t, dir, "Sales Compensation Report Q2.xls")
	writeFile(t, dir, "People roster.xlsx")

	// Glob order is lexical; mtime decides, so push Q2 forward.
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	got, err := newestMatch(dir, salesPattern)
	if err != nil {
		t.Fatalf("newestMatch() error = %v", err)
	}
	if got != newer {
		t.Errorf("newestMatch() = %q, want %q", got, newer)
	}
}

func TestNewestMatch_SkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "People archive.xlsx"), 0o755); err != nil {
		t.Fatal(err)
	}
	file := writeFile(t, dir, "People 2026.xlsx")

	got, err := newestMatch(dir, peoplePattern)
	if err != nil {
		t.Fatalf("newestMatch() error = %v", err)
	}
	if got != file {
		t.Errorf("newestMatch() = %q, want %q", got, file)
	}
}

func TestNewestMatch_NoMatch(t *testing.T) {
	_, err := newestMatch(t.TempDir(), salesPattern)
	if !errors.Is(err, recon.ErrMissingInput) {
		t.Errorf("newestMatch() error = %v, want ErrMissingInput", err)
	}
}

func TestResolveInput_ExplicitPathWins(t *testing.T) {
	got, err := resolveInput("explicit.xlsx", salesPattern)
	if err != nil {
		t.Fatalf("resolveInput() error = %v", err)
	}
	if got != "explicit.xlsx" {
		t.Errorf("resolveInput() = %q, want explicit.xlsx", got)
	}
}

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
