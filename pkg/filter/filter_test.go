package filter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStrip_RemovesMatchingLines(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	content := "keep1\ndrop-me\nkeep2\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Strip(context.Background(), input, "drop", output)
	if err != nil {
		t.Fatalf("Strip() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := "keep1\nkeep2\n"
	if string(got) != want {
		t.Errorf("output = %q, want %q", string(got), want)
	}

	if stats.LinesRead != 3 || stats.LinesKept != 2 || stats.LinesRemoved != 1 {
		t.Errorf("stats = %+v, want 3 read, 2 kept, 1 removed", stats)
	}
}

func TestStrip_CountsAddUp(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	content := "alpha\nbeta\ngamma\nbeta again\ndelta\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Strip(context.Background(), input, "beta", output)
	if err != nil {
		t.Fatalf("Strip() error = %v", err)
	}

	if stats.LinesKept+stats.LinesRemoved != stats.LinesRead {
		t.Errorf("kept(%d) + removed(%d) != read(%d)",
			stats.LinesKept, stats.LinesRemoved, stats.LinesRead)
	}
	if stats.LinesRemoved != 2 {
		t.Errorf("LinesRemoved = %d, want 2", stats.LinesRemoved)
	}
}

func TestStrip_EmptySearchRemovesEverything(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(input, []byte("a\nb\nc\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Strip(context.Background(), input, "", output)
	if err != nil {
		t.Fatalf("Strip() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("output = %q, want empty", string(got))
	}
	if stats.LinesRemoved != 3 {
		t.Errorf("LinesRemoved = %d, want 3", stats.LinesRemoved)
	}
}

func TestStrip_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	once := filepath.Join(dir, "once.txt")
	twice := filepath.Join(dir, "twice.txt")

	content := "keep\ndrop this\nkeep more\ndrop too\n"
	if err := os.WriteFile(input, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Strip(context.Background(), input, "drop", once); err != nil {
		t.Fatalf("first Strip() error = %v", err)
	}
	stats, err := Strip(context.Background(), once, "drop", twice)
	if err != nil {
		t.Fatalf("second Strip() error = %v", err)
	}

	if stats.LinesRemoved != 0 {
		t.Errorf("second pass removed %d line(s), want 0", stats.LinesRemoved)
	}

	first, err := os.ReadFile(once)
	if err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(twice)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("second pass output differs: %q vs %q", string(first), string(second))
	}
}

func TestStrip_CaseSensitive(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(input, []byte("Drop\ndrop\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := Strip(context.Background(), input, "drop", output)
	if err != nil {
		t.Fatalf("Strip() error = %v", err)
	}
	if stats.LinesRemoved != 1 {
		t.Errorf("LinesRemoved = %d, want 1 (match is case-sensitive)", stats.LinesRemoved)
	}
}

func TestStrip_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	if err := os.WriteFile(input, []byte("keep\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(output, []byte("stale content that is longer\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Strip(context.Background(), input, "drop", output); err != nil {
		t.Fatalf("Strip() error = %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "keep\n" {
		t.Errorf("output = %q, want %q", string(got), "keep\n")
	}
}

func TestStrip_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Strip(context.Background(), "/nonexistent/in.txt", "x", filepath.Join(dir, "out.txt"))
	if err == nil {
		t.Error("Expected error for missing input file")
	}
}

func TestStrip_UnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Strip(context.Background(), input, "x", filepath.Join(dir, "missing", "out.txt"))
	if err == nil {
		t.Error("Expected error for output in missing directory")
	}
}
