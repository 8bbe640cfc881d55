package gamescsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFilesPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	const header = "home_team,away_team,home_goals,away_goals\n"
	paths := []string{
		writeCSV(t, dir, "2021.csv", header+"first a,first b,1,0\nfirst c,first d,2,1\n"),
		writeCSV(t, dir, "2022.csv", header+"second a,second b,3,0\n"),
		writeCSV(t, dir, "2023.csv", header+"third a,third b,0,4\n"),
	}

	matches, err := LoadFiles(paths)
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(matches) != 4 {
		t.Fatalf("expected 4 matches got %d", len(matches))
	}
	order := []string{"first a", "first c", "second a", "third a"}
	for i, want := range order {
		if matches[i].HomeTeam != want {
			t.Errorf("match %d: expected %q got %q", i, want, matches[i].HomeTeam)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadFilesPropagatesRowError(t *testing.T) {
	dir := t.TempDir()
	const header = "home_team,away_team,home_goals,away_goals\n"
	good := writeCSV(t, dir, "good.csv", header+"a,b,1,0\n")
	bad := writeCSV(t, dir, "bad.csv", header+"c,,1,0\n")

	_, err := LoadFiles([]string{good, bad})
	if err == nil {
		t.Fatal("expected error from bad file, got nil")
	}
	if !strings.Contains(err.Error(), "bad.csv") {
		t.Errorf("expected failing path in error, got %q", err)
	}
}
