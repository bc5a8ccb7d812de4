package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if p := Load(""); p != Defaults() {
		t.Fatalf("Load = %#v, want %#v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "reel")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(""); p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestLoad_Fallbacks(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"explicit theme", "theme = \" Kanagawa \"\n", "Kanagawa"},
		{"empty theme", "theme = \"\"\n", defaultTheme},
		{"invalid toml", "not valid toml {{{\n", defaultTheme},
		{"unknown keys only", "favorites = [\"tt0499549\"]\n", defaultTheme},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := Load(path).Theme; got != tc.want {
				t.Fatalf("Theme = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "subdir")
	prefsFile := filepath.Join(dir, "prefs.toml")

	if err := Save(prefsFile, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(prefsFile).Theme; got != "Slate" {
		t.Fatalf("Theme = %q, want Slate", got)
	}

	// Overwrite and make sure no temp files are left behind.
	if err := Save(prefsFile, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(prefsFile).Theme; got != "Kanagawa" {
		t.Fatalf("Theme = %q, want Kanagawa", got)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want 1", len(entries))
	}
}
