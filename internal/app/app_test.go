package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWithDefaults(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
	}

	uiOpts, closeLog, err := setup(context.Background(), opts)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer closeLog()

	if uiOpts.Catalog == nil || uiOpts.Catalog.Len() == 0 {
		t.Fatalf("expected builtin catalog, got %+v", uiOpts.Catalog)
	}
	if uiOpts.Favorites == nil || uiOpts.Favorites.Len() != 0 {
		t.Fatalf("expected empty favorites store")
	}
	if uiOpts.ThemeName != "Nightfox" {
		t.Fatalf("expected default theme, got %q", uiOpts.ThemeName)
	}
	if uiOpts.PrefsPath != opts.PrefsPath {
		t.Fatalf("prefs path not forwarded: %q", uiOpts.PrefsPath)
	}
	if uiOpts.Logger == nil {
		t.Fatalf("expected logger")
	}
}

func TestSetupReadsPrefsAndLogs(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "reel.log")
	configPath := filepath.Join(dir, "config.toml")
	prefsPath := filepath.Join(dir, "prefs.toml")

	if err := os.WriteFile(configPath, []byte("log_file = \""+logPath+"\"\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(prefsPath, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	uiOpts, closeLog, err := setup(context.Background(), Options{ConfigPath: configPath, PrefsPath: prefsPath})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if uiOpts.ThemeName != "Slate" {
		t.Fatalf("expected Slate, got %q", uiOpts.ThemeName)
	}

	movies := uiOpts.Catalog.All()
	uiOpts.Favorites.Toggle(movies[0])
	closeLog()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	log := string(data)
	if !strings.Contains(log, "reel starting") {
		t.Fatalf("expected startup entry, got %q", log)
	}
	if !strings.Contains(log, "favorite toggled") {
		t.Fatalf("expected store debug entry, got %q", log)
	}
}

func TestSetupRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte("log_level = [\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := setup(context.Background(), Options{ConfigPath: configPath})
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load config error, got %v", err)
	}
}

func TestSetupRejectsUnwritableLogFile(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "notadir")
	if err := os.WriteFile(notDir, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	configPath := filepath.Join(dir, "config.toml")
	body := "log_file = \"" + filepath.Join(notDir, "reel.log") + "\"\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := setup(context.Background(), Options{ConfigPath: configPath})
	if err == nil || !strings.Contains(err.Error(), "open log file") {
		t.Fatalf("expected open log file error, got %v", err)
	}
}
