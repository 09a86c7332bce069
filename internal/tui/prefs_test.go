package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPrefs(t *testing.T) {
	prefs := DefaultPrefs()
	if !prefs.ShowBanner {
		t.Error("DefaultPrefs().ShowBanner should be true")
	}
	if !prefs.MaskHistory {
		t.Error("DefaultPrefs().MaskHistory should be true")
	}
}

func TestLoadPrefs_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	prefs := LoadPrefs()
	if prefs != DefaultPrefs() {
		t.Errorf("LoadPrefs() with no file should return defaults, got %+v", prefs)
	}
}

func TestSaveAndLoadPrefs(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	prefs := Prefs{ShowBanner: false, MaskHistory: true}
	if err := SavePrefs(prefs); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}

	prefsFile := filepath.Join(tmpDir, ".luhnkit", "tui_prefs.json")
	info, err := os.Stat(prefsFile)
	if err != nil {
		t.Fatalf("prefs file was not created: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded := LoadPrefs()
	if loaded.ShowBanner {
		t.Error("Loaded prefs should have ShowBanner=false")
	}

	prefs.MaskHistory = false
	if err := SavePrefs(prefs); err != nil {
		t.Fatalf("SavePrefs failed: %v", err)
	}
	if LoadPrefs().MaskHistory {
		t.Error("Loaded prefs should have MaskHistory=false")
	}
}

func TestLoadPrefs_CorruptFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	dir := filepath.Join(tmpDir, ".luhnkit")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tui_prefs.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if LoadPrefs() != DefaultPrefs() {
		t.Error("corrupt prefs should fall back to defaults")
	}
}
