package project

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Profile = "Doubled Steam"
	cfg.Theme = "dark"
	cfg.Sweep.Workers = 4
	cfg.RecentStudies = []string{"/tmp/a.reactorstudy", "/tmp/b.reactorstudy"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.Profile != "Doubled Steam" {
		t.Errorf("expected Profile=Doubled Steam, got %s", loaded.Profile)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.Sweep.Workers != 4 {
		t.Errorf("expected Workers=4, got %d", loaded.Sweep.Workers)
	}
	if loaded.Sweep.MaxHeight != model.MaxHeight {
		t.Errorf("expected MaxHeight=%d, got %d", model.MaxHeight, loaded.Sweep.MaxHeight)
	}
	if len(loaded.RecentStudies) != 2 {
		t.Errorf("expected 2 recent studies, got %d", len(loaded.RecentStudies))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Profile != model.PhysicsProfiles[0].Name {
		t.Errorf("expected default profile, got %s", cfg.Profile)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"light","recent_studies":null}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("expected theme=light, got %s", cfg.Theme)
	}
	if cfg.Physics != model.DefaultPhysics() {
		t.Error("expected default physics to survive a partial file")
	}
	if cfg.RecentStudies == nil {
		t.Error("RecentStudies should not be nil after loading")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestAddRecentStudy(t *testing.T) {
	cfg := model.DefaultAppConfig()
	AddRecentStudy(&cfg, "a")
	AddRecentStudy(&cfg, "b")
	AddRecentStudy(&cfg, "a")

	if len(cfg.RecentStudies) != 2 || cfg.RecentStudies[0] != "a" || cfg.RecentStudies[1] != "b" {
		t.Errorf("expected [a b], got %v", cfg.RecentStudies)
	}

	for i := 0; i < 20; i++ {
		AddRecentStudy(&cfg, fmt.Sprintf("s%d", i))
	}
	if len(cfg.RecentStudies) != maxRecentStudies {
		t.Errorf("expected list capped at %d, got %d", maxRecentStudies, len(cfg.RecentStudies))
	}
	if cfg.RecentStudies[0] != "s19" {
		t.Errorf("expected newest first, got %s", cfg.RecentStudies[0])
	}
}
