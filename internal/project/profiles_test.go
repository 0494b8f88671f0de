package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ReactorCalc/internal/model"
)

func testProfile(name string) model.PhysicsProfile {
	p := model.DefaultPhysics()
	p.SteamTankVolume = 240_000
	return model.PhysicsProfile{
		Name:        name,
		Description: "Bigger steam blocks",
		Physics:     p,
	}
}

func TestSaveAndLoadPhysicsProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")

	builtIn := testProfile("Second")
	builtIn.IsBuiltIn = true
	profiles := []model.PhysicsProfile{testProfile("First"), builtIn}

	if err := SavePhysicsProfiles(path, profiles); err != nil {
		t.Fatalf("SavePhysicsProfiles: %v", err)
	}

	loaded, err := LoadPhysicsProfiles(path)
	if err != nil {
		t.Fatalf("LoadPhysicsProfiles: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[0].Name != "First" || loaded[1].Name != "Second" {
		t.Errorf("unexpected names %s, %s", loaded[0].Name, loaded[1].Name)
	}
	if loaded[0].Physics.SteamTankVolume != 240_000 {
		t.Errorf("expected steam tank volume 240000, got %d", loaded[0].Physics.SteamTankVolume)
	}
	// Ensure IsBuiltIn is forced to false on load
	if loaded[1].IsBuiltIn {
		t.Error("loaded profile should not be marked as built-in")
	}
}

func TestLoadPhysicsProfilesNonExistent(t *testing.T) {
	profiles, err := LoadPhysicsProfiles(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected 0 profiles for nonexistent file, got %d", len(profiles))
	}
}

func TestLoadPhysicsProfilesInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadPhysicsProfiles(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestExportAndImportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exported.json")

	original := testProfile("Exported")
	original.IsBuiltIn = true // Stripped on export

	if err := ExportProfile(path, original); err != nil {
		t.Fatalf("ExportProfile: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile: %v", err)
	}
	if imported.Name != "Exported" {
		t.Errorf("expected name Exported, got %s", imported.Name)
	}
	if imported.IsBuiltIn {
		t.Error("imported profile should not be marked as built-in")
	}
	if imported.Physics != original.Physics {
		t.Errorf("physics did not survive the round trip: %+v", imported.Physics)
	}
}

func TestImportProfilePartialPhysicsUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	data := []byte(`{"name":"Tweaked","physics":{"heater_heat_rate":640000}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile: %v", err)
	}
	if imported.Physics.HeaterHeatRate != 640_000 {
		t.Errorf("expected heater rate 640000, got %d", imported.Physics.HeaterHeatRate)
	}
	if imported.Physics.WaterTankVolume != model.DefaultPhysics().WaterTankVolume {
		t.Errorf("expected default water tank volume, got %d", imported.Physics.WaterTankVolume)
	}
}

func TestImportProfileNoName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noname.json")
	if err := os.WriteFile(path, []byte(`{"description": "no name"}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportProfile(path); err == nil {
		t.Fatal("expected error for profile without name")
	}
}

func TestImportProfileInvalidPhysics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	data := []byte(`{"name":"Broken","physics":{"casing_thickness":0}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportProfile(path); err == nil {
		t.Fatal("expected error for invalid physics constants")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "profiles.json")

	if err := SavePhysicsProfiles(path, []model.PhysicsProfile{}); err != nil {
		t.Fatalf("SavePhysicsProfiles should create directories: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("file was not created in nested directory")
	}
}
