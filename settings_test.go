package nubik_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/VVatashi/nubik"
)

func TestLoadSettingsMissingFileGivesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	settings, err := nubik.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if settings != nubik.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults %+v", settings, nubik.DefaultSettings())
	}
}

func TestLoadSettingsMalformedFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := nubik.LoadSettings(path); err == nil {
		t.Error("expected an error for malformed YAML, got nil")
	}
}

func TestSettingsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	want := nubik.Settings{
		Window: nubik.WindowSettings{
			Width:  1920,
			Height: 1080,
			VSync:  false,
		},
		MSAASamples: 8,
	}

	if err := nubik.SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := nubik.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("msaaSamples: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := nubik.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}

	if settings.MSAASamples != 2 {
		t.Errorf("msaaSamples = %d, want 2", settings.MSAASamples)
	}
	if settings.Window != nubik.DefaultSettings().Window {
		t.Errorf("window settings = %+v, want defaults", settings.Window)
	}
}
