package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutri.yaml")
	content := "data_dir: /tmp/food\nbackend: sqlite\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Config{DataDir: "/tmp/food", Backend: SQLite, LogLevel: "warn"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if got.DatabasePath() != "/tmp/food/nutrilog.db" {
		t.Errorf("DatabasePath() = %q", got.DatabasePath())
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("NUTRI_LOG_LEVEL", "debug")
	t.Chdir(t.TempDir()) // no nutri.yaml here

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := Default()
	want.LogLevel = "debug"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if _, err := got.Logger(); err != nil {
		t.Errorf("Logger() unexpected error: %v", err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) succeeded, want error")
	}

	path := filepath.Join(t.TempDir(), "nutri.yaml")
	if err := os.WriteFile(path, []byte("backend: postgres\nlog_level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(invalid backend) succeeded, want error")
	}
}
