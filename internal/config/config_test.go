package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_MODEL", "GEMINI_API_KEY", "REDIS_ADDR", "PROFILE_PATH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.0-flash-lite" {
		t.Errorf("GeminiModel = %q, want gemini-2.0-flash-lite", cfg.GeminiModel)
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	data := `
personal:
  name: Ada Lovelace
  role: Analyst
summary: Wrote the first program.
skills:
  programming: [Analytical Engine]
rules:
  - Only answer questions about Ada.
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.Personal.Name != "Ada Lovelace" {
		t.Errorf("Name = %q", profile.Personal.Name)
	}
	if len(profile.Rules) != 1 {
		t.Errorf("Rules = %v, want one rule", profile.Rules)
	}
}

func TestLoadProfileRejectsNameless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("summary: no identity here"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadProfile(path); err == nil {
		t.Fatal("profile without personal.name accepted")
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}
