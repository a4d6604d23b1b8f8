package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"

	"diabetesrisk/internal/schema"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
server:
  addr: ":9090"
  mode: release
model:
  path: /srv/models/modelo76.gob
schema:
  layout: full
  strict: false
log:
  level: debug
texts:
  BMI:
    label: IMC
    description: "Peso / <em>altura</em>²"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"PORT", "MODEL_PATH", "LOG_FILE", "LOG_LEVEL", "SCHEMA_LAYOUT", "SCHEMA_STRICT"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Server: ServerConfig{Addr: ":9090", Mode: "release"},
		Model:  ModelConfig{Path: "/srv/models/modelo76.gob"},
		Schema: SchemaConfig{Layout: "full", Strict: false},
		Log:    LogConfig{Level: "debug"},
		Texts:  map[string]schema.Text{"BMI": {Label: "IMC", Description: "Peso / <em>altura</em>²"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"PORT":          "7000",
		"MODEL_PATH":    "m.gob",
		"LOG_FILE":      "logs/app.log",
		"LOG_LEVEL":     "warn",
		"SCHEMA_LAYOUT": "full",
		"SCHEMA_STRICT": "false",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Server: ServerConfig{Addr: ":7000", Mode: "release"},
		Model:  ModelConfig{Path: "m.gob"},
		Schema: SchemaConfig{Layout: "full", Strict: false},
		Log:    LogConfig{Level: "warn", File: "logs/app.log"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	env["SCHEMA_STRICT"] = "maybe"
	if err := Default().applyEnv(lookup); err == nil {
		t.Fatal("expected error for bad SCHEMA_STRICT")
	}
}

func TestValidateAggregates(t *testing.T) {
	cfg := Default()
	cfg.Model.Path = ""
	cfg.Schema.Layout = "wide"
	cfg.Log.Level = "trace"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if n := len(multierr.Errors(err)); n != 3 {
		t.Fatalf("got %d errors, want 3: %v", n, err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected parse error")
	}
}
