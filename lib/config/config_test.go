// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/edi/lib/delimiter"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "edi.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultProfile != ProfileX12 {
		t.Errorf("expected default_profile=x12, got %s", cfg.DefaultProfile)
	}

	set, err := cfg.Profile("")
	if err != nil {
		t.Fatalf("Profile(\"\"): %v", err)
	}
	if set != delimiter.X12() {
		t.Errorf("default profile delimiters = %v, want %v", set, delimiter.X12())
	}

	edifact, err := cfg.Profile(ProfileEDIFACT)
	if err != nil {
		t.Fatalf("Profile(edifact): %v", err)
	}
	if edifact.String() != "'+:" {
		t.Errorf("edifact delimiters = %q, want %q", edifact.String(), "'+:")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad_RequiresConfigVariable(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when EDI_CONFIG not set, got nil")
	}

	expectedMsg := "EDI_CONFIG environment variable not set"
	if !strings.HasPrefix(err.Error(), expectedMsg) {
		t.Errorf("expected error message to start with %q, got %q", expectedMsg, err.Error())
	}
}

func TestLoad_WithConfigVariable(t *testing.T) {
	configPath := writeConfig(t, `
default_profile: edifact
log_level: debug
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DefaultProfile != ProfileEDIFACT {
		t.Errorf("expected default_profile=edifact, got %s", cfg.DefaultProfile)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("Level() = %v, %v; want debug", level, err)
	}
}

func TestLoadFile_MergesProfiles(t *testing.T) {
	configPath := writeConfig(t, `
default_profile: pipe
strict_delimiters: true
profiles:
  pipe:
    delimiters: "\n|^"
    description: internal feed
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	pipe, err := cfg.Profile("")
	if err != nil {
		t.Fatalf("Profile(\"\"): %v", err)
	}
	if pipe != delimiter.New('\n', '|', '^') {
		t.Errorf("pipe delimiters = %q, want %q", pipe.String(), "\n|^")
	}
	if cfg.Profiles["pipe"].Description != "internal feed" {
		t.Errorf("pipe description = %q", cfg.Profiles["pipe"].Description)
	}
	if !cfg.StrictDelimiters {
		t.Error("expected strict_delimiters=true")
	}

	// Built-in profiles survive the merge.
	if _, err := cfg.Profile(ProfileX12); err != nil {
		t.Errorf("Profile(x12) after merge: %v", err)
	}
	if got := strings.Join(cfg.ProfileNames(), ","); got != "edifact,pipe,x12" {
		t.Errorf("ProfileNames() = %s, want edifact,pipe,x12", got)
	}
}

func TestLoadFile_ExpandsScriptDir(t *testing.T) {
	t.Setenv("EDI_TEST_SCRIPTS", "/srv/edi/scripts")
	configPath := writeConfig(t, `
script_dir: ${EDI_TEST_SCRIPTS}/claims
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ScriptDir != "/srv/edi/scripts/claims" {
		t.Errorf("script_dir = %q, want /srv/edi/scripts/claims", cfg.ScriptDir)
	}
}

func TestExpandVars(t *testing.T) {
	t.Setenv("EDI_TEST_SET", "value")
	t.Setenv("EDI_TEST_EMPTY", "")

	tests := []struct {
		input string
		want  string
	}{
		{"${EDI_TEST_SET}/x", "value/x"},
		{"${EDI_TEST_EMPTY:-fallback}/x", "fallback/x"},
		{"${EDI_TEST_EMPTY}/x", "/x"},
		{"plain/path", "plain/path"},
		{"${EDI_TEST_SET:-unused}-${EDI_TEST_EMPTY:-b}", "value-b"},
	}
	for _, test := range tests {
		if got := expandVars(test.input); got != test.want {
			t.Errorf("expandVars(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "unknown default profile",
			content: "default_profile: missing\n",
			want:    `default_profile "missing" is not defined`,
		},
		{
			name: "short delimiter string",
			content: `
profiles:
  short:
    delimiters: "~*"
`,
			want: "want 3 characters",
		},
		{
			name: "ambiguous set in strict mode",
			content: `
strict_delimiters: true
profiles:
  clash:
    delimiters: "~**"
`,
			want: "profiles.clash",
		},
		{
			name:    "bad log level",
			content: "log_level: loud\n",
			want:    "log_level",
		},
		{
			name:    "not yaml",
			content: "profiles: [\n",
			want:    "parsing",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.content))
			if err == nil {
				t.Fatal("LoadFile succeeded, want error")
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("LoadFile error = %q, want substring %q", err, test.want)
			}
		})
	}
}

func TestLoadFile_AmbiguousAllowedWhenNotStrict(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
profiles:
  clash:
    delimiters: "~**"
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	set, err := cfg.Profile("clash")
	if err != nil {
		t.Fatalf("Profile(clash): %v", err)
	}
	if !set.Ambiguous() {
		t.Errorf("Profile(clash) = %v, want an ambiguous set", set)
	}
}

func TestProfileUnknown(t *testing.T) {
	_, err := Default().Profile("hl7")
	if err == nil {
		t.Fatal("Profile(hl7) succeeded, want error")
	}
	if !strings.Contains(err.Error(), "edifact, x12") {
		t.Errorf("Profile(hl7) error = %q, want the available profiles listed", err)
	}
}
