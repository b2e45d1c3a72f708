package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/seqkit/errors"
)

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestSettingsApplyDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	if s.Name != DefaultName {
		t.Errorf("expected name %q, got %q", DefaultName, s.Name)
	}
	if s.Join.Separator == nil || *s.Join.Separator != ", " {
		t.Errorf("expected separator %q, got %v", ", ", s.Join.Separator)
	}
	if s.Join.Truncated == nil || *s.Join.Truncated != "..." {
		t.Errorf("expected truncated %q, got %v", "...", s.Join.Truncated)
	}
	if s.Join.Limit == nil || *s.Join.Limit != -1 {
		t.Errorf("expected limit -1, got %v", s.Join.Limit)
	}
	if s.Metrics.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoint, got %q", s.Metrics.Endpoint)
	}
	if s.Metrics.Interval != 15*time.Second {
		t.Errorf("expected 15s interval, got %v", s.Metrics.Interval)
	}
	if s.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", s.Logging.Level)
	}
	if s.Tracing.SampleRate == nil || *s.Tracing.SampleRate != 1 {
		t.Errorf("expected sample rate 1, got %v", s.Tracing.SampleRate)
	}
}

func TestSettingsApplyDefaultsKeepsExplicitValues(t *testing.T) {
	s := Settings{
		Name: "custom",
		Join: JoinConfig{Separator: strPtr("|"), Truncated: strPtr("~"), Limit: intPtr(0)},
	}
	s.ApplyDefaults()

	if s.Name != "custom" {
		t.Errorf("expected name to be kept, got %q", s.Name)
	}
	if *s.Join.Separator != "|" || *s.Join.Truncated != "~" {
		t.Errorf("expected join strings to be kept, got %q %q", *s.Join.Separator, *s.Join.Truncated)
	}
	if *s.Join.Limit != 0 {
		t.Errorf("expected explicit limit 0 to be kept, got %d", *s.Join.Limit)
	}
}

func TestSettingsApplyDefaultsKeepsEmptyJoinStrings(t *testing.T) {
	s := Settings{Join: JoinConfig{Separator: strPtr(""), Truncated: strPtr("")}}
	s.ApplyDefaults()

	if *s.Join.Separator != "" || *s.Join.Truncated != "" {
		t.Errorf("expected empty join strings to be kept, got %q %q", *s.Join.Separator, *s.Join.Truncated)
	}
}

func TestSettingsValidate(t *testing.T) {
	valid := func() Settings {
		var s Settings
		s.ApplyDefaults()
		return s
	}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{"defaults are valid", func(s *Settings) {}, ""},
		{"limit below -1", func(s *Settings) { s.Join.Limit = intPtr(-2) }, "join.limit"},
		{"bad endpoint", func(s *Settings) { s.Metrics.Endpoint = "not a host" }, "metrics.endpoint"},
		{"negative interval", func(s *Settings) { s.Metrics.Interval = -time.Second }, "metrics.interval"},
		{"bad log level", func(s *Settings) { s.Logging.Level = "loud" }, "level"},
		{"bad log format", func(s *Settings) { s.Logging.Format = "xml" }, "format"},
		{"missing name", func(s *Settings) { s.Name = "" }, "name"},
		{"sample rate above 1", func(s *Settings) {
			rate := 1.5
			s.Tracing.SampleRate = &rate
		}, "tracing.sample_rate"},
		{"tracing enabled with zero sample rate", func(s *Settings) {
			rate := 0.0
			s.Tracing.Enabled = true
			s.Tracing.SampleRate = &rate
		}, "tracing.sample_rate"},
		{"tracing disabled with zero sample rate", func(s *Settings) {
			rate := 0.0
			s.Tracing.SampleRate = &rate
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := s.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
		})
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqkit.yml")

	yamlContent := `
join:
  separator: " | "
  prefix: "<"
  postfix: ">"
  limit: 3
logging:
  level: debug
  format: json
metrics:
  interval: 30s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *s.Join.Separator != " | " {
		t.Errorf("expected separator %q, got %q", " | ", *s.Join.Separator)
	}
	if s.Join.Prefix != "<" || s.Join.Postfix != ">" {
		t.Errorf("expected prefix/postfix from file, got %q %q", s.Join.Prefix, s.Join.Postfix)
	}
	if s.Join.Limit == nil || *s.Join.Limit != 3 {
		t.Errorf("expected limit 3, got %v", s.Join.Limit)
	}
	if *s.Join.Truncated != "..." {
		t.Errorf("expected default truncated, got %q", *s.Join.Truncated)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("expected logging from file, got %q %q", s.Logging.Level, s.Logging.Format)
	}
	if s.Metrics.Interval != 30*time.Second {
		t.Errorf("expected 30s interval, got %v", s.Metrics.Interval)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqkit.yml")
	if err := os.WriteFile(configPath, []byte("join:\n  separator: \";\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("JOIN_SEPARATOR", "/")

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *s.Join.Separator != "/" {
		t.Errorf("expected env separator %q, got %q", "/", *s.Join.Separator)
	}
}

func TestLoadEnabledExportersGetDefaultEndpoints(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqkit.yml")
	yamlContent := "metrics:\n  enabled: true\ntracing:\n  enabled: true\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Metrics.Endpoint != "localhost:4318" || s.Tracing.Endpoint != "localhost:4318" {
		t.Errorf("expected default endpoints, got %q %q", s.Metrics.Endpoint, s.Tracing.Endpoint)
	}
}

func TestLoadKeepsEmptyJoinStrings(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqkit.yml")
	if err := os.WriteFile(configPath, []byte("join:\n  separator: \"\"\n  truncated: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Join.Separator == nil || *s.Join.Separator != "" {
		t.Errorf("expected empty separator, got %v", s.Join.Separator)
	}
	if s.Join.Truncated == nil || *s.Join.Truncated != "" {
		t.Errorf("expected empty truncated, got %v", s.Join.Truncated)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("JOIN_POSTFIX=]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv does not override existing variables; register cleanup for the
	// one it sets.
	t.Setenv("JOIN_POSTFIX", "")
	os.Unsetenv("JOIN_POSTFIX")

	s, err := Load(WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Join.Postfix != "]" {
		t.Errorf("expected postfix from .env, got %q", s.Join.Postfix)
	}
}

func TestLoadInvalidFileValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "seqkit.yml")
	if err := os.WriteFile(configPath, []byte("join:\n  limit: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(WithConfigFile(configPath), WithEnvFile(filepath.Join(dir, "missing.env")))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.HasCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

type mockFS struct {
	existing map[string]bool
	loaded   []string
}

func (m *mockFS) Exists(path string) bool { return m.existing[path] }

func (m *mockFS) LoadEnv(path string) error {
	m.loaded = append(m.loaded, path)
	return nil
}

func TestResolverResolveFiles(t *testing.T) {
	t.Run("explicit paths win", func(t *testing.T) {
		r := &Resolver{FileSystem: &mockFS{}}
		got := r.ResolveFiles("seqkit", LoaderConfig{ConfigFile: "a.yml", EnvFile: "b.env"})
		if got.ConfigFile != "a.yml" || got.EnvFile != "b.env" {
			t.Errorf("expected explicit paths, got %+v", got)
		}
	})

	t.Run("named file beats generic one", func(t *testing.T) {
		fs := &mockFS{existing: map[string]bool{
			"./config/config.yml":  true,
			"../seqkit.yml":        true,
			"./.env":               true,
			"./config/.env.seqkit": true,
		}}
		r := &Resolver{FileSystem: fs}
		got := r.ResolveFiles("seqkit", LoaderConfig{})
		if got.ConfigFile != "../seqkit.yml" {
			t.Errorf("expected ../seqkit.yml, got %q", got.ConfigFile)
		}
		if got.EnvFile != "./config/.env.seqkit" {
			t.Errorf("expected ./config/.env.seqkit, got %q", got.EnvFile)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		r := &Resolver{FileSystem: &mockFS{}}
		got := r.ResolveFiles("seqkit", LoaderConfig{})
		if got.ConfigFile != "" || got.EnvFile != "" {
			t.Errorf("expected empty paths, got %+v", got)
		}
	})
}

func TestLoadConfigUsesFileSystem(t *testing.T) {
	fs := &mockFS{existing: map[string]bool{"./.env": true}}
	var s Settings
	if err := LoadConfig("seqkit", &s, WithFileSystem(fs)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(fs.loaded) != 1 || fs.loaded[0] != "./.env" {
		t.Errorf("expected ./.env to be loaded, got %v", fs.loaded)
	}
}

func TestGenerateEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"NAME", []string{"name"}},
		{"JOIN_SEPARATOR", []string{"join_separator", "join.separator"}},
		{"LOGGING_NO_COLOR", []string{"logging_no_color", "logging.no.color", "logging.no_color"}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := generateEnvKeyVariants(tc.key)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("generateEnvKeyVariants(%q) = %v, want %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestRemoveDuplicates(t *testing.T) {
	got := removeDuplicates([]string{"a", "b", "a", "c", "b"})
	if strings.Join(got, ",") != "a,b,c" {
		t.Errorf("expected [a b c], got %v", got)
	}
}
