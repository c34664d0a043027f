package confloader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Log struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
	} `koanf:"log"`
	Generate struct {
		Count        int  `koanf:"count"`
		LockedMemory bool `koanf:"locked_memory"`
	} `koanf:"generate"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "akirakey.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
generate:
  count: 5
  locked_memory: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := l.GetInt("generate.count"); got != 5 {
		t.Errorf("generate.count = %d, want 5", got)
	}
	if !l.GetBool("generate.locked_memory") {
		t.Error("generate.locked_memory should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_Load_ErrorNamesSource(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"missing file", "", "load config file: load file"},
		{"invalid yaml", "log: [unclosed", "load config file: load file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/nonexistent/config.yaml"
			if tt.content != "" {
				path = writeConfig(t, tt.content)
			}

			var cfg testConfig
			err := NewLoader(WithConfigFile(path)).Load(&cfg)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.HasPrefix(err.Error(), tt.want) {
				t.Errorf("Load() error = %q, want prefix %q", err, tt.want)
			}
		})
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("AKIRAKEY_LOG_LEVEL", "warn")
	t.Setenv("AKIRAKEY_GENERATE_LOCKED_MEMORY", "true")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
	if !l.GetBool("generate.locked_memory") {
		t.Error("generate.locked_memory should be true")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_OUTPUT_FORMAT", "json")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("output.format"); got != "json" {
		t.Errorf("output.format = %q, want json", got)
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{
		"generate.count": 3,
		"debug":          true,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := l.GetInt("generate.count"); got != 3 {
		t.Errorf("generate.count = %d, want 3", got)
	}
	if !l.GetBool("debug") {
		t.Error("debug should be true")
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Generate.Count != 3 {
		t.Errorf("Generate.Count = %d, want 3", cfg.Generate.Count)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  format: text
`)
	t.Setenv("AKIRAKEY_LOG_LEVEL", "error")

	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("Level = %q, want error (env should override file)", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Format = %q, want text (from file)", cfg.Log.Format)
	}

	if err := l.LoadMap(map[string]any{"log.level": "info"}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info (flags should override env)", cfg.Log.Level)
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	var cfg testConfig
	cfg.Generate.Count = 1
	cfg.Log.Format = "json"

	l := NewLoader(WithConfigFile(writeConfig(t, "log:\n  level: debug\n")))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Generate.Count != 1 {
		t.Errorf("Generate.Count = %d, want default 1", cfg.Generate.Count)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want default json", cfg.Log.Format)
	}
}

func TestLoader_IsLoaded(t *testing.T) {
	l := NewLoader()

	if l.IsLoaded() {
		t.Error("IsLoaded() should be false before Load()")
	}

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"a.b": 1, "c": 2}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if keys := l.Keys(); len(keys) != 2 {
		t.Errorf("Keys() = %v, want 2 keys", keys)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	_, err := mapProvider{}.ReadBytes()
	if !errors.Is(err, ErrReadBytesNotSupported) {
		t.Errorf("ReadBytes() error = %v, want ErrReadBytesNotSupported", err)
	}
}
