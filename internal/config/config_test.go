package config

// Notes:
// - LoadConfig name lookup changes the working directory (t.Chdir) and sets
//   XDG_CONFIG_HOME (t.Setenv), so those tests don't run in parallel.
// - The user config directory lookup is only exercised on Linux, where
//   os.UserConfigDir honors XDG_CONFIG_HOME.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-txt2docx"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestDefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got, want := *cfg.Layout(), *txt2docx.DefaultLayout(); got != want {
		t.Errorf("DefaultConfig().Layout() = %+v, want %+v", got, want)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if !cfg.Console.Pause {
		t.Error("Console.Pause = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"latin font too long", func(c *Config) { c.Font.Latin = strings.Repeat("a", MaxFontNameLength+1) }, ErrFieldTooLong},
		{"cjk font too long", func(c *Config) { c.Font.CJK = strings.Repeat("字", MaxFontNameLength+1) }, ErrFieldTooLong},
		{"output dir too long", func(c *Config) { c.Output.DefaultDir = strings.Repeat("d", MaxPathLength+1) }, ErrFieldTooLong},
		{"zero columns", func(c *Config) { c.Columns.Count = 0 }, txt2docx.ErrInvalidLayout},
		{"negative line spacing", func(c *Config) { c.Paragraph.LineSpacingPt = -1 }, txt2docx.ErrInvalidLayout},
		{"zero page width", func(c *Config) { c.Page.WidthCm = 0 }, txt2docx.ErrInvalidLayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		max     int
		wantErr bool
	}{
		{"empty value is valid", "", 10, false},
		{"value at limit is valid", "1234567890", 10, false},
		{"value over limit", "12345678901", 10, true},
		{"multibyte counted as characters", "微软雅黑", 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateFieldLength("test", tt.value, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFieldLength() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrFieldTooLong) {
				t.Errorf("error = %v, want ErrFieldTooLong", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File paths
// ---------------------------------------------------------------------------

func TestLoadConfig_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	writeFile(t, path, `page:
  marginCm: 1.5
columns:
  count: 3
font:
  latin: Arial
  sizePt: 10
output:
  defaultDir: out
console:
  pause: false
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Page.MarginCm != 1.5 || cfg.Columns.Count != 3 || cfg.Font.Latin != "Arial" || cfg.Font.SizePt != 10 {
		t.Errorf("decoded values wrong: %+v", cfg)
	}
	if cfg.Output.DefaultDir != "out" || cfg.Console.Pause {
		t.Errorf("output/console wrong: %+v %+v", cfg.Output, cfg.Console)
	}
	// absent keys keep defaults
	if cfg.Font.CJK != txt2docx.DefaultFontFamilyCJK || cfg.Page.WidthCm != txt2docx.DefaultPageWidthCm {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "layout.toml")
	writeFile(t, path, `[columns]
count = 1
spacingCm = 0.8

[paragraph]
lineSpacingPt = 12.0
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Columns.Count != 1 || cfg.Columns.SpacingCm != 0.8 || cfg.Paragraph.LineSpacingPt != 12 {
		t.Errorf("decoded values wrong: %+v", cfg)
	}
	if !cfg.Console.Pause {
		t.Error("Console.Pause default lost")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	writeFile(t, unknown, "fonts:\n  latin: Arial\n")
	invalid := filepath.Join(dir, "invalid.toml")
	writeFile(t, invalid, "[columns]\ncount = 0\n")
	wrongExt := filepath.Join(dir, "conf.json")
	writeFile(t, wrongExt, "{}")

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing file", filepath.Join(dir, "absent.yaml"), ErrConfigNotFound},
		{"unknown key", unknown, ErrConfigParse},
		{"unsupported extension", wrongExt, ErrConfigParse},
		{"out of range", invalid, txt2docx.ErrInvalidLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadConfig(tt.path); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Name lookup
// ---------------------------------------------------------------------------

func TestLoadConfig_NameInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	writeFile(t, filepath.Join(dir, "work.yml"), "columns:\n  count: 4\n")
	writeFile(t, filepath.Join(dir, "work.toml"), "[columns]\ncount = 5\n")

	cfg, err := LoadConfig("work")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Columns.Count != 4 {
		t.Errorf("Columns.Count = %d, want 4 (.yml before .toml)", cfg.Columns.Count)
	}
}

func TestLoadConfig_NameInUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only drives os.UserConfigDir on Linux")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)

	writeFile(t, filepath.Join(xdg, AppDirName, "shared.toml"), "[font]\nlatin = \"Noto Sans\"\n")

	cfg, err := LoadConfig("shared")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Font.Latin != "Noto Sans" {
		t.Errorf("Font.Latin = %q, want %q", cfg.Font.Latin, "Noto Sans")
	}
}

func TestLoadConfig_NameNotFound(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	_, err := LoadConfig("nothing")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		if !strings.Contains(err.Error(), "nothing"+ext) {
			t.Errorf("error %q does not list tried path with %s", err, ext)
		}
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"work":          false,
		"work.yaml":     true,
		"./work":        true,
		`dir\work`:      true,
		"dir/work.toml": true,
	}
	for in, want := range tests {
		if got := isFilePath(in); got != want {
			t.Errorf("isFilePath(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("work")
	if len(paths) < 3 {
		t.Fatalf("SearchPaths() = %v, want at least the working directory candidates", paths)
	}
	want := []string{"work.yaml", "work.yml", "work.toml"}
	for i, w := range want {
		if paths[i] != w {
			t.Errorf("SearchPaths()[%d] = %q, want %q", i, paths[i], w)
		}
	}
	for _, p := range paths[3:] {
		if !strings.Contains(p, AppDirName) {
			t.Errorf("user path %q does not contain %q", p, AppDirName)
		}
	}
}
