package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-txt2docx"
	"github.com/alnah/go-txt2docx/internal/configfmt"
	"github.com/alnah/go-txt2docx/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxFontNameLength = txt2docx.MaxFontNameLength // characters, Word limit
	MaxPathLength     = 4096                       // PATH_MAX on Linux
)

// AppDirName is the directory under os.UserConfigDir searched for configs.
const AppDirName = "go-txt2docx"

// Config holds all configuration for document generation.
type Config struct {
	Page      PageConfig      `yaml:"page" toml:"page"`
	Columns   ColumnsConfig   `yaml:"columns" toml:"columns"`
	Font      FontConfig      `yaml:"font" toml:"font"`
	Paragraph ParagraphConfig `yaml:"paragraph" toml:"paragraph"`
	Output    OutputConfig    `yaml:"output" toml:"output"`
	Console   ConsoleConfig   `yaml:"console" toml:"console"`
}

// PageConfig defines page geometry in centimetres.
type PageConfig struct {
	WidthCm          float64 `yaml:"widthCm" toml:"widthCm"`
	HeightCm         float64 `yaml:"heightCm" toml:"heightCm"`
	MarginCm         float64 `yaml:"marginCm" toml:"marginCm"` // all four sides
	HeaderDistanceCm float64 `yaml:"headerDistanceCm" toml:"headerDistanceCm"`
	FooterDistanceCm float64 `yaml:"footerDistanceCm" toml:"footerDistanceCm"`
}

// ColumnsConfig defines newspaper-style text columns.
type ColumnsConfig struct {
	Count     int     `yaml:"count" toml:"count"`
	SpacingCm float64 `yaml:"spacingCm" toml:"spacingCm"`
}

// FontConfig defines the dual-script run font.
type FontConfig struct {
	Latin  string  `yaml:"latin" toml:"latin"`
	CJK    string  `yaml:"cjk" toml:"cjk"`
	SizePt float64 `yaml:"sizePt" toml:"sizePt"`
}

// ParagraphConfig defines body paragraph formatting.
type ParagraphConfig struct {
	LineSpacingPt float64 `yaml:"lineSpacingPt" toml:"lineSpacingPt"` // exact line height
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir" toml:"defaultDir"` // Default output directory (empty = same as source)
}

// ConsoleConfig defines interactive console behavior.
type ConsoleConfig struct {
	Pause bool `yaml:"pause" toml:"pause"` // wait for a key before exiting
}

// DefaultConfig returns the built-in template layout with the exit pause on.
func DefaultConfig() *Config {
	l := txt2docx.DefaultLayout()
	return &Config{
		Page: PageConfig{
			WidthCm:          l.PageWidthCm,
			HeightCm:         l.PageHeightCm,
			MarginCm:         l.MarginCm,
			HeaderDistanceCm: l.HeaderDistanceCm,
			FooterDistanceCm: l.FooterDistanceCm,
		},
		Columns:   ColumnsConfig{Count: l.ColumnCount, SpacingCm: l.ColumnSpacingCm},
		Font:      FontConfig{Latin: l.FontFamilyLatin, CJK: l.FontFamilyCJK, SizePt: l.FontSizePt},
		Paragraph: ParagraphConfig{LineSpacingPt: l.LineSpacingPt},
		Output:    OutputConfig{DefaultDir: ""},
		Console:   ConsoleConfig{Pause: true},
	}
}

// Layout maps the document sections of the config onto a LayoutConfig.
func (c *Config) Layout() *txt2docx.LayoutConfig {
	return &txt2docx.LayoutConfig{
		PageWidthCm:      c.Page.WidthCm,
		PageHeightCm:     c.Page.HeightCm,
		MarginCm:         c.Page.MarginCm,
		HeaderDistanceCm: c.Page.HeaderDistanceCm,
		FooterDistanceCm: c.Page.FooterDistanceCm,
		ColumnCount:      c.Columns.Count,
		ColumnSpacingCm:  c.Columns.SpacingCm,
		FontFamilyLatin:  c.Font.Latin,
		FontFamilyCJK:    c.Font.CJK,
		FontSizePt:       c.Font.SizePt,
		LineSpacingPt:    c.Paragraph.LineSpacingPt,
	}
}

// Validate checks field lengths and layout ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("font.latin", c.Font.Latin, MaxFontNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("font.cjk", c.Font.CJK, MaxFontNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	return c.Layout().Validate()
}

// validateFieldLength checks if a field exceeds its maximum allowed length in characters.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a known extension, it's treated
// as a file path. Otherwise, it's treated as a config name and searched in
// standard locations. Keys absent from the file keep their default values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	format, err := configfmt.FormatFromPath(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := configfmt.UnmarshalStrict(format, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	if fileutil.IsFilePath(s) {
		return true
	}
	_, err := configfmt.FormatFromPath(s)
	return err == nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
// Tries extensions in order: .yaml, .yml, .toml
// Tries locations in order: current directory, <user config dir>/go-txt2docx/
func SearchPaths(name string) []string {
	exts := configfmt.Extensions
	paths := make([]string, 0, len(exts)*2) // 2 locations

	for _, ext := range exts {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range exts {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
