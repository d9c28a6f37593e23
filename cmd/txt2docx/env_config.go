package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-txt2docx/internal/config"
)

// Environment variable names.
const (
	envPrefix    = "TXT2DOCX_"
	envConfig    = "TXT2DOCX_CONFIG"
	envOutputDir = "TXT2DOCX_OUTPUT_DIR"
	envFontLatin = "TXT2DOCX_FONT_LATIN"
	envFontCJK   = "TXT2DOCX_FONT_CJK"
	envNoPause   = "TXT2DOCX_NO_PAUSE"
)

// envSettings holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring config files.
type envSettings struct {
	ConfigPath string // TXT2DOCX_CONFIG: config file name or path
	OutputDir  string // TXT2DOCX_OUTPUT_DIR: default output directory
	FontLatin  string // TXT2DOCX_FONT_LATIN: Western font family
	FontCJK    string // TXT2DOCX_FONT_CJK: East Asian font family
	NoPause    bool   // TXT2DOCX_NO_PAUSE: skip the exit keypress
}

// knownEnvVars lists valid TXT2DOCX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfig:    true,
	envOutputDir: true,
	envFontLatin: true,
	envFontCJK:   true,
	envNoPause:   true,
}

// loadEnvSettings reads configuration from environment variables.
// An unparsable TXT2DOCX_NO_PAUSE is treated as unset.
func loadEnvSettings(getenv func(string) string) *envSettings {
	s := &envSettings{
		ConfigPath: getenv(envConfig),
		OutputDir:  getenv(envOutputDir),
		FontLatin:  getenv(envFontLatin),
		FontCJK:    getenv(envFontCJK),
	}
	if v := getenv(envNoPause); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.NoPause = b
		}
	}
	return s
}

// warnUnknownEnvVars logs warnings for unrecognized TXT2DOCX_* variables.
// Helps catch typos like TXT2DOCX_FONT instead of TXT2DOCX_FONT_LATIN.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvSettings applies environment variable values to config.
// Set variables override the config file; CLI flags are applied later
// via mergeFlags. This ensures: CLI flags > env vars > config file > defaults
func applyEnvSettings(env *envSettings, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.FontLatin != "" {
		cfg.Font.Latin = env.FontLatin
	}
	if env.FontCJK != "" {
		cfg.Font.CJK = env.FontCJK
	}
	if env.NoPause {
		cfg.Console.Pause = false
	}
}
