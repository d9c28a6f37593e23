package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-txt2docx"
	"github.com/alnah/go-txt2docx/internal/config"
	"github.com/alnah/go-txt2docx/internal/fileutil"
	"github.com/alnah/go-txt2docx/internal/hints"
	"github.com/alnah/go-txt2docx/internal/logger"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput = errors.New("no input specified")
	ErrUsage   = errors.New("invalid usage")
)

// Converter is the interface for the conversion service.
type Converter interface {
	ConvertFile(ctx context.Context, inputPath, outputPath string) (*txt2docx.FileResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*txt2docx.Service)(nil)

// newConverter builds the service for a resolved configuration.
// Replaced in tests.
var newConverter = func(cfg *config.Config, log *slog.Logger) Converter {
	return txt2docx.New(
		txt2docx.WithLayout(cfg.Layout()),
		txt2docx.WithLogger(log),
	)
}

// convertOutcome is what runMain needs after a convert attempt, whether or
// not it succeeded.
type convertOutcome struct {
	cfg        *config.Config // resolved config, nil if loading failed
	configName string         // --config or TXT2DOCX_CONFIG
	pause      bool           // wait for a key before exiting
	result     *txt2docx.FileResult
}

// runConvert orchestrates a single conversion.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) (*convertOutcome, error) {
	log := logger.New(env.Stderr, flags.common.verbose)
	envCfg := loadEnvSettings(env.Getenv)
	warnUnknownEnvVars(log, env.Environ())

	out := &convertOutcome{pause: !flags.noPause && !envCfg.NoPause}

	if len(positionalArgs) > 1 {
		return out, fmt.Errorf("%w: expected one input file, got %d", ErrUsage, len(positionalArgs))
	}

	// Load configuration
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	out.configName = configName
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return out, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		log.Debug("loaded config", "name", configName)
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvSettings(envCfg, cfg)
	mergeFlags(flags, cfg)
	out.cfg = cfg
	out.pause = out.pause && cfg.Console.Pause

	if err := cfg.Validate(); err != nil {
		return out, err
	}

	inputPath, err := resolveInputPath(positionalArgs, env)
	if err != nil {
		return out, err
	}

	outputPath, err := resolveOutputPath(inputPath, flags.output, cfg)
	if err != nil {
		return out, err
	}

	start := time.Now()
	res, err := newConverter(cfg, log).ConvertFile(ctx, inputPath, outputPath)
	if err != nil {
		return out, err
	}
	out.result = res
	log.Debug("conversion finished",
		"chars", res.Chars,
		"bytes", res.Bytes,
		"elapsed", time.Since(start))

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Converted: %s -> %s\n", res.InputPath, res.OutputPath)
		fmt.Fprintln(env.Stdout, hints.FontCacheTip)
	}
	return out, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.font.latin != "" {
		cfg.Font.Latin = flags.font.latin
	}
	if flags.font.cjk != "" {
		cfg.Font.CJK = flags.font.cjk
	}
	if flags.changed["font-size"] {
		cfg.Font.SizePt = flags.font.size
	}
	if flags.changed["line-spacing"] {
		cfg.Paragraph.LineSpacingPt = flags.layout.lineSpacing
	}
	if flags.changed["columns"] {
		cfg.Columns.Count = flags.layout.columns
	}
	if flags.changed["column-spacing"] {
		cfg.Columns.SpacingCm = flags.layout.columnSpacing
	}
	if flags.changed["margin"] {
		cfg.Page.MarginCm = flags.layout.margin
	}
	if flags.noPause {
		cfg.Console.Pause = false
	}
}

// resolveInputPath takes the input from args, or asks for it.
func resolveInputPath(args []string, env *Environment) (string, error) {
	if len(args) > 0 {
		return fileutil.CleanPromptInput(args[0]), nil
	}
	return promptInputPath(env)
}

// resolveOutputPath determines the .docx path.
// An explicit --output wins; a value ending in a separator or naming an
// existing directory receives the derived file name. Otherwise the input's
// extension is replaced, in output.defaultDir when configured.
func resolveOutputPath(inputPath, flagOutput string, cfg *config.Config) (string, error) {
	if flagOutput != "" {
		if !isDirTarget(flagOutput) {
			if err := fileutil.EnsureDir(filepath.Dir(flagOutput)); err != nil {
				return "", fmt.Errorf("%w: %w%s", txt2docx.ErrIO, err, hints.ForOutputDirectory())
			}
			return flagOutput, nil
		}
		if err := fileutil.EnsureDir(flagOutput); err != nil {
			return "", fmt.Errorf("%w: %w%s", txt2docx.ErrIO, err, hints.ForOutputDirectory())
		}
		return fileutil.DeriveOutputPath(inputPath, flagOutput)
	}

	outDir := cfg.Output.DefaultDir
	if outDir != "" {
		if err := fileutil.EnsureDir(outDir); err != nil {
			return "", fmt.Errorf("%w: %w%s", txt2docx.ErrIO, err, hints.ForOutputDirectory())
		}
	}
	return fileutil.DeriveOutputPath(inputPath, outDir)
}

// isDirTarget reports whether an --output value names a directory.
func isDirTarget(p string) bool {
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		return true
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// hintFor returns the actionable hint for a conversion error, if any.
func hintFor(err error, cfg *config.Config, configName string) string {
	switch {
	case errors.Is(err, txt2docx.ErrFontResource):
		if cfg == nil {
			cfg = config.DefaultConfig()
		}
		return hints.ForFontResource(cfg.Font.Latin, cfg.Font.CJK)
	case errors.Is(err, fileutil.ErrNoExtension):
		return hints.ForNoExtension()
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if !fileutil.IsFilePath(configName) && filepath.Ext(configName) == "" {
			searched = config.SearchPaths(configName)
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, os.ErrNotExist):
		return hints.ForInputNotFound()
	}
	return ""
}
