package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-txt2docx/internal/config"
	"github.com/alnah/go-txt2docx/internal/configfmt"
)

// runConfigCmd prints the configuration convert would use (defaults, then
// the config file, then TXT2DOCX_* variables) in a form that can be saved
// as a config file.
func runConfigCmd(args []string, env *Environment) int {
	format, configName, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}
	if configName == "" {
		configName = env.Getenv(envConfig)
	}

	data, err := renderConfig(format, configName, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Config failed: %v%s\n", err, hintFor(err, nil, configName))
		return exitCodeFor(err)
	}
	_, _ = env.Stdout.Write(data)
	return ExitSuccess
}

// renderConfig resolves the configuration and encodes it.
func renderConfig(format, configName string, env *Environment) ([]byte, error) {
	f := configfmt.Format(strings.ToLower(format))
	if f != configfmt.YAML && f != configfmt.TOML {
		return nil, fmt.Errorf("%w: --format must be yaml or toml, got %q", ErrUsage, format)
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	applyEnvSettings(loadEnvSettings(env.Getenv), cfg)

	return configfmt.Marshal(f, cfg)
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, usageOut io.Writer) (format, configName string, err error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&format, "format", string(configfmt.YAML), "output format: yaml or toml")
	fs.StringVarP(&configName, "config", "c", "", "config file name or path")
	fs.SetOutput(usageOut)
	fs.Usage = func() { printConfigUsage(usageOut) }
	err = fs.Parse(args)
	return format, configName, err
}
