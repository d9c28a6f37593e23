package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-txt2docx/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommand names. Any other first argument is an input
// path for the default convert command.
var commands = map[string]bool{
	"convert": true,
	"config":  true,
	"doctor":  true,
	"version": true,
	"help":    true,
}

func main() {
	// Configure GOMAXPROCS, logging the adjustment in verbose mode.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	log := logger.New(os.Stderr, wantsVerbose(os.Args[1:]))
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		if logger.IsVerbose(log) {
			log.Debug(fmt.Sprintf(format, args...))
		}
	}))

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	args = args[1:]

	cmd := "convert"
	if len(args) > 0 && isCommand(args[0]) {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "txt2docx %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return ExitSuccess
	case "help":
		return runHelp(args, env)
	case "config":
		return runConfigCmd(args, env)
	case "doctor":
		return runDoctorCmd(args, env)
	}

	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	outcome, err := runConvert(ctx, positional, flags, env)
	code := exitCodeFor(err)
	if err != nil {
		fmt.Fprintf(env.Stderr, "Conversion failed: %v%s\n", err, hintFor(err, outcome.cfg, outcome.configName))
	}
	pauseBeforeExit(env, outcome.pause)
	return code
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	return commands[s]
}

// wantsVerbose scans raw arguments for -v/--verbose before flags are parsed.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}
