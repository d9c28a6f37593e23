package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-txt2docx/internal/config"
	"github.com/alnah/go-txt2docx/internal/fileutil"
	"github.com/alnah/go-txt2docx/internal/fontcheck"
)

// fontLocator finds installed font files. Replaced in tests.
type fontLocator interface {
	Find(family string) (string, bool)
}

var newFontLocator = func() fontLocator { return fontcheck.New() }

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Config   string     `json:"config"` // config source, "defaults" when none
	Fonts    []fontInfo `json:"fonts"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// fontInfo holds font detection results.
type fontInfo struct {
	Role   string `json:"role"` // "latin" or "cjk"
	Family string `json:"family"`
	Found  bool   `json:"found"`
	Path   string `json:"path,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	Terminal      bool   `json:"terminal"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput, configName, err := parseDoctorFlags(args, env.Stderr)
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

	result := runDoctor(configName, env, newFontLocator())

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(configName string, env *Environment, fonts fontLocator) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Config: "defaults",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}
	if env.IsTerminal != nil {
		result.Env.Terminal = env.IsTerminal()
	}

	cfg := checkConfig(result, configName, env)
	checkFonts(result, cfg, fonts)
	checkEnvironment(result, env)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig loads the config the convert command would use.
func checkConfig(result *doctorResult, configName string, env *Environment) *config.Config {
	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Config %s: %v", configName, err))
		} else {
			cfg = loaded
			result.Config = configName
		}
	}
	applyEnvSettings(loadEnvSettings(env.Getenv), cfg)
	return cfg
}

// checkFonts reports whether the configured families are installed.
// Missing fonts are warnings: Word substitutes a fallback face.
func checkFonts(result *doctorResult, cfg *config.Config, fonts fontLocator) {
	families := []fontInfo{
		{Role: "latin", Family: cfg.Font.Latin},
		{Role: "cjk", Family: cfg.Font.CJK},
	}
	for _, f := range families {
		f.Path, f.Found = fonts.Find(f.Family)
		if !f.Found {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Font %q (%s) not found; Word will substitute another font", f.Family, f.Role))
		}
		result.Fonts = append(result.Fonts, f)
	}
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = isContainer(env.Getenv)

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if env.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer(getenv func(string) string) (bool, string) {
	if fileutil.FileExists("/.dockerenv") {
		return true, "/.dockerenv"
	}
	// Podman / systemd-nspawn / general container indicator
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory accepts writes.
func checkSystem(result *doctorResult) {
	_, cleanup, err := fileutil.WriteTempFile("test", "txt")
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", os.TempDir()))
		return
	}
	cleanup()
	result.System.TempWritable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "txt2docx doctor")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Config: %s\n", r.Config)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Fonts")
	for _, f := range r.Fonts {
		if f.Found {
			fmt.Fprintf(w, "  [OK] %s %q: %s\n", f.Role, f.Family, f.Path)
		} else {
			fmt.Fprintf(w, "  [WARN] %s %q: not found\n", f.Role, f.Family)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	if !r.Env.Terminal {
		fmt.Fprintln(w, "  [OK] Terminal: no (exit pause disabled)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", e)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: READY")
	case "warnings":
		fmt.Fprintln(w, "Status: READY (with warnings)")
	default:
		fmt.Fprintln(w, "Status: NOT READY")
	}
}
