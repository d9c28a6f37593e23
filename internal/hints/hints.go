// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-txt2docx/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// FontCacheTip is printed after a successful conversion. Word may keep
// showing a substitute face until the document is reopened.
const FontCacheTip = "tip: if the font does not show, close and reopen the document in Word to refresh its font cache"

// ForFontResource returns hints for font registration failures.
// Detects CI/Docker environment and suggests the TXT2DOCX_FONT_* overrides.
func ForFontResource(latin, cjk string) string {
	var hints []string

	hints = append(hints, "make sure "+quoteFonts(latin, cjk)+" is installed (run 'txt2docx doctor')")

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
	if inCI || IsInContainer() {
		hints = append(hints, "containers rarely ship Microsoft fonts; install one or set TXT2DOCX_FONT_LATIN/TXT2DOCX_FONT_CJK")
	} else {
		hints = append(hints, "or choose another font with --font-latin/--font-cjk")
	}

	return formatHints(hints)
}

// ForNoExtension returns a hint for inputs whose name has no extension.
func ForNoExtension() string {
	return format("rename the file with a .txt extension or pass --output")
}

// ForInputNotFound returns a hint for missing input files.
func ForInputNotFound() string {
	return format("check the path; paths with spaces may be quoted")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	marker := string(filepath.Separator) + "go-txt2docx" + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, marker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// quoteFonts renders the configured font pair for display.
func quoteFonts(latin, cjk string) string {
	switch {
	case latin == cjk || cjk == "":
		return `"` + latin + `"`
	case latin == "":
		return `"` + cjk + `"`
	default:
		return `"` + latin + `" / "` + cjk + `"`
	}
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
