package hints

// Notes:
// - ForFontResource tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable
// These are acceptable gaps: we test observable behavior through environment manipulation.

import (
	"path/filepath"
	"strings"
	"testing"
)

func clearCI(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		t.Setenv(k, "")
	}
}

func TestForFontResource_Desktop(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }
	clearCI(t)

	hint := ForFontResource("Microsoft YaHei", "微软雅黑")

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, `"Microsoft YaHei" / "微软雅黑"`) {
		t.Errorf("expected both font names, got %q", hint)
	}
	if !strings.Contains(hint, "--font-latin") {
		t.Errorf("expected flag suggestion, got %q", hint)
	}
	if strings.Contains(hint, "TXT2DOCX_FONT_LATIN") {
		t.Errorf("unexpected container suggestion on desktop: %q", hint)
	}
}

func TestForFontResource_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }
	clearCI(t)
	t.Setenv("CI", "true")

	hint := ForFontResource("Arial", "Arial")

	if !strings.Contains(hint, "TXT2DOCX_FONT_LATIN") {
		t.Errorf("expected env var suggestion in CI, got %q", hint)
	}
	if strings.Contains(hint, " / ") {
		t.Errorf("same font should be listed once, got %q", hint)
	}
}

func TestForFontResource_InDocker(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }
	clearCI(t)

	if hint := ForFontResource("Arial", ""); !strings.Contains(hint, "containers") {
		t.Errorf("expected container suggestion, got %q", hint)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"no extension", ForNoExtension(), ".txt"},
		{"input not found", ForInputNotFound(), "check the path"},
		{"output directory", ForOutputDirectory(), "writable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("missing hint prefix: %q", tt.got)
			}
			if !strings.Contains(tt.got, tt.want) {
				t.Errorf("hint %q does not contain %q", tt.got, tt.want)
			}
		})
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "u", ".config", "go-txt2docx", "work.yaml")
	hint := ForConfigNotFound([]string{"work.yaml", userPath})
	if !strings.Contains(hint, "--config") {
		t.Errorf("expected --config suggestion, got %q", hint)
	}
	if !strings.Contains(hint, "create "+userPath) {
		t.Errorf("expected user path suggestion, got %q", hint)
	}

	hint = ForConfigNotFound([]string{"work.yaml"})
	if strings.Contains(hint, "create") {
		t.Errorf("unexpected create suggestion: %q", hint)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints = %q", got)
	}
}

func TestQuoteFonts(t *testing.T) {
	t.Parallel()

	tests := []struct{ latin, cjk, want string }{
		{"A", "B", `"A" / "B"`},
		{"A", "A", `"A"`},
		{"A", "", `"A"`},
		{"", "B", `"B"`},
	}
	for _, tt := range tests {
		if got := quoteFonts(tt.latin, tt.cjk); got != tt.want {
			t.Errorf("quoteFonts(%q, %q) = %q, want %q", tt.latin, tt.cjk, got, tt.want)
		}
	}
}
