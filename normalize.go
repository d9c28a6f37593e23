package txt2docx

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// byteOrderMark is dropped wherever it appears. Editors on Windows prefix
// UTF-8 files with it, and mid-text it is an invisible zero-width no-break space.
const byteOrderMark = '\uFEFF'

// lineBreaks removes CR and LF left over after whitespace collapsing.
var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// IsDisallowedControl reports whether r is a control character that
// WordprocessingML text may not contain: U+0000-U+0008, U+000B, U+000C
// and U+000E-U+001F. Tab, LF and CR are allowed.
func IsDisallowedControl(r rune) bool {
	return r <= 0x08 || r == 0x0B || r == 0x0C || (r >= 0x0E && r <= 0x1F)
}

// Normalize turns raw file bytes into a single paragraph of text.
// Invalid UTF-8 sequences are dropped, never replaced. It never fails.
func Normalize(raw []byte) string {
	return NormalizeString(strings.ToValidUTF8(string(raw), ""))
}

// NormalizeString applies the text passes in order:
//  1. remove disallowed control characters and byte order marks
//  2. collapse every whitespace run to one space and trim the ends
//  3. remove any remaining CR/LF
//
// The result is idempotent: NormalizeString(NormalizeString(s)) == NormalizeString(s).
func NormalizeString(s string) string {
	s = removeControls(s)
	s = strings.Join(strings.Fields(s), " ")
	return lineBreaks.Replace(s)
}

func isStripped(r rune) bool {
	return IsDisallowedControl(r) || r == byteOrderMark
}

func removeControls(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(isStripped)), s)
	if err != nil {
		// transform only fails on malformed input; strings.Map handles it rune by rune.
		return strings.Map(func(r rune) rune {
			if isStripped(r) {
				return -1
			}
			return r
		}, s)
	}
	return out
}
