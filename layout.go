package txt2docx

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Default layout: A4 portrait, 1 cm margins, two columns, 8 pt Microsoft YaHei
// with exact 9 pt line spacing.
const (
	DefaultPageWidthCm      = 21.0
	DefaultPageHeightCm     = 29.7
	DefaultMarginCm         = 1.0
	DefaultHeaderDistanceCm = 0.1
	DefaultFooterDistanceCm = 0.4
	DefaultColumnCount      = 2
	DefaultColumnSpacingCm  = 0.5
	DefaultFontFamilyLatin  = "Microsoft YaHei"
	DefaultFontFamilyCJK    = "微软雅黑"
	DefaultFontSizePt       = 8.0
	DefaultLineSpacingPt    = 9.0
)

// Layout bounds accepted by Word.
const (
	MaxColumnCount    = 45
	MaxFontNameLength = 31
	MaxFontSizePt     = 1638.0
	MaxLineSpacingPt  = 1584.0
)

// Unit conversion factors.
const (
	TwipsPerCm    = 567.0
	TwipsPerPoint = 20.0
)

// LayoutConfig holds every formatting constant applied to the document.
type LayoutConfig struct {
	PageWidthCm      float64
	PageHeightCm     float64
	MarginCm         float64 // applied to all four sides
	HeaderDistanceCm float64
	FooterDistanceCm float64
	ColumnCount      int
	ColumnSpacingCm  float64
	FontFamilyLatin  string // Western-script face name
	FontFamilyCJK    string // East-Asian-script face name
	FontSizePt       float64
	LineSpacingPt    float64 // exact line height of the body paragraph
}

// DefaultLayout returns the fixed template layout.
func DefaultLayout() *LayoutConfig {
	return &LayoutConfig{
		PageWidthCm:      DefaultPageWidthCm,
		PageHeightCm:     DefaultPageHeightCm,
		MarginCm:         DefaultMarginCm,
		HeaderDistanceCm: DefaultHeaderDistanceCm,
		FooterDistanceCm: DefaultFooterDistanceCm,
		ColumnCount:      DefaultColumnCount,
		ColumnSpacingCm:  DefaultColumnSpacingCm,
		FontFamilyLatin:  DefaultFontFamilyLatin,
		FontFamilyCJK:    DefaultFontFamilyCJK,
		FontSizePt:       DefaultFontSizePt,
		LineSpacingPt:    DefaultLineSpacingPt,
	}
}

// Validate checks that every value can be expressed in the document.
// Returns nil if l is nil (nil means use defaults). Does not mutate.
func (l *LayoutConfig) Validate() error {
	if l == nil {
		return nil
	}

	if l.PageWidthCm <= 0 || l.PageHeightCm <= 0 {
		return fmt.Errorf("%w: page size %.2fx%.2f cm must be positive", ErrInvalidLayout, l.PageWidthCm, l.PageHeightCm)
	}
	if l.MarginCm < 0 || l.HeaderDistanceCm < 0 || l.FooterDistanceCm < 0 {
		return fmt.Errorf("%w: margins and header/footer distances cannot be negative", ErrInvalidLayout)
	}
	if 2*l.MarginCm >= l.PageWidthCm || 2*l.MarginCm >= l.PageHeightCm {
		return fmt.Errorf("%w: margin %.2f cm leaves no text area", ErrInvalidLayout, l.MarginCm)
	}
	if l.ColumnCount < 1 || l.ColumnCount > MaxColumnCount {
		return fmt.Errorf("%w: column count %d (must be between 1 and %d)", ErrInvalidLayout, l.ColumnCount, MaxColumnCount)
	}
	if l.ColumnSpacingCm < 0 {
		return fmt.Errorf("%w: column spacing %.2f cm cannot be negative", ErrInvalidLayout, l.ColumnSpacingCm)
	}
	if err := validateFontName("latin font", l.FontFamilyLatin); err != nil {
		return err
	}
	if err := validateFontName("CJK font", l.FontFamilyCJK); err != nil {
		return err
	}
	if l.FontSizePt <= 0 || l.FontSizePt > MaxFontSizePt {
		return fmt.Errorf("%w: font size %.1f pt (must be between 0 and %.0f)", ErrInvalidLayout, l.FontSizePt, MaxFontSizePt)
	}
	if l.LineSpacingPt <= 0 || l.LineSpacingPt > MaxLineSpacingPt {
		return fmt.Errorf("%w: line spacing %.1f pt (must be between 0 and %.0f)", ErrInvalidLayout, l.LineSpacingPt, MaxLineSpacingPt)
	}
	return nil
}

func validateFontName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrInvalidLayout, field)
	}
	if n := utf8.RuneCountInString(name); n > MaxFontNameLength {
		return fmt.Errorf("%w: %s %q is %d characters (max %d)", ErrInvalidLayout, field, name, n, MaxFontNameLength)
	}
	return nil
}

// CmToTwips converts centimetres to twips: round(cm * 567).
func CmToTwips(cm float64) int {
	return int(math.Round(cm * TwipsPerCm))
}

// PtToTwips converts points to twips: round(pt * 20).
func PtToTwips(pt float64) int {
	return int(math.Round(pt * TwipsPerPoint))
}

// PtToHalfPoints converts points to the half-point unit of w:sz.
func PtToHalfPoints(pt float64) int {
	return int(math.Round(pt * 2))
}
