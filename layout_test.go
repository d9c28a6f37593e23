package txt2docx

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDefaultLayout - Template values
// ---------------------------------------------------------------------------

func TestDefaultLayout(t *testing.T) {
	t.Parallel()

	l := DefaultLayout()
	want := LayoutConfig{
		PageWidthCm:      21.0,
		PageHeightCm:     29.7,
		MarginCm:         1,
		HeaderDistanceCm: 0.1,
		FooterDistanceCm: 0.4,
		ColumnCount:      2,
		ColumnSpacingCm:  0.5,
		FontFamilyLatin:  "Microsoft YaHei",
		FontFamilyCJK:    "微软雅黑",
		FontSizePt:       8,
		LineSpacingPt:    9,
	}
	if *l != want {
		t.Errorf("DefaultLayout() = %+v, want %+v", *l, want)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("DefaultLayout().Validate() unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestLayoutConfig_Validate - Bounds
// ---------------------------------------------------------------------------

func TestLayoutConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*LayoutConfig)
	}{
		{"zero width", func(l *LayoutConfig) { l.PageWidthCm = 0 }},
		{"negative height", func(l *LayoutConfig) { l.PageHeightCm = -1 }},
		{"negative margin", func(l *LayoutConfig) { l.MarginCm = -0.1 }},
		{"negative header distance", func(l *LayoutConfig) { l.HeaderDistanceCm = -1 }},
		{"negative footer distance", func(l *LayoutConfig) { l.FooterDistanceCm = -1 }},
		{"margin consumes page", func(l *LayoutConfig) { l.MarginCm = 10.5 }},
		{"zero columns", func(l *LayoutConfig) { l.ColumnCount = 0 }},
		{"too many columns", func(l *LayoutConfig) { l.ColumnCount = MaxColumnCount + 1 }},
		{"negative column spacing", func(l *LayoutConfig) { l.ColumnSpacingCm = -0.5 }},
		{"empty latin font", func(l *LayoutConfig) { l.FontFamilyLatin = "" }},
		{"empty CJK font", func(l *LayoutConfig) { l.FontFamilyCJK = "" }},
		{"font name too long", func(l *LayoutConfig) { l.FontFamilyLatin = strings.Repeat("a", MaxFontNameLength+1) }},
		{"zero font size", func(l *LayoutConfig) { l.FontSizePt = 0 }},
		{"huge font size", func(l *LayoutConfig) { l.FontSizePt = MaxFontSizePt + 1 }},
		{"zero line spacing", func(l *LayoutConfig) { l.LineSpacingPt = 0 }},
		{"huge line spacing", func(l *LayoutConfig) { l.LineSpacingPt = MaxLineSpacingPt + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := DefaultLayout()
			tt.mutate(l)
			if err := l.Validate(); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("Validate() error = %v, want ErrInvalidLayout", err)
			}
		})
	}
}

func TestLayoutConfig_Validate_Nil(t *testing.T) {
	t.Parallel()

	var l *LayoutConfig
	if err := l.Validate(); err != nil {
		t.Errorf("nil Validate() = %v, want nil", err)
	}
}

func TestLayoutConfig_Validate_CJKNameLength(t *testing.T) {
	t.Parallel()

	// 31 runes is allowed even though it is far more than 31 bytes.
	l := DefaultLayout()
	l.FontFamilyCJK = strings.Repeat("雅", MaxFontNameLength)
	if err := l.Validate(); err != nil {
		t.Errorf("Validate() unexpected error for %d-rune name: %v", MaxFontNameLength, err)
	}
}

// ---------------------------------------------------------------------------
// TestUnitConversions
// ---------------------------------------------------------------------------

func TestCmToTwips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cm   float64
		want int
	}{
		{0.5, 284},
		{1, 567},
		{0.1, 57},
		{0.4, 227},
		{21.0, 11907},
		{29.7, 16840},
		{0, 0},
	}
	for _, tt := range tests {
		if got := CmToTwips(tt.cm); got != tt.want {
			t.Errorf("CmToTwips(%v) = %d, want %d", tt.cm, got, tt.want)
		}
	}
}

func TestPtConversions(t *testing.T) {
	t.Parallel()

	if got := PtToTwips(9); got != 180 {
		t.Errorf("PtToTwips(9) = %d, want 180", got)
	}
	if got := PtToHalfPoints(8); got != 16 {
		t.Errorf("PtToHalfPoints(8) = %d, want 16", got)
	}
	if got := PtToHalfPoints(10.5); got != 21 {
		t.Errorf("PtToHalfPoints(10.5) = %d, want 21", got)
	}
}
