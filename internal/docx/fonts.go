package docx

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxFontNameLength is the longest face name Word keeps (LF_FACESIZE - 1).
const MaxFontNameLength = 31

// Font is an entry of word/fontTable.xml.
type Font struct {
	Name    string
	AltName string
}

type fontTable struct {
	order []string
	fonts map[string]*Font
}

func newFontTable() *fontTable {
	return &fontTable{fonts: make(map[string]*Font)}
}

// RegisterFont adds a font to the document font table. altName is the
// East Asian name of the same face and may be empty. Registering an existing
// font only fills in a missing altName.
func (d *Document) RegisterFont(name, altName string) error {
	if err := validateFontName(name); err != nil {
		return err
	}
	if altName != "" {
		if err := validateFontName(altName); err != nil {
			return err
		}
	}

	if f, ok := d.fonts.fonts[name]; ok {
		if f.AltName == "" && altName != name {
			f.AltName = altName
		}
		return nil
	}

	f := &Font{Name: name}
	if altName != name {
		f.AltName = altName
	}
	d.fonts.fonts[name] = f
	d.fonts.order = append(d.fonts.order, name)
	return nil
}

// Fonts returns the registered fonts in registration order.
func (d *Document) Fonts() []Font {
	out := make([]Font, 0, len(d.fonts.order))
	for _, name := range d.fonts.order {
		out = append(out, *d.fonts.fonts[name])
	}
	return out
}

func validateFontName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFont)
	}
	if n := utf8.RuneCountInString(name); n > MaxFontNameLength {
		return fmt.Errorf("%w: %q is %d characters (max %d)", ErrInvalidFont, name, n, MaxFontNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			return fmt.Errorf("%w: %q contains control or invalid characters", ErrInvalidFont, name)
		}
	}
	return nil
}
