package docx

import "fmt"

// Page geometry of a fresh document (US Letter, 1 inch margins).
const (
	DefaultPageWidth      = 12240
	DefaultPageHeight     = 15840
	DefaultMargin         = 1440
	DefaultHeaderDistance = 720
	DefaultFooterDistance = 720
	DefaultColumnSpace    = 720
)

// MaxColumns is the largest column count Word accepts in w:cols.
const MaxColumns = 45

// Document is an in-memory WordprocessingML document.
// It is not safe for concurrent use.
type Document struct {
	sections []*Section
	body     []*Paragraph
	fonts    *fontTable
}

// New creates a document with a single default section, no footer and an
// empty body.
func New() *Document {
	d := &Document{fonts: newFontTable()}
	d.sections = []*Section{newSection(d)}
	return d
}

// Sections returns the document sections in order.
func (d *Document) Sections() []*Section {
	return d.sections
}

// Section returns the section at index i.
func (d *Document) Section(i int) (*Section, error) {
	if i < 0 || i >= len(d.sections) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrSectionIndex, i, len(d.sections))
	}
	return d.sections[i], nil
}

// AddSection closes the current section at the end of the body and starts a
// new one with default geometry. Paragraphs added afterwards belong to it.
func (d *Document) AddSection() *Section {
	last := d.sections[len(d.sections)-1]
	d.body = append(d.body, &Paragraph{doc: d, sectionBreak: last})
	s := newSection(d)
	d.sections = append(d.sections, s)
	return s
}

// AddParagraph appends an empty body paragraph.
func (d *Document) AddParagraph() *Paragraph {
	p := &Paragraph{doc: d}
	d.body = append(d.body, p)
	return p
}

// Paragraphs returns the body paragraphs, excluding section break markers.
func (d *Document) Paragraphs() []*Paragraph {
	out := make([]*Paragraph, 0, len(d.body))
	for _, p := range d.body {
		if p.sectionBreak == nil {
			out = append(out, p)
		}
	}
	return out
}

// Margins holds page margins and header/footer distances in twips.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// Columns describes the text column layout of a section.
type Columns struct {
	Count int
	Space int // twips between columns
}

// Section is a document region with its own geometry and footer.
type Section struct {
	doc     *Document
	width   int
	height  int
	margins Margins
	columns Columns
	footer  *Footer
}

func newSection(d *Document) *Section {
	return &Section{
		doc:    d,
		width:  DefaultPageWidth,
		height: DefaultPageHeight,
		margins: Margins{
			Top:    DefaultMargin,
			Right:  DefaultMargin,
			Bottom: DefaultMargin,
			Left:   DefaultMargin,
			Header: DefaultHeaderDistance,
			Footer: DefaultFooterDistance,
		},
		columns: Columns{Count: 1, Space: DefaultColumnSpace},
	}
}

// SetPageSize sets the page width and height in twips.
func (s *Section) SetPageSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidPageSize, width, height)
	}
	s.width = width
	s.height = height
	return nil
}

// PageSize returns the page width and height in twips.
func (s *Section) PageSize() (width, height int) {
	return s.width, s.height
}

// SetMargins replaces the section margins. Negative values are rejected.
func (s *Section) SetMargins(m Margins) error {
	for _, v := range []int{m.Top, m.Right, m.Bottom, m.Left, m.Header, m.Footer, m.Gutter} {
		if v < 0 {
			return fmt.Errorf("%w: %d", ErrInvalidMargin, v)
		}
	}
	s.margins = m
	return nil
}

// Margins returns the section margins.
func (s *Section) Margins() Margins {
	return s.margins
}

// SetColumns sets the number of text columns and the spacing between them.
func (s *Section) SetColumns(count, space int) error {
	if count < 1 || count > MaxColumns {
		return fmt.Errorf("%w: count %d (must be between 1 and %d)", ErrInvalidColumns, count, MaxColumns)
	}
	if space < 0 {
		return fmt.Errorf("%w: space %d", ErrInvalidColumns, space)
	}
	s.columns = Columns{Count: count, Space: space}
	return nil
}

// Columns returns the section column layout.
func (s *Section) Columns() Columns {
	return s.columns
}

// Footer returns the default footer of the section, creating it if needed.
func (s *Section) Footer() *Footer {
	if s.footer == nil {
		s.footer = &Footer{doc: s.doc}
	}
	return s.footer
}

// HasFooter reports whether a footer has been created for the section.
func (s *Section) HasFooter() bool {
	return s.footer != nil
}

// Footer is the default page footer of a section.
type Footer struct {
	doc        *Document
	paragraphs []*Paragraph
}

// Paragraphs returns the footer paragraphs.
func (f *Footer) Paragraphs() []*Paragraph {
	return f.paragraphs
}

// FirstParagraph returns the first footer paragraph, adding one if the
// footer is empty.
func (f *Footer) FirstParagraph() *Paragraph {
	if len(f.paragraphs) == 0 {
		return f.AddParagraph()
	}
	return f.paragraphs[0]
}

// AddParagraph appends an empty footer paragraph.
func (f *Footer) AddParagraph() *Paragraph {
	p := &Paragraph{doc: f.doc}
	f.paragraphs = append(f.paragraphs, p)
	return p
}
