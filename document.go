package txt2docx

import (
	"io"

	"github.com/alnah/go-txt2docx/internal/docx"
)

// Alignment values accepted by Paragraph.SetAlignment.
const (
	AlignLeft   = docx.AlignLeft
	AlignCenter = docx.AlignCenter
	AlignRight  = docx.AlignRight
)

// Margins are page margins and header/footer distances in twips.
type Margins struct {
	Top, Right, Bottom, Left int
	Header, Footer           int
}

// Document is the set of word-processing primitives ApplyLayout drives.
// Section indexes start at 0. Any implementation that can express these
// primitives satisfies the contract.
type Document interface {
	SectionCount() int
	AddSection()
	SetPageSize(section, widthTwips, heightTwips int) error
	SetMargins(section int, m Margins) error
	SetColumns(section, count, spaceTwips int) error
	// FooterParagraph returns the first paragraph of the section footer,
	// creating the footer or the paragraph when missing.
	FooterParagraph(section int) (Paragraph, error)
	// AddBodyParagraph appends a body paragraph holding text as a single run.
	AddBodyParagraph(text string) (Paragraph, error)
	Save(w io.Writer) error
}

// Paragraph is a paragraph handle returned by Document.
type Paragraph interface {
	SetAlignment(align string) error
	SetLineSpacingExact(twips int) error
	AddText(text string)
	AddFieldCode(instr string) error
	// SetRunFont applies the dual-script font to every run and registers it
	// with the document. Failures are font resource failures.
	SetRunFont(latin, eastAsia string, halfPoints int) error
}

// Compile-time interface implementation checks.
var (
	_ Document  = (*wordDocument)(nil)
	_ Paragraph = (*docx.Paragraph)(nil)
)

// wordDocument adapts the internal OOXML model to Document.
type wordDocument struct {
	doc *docx.Document
}

// newWordDocument returns an empty document with one section.
func newWordDocument() *wordDocument {
	return &wordDocument{doc: docx.New()}
}

func (w *wordDocument) SectionCount() int {
	return len(w.doc.Sections())
}

func (w *wordDocument) AddSection() {
	w.doc.AddSection()
}

func (w *wordDocument) SetPageSize(section, widthTwips, heightTwips int) error {
	s, err := w.doc.Section(section)
	if err != nil {
		return err
	}
	return s.SetPageSize(widthTwips, heightTwips)
}

func (w *wordDocument) SetMargins(section int, m Margins) error {
	s, err := w.doc.Section(section)
	if err != nil {
		return err
	}
	return s.SetMargins(docx.Margins{
		Top:    m.Top,
		Right:  m.Right,
		Bottom: m.Bottom,
		Left:   m.Left,
		Header: m.Header,
		Footer: m.Footer,
	})
}

func (w *wordDocument) SetColumns(section, count, spaceTwips int) error {
	s, err := w.doc.Section(section)
	if err != nil {
		return err
	}
	return s.SetColumns(count, spaceTwips)
}

func (w *wordDocument) FooterParagraph(section int) (Paragraph, error) {
	s, err := w.doc.Section(section)
	if err != nil {
		return nil, err
	}
	return s.Footer().FirstParagraph(), nil
}

func (w *wordDocument) AddBodyParagraph(text string) (Paragraph, error) {
	p := w.doc.AddParagraph()
	p.AddRun(text)
	return p, nil
}

func (w *wordDocument) Save(out io.Writer) error {
	return w.doc.Save(out)
}
