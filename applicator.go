package txt2docx

import "fmt"

// Footer text segments and field instructions. The footer reads
// "共 {NUMPAGES} 页 第 {PAGE} 页" once the rendering application evaluates
// the fields.
const (
	footerTotalPrefix   = "共"
	footerTotalSuffix   = "页 第"
	footerCurrentSuffix = "页"

	FieldNumPages = "NUMPAGES"
	FieldPage     = "PAGE"
)

// ApplyLayout issues the formatting directives against doc in order:
// page geometry, columns, footer, body paragraph. A nil layout uses
// DefaultLayout. It stops at the first failure; font registration failures
// wrap ErrFontResource and all other document failures wrap ErrDocumentLibrary.
func ApplyLayout(doc Document, text string, layout *LayoutConfig) error {
	if layout == nil {
		layout = DefaultLayout()
	}
	if err := layout.Validate(); err != nil {
		return err
	}

	if doc.SectionCount() == 0 {
		doc.AddSection()
	}

	if err := applyPageGeometry(doc, layout); err != nil {
		return fmt.Errorf("%w: page geometry: %w", ErrDocumentLibrary, err)
	}
	if err := applyColumns(doc, layout); err != nil {
		return fmt.Errorf("%w: columns: %w", ErrDocumentLibrary, err)
	}
	if err := applyFooter(doc, layout); err != nil {
		return err
	}
	return applyBody(doc, text, layout)
}

func applyPageGeometry(doc Document, l *LayoutConfig) error {
	margin := CmToTwips(l.MarginCm)
	m := Margins{
		Top:    margin,
		Right:  margin,
		Bottom: margin,
		Left:   margin,
		Header: CmToTwips(l.HeaderDistanceCm),
		Footer: CmToTwips(l.FooterDistanceCm),
	}
	for i := range doc.SectionCount() {
		if err := doc.SetPageSize(i, CmToTwips(l.PageWidthCm), CmToTwips(l.PageHeightCm)); err != nil {
			return err
		}
		if err := doc.SetMargins(i, m); err != nil {
			return err
		}
	}
	return nil
}

func applyColumns(doc Document, l *LayoutConfig) error {
	for i := range doc.SectionCount() {
		if err := doc.SetColumns(i, l.ColumnCount, CmToTwips(l.ColumnSpacingCm)); err != nil {
			return err
		}
	}
	return nil
}

func applyFooter(doc Document, l *LayoutConfig) error {
	for i := range doc.SectionCount() {
		p, err := doc.FooterParagraph(i)
		if err != nil {
			return fmt.Errorf("%w: footer: %w", ErrDocumentLibrary, err)
		}
		if err := writePageCounter(p); err != nil {
			return fmt.Errorf("%w: footer: %w", ErrDocumentLibrary, err)
		}
		if err := p.SetRunFont(l.FontFamilyLatin, l.FontFamilyCJK, PtToHalfPoints(l.FontSizePt)); err != nil {
			return fmt.Errorf("%w: footer font: %w", ErrFontResource, err)
		}
	}
	return nil
}

// writePageCounter writes the centered "共 N 页 第 M 页" footer content.
func writePageCounter(p Paragraph) error {
	if err := p.SetAlignment(AlignCenter); err != nil {
		return err
	}
	p.AddText(footerTotalPrefix)
	if err := p.AddFieldCode(FieldNumPages); err != nil {
		return err
	}
	p.AddText(footerTotalSuffix)
	if err := p.AddFieldCode(FieldPage); err != nil {
		return err
	}
	p.AddText(footerCurrentSuffix)
	return nil
}

func applyBody(doc Document, text string, l *LayoutConfig) error {
	p, err := doc.AddBodyParagraph(text)
	if err != nil {
		return fmt.Errorf("%w: body: %w", ErrDocumentLibrary, err)
	}
	if err := p.SetLineSpacingExact(PtToTwips(l.LineSpacingPt)); err != nil {
		return fmt.Errorf("%w: line spacing: %w", ErrDocumentLibrary, err)
	}
	if err := p.SetRunFont(l.FontFamilyLatin, l.FontFamilyCJK, PtToHalfPoints(l.FontSizePt)); err != nil {
		return fmt.Errorf("%w: body font: %w", ErrFontResource, err)
	}
	return nil
}
