package docx

import (
	"fmt"
	"strings"
)

// Paragraph alignment values (w:jc).
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "both"
)

// Line spacing rules (w:spacing/@w:lineRule).
const (
	LineRuleExact   = "exact"
	LineRuleAtLeast = "atLeast"
	LineRuleAuto    = "auto"
)

// LineSpacing is a paragraph line-height setting.
type LineSpacing struct {
	Rule  string
	Value int // twips for exact/atLeast, 240ths of a line for auto
}

// Paragraph is a block of runs in the body or a footer.
type Paragraph struct {
	doc          *Document
	align        string
	spacing      *LineSpacing
	runs         []*Run
	sectionBreak *Section // non-nil for the marker paragraph ending a section
}

// SetAlignment sets the paragraph justification.
func (p *Paragraph) SetAlignment(align string) error {
	switch align {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		p.align = align
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAlign, align)
}

// Alignment returns the paragraph justification, or "" when unset.
func (p *Paragraph) Alignment() string {
	return p.align
}

// SetLineSpacingExact fixes the line height to the given number of twips,
// overriding automatic line height.
func (p *Paragraph) SetLineSpacingExact(twips int) error {
	if twips <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSpacing, twips)
	}
	p.spacing = &LineSpacing{Rule: LineRuleExact, Value: twips}
	return nil
}

// LineSpacing returns the line spacing, or nil when unset.
func (p *Paragraph) LineSpacing() *LineSpacing {
	return p.spacing
}

// AddRun appends a new run holding text. Empty text yields an empty run.
func (p *Paragraph) AddRun(text string) *Run {
	r := &Run{}
	if text != "" {
		r.AddText(text)
	}
	p.runs = append(p.runs, r)
	return r
}

// AddText appends text to the last run, starting a run if there is none.
func (p *Paragraph) AddText(text string) {
	p.lastRun().AddText(text)
}

// AddFieldCode appends a field to the last run, starting a run if there is none.
func (p *Paragraph) AddFieldCode(instr string) error {
	return p.lastRun().AddFieldCode(instr)
}

func (p *Paragraph) lastRun() *Run {
	if len(p.runs) == 0 {
		return p.AddRun("")
	}
	return p.runs[len(p.runs)-1]
}

// SetRunFont applies the font to every run in the paragraph and registers it
// in the document font table.
func (p *Paragraph) SetRunFont(latin, eastAsia string, halfPoints int) error {
	if halfPoints <= 0 {
		return fmt.Errorf("%w: size %d half-points", ErrInvalidFont, halfPoints)
	}
	if p.doc != nil {
		if err := p.doc.RegisterFont(latin, eastAsia); err != nil {
			return err
		}
	}
	for _, r := range p.runs {
		r.font = &RunFont{Latin: latin, EastAsia: eastAsia, Size: halfPoints}
	}
	return nil
}

// Runs returns the paragraph runs.
func (p *Paragraph) Runs() []*Run {
	return p.runs
}

// Text concatenates the text of all runs, ignoring field instructions.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.runs {
		b.WriteString(r.Text())
	}
	return b.String()
}

// RunFont is the character formatting of a run.
type RunFont struct {
	Latin    string // w:ascii and w:hAnsi
	EastAsia string // w:eastAsia
	Size     int    // half-points
}

type contentKind int

const (
	contentText contentKind = iota
	contentField
)

type runContent struct {
	kind  contentKind
	value string
}

// Run is a span of uniformly formatted content. Text and field codes keep
// their insertion order.
type Run struct {
	content []runContent
	font    *RunFont
}

// AddText appends literal text to the run.
func (r *Run) AddText(text string) {
	r.content = append(r.content, runContent{kind: contentText, value: text})
}

// AddFieldCode appends a field whose instruction is evaluated by the
// rendering application (e.g. "PAGE", "NUMPAGES").
func (r *Run) AddFieldCode(instr string) error {
	if strings.TrimSpace(instr) == "" {
		return ErrEmptyField
	}
	r.content = append(r.content, runContent{kind: contentField, value: instr})
	return nil
}

// Font returns the run font, or nil when unset.
func (r *Run) Font() *RunFont {
	return r.font
}

// Text returns the literal text of the run.
func (r *Run) Text() string {
	var b strings.Builder
	for _, c := range r.content {
		if c.kind == contentText {
			b.WriteString(c.value)
		}
	}
	return b.String()
}

// FieldCodes returns the field instructions of the run in order.
func (r *Run) FieldCodes() []string {
	var codes []string
	for _, c := range r.content {
		if c.kind == contentField {
			codes = append(codes, c.value)
		}
	}
	return codes
}
