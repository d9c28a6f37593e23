package docx

// Notes:
// - Save: we unzip the package and check part presence, relationships and
//   the XML fragments that carry layout (pgSz, pgMar, cols, spacing, rFonts,
//   fldChar). We don't validate against the OOXML schema.
// - XML well-formedness is checked by decoding every XML part.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

// readParts unzips a package into a map of part name to content.
func readParts(t *testing.T, data []byte) map[string]string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	parts := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		parts[f.Name] = string(content)
	}
	return parts
}

// assertWellFormed decodes every token of an XML part.
func assertWellFormed(t *testing.T, name, content string) {
	t.Helper()

	dec := xml.NewDecoder(strings.NewReader(content))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("%s is not well-formed: %v", name, err)
		}
	}
}

func assertContains(t *testing.T, name, content string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(content, frag) {
			t.Errorf("%s missing %q", name, frag)
		}
	}
}

// ---------------------------------------------------------------------------
// TestSave - Package structure
// ---------------------------------------------------------------------------

func TestSave_MinimalPackage(t *testing.T) {
	t.Parallel()

	data, err := New().Bytes()
	if err != nil {
		t.Fatalf("Bytes() unexpected error: %v", err)
	}
	parts := readParts(t, data)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"word/document.xml",
		"word/_rels/document.xml.rels",
		"word/styles.xml",
		"word/settings.xml",
		"word/fontTable.xml",
	} {
		content, ok := parts[name]
		if !ok {
			t.Errorf("package missing %s", name)
			continue
		}
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".rels") {
			assertWellFormed(t, name, content)
		}
	}

	if _, ok := parts["word/footer1.xml"]; ok {
		t.Error("document without footer should not contain footer1.xml")
	}
	if _, ok := parts["docProps/core.xml"]; ok {
		t.Error("package should not contain document properties")
	}
	assertContains(t, "_rels/.rels", parts["_rels/.rels"], `Target="word/document.xml"`)
}

func TestSave_SectionAndFooter(t *testing.T) {
	t.Parallel()

	d := New()
	s := d.Sections()[0]
	if err := s.SetPageSize(11907, 16840); err != nil {
		t.Fatal(err)
	}
	if err := s.SetMargins(Margins{Top: 567, Right: 567, Bottom: 567, Left: 567, Header: 57, Footer: 227}); err != nil {
		t.Fatal(err)
	}
	if err := s.SetColumns(2, 284); err != nil {
		t.Fatal(err)
	}

	fp := s.Footer().FirstParagraph()
	if err := fp.SetAlignment(AlignCenter); err != nil {
		t.Fatal(err)
	}
	fp.AddText("共")
	if err := fp.AddFieldCode("NUMPAGES"); err != nil {
		t.Fatal(err)
	}
	fp.AddText("页")
	if err := fp.SetRunFont("Microsoft YaHei", "微软雅黑", 16); err != nil {
		t.Fatal(err)
	}

	data, err := d.Bytes()
	if err != nil {
		t.Fatalf("Bytes() unexpected error: %v", err)
	}
	parts := readParts(t, data)

	document := parts["word/document.xml"]
	assertWellFormed(t, "word/document.xml", document)
	assertContains(t, "word/document.xml", document,
		`<w:pgSz w:w="11907" w:h="16840"></w:pgSz>`,
		`w:top="567" w:right="567" w:bottom="567" w:left="567" w:header="57" w:footer="227"`,
		`<w:cols w:num="2" w:space="284"></w:cols>`,
		`<w:footerReference w:type="default" r:id="rId4">`,
	)

	footer, ok := parts["word/footer1.xml"]
	if !ok {
		t.Fatal("package missing word/footer1.xml")
	}
	assertWellFormed(t, "word/footer1.xml", footer)
	assertContains(t, "word/footer1.xml", footer,
		`<w:jc w:val="center">`,
		`<w:rFonts w:ascii="Microsoft YaHei" w:hAnsi="Microsoft YaHei" w:eastAsia="微软雅黑">`,
		`<w:sz w:val="16">`,
		`<w:fldChar w:fldCharType="begin">`,
		`<w:instrText xml:space="preserve">NUMPAGES</w:instrText>`,
		`<w:fldChar w:fldCharType="end">`,
	)

	assertContains(t, "word/_rels/document.xml.rels", parts["word/_rels/document.xml.rels"],
		`Id="rId4"`, `Target="footer1.xml"`)
	assertContains(t, "[Content_Types].xml", parts["[Content_Types].xml"],
		`PartName="/word/footer1.xml"`)
	assertContains(t, "word/fontTable.xml", parts["word/fontTable.xml"],
		`<w:font w:name="Microsoft YaHei"><w:altName w:val="微软雅黑">`)
}

func TestSave_RunOrderAndEscaping(t *testing.T) {
	t.Parallel()

	d := New()
	p := d.AddParagraph()
	p.AddText("a < b & c")
	if err := p.AddFieldCode("PAGE"); err != nil {
		t.Fatal(err)
	}
	p.AddText(" tail")
	if err := p.SetLineSpacingExact(180); err != nil {
		t.Fatal(err)
	}

	data, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	document := readParts(t, data)["word/document.xml"]
	assertWellFormed(t, "word/document.xml", document)
	assertContains(t, "word/document.xml", document,
		`<w:spacing w:line="180" w:lineRule="exact">`,
		`<w:t xml:space="preserve">a &lt; b &amp; c</w:t>`,
	)

	iText := strings.Index(document, "a &lt; b")
	iField := strings.Index(document, ">PAGE<")
	iTail := strings.Index(document, "> tail<")
	if !(iText < iField && iField < iTail) {
		t.Errorf("run content out of order: text=%d field=%d tail=%d", iText, iField, iTail)
	}
}

func TestSave_MultipleSections(t *testing.T) {
	t.Parallel()

	d := New()
	d.AddParagraph().AddRun("one")
	d.AddSection()
	d.AddParagraph().AddRun("two")
	d.Sections()[1].Footer()

	data, err := d.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	parts := readParts(t, data)
	document := parts["word/document.xml"]
	assertWellFormed(t, "word/document.xml", document)

	if got := strings.Count(document, "<w:sectPr>"); got != 2 {
		t.Errorf("sectPr count = %d, want 2", got)
	}
	if !strings.Contains(document, "<w:pPr><w:sectPr>") {
		t.Error("first section properties should live in a paragraph")
	}
	if _, ok := parts["word/footer1.xml"]; !ok {
		t.Error("second section footer should be written as footer1.xml")
	}
	assertWellFormed(t, "word/footer1.xml", parts["word/footer1.xml"])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSave_WriteError(t *testing.T) {
	t.Parallel()

	err := New().Save(failingWriter{})
	if !errors.Is(err, ErrWritePart) {
		t.Errorf("Save() error = %v, want ErrWritePart", err)
	}
}
