package docx

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
)

//go:embed parts/*
var staticParts embed.FS

// Fixed relationship ids of word/_rels/document.xml.rels. Footers follow.
const (
	ridStyles    = "rId1"
	ridSettings  = "rId2"
	ridFontTable = "rId3"
	firstFooter  = 4
)

// part is one file of the ZIP package.
type part struct {
	name string
	data []byte
}

// Save writes the document as a .docx package.
func (d *Document) Save(w io.Writer) error {
	parts, err := d.buildParts()
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrWritePart, p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("%w %s: %v", ErrWritePart, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: closing package: %v", ErrWritePart, err)
	}
	return nil
}

// Bytes returns the serialized .docx package.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildParts renders every package part. [Content_Types].xml comes first,
// as some consumers expect.
func (d *Document) buildParts() ([]part, error) {
	types := xmlContentTypes{
		Xmlns: nsContentTypes,
		Defaults: []xmlContentDefault{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []xmlContentOverride{
			{PartName: "/word/document.xml", ContentType: ctDocument},
			{PartName: "/word/styles.xml", ContentType: ctStyles},
			{PartName: "/word/settings.xml", ContentType: ctSettings},
			{PartName: "/word/fontTable.xml", ContentType: ctFontTable},
		},
	}
	docRels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: ridStyles, Type: relStyles, Target: "styles.xml"},
			{ID: ridSettings, Type: relSettings, Target: "settings.xml"},
			{ID: ridFontTable, Type: relFontTable, Target: "fontTable.xml"},
		},
	}

	var footerParts []part
	footerIDs := make(map[*Section]string, len(d.sections))
	for _, s := range d.sections {
		if s.footer == nil {
			continue
		}
		n := len(footerParts) + 1
		id := fmt.Sprintf("rId%d", firstFooter+n-1)
		target := fmt.Sprintf("footer%d.xml", n)
		footerIDs[s] = id

		data, err := marshalPart(s.footer.toXML())
		if err != nil {
			return nil, fmt.Errorf("%w word/%s: %v", ErrWritePart, target, err)
		}
		footerParts = append(footerParts, part{name: "word/" + target, data: data})
		docRels.Relationships = append(docRels.Relationships, xmlRelationship{ID: id, Type: relFooter, Target: target})
		types.Overrides = append(types.Overrides, xmlContentOverride{PartName: "/word/" + target, ContentType: ctFooter})
	}

	document, err := marshalPart(d.toXML(footerIDs))
	if err != nil {
		return nil, fmt.Errorf("%w word/document.xml: %v", ErrWritePart, err)
	}
	fontTable, err := marshalPart(d.fontTableXML())
	if err != nil {
		return nil, fmt.Errorf("%w word/fontTable.xml: %v", ErrWritePart, err)
	}
	typesData, err := marshalPart(types)
	if err != nil {
		return nil, fmt.Errorf("%w [Content_Types].xml: %v", ErrWritePart, err)
	}
	rootRels, err := marshalPart(xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relOfficeDocument, Target: "word/document.xml"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w _rels/.rels: %v", ErrWritePart, err)
	}
	docRelsData, err := marshalPart(docRels)
	if err != nil {
		return nil, fmt.Errorf("%w word/_rels/document.xml.rels: %v", ErrWritePart, err)
	}
	styles, err := staticParts.ReadFile("parts/styles.xml")
	if err != nil {
		return nil, fmt.Errorf("%w word/styles.xml: %v", ErrWritePart, err)
	}
	settings, err := staticParts.ReadFile("parts/settings.xml")
	if err != nil {
		return nil, fmt.Errorf("%w word/settings.xml: %v", ErrWritePart, err)
	}

	parts := []part{
		{name: "[Content_Types].xml", data: typesData},
		{name: "_rels/.rels", data: rootRels},
		{name: "word/document.xml", data: document},
		{name: "word/_rels/document.xml.rels", data: docRelsData},
		{name: "word/styles.xml", data: styles},
		{name: "word/settings.xml", data: settings},
		{name: "word/fontTable.xml", data: fontTable},
	}
	return append(parts, footerParts...), nil
}

func (d *Document) toXML(footerIDs map[*Section]string) xmlDocument {
	doc := xmlDocument{W: nsW, R: nsR}
	for _, p := range d.body {
		if p.sectionBreak != nil {
			doc.Body.Paragraphs = append(doc.Body.Paragraphs, xmlParagraph{
				PPr: &xmlPPr{SectPr: p.sectionBreak.toXML(footerIDs[p.sectionBreak])},
			})
			continue
		}
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, p.toXML())
	}
	last := d.sections[len(d.sections)-1]
	doc.Body.SectPr = last.toXML(footerIDs[last])
	return doc
}

func (f *Footer) toXML() xmlFooter {
	ftr := xmlFooter{W: nsW, R: nsR}
	for _, p := range f.paragraphs {
		ftr.Paragraphs = append(ftr.Paragraphs, p.toXML())
	}
	// A footer part must contain at least one block element.
	if len(ftr.Paragraphs) == 0 {
		ftr.Paragraphs = []xmlParagraph{{}}
	}
	return ftr
}

func (d *Document) fontTableXML() xmlFontTable {
	ft := xmlFontTable{W: nsW}
	for _, f := range d.Fonts() {
		info := xmlFontInfo{Name: f.Name}
		if f.AltName != "" {
			info.AltName = &xmlVal{Val: f.AltName}
		}
		ft.Fonts = append(ft.Fonts, info)
	}
	return ft
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), data...), nil
}
