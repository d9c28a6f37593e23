package docx

import (
	"encoding/xml"
	"strconv"
)

// XML namespaces and relationship types used by the package.
const (
	nsW             = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"

	relOfficeDocument = nsR + "/officeDocument"
	relStyles         = nsR + "/styles"
	relSettings       = nsR + "/settings"
	relFontTable      = nsR + "/fontTable"
	relFooter         = nsR + "/footer"

	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ctSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ctFontTable     = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	ctFooter        = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
)

// xmlHeader is written before every XML part.
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Element and attribute names carry the "w:" prefix literally; encoding/xml
// writes them unchanged and the root element declares the namespace.

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     *xmlSectPr     `xml:"w:sectPr"`
}

type xmlFooter struct {
	XMLName    xml.Name       `xml:"w:ftr"`
	W          string         `xml:"xmlns:w,attr"`
	R          string         `xml:"xmlns:r,attr"`
	Paragraphs []xmlParagraph `xml:"w:p"`
}

type xmlParagraph struct {
	PPr  *xmlPPr  `xml:"w:pPr,omitempty"`
	Runs []xmlRun `xml:"w:r"`
}

type xmlPPr struct {
	Spacing *xmlSpacing `xml:"w:spacing,omitempty"`
	Jc      *xmlVal     `xml:"w:jc,omitempty"`
	SectPr  *xmlSectPr  `xml:"w:sectPr,omitempty"`
}

type xmlSpacing struct {
	Line     int    `xml:"w:line,attr"`
	LineRule string `xml:"w:lineRule,attr"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlRun struct {
	RPr     *xmlRPr
	Content []runContent
}

type xmlRPr struct {
	Fonts *xmlFonts `xml:"w:rFonts,omitempty"`
	Sz    *xmlVal   `xml:"w:sz,omitempty"`
	SzCs  *xmlVal   `xml:"w:szCs,omitempty"`
}

type xmlFonts struct {
	ASCII    string `xml:"w:ascii,attr,omitempty"`
	HAnsi    string `xml:"w:hAnsi,attr,omitempty"`
	EastAsia string `xml:"w:eastAsia,attr,omitempty"`
}

type xmlText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr"`
	Value   string   `xml:",chardata"`
}

type xmlFldChar struct {
	XMLName xml.Name `xml:"w:fldChar"`
	Type    string   `xml:"w:fldCharType,attr"`
}

type xmlInstrText struct {
	XMLName xml.Name `xml:"w:instrText"`
	Space   string   `xml:"xml:space,attr"`
	Value   string   `xml:",chardata"`
}

// MarshalXML writes the run properties followed by text and field elements
// in insertion order, which a struct field layout cannot express.
func (r xmlRun) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "w:r"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if r.RPr != nil {
		if err := e.EncodeElement(r.RPr, xml.StartElement{Name: xml.Name{Local: "w:rPr"}}); err != nil {
			return err
		}
	}
	for _, c := range r.Content {
		var err error
		switch c.kind {
		case contentText:
			err = e.Encode(xmlText{Space: "preserve", Value: c.value})
		case contentField:
			if err = e.Encode(xmlFldChar{Type: "begin"}); err != nil {
				return err
			}
			if err = e.Encode(xmlInstrText{Space: "preserve", Value: c.value}); err != nil {
				return err
			}
			err = e.Encode(xmlFldChar{Type: "end"})
		}
		if err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

type xmlSectPr struct {
	FooterRefs []xmlHdrFtrRef `xml:"w:footerReference"`
	PgSz       xmlPgSz        `xml:"w:pgSz"`
	PgMar      xmlPgMar       `xml:"w:pgMar"`
	Cols       xmlCols        `xml:"w:cols"`
	DocGrid    xmlDocGrid     `xml:"w:docGrid"`
}

type xmlHdrFtrRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xmlPgSz struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlPgMar struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xmlCols struct {
	Num   int `xml:"w:num,attr,omitempty"`
	Space int `xml:"w:space,attr"`
}

type xmlDocGrid struct {
	LinePitch int `xml:"w:linePitch,attr"`
}

type xmlFontTable struct {
	XMLName xml.Name      `xml:"w:fonts"`
	W       string        `xml:"xmlns:w,attr"`
	Fonts   []xmlFontInfo `xml:"w:font"`
}

type xmlFontInfo struct {
	Name    string  `xml:"w:name,attr"`
	AltName *xmlVal `xml:"w:altName,omitempty"`
}

type xmlContentTypes struct {
	XMLName   xml.Name             `xml:"Types"`
	Xmlns     string               `xml:"xmlns,attr"`
	Defaults  []xmlContentDefault  `xml:"Default"`
	Overrides []xmlContentOverride `xml:"Override"`
}

type xmlContentDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlContentOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// toXML converts a paragraph to its serialized form.
func (p *Paragraph) toXML() xmlParagraph {
	var out xmlParagraph

	ppr := &xmlPPr{}
	if p.spacing != nil {
		ppr.Spacing = &xmlSpacing{Line: p.spacing.Value, LineRule: p.spacing.Rule}
	}
	if p.align != "" {
		ppr.Jc = &xmlVal{Val: p.align}
	}
	if ppr.Spacing != nil || ppr.Jc != nil {
		out.PPr = ppr
	}

	for _, r := range p.runs {
		xr := xmlRun{Content: r.content}
		if r.font != nil {
			xr.RPr = &xmlRPr{
				Fonts: &xmlFonts{ASCII: r.font.Latin, HAnsi: r.font.Latin, EastAsia: r.font.EastAsia},
				Sz:    &xmlVal{Val: strconv.Itoa(r.font.Size)},
				SzCs:  &xmlVal{Val: strconv.Itoa(r.font.Size)},
			}
		}
		out.Runs = append(out.Runs, xr)
	}
	return out
}

// toXML converts section properties. footerID is the relationship id of the
// section footer, or "" when the section has none.
func (s *Section) toXML(footerID string) *xmlSectPr {
	sp := &xmlSectPr{
		PgSz: xmlPgSz{W: s.width, H: s.height},
		PgMar: xmlPgMar{
			Top:    s.margins.Top,
			Right:  s.margins.Right,
			Bottom: s.margins.Bottom,
			Left:   s.margins.Left,
			Header: s.margins.Header,
			Footer: s.margins.Footer,
			Gutter: s.margins.Gutter,
		},
		Cols:    xmlCols{Space: s.columns.Space},
		DocGrid: xmlDocGrid{LinePitch: 360},
	}
	if s.columns.Count > 1 {
		sp.Cols.Num = s.columns.Count
	}
	if footerID != "" {
		sp.FooterRefs = []xmlHdrFtrRef{{Type: "default", ID: footerID}}
	}
	return sp
}
