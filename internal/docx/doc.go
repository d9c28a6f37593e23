// Package docx builds WordprocessingML (OOXML) documents in memory and writes
// them as ZIP packages.
//
// # Model
//
// A Document holds one or more sections and an ordered list of body paragraphs:
//
//	Document
//	├── Section (page size, margins, columns, optional footer)
//	│   └── Footer
//	│       └── Paragraph
//	└── Paragraph (alignment, line spacing)
//	    └── Run (font, ordered text and field codes)
//
// Field codes such as PAGE and NUMPAGES are stored as instructions only. The
// rendering application evaluates them when the document is opened or printed.
//
// # Units
//
// All lengths are twips (1/20 point) except font sizes, which are half-points,
// matching the attributes written to the XML.
//
// # Package Layout
//
// Save writes the minimal set of parts Word and LibreOffice require:
//
//	[Content_Types].xml
//	_rels/.rels
//	word/document.xml
//	word/_rels/document.xml.rels
//	word/styles.xml
//	word/settings.xml
//	word/fontTable.xml
//	word/footer{N}.xml
//
// No document properties (title, author) are written.
package docx
