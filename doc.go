// Package txt2docx converts plain text into a formatted Word document.
//
// # Quick Start
//
// Create a service and convert a file:
//
//	svc := txt2docx.New()
//	res, err := svc.ConvertFile(ctx, "notes.txt", "notes.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath)
//
// Or convert bytes in memory:
//
//	result, err := svc.Convert(ctx, txt2docx.Input{Text: raw})
//	os.WriteFile("out.docx", result.DOCX, 0644)
//
// # Conversion Pipeline
//
//  1. Normalization: lossy UTF-8 decode, removal of control characters that
//     WordprocessingML forbids, whitespace collapsing, line breaks flattened
//     into one paragraph.
//  2. Layout: page geometry, text columns, a centered "共 N 页 第 M 页"
//     footer built from NUMPAGES and PAGE fields, and one body paragraph with
//     exact line spacing and a dual-script font.
//  3. Serialization to an OOXML (.docx) package.
//
// Page counts are field codes evaluated by the application that opens the
// document; this package never paginates.
//
// # Layout
//
// DefaultLayout is A4 with 1 cm margins, two columns 0.5 cm apart and
// 8 pt "Microsoft YaHei" / "微软雅黑" with an exact 9 pt line height.
// Override it with WithLayout:
//
//	layout := txt2docx.DefaultLayout()
//	layout.ColumnCount = 3
//	svc := txt2docx.New(txt2docx.WithLayout(layout))
//
// # Errors
//
// Failures wrap one of ErrIO, ErrDocumentLibrary, ErrFontResource or
// ErrInvalidLayout; test them with errors.Is.
package txt2docx
