package txt2docx

import "errors"

// Sentinel errors for library operations. Callers classify failures with errors.Is.
var (
	// ErrIO indicates the input could not be read or the output written.
	ErrIO = errors.New("I/O failure")

	// ErrDocumentLibrary indicates the document model rejected a layout
	// directive or could not be serialized.
	ErrDocumentLibrary = errors.New("document generation failed")

	// ErrFontResource indicates a font could not be registered for a run.
	ErrFontResource = errors.New("font resource error")

	// ErrInvalidLayout indicates a LayoutConfig value is out of range.
	ErrInvalidLayout = errors.New("invalid layout")
)
