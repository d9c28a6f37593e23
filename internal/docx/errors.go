package docx

import "errors"

// Sentinel errors for document operations.
var (
	ErrSectionIndex    = errors.New("section index out of range")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidColumns  = errors.New("invalid column layout")
	ErrInvalidAlign    = errors.New("invalid paragraph alignment")
	ErrInvalidSpacing  = errors.New("invalid line spacing")
	ErrEmptyField      = errors.New("field instruction cannot be empty")

	// ErrInvalidFont indicates a font could not be registered in the font table.
	ErrInvalidFont = errors.New("invalid font")

	ErrWritePart = errors.New("failed to write package part")
)
