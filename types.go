package txt2docx

import (
	"io"
	"log/slog"
)

// Input is the source of a single conversion.
type Input struct {
	Text []byte // raw file content, decoded as lossy UTF-8
}

// ConvertResult holds the output of Convert.
type ConvertResult struct {
	DOCX []byte // serialized .docx package
	Text string // normalized body text written to the document
}

// FileResult describes a completed ConvertFile call.
type FileResult struct {
	InputPath  string
	OutputPath string
	Chars      int // runes in the body paragraph
	Bytes      int // size of the written .docx
}

// Option configures a Service.
type Option func(*Service)

// WithLayout replaces the default layout. The layout is copied and validated
// on each conversion.
// Panics if l is nil (programmer error).
func WithLayout(l *LayoutConfig) Option {
	if l == nil {
		panic("txt2docx: WithLayout layout must not be nil")
	}
	copied := *l
	return func(s *Service) {
		s.layout = &copied
	}
}

// WithLogger sets the logger used for stage diagnostics.
// A nil logger discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		s.logger = logger
	}
}
