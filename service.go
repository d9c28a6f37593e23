package txt2docx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
	"unicode/utf8"
)

// filePermissions is used for the written .docx (rw-r--r--).
const filePermissions = 0o644

// Service runs the text-to-document pipeline: normalize, lay out, serialize.
// A Service holds no per-conversion state and may be reused.
type Service struct {
	layout    *LayoutConfig
	logger    *slog.Logger
	newDoc    func() Document
	readFile  func(string) ([]byte, error)
	writeFile func(string, []byte, os.FileMode) error
}

// New creates a Service with the default layout.
func New(opts ...Option) *Service {
	s := &Service{
		layout:    DefaultLayout(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		newDoc:    func() Document { return newWordDocument() },
		readFile:  os.ReadFile,
		writeFile: os.WriteFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Layout returns a copy of the layout the Service applies.
func (s *Service) Layout() LayoutConfig {
	return *s.layout
}

// Convert normalizes the input and returns the formatted document.
// Empty input is valid and yields a document with an empty body paragraph.
// The context is checked between stages.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if err := s.layout.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	text := Normalize(input.Text)
	s.logger.Debug("normalized text",
		"input_bytes", len(input.Text),
		"chars", utf8.RuneCountInString(text),
		"elapsed", time.Since(start))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	start = time.Now()
	doc := s.newDoc()
	if err := ApplyLayout(doc, text, s.layout); err != nil {
		return nil, err
	}
	s.logger.Debug("applied layout",
		"columns", s.layout.ColumnCount,
		"font", s.layout.FontFamilyLatin,
		"elapsed", time.Since(start))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	start = time.Now()
	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, fmt.Errorf("%w: saving document: %w", ErrDocumentLibrary, err)
	}
	s.logger.Debug("serialized document", "bytes", buf.Len(), "elapsed", time.Since(start))

	return &ConvertResult{DOCX: buf.Bytes(), Text: text}, nil
}

// ConvertFile reads inputPath, converts it and writes the document to
// outputPath, replacing any existing file. The write is not atomic: a failure
// midway may leave a partial file.
func (s *Service) ConvertFile(ctx context.Context, inputPath, outputPath string) (*FileResult, error) {
	raw, err := s.readFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrIO, inputPath, err)
	}

	result, err := s.Convert(ctx, Input{Text: raw})
	if err != nil {
		return nil, err
	}

	if err := s.writeFile(outputPath, result.DOCX, filePermissions); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %w", ErrIO, outputPath, err)
	}
	s.logger.Debug("wrote document", "path", outputPath, "bytes", len(result.DOCX))

	return &FileResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Chars:      utf8.RuneCountInString(result.Text),
		Bytes:      len(result.DOCX),
	}, nil
}
