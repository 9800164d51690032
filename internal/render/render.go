// Package render writes parsed review documents in the supported
// output formats. Writers treat the document's issue list as already
// sorted and never reorder it across severities.
package render

import (
	"fmt"
	"io"

	"github.com/sprite-ai/revmark/internal/model"
)

// Writer renders a parsed document to an output stream.
type Writer interface {
	Write(w io.Writer, doc *model.Document) error
}

// Options tune presentation; zero value means plain uncolored text.
type Options struct {
	Color          bool
	HighlightStyle string // chroma style name, e.g. "dracula"
}

// New returns the writer for a format name: text, json, or markdown.
func New(format string, opts Options) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{opts: opts}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
