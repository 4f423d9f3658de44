// Package rst renders dependency entries as a reStructuredText fragment.
package rst

import (
	"bytes"
	"context"
	"os"

	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PageRenderer = (*Renderer)(nil)

const (
	// Title is the first line of every page.
	Title = "|depends| depends"
	// Underline follows the title on its own line.
	Underline = "================="
)

// Renderer implements ports.PageRenderer.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Format returns the page for entries: the title, the underline, then one
// name+token line per entry in order.
func (r *Renderer) Format(entries []domain.Entry) []byte {
	var buf bytes.Buffer
	buf.WriteString(Title)
	buf.WriteString("\n" + Underline + "\n")
	for _, e := range entries {
		buf.WriteString(e.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Render creates or truncates the file at path and writes the page for entries.
// The parent directory must already exist.
func (r *Renderer) Render(ctx context.Context, entries []domain.Entry, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	//nolint:gosec // Path is built from the resolved layout
	if err := os.WriteFile(path, r.Format(entries), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write dependency page"), "path", path)
	}
	return nil
}
