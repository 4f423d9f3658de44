// Package productdeps reads the product list of UPS product_deps files.
package productdeps

import (
	"bufio"
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"strings"

	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyReader = (*Reader)(nil)

// maxLineSize bounds a single line of a dependency file.
const maxLineSize = 1 << 20

// Reader implements ports.DependencyReader for product_deps files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extract opens the file at path and returns the entries of every product-list region in it.
func (r *Reader) Extract(ctx context.Context, path string) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec // Path is built from the resolved layout
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDependencyFileNotFound.Error()), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open dependency file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only handle

	entries, err := Scan(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return entries, nil
}

// Scan reads dependency-file lines from r and returns the product-list entries in order.
// Blank lines are skipped. A line inside a region with fewer than two tokens is an error.
func Scan(r io.Reader) ([]domain.Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	entries := []domain.Entry{}
	state := domain.Outside
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		var collect bool
		collect, state = state.Step(tokens)
		if !collect {
			continue
		}

		if len(tokens) < 2 {
			err := zerr.With(domain.ErrMalformedEntry, "line", lineNo)
			return nil, zerr.With(err, "text", scanner.Text())
		}
		entries = append(entries, domain.Entry{Name: tokens[0], Token: tokens[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read dependency file")
	}

	return entries, nil
}
