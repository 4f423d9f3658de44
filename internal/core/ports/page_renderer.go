package ports

import (
	"context"

	"go.trai.ch/deplist/internal/core/domain"
)

// PageRenderer turns entries into a documentation page.
//
//go:generate mockgen -source=page_renderer.go -destination=mocks/mock_page_renderer.go -package=mocks
type PageRenderer interface {
	// Format returns the page content for entries without touching the filesystem.
	Format(entries []domain.Entry) []byte

	// Render creates or truncates the file at path and writes the page for entries.
	Render(ctx context.Context, entries []domain.Entry, path string) error
}
