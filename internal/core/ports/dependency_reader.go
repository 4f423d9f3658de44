package ports

import (
	"context"

	"go.trai.ch/deplist/internal/core/domain"
)

// DependencyReader extracts the product list from a dependency-declaration file.
//
//go:generate mockgen -source=dependency_reader.go -destination=mocks/mock_dependency_reader.go -package=mocks
type DependencyReader interface {
	// Extract reads the file at path and returns its entries in file order.
	Extract(ctx context.Context, path string) ([]domain.Entry, error)
}
