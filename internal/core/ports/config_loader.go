package ports

import "go.trai.ch/deplist/internal/core/domain"

// ConfigLoader defines the interface for resolving the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	Load(cwd string, overrides domain.ConfigOverrides) (*domain.Config, error)
}
