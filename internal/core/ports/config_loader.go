package ports

import "go.trai.ch/stencil/internal/core/domain"

// ConfigLoader defines the interface for loading precompilation settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields default settings.
	Load(path string) (domain.Settings, error)
}
