package ports

import "go.trai.ch/stencil/internal/core/domain"

// ArtifactStore persists the outcome of a pass.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Save writes the manifest together with every resource and generated unit registered on the
	// host. The host must be the one the manifest was produced for.
	Save(dir string, host HostOutput, manifest *domain.ArtifactManifest) error

	// LoadManifest reads the manifest saved in dir.
	// Returns domain.ErrManifestNotFound if nothing was saved yet.
	LoadManifest(dir string) (*domain.ArtifactManifest, error)
}

// HostOutput exposes what a pass registered on the host.
type HostOutput interface {
	GeneratedUnits() []domain.GeneratedUnit
	Resources() []domain.Resource
	Diagnostics() []domain.Diagnostic
}
