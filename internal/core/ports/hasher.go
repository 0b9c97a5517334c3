package ports

import "go.trai.ch/stencil/internal/core/domain"

// ContentHasher computes versioned content hashes of template files.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Hash returns the digest of the file content using the given algorithm version.
	// Identical bytes always yield identical digests for the same version.
	Hash(file domain.FileHandle, version int) (string, error)
}
