package fs

import (
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

// Verifier decides whether a precompiled template still matches its source file.
type Verifier struct {
	hasher ports.ContentHasher
}

// NewVerifier creates a new Verifier.
func NewVerifier(hasher ports.ContentHasher) *Verifier {
	return &Verifier{hasher: hasher}
}

// Verify reports whether rec still describes the file served by provider.
// A changed length is stale without reading the file. Otherwise the content is rehashed with the
// record's algorithm version; the modification time alone is never trusted.
func (v *Verifier) Verify(provider ports.FileProvider, rec domain.FileRecord) (bool, error) {
	file, err := provider.GetFileInfo(rec.RelativePath)
	if err != nil {
		return false, err
	}
	if !file.Exists() {
		return false, nil
	}
	if file.Length() != rec.Length {
		return false, nil
	}
	hash, err := v.hasher.Hash(file, rec.HashAlgorithmVersion)
	if err != nil {
		return false, zerr.With(err, "path", rec.RelativePath)
	}
	return hash == rec.Hash, nil
}

// VerifyManifest returns the records of m that no longer match their source files.
func (v *Verifier) VerifyManifest(provider ports.FileProvider, m *domain.ArtifactManifest) ([]domain.FileRecord, error) {
	var stale []domain.FileRecord
	for _, rec := range m.Files {
		ok, err := v.Verify(provider, rec)
		if err != nil {
			return nil, err
		}
		if !ok {
			stale = append(stale, rec)
		}
	}
	return stale, nil
}
