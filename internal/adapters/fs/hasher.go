package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher computes versioned content hashes of template files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash streams the file content through the algorithm selected by version.
func (h *Hasher) Hash(file domain.FileHandle, version int) (string, error) {
	digest, err := newDigest(version)
	if err != nil {
		return "", err
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", file.PhysicalPath())
	}
	return render(digest, version), nil
}

// HashBytes hashes data with the algorithm selected by version.
func (h *Hasher) HashBytes(data []byte, version int) (string, error) {
	digest, err := newDigest(version)
	if err != nil {
		return "", err
	}
	_, _ = digest.Write(data)
	return render(digest, version), nil
}

func newDigest(version int) (hash.Hash, error) {
	switch version {
	case domain.HashAlgorithmVersion1:
		return xxhash.New(), nil
	case domain.HashAlgorithmVersion2:
		return sha256.New(), nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedHashVersion, "version", version)
	}
}

func render(digest hash.Hash, version int) string {
	if version == domain.HashAlgorithmVersion1 {
		if d, ok := digest.(*xxhash.Digest); ok {
			return fmt.Sprintf("%016x", d.Sum64())
		}
	}
	return hex.EncodeToString(digest.Sum(nil))
}
