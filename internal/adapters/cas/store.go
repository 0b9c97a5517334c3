// Package cas persists precompiled artifacts and their manifest to an output directory.
package cas

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// ManifestFile is the JSON manifest read back by LoadManifest.
	ManifestFile = "manifest.json"
	// ManifestSidecarFile is a YAML rendition of the manifest for humans.
	ManifestSidecarFile = "manifest.yaml"
	// ResourcesDir holds the embedded resources.
	ResourcesDir = "resources"
	// UnitsDir holds the generated units added to the host compilation.
	UnitsDir = "units"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore on the local file system.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Save replaces the content of dir with the manifest, every resource and every generated unit
// registered on host.
func (s *Store) Save(dir string, host ports.HostOutput, manifest *domain.ArtifactManifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}

	// Resource names are random per pass; drop the previous pass's files.
	for _, sub := range []string{ResourcesDir, UnitsDir} {
		if err := os.RemoveAll(filepath.Join(dir, sub)); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to clear output directory"), "path", filepath.Join(dir, sub))
		}
	}

	for _, res := range host.Resources() {
		if err := writeResource(filepath.Join(dir, ResourcesDir), res); err != nil {
			return err
		}
	}

	for _, unit := range host.GeneratedUnits() {
		if err := writeFile(filepath.Join(dir, UnitsDir), unit.Path, unit.Source); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}
	if err := writeFile(dir, ManifestFile, data); err != nil {
		return err
	}

	sidecar, err := yaml.Marshal(manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest sidecar")
	}
	return writeFile(dir, ManifestSidecarFile, sidecar)
}

// LoadManifest reads the manifest saved in dir.
func (s *Store) LoadManifest(dir string) (*domain.ArtifactManifest, error) {
	path := filepath.Join(filepath.Clean(dir), ManifestFile)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var manifest domain.ArtifactManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "path", path)
	}
	return &manifest, nil
}

// ResourcePath returns where Save writes the resource named name.
func ResourcePath(dir, name string) string {
	return filepath.Join(dir, ResourcesDir, name)
}

func writeResource(dir string, res domain.Resource) error {
	if res.Open == nil {
		return zerr.With(zerr.New("resource has no content"), "resource", res.Name)
	}
	data, err := io.ReadAll(res.Open())
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read resource"), "resource", res.Name)
	}
	return writeFile(dir, res.Name, data)
}

func writeFile(dir, name string, data []byte) error {
	if name == "" || strings.Contains(name, "..") || filepath.IsAbs(name) {
		return zerr.With(zerr.New("invalid artifact name"), "name", name)
	}

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(path))
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	return nil
}
