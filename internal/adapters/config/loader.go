// Package config provides the configuration loader for stencil.
package config

import (
	"bytes"
	"errors"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	fsadapter "go.trai.ch/stencil/internal/adapters/fs"
	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "stencil.yaml"

	defaultExtension = ".tmpl"
	defaultImports   = "_imports"
	defaultOutput    = ".stencil"
	defaultPackage   = "templates"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration file at path. Relative directories in the file are resolved
// against the directory containing it. A missing file yields the defaults for that directory.
func (l *Loader) Load(path string) (domain.Settings, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)

	var file Stencilfile
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Warn("config file not found, using defaults", "path", path)
	case err != nil:
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := decode(data, &file); err != nil {
			return domain.Settings{}, zerr.With(err, "path", path)
		}
	}

	return Resolve(dir, file)
}

// Defaults returns the settings used when no configuration file exists in dir.
func Defaults(dir string) (domain.Settings, error) {
	return Resolve(dir, Stencilfile{})
}

// Resolve applies defaults to file and validates the result. Relative directories are resolved
// against dir.
func Resolve(dir string, file Stencilfile) (domain.Settings, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(err, "failed to resolve config directory"), "path", dir)
	}

	s := domain.Settings{
		Root:                 resolveDir(absDir, file.Root, "."),
		Extension:            withDefault(file.Extension, defaultExtension),
		ImportsName:          withDefault(file.Imports, defaultImports),
		Output:               resolveDir(absDir, file.Output, defaultOutput),
		AssemblyName:         withDefault(file.Assembly, filepath.Base(absDir)),
		PackageName:          withDefault(file.Package, defaultPackage),
		Workers:              file.Workers,
		GenerateSymbols:      file.Symbols,
		HashAlgorithmVersion: file.HashVersion,
		Ignore:               file.Ignore,
	}

	if !strings.HasPrefix(s.Extension, ".") {
		s.Extension = "." + s.Extension
	}
	if s.HashAlgorithmVersion == 0 {
		s.HashAlgorithmVersion = domain.DefaultHashAlgorithmVersion
	}
	if s.Ignore == nil {
		s.Ignore = slices.Clone(fsadapter.DefaultIgnores)
	}

	if err := Validate(s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// Validate checks settings assembled from a file or from command line overrides.
func Validate(s domain.Settings) error {
	switch {
	case s.Workers < 0:
		return zerr.With(zerr.New("workers must not be negative"), "workers", s.Workers)
	case s.HashAlgorithmVersion != domain.HashAlgorithmVersion1 && s.HashAlgorithmVersion != domain.HashAlgorithmVersion2:
		return zerr.With(domain.ErrUnsupportedHashVersion, "version", s.HashAlgorithmVersion)
	case !token.IsIdentifier(s.PackageName) || token.IsKeyword(s.PackageName):
		return zerr.With(zerr.New("package must be a valid Go identifier"), "package", s.PackageName)
	case s.Extension == ".":
		return zerr.New("extension must not be empty")
	case strings.ContainsAny(s.ImportsName, `/\`):
		return zerr.With(zerr.New("imports must be a file name"), "imports", s.ImportsName)
	case s.AssemblyName == "" || strings.ContainsAny(s.AssemblyName, `/\`):
		return zerr.With(zerr.New("assembly must be a plain name"), "assembly", s.AssemblyName)
	}
	return nil
}

func decode(data []byte, file *Stencilfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(file); err != nil {
		// An empty document leaves every field at its default.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return zerr.Wrap(err, "failed to parse config file")
	}
	return nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func resolveDir(base, value, fallback string) string {
	value = withDefault(value, fallback)
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base, value)
}
