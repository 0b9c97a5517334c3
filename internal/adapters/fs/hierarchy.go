package fs

import (
	"path"
	"strings"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/stencil/internal/core/ports"
)

var _ ports.ImportsHierarchy = (*Hierarchy)(nil)

// Hierarchy locates imports files named fileName in every ancestor directory of a template.
type Hierarchy struct {
	fileName string
}

// NewHierarchy creates a Hierarchy for imports files named fileName, e.g. "_imports.tmpl".
func NewHierarchy(fileName string) *Hierarchy {
	return &Hierarchy{fileName: fileName}
}

// ImportsLocations returns the candidate imports files for relativePath, nearest first.
// An imports file never applies to itself.
func (h *Hierarchy) ImportsLocations(relativePath string) []string {
	rel := domain.NormalizePath(relativePath)
	dir := path.Dir(rel)

	var locations []string
	for {
		var candidate string
		if dir == "." || dir == "" {
			candidate = h.fileName
		} else {
			candidate = dir + "/" + h.fileName
		}
		if !strings.EqualFold(candidate, rel) {
			locations = append(locations, candidate)
		}
		if dir == "." || dir == "" {
			return locations
		}
		dir = path.Dir(dir)
	}
}

