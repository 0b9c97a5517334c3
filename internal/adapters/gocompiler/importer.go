package gocompiler

import (
	"go/types"

	"go.trai.ch/stencil/internal/core/domain"
	"go.trai.ch/zerr"
)

// referenceImporter resolves only the packages the compilation references. Generated units are
// self-contained, so referenced packages are exposed as empty, complete packages.
type referenceImporter struct {
	packages map[string]*types.Package
}

func newReferenceImporter(refs []domain.Reference) *referenceImporter {
	packages := make(map[string]*types.Package, len(refs))
	for _, ref := range refs {
		if ref.ImportPath == "" {
			continue
		}
		pkg := types.NewPackage(ref.ImportPath, ref.Name)
		pkg.MarkComplete()
		packages[ref.ImportPath] = pkg
	}
	return &referenceImporter{packages: packages}
}

func (i *referenceImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := i.packages[path]; ok {
		return pkg, nil
	}
	return nil, zerr.With(zerr.New("package is not referenced by the compilation"), "import", path)
}
