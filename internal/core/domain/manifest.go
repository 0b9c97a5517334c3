package domain

// ArtifactManifest describes the artifact produced by a successful pass.
type ArtifactManifest struct {
	BinaryResourceName string       `json:"binary_resource_name" yaml:"binary_resource_name"`
	DebugResourceName  string       `json:"debug_resource_name,omitzero" yaml:"debug_resource_name,omitempty"`
	Files              []FileRecord `json:"files" yaml:"files"`
}

// Lookup returns the record for relativePath, compared case-insensitively.
func (m *ArtifactManifest) Lookup(relativePath string) (FileRecord, bool) {
	key := PathKey(relativePath)
	for _, rec := range m.Files {
		if PathKey(rec.RelativePath) == key {
			return rec, true
		}
	}
	return FileRecord{}, false
}
