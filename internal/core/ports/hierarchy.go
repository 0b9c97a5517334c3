package ports

// ImportsHierarchy locates the imports files that apply to a template.
type ImportsHierarchy interface {
	// ImportsLocations returns the root relative paths of every imports file that may apply to
	// relativePath, nearest directory first. The files need not exist.
	ImportsLocations(relativePath string) []string
}
