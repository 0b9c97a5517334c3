package domain

// Settings configures a precompilation pass.
type Settings struct {
	// Root is the directory served by the file provider.
	Root string
	// Extension selects template files, compared case-insensitively.
	Extension string
	// ImportsName is the base name (without extension) of imports files.
	ImportsName string
	// Output is the directory the artifact store writes to.
	Output string
	// AssemblyName is the host build name used to prefix resource names.
	AssemblyName string
	// PackageName is the Go package declared by generated units.
	PackageName string
	// Workers bounds the compile pool. Zero means one worker per CPU.
	Workers int
	// GenerateSymbols requests the debug symbol stream.
	GenerateSymbols bool
	// HashAlgorithmVersion selects the content hash written to FileRecords.
	HashAlgorithmVersion int
	// Ignore lists directory name patterns skipped by the walker.
	Ignore []string
}

// ImportsFileName returns the file name of imports files, including the template extension.
func (s Settings) ImportsFileName() string {
	return s.ImportsName + s.Extension
}
