package domain

import "time"

const (
	// HashAlgorithmVersion1 hashes file content with XXH64, rendered as 16 hex digits.
	HashAlgorithmVersion1 = 1
	// HashAlgorithmVersion2 hashes file content with SHA-256, rendered as 64 hex digits.
	HashAlgorithmVersion2 = 2

	// DefaultHashAlgorithmVersion is the version used when the configuration does not name one.
	DefaultHashAlgorithmVersion = HashAlgorithmVersion1
)

// FileRecord is the durable metadata describing which template produced which generated type.
// It lets a runtime decide whether a precompiled type still matches its source file.
type FileRecord struct {
	RelativePath         string    `json:"relative_path" yaml:"relative_path"`
	LastModified         time.Time `json:"last_modified,omitzero" yaml:"last_modified,omitempty"`
	Length               int64     `json:"length" yaml:"length"`
	FullTypeName         string    `json:"full_type_name" yaml:"full_type_name"`
	Hash                 string    `json:"hash" yaml:"hash"`
	HashAlgorithmVersion int       `json:"hash_algorithm_version" yaml:"hash_algorithm_version"`
}

// GeneratedUnit is generated Go source ready for the compiler.
type GeneratedUnit struct {
	// Path is the file name reported by the compiler for this unit.
	Path   string
	Source []byte
}

// CompiledUnit pairs a generated unit with the record of the template it came from.
type CompiledUnit struct {
	Unit   GeneratedUnit
	Record FileRecord
}
