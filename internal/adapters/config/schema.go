package config

// Stencilfile represents the structure of the stencil.yaml configuration file.
// Zero values fall back to defaults.
type Stencilfile struct {
	Root        string   `yaml:"root"`
	Extension   string   `yaml:"extension"`
	Imports     string   `yaml:"imports"`
	Output      string   `yaml:"output"`
	Assembly    string   `yaml:"assembly"`
	Package     string   `yaml:"package"`
	Workers     int      `yaml:"workers"`
	Symbols     bool     `yaml:"symbols"`
	HashVersion int      `yaml:"hash_version"`
	Ignore      []string `yaml:"ignore"`
}
