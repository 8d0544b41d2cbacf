// Package config defines the csvsieve configuration document and its loader.
//
// A configuration is a list of named rules plus output options. Rules are an
// ordered list rather than a map: output column order is a function of rule
// order, so the document representation must preserve it.
package config

// MergePolicy values accepted for a rule
const (
	MergeSeparate = "separate"
	MergeCombined = "combined"
)

// AnyField is the sentinel source field meaning "test every column"
const AnyField = "*"

// RuleConfig is one rule definition as written in the configuration document
type RuleConfig struct {
	// Name is the output field this rule populates. Unique within the document.
	Name string `koanf:"name" toml:"name"`

	// Field is the input column the pattern is tested against.
	// The sentinel "*" tests every column in header order.
	Field string `koanf:"field" toml:"field"`

	// Pattern is the regular expression, compiled eagerly at load
	Pattern string `koanf:"pattern" toml:"pattern"`

	// MergePolicy is "separate" (default) or "combined"
	MergePolicy string `koanf:"mergePolicy" toml:"mergePolicy,omitempty"`

	// CaseSensitive disables the default case-insensitive matching
	CaseSensitive bool `koanf:"caseSensitive" toml:"caseSensitive,omitempty"`
}

// OutputConfig controls the shape of the consolidated output
type OutputConfig struct {
	// Annotate prepends provenance columns to the output schema
	Annotate bool `koanf:"annotate" toml:"annotate"`

	// RuleField is the provenance column carrying the firing rule's name
	RuleField string `koanf:"ruleField" toml:"ruleField"`

	// FileField is the provenance column carrying the source file's base name
	FileField string `koanf:"fileField" toml:"fileField"`
}

// Config is the full, strictly validated configuration document
type Config struct {
	Rules  []RuleConfig `koanf:"rules" toml:"rules"`
	Output OutputConfig `koanf:"output" toml:"output"`
}

// Default returns the built-in configuration defaults. Rules are always
// user-supplied; only output options have defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Annotate:  false,
			RuleField: "_rule",
			FileField: "_file",
		},
	}
}

// defaultMap mirrors Default as a koanf confmap layer
func defaultMap() map[string]interface{} {
	return map[string]interface{}{
		"output.annotate":  false,
		"output.ruleField": "_rule",
		"output.fileField": "_file",
	}
}
