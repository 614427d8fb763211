package types

// GenerateConfig holds settings for the generation pipeline. The defaults
// applied by the CLI reproduce the tool's fixed layout: sources under
// gleam-stdlib/src/gleam, output in the working directory.
type GenerateConfig struct {
	// SourceDir is the source root that module names are derived from
	// (default "gleam-stdlib/src"). Files are scanned under
	// SourceDir/Language.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputDir is the directory the JSON-LD tree is written into
	// (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Language is the namespace directory under SourceDir and the fence
	// tag that marks example code blocks (default "gleam"). The type
	// catalog is written to Language/Language-types.jsonld.
	Language string `json:"language" yaml:"language"`

	// Extension is the recognized source file extension (default ".gleam").
	Extension string `json:"extension" yaml:"extension"`

	// CatalogPath optionally overrides the embedded type catalog with an
	// external YAML file.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// VocabURI is the JSON-LD @vocab value (default "https://aalang.org/spec").
	VocabURI string `json:"vocab_uri" yaml:"vocab_uri"`

	// ExampleURI is the JSON-LD "ex" prefix expansion
	// (default "https://aalang.org/example/").
	ExampleURI string `json:"example_uri" yaml:"example_uri"`
}

// IndexConfig holds settings for the searchable function index.
type IndexConfig struct {
	// DBPath is the SQLite database location (default "docs.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of search results
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Generate GenerateConfig `json:"generate" yaml:"generate"`
	Index    IndexConfig    `json:"index" yaml:"index"`
}
