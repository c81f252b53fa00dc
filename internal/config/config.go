package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/kanjiparse/internal/story"
)

//go:embed schema.cue
var schemaSource string

// Default file locations, relative to the working directory.
const (
	DefaultWorkbookPath   = "Kanji_Story_database_R002.xlsm"
	DefaultSheet          = "Story_all"
	DefaultDictionaryPath = "kanjidic2.xml"
	DefaultOutputDir      = "output_csv"
)

// Config is the full run configuration.
type Config struct {
	Workbook   WorkbookConfig   `yaml:"workbook" json:"workbook"`
	Dictionary DictionaryConfig `yaml:"dictionary" json:"dictionary"`
	Output     OutputConfig     `yaml:"output" json:"output"`
}

// WorkbookConfig locates the story sheet and describes its row shape.
type WorkbookConfig struct {
	Path           string         `yaml:"path" json:"path"`
	Sheet          string         `yaml:"sheet" json:"sheet"`
	HeaderSentinel string         `yaml:"header_sentinel" json:"header_sentinel"`
	Columns        map[string]int `yaml:"columns" json:"columns"`
}

// DictionaryConfig locates the KANJIDIC2 document.
type DictionaryConfig struct {
	Path string `yaml:"path" json:"path"`
}

// OutputConfig names the output directory, the CSV files inside it and the
// optional SQLite export.
type OutputConfig struct {
	Dir              string `yaml:"dir" json:"dir"`
	StoryGroups      string `yaml:"story_groups" json:"story_groups"`
	Stories          string `yaml:"stories" json:"stories"`
	SimilarityGroups string `yaml:"similarity_groups" json:"similarity_groups"`
	Database         string `yaml:"database" json:"database"` // empty disables the SQLite export
}

// Default returns the built-in configuration.
func Default() Config {
	columns := make(map[string]int)
	for field, idx := range story.DefaultLayout() {
		columns[string(field)] = idx
	}
	return Config{
		Workbook: WorkbookConfig{
			Path:           DefaultWorkbookPath,
			Sheet:          DefaultSheet,
			HeaderSentinel: story.DefaultHeaderSentinel,
			Columns:        columns,
		},
		Dictionary: DictionaryConfig{Path: DefaultDictionaryPath},
		Output: OutputConfig{
			Dir:              DefaultOutputDir,
			StoryGroups:      "story_groups.csv",
			Stories:          "stories.csv",
			SimilarityGroups: "similarity_groups.csv",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path yields the defaults. Columns named in the file replace the default
// position of that field only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	defaults := cfg.Workbook.Columns
	cfg.Workbook.Columns = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config file %s: %w", filepath.Base(path), err)
	}

	if cfg.Workbook.Columns == nil {
		cfg.Workbook.Columns = make(map[string]int, len(defaults))
	}
	for name, idx := range defaults {
		if _, ok := cfg.Workbook.Columns[name]; !ok {
			cfg.Workbook.Columns[name] = idx
		}
	}
	return cfg, nil
}

// Validate checks cfg against the embedded CUE schema.
func Validate(cfg Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.Encode(cfg)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}

// ValidationError reports schema violations.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + e.Details
}

// Layout returns the row-shape descriptor for the story sheet.
func (c Config) Layout() story.Layout {
	layout := make(story.Layout, len(c.Workbook.Columns))
	for name, idx := range c.Workbook.Columns {
		layout[story.Field(name)] = idx
	}
	return layout
}

// StoryGroupsPath returns the story groups CSV location.
func (c Config) StoryGroupsPath() string {
	return filepath.Join(c.Output.Dir, c.Output.StoryGroups)
}

// StoriesPath returns the stories CSV location.
func (c Config) StoriesPath() string {
	return filepath.Join(c.Output.Dir, c.Output.Stories)
}

// SimilarityGroupsPath returns the similarity groups CSV location.
func (c Config) SimilarityGroupsPath() string {
	return filepath.Join(c.Output.Dir, c.Output.SimilarityGroups)
}

// YAML renders cfg as a config file.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
