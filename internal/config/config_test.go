package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kanjiparse/internal/story"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kanjiparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Story_all", cfg.Workbook.Sheet)
	assert.Equal(t, "Kanji_sequence", cfg.Workbook.HeaderSentinel)
	assert.Equal(t, story.DefaultLayout(), cfg.Layout())
	assert.Equal(t, filepath.Join("output_csv", "stories.csv"), cfg.StoriesPath())
	assert.Empty(t, cfg.Output.Database)
	require.NoError(t, Validate(cfg))
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
workbook:
  path: stories.xlsm
  columns:
    display_character: 12
    reading: 16
dictionary:
  path: kanjidic2.xml.gz
output:
  dir: out
  database: out/kanji.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "stories.xlsm", cfg.Workbook.Path)
	assert.Equal(t, "Story_all", cfg.Workbook.Sheet, "unset keys keep defaults")
	assert.Equal(t, "kanjidic2.xml.gz", cfg.Dictionary.Path)
	assert.Equal(t, "out/kanji.db", cfg.Output.Database)
	assert.Equal(t, filepath.Join("out", "story_groups.csv"), cfg.StoryGroupsPath())

	layout := cfg.Layout()
	assert.Equal(t, 12, layout[story.FieldDisplayCharacter])
	assert.Equal(t, 16, layout[story.FieldReading])
	assert.Equal(t, 3, layout[story.FieldGroupCharacter], "unlisted columns keep defaults")
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "workbook:\n  sheeet: Story_all\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheeet")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "unknown column",
			mutate: func(c *Config) { c.Workbook.Columns["kanji"] = 1 },
			want:   "kanji",
		},
		{
			name:   "negative column",
			mutate: func(c *Config) { c.Workbook.Columns["meaning"] = -1 },
			want:   "meaning",
		},
		{
			name:   "missing group character column",
			mutate: func(c *Config) { delete(c.Workbook.Columns, "group_character") },
			want:   "group_character",
		},
		{
			name:   "empty sheet",
			mutate: func(c *Config) { c.Workbook.Sheet = "" },
			want:   "sheet",
		},
		{
			name:   "output not csv",
			mutate: func(c *Config) { c.Output.Stories = "stories.txt" },
			want:   "stories",
		},
		{
			name:   "empty output dir",
			mutate: func(c *Config) { c.Output.Dir = "" },
			want:   "dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(cfg)

			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tt.want)
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Output.Database = "kanji.db"

	data, err := cfg.YAML()
	require.NoError(t, err)

	loaded, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
