package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kanjiparse/internal/testutil"
)

type fixture struct {
	workbook   string
	dictionary string
	out        string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	return fixture{
		workbook:   testutil.WriteStoryWorkbook(t, dir),
		dictionary: testutil.WriteDictionary(t, dir),
		out:        filepath.Join(dir, "out"),
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func (f fixture) runArgs(extra ...string) []string {
	args := []string{
		"run",
		"--workbook", f.workbook,
		"--sheet", testutil.StorySheet,
		"--dictionary", f.dictionary,
		"--out", f.out,
	}
	return append(args, extra...)
}

func TestRunCommand_Text(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, f.runArgs()...)
	require.NoError(t, err)

	assert.Contains(t, out, "Stories: 7 rows, 2 groups, 4 stories, 1 duplicated characters, 3 rows skipped")
	assert.Contains(t, out, "Dictionary: 9 characters, 2 radical, 1 on-reading, 1 kun-reading groups")
	assert.Contains(t, out, "similarity_groups")

	for _, name := range []string{"story_groups.csv", "stories.csv", "similarity_groups.csv"} {
		assert.FileExists(t, filepath.Join(f.out, name))
	}
}

func TestRunCommand_JSON(t *testing.T) {
	f := newFixture(t)
	db := filepath.Join(t.TempDir(), "kanji.db")

	out, err := execute(t, append([]string{"--format", "json"}, f.runArgs("--db", db)...)...)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			RunID   string `json:"run_id"`
			Outputs []struct {
				Name    string `json:"name"`
				Written bool   `json:"written"`
			} `json:"outputs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Data.RunID)
	require.Len(t, resp.Data.Outputs, 4)
	for _, o := range resp.Data.Outputs {
		assert.True(t, o.Written, o.Name)
	}
	assert.FileExists(t, db)
}

func TestRunCommand_MissingSourcesStillSucceeds(t *testing.T) {
	f := newFixture(t)
	f.workbook = filepath.Join(t.TempDir(), "absent.xlsm")

	out, err := execute(t, f.runArgs()...)
	require.NoError(t, err)
	assert.Contains(t, out, "workbook unavailable")
	assert.NoFileExists(t, filepath.Join(f.out, "stories.csv"))
	assert.FileExists(t, filepath.Join(f.out, "similarity_groups.csv"))
}

func TestRunCommand_OutputFailure(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	f.out = blocker

	out, err := execute(t, f.runArgs()...)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E005]")
}

func TestRunCommand_ConfigFile(t *testing.T) {
	f := newFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "kanjiparse.yaml")
	yaml := "workbook:\n  path: " + f.workbook + "\n  sheet: " + testutil.StorySheet +
		"\ndictionary:\n  path: " + f.dictionary + "\noutput:\n  dir: " + f.out +
		"\n  stories: kanji_stories.csv\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yaml), 0o644))

	_, err := execute(t, "run", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(f.out, "kanji_stories.csv"))
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "kanjiparse.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workbook:\n  columns:\n    bogus: 1\n"), 0o644))

	out, err := execute(t, "run", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestRunCommand_UnknownConfigKey(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "kanjiparse.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("workbok:\n  path: x\n"), 0o644))

	_, err := execute(t, "run", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestStoriesCommand(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "stories", f.workbook, "--sheet", testutil.StorySheet)
	require.NoError(t, err)
	assert.Contains(t, out, "2 groups, 4 stories from 7 rows (3 skipped)")
	assert.Contains(t, out, "明①")
}

func TestStoriesCommand_Limit(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "stories", f.workbook, "--sheet", testutil.StorySheet, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "... 3 more")
	assert.NotContains(t, out, "明①")
}

func TestStoriesCommand_JSON(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--format", "json", "stories", f.workbook, "--sheet", testutil.StorySheet)
	require.NoError(t, err)

	var resp struct {
		Data StoriesResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Stories, 4)
	assert.Equal(t, "明①", resp.Data.Stories[3].DisplayIdentity)
	assert.Equal(t, "明", resp.Data.Stories[3].CanonicalIdentity)
	assert.Len(t, resp.Data.Groups, 2)
}

func TestStoriesCommand_MissingWorkbook(t *testing.T) {
	out, err := execute(t, "stories", filepath.Join(t.TempDir(), "absent.xlsm"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestSimilarCommand(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "similar", f.dictionary)
	require.NoError(t, err)
	assert.Contains(t, out, "9 characters, 4 groups")
	assert.Contains(t, out, "On-reading: セイ")
}

func TestSimilarCommand_TypeFilter(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--format", "json", "similar", f.dictionary, "--type", "radical")
	require.NoError(t, err)

	var resp struct {
		Data SimilarResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data.Groups, 2)
	assert.Equal(t, []string{"日", "明", "晴", "星"}, resp.Data.Groups[0].Members)
	assert.Equal(t, 1, resp.Data.Counts["kun_reading"])
}

func TestSimilarCommand_UnknownType(t *testing.T) {
	f := newFixture(t)

	_, err := execute(t, "similar", f.dictionary, "--type", "stroke")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSimilarCommand_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<kanjidic2><character>"), 0o644))

	out, err := execute(t, "similar", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E004]")
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "sheet: Story_all")
	assert.Contains(t, out, "group_character: 3")
}
