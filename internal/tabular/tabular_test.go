package tabular

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/kanjiparse/internal/normalize"
)

type partial struct {
	name  string
	notes string
}

// Row leaves "extra" unset so the writer has to fill it.
func (p partial) Row() Row {
	return Row{"name": p.name, "notes": p.notes}
}

var columns = []string{"name", "notes", "extra"}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, columns, []partial{
		{name: "日", notes: "sun"},
		{name: "明", notes: "bright, clear"},
	})
	require.NoError(t, err)

	want := "name,notes,extra\n" +
		"日,sun,\n" +
		"明,\"bright, clear\",\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_EmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, columns, []partial(nil)))
	assert.Equal(t, "name,notes,extra\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	records := []partial{
		{name: "日", notes: "plain"},
		{name: "月①", notes: "comma, inside"},
		{name: "木", notes: `a "quoted" word`},
		{name: "林", notes: "two\nlines"},
		// Cells reach the writer through normalize.Clean, which folds CR.
		{name: "川", notes: normalize.Clean("two\r\nlines\rthree")},
		{name: "森", notes: "  leading space"},
		{name: "", notes: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, columns, records))

	rows, err := Read(&buf, columns)
	require.NoError(t, err)
	require.Len(t, rows, len(records))
	for i, rec := range records {
		assert.Equal(t, rec.name, rows[i]["name"])
		assert.Equal(t, rec.notes, rows[i]["notes"])
		assert.Equal(t, "", rows[i]["extra"])
	}
}

func TestRead_HeaderMismatch(t *testing.T) {
	_, err := Read(strings.NewReader("name,other,extra\n"), columns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"other"`)

	_, err = Read(strings.NewReader("name,notes\n"), columns)
	require.Error(t, err)

	_, err = Read(strings.NewReader(""), columns)
	require.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, WriteFile(path, columns, []partial{{name: "日"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,notes,extra\n日,,\n", string(data))
}

func TestWriteFile_UnwritableDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := WriteFile(path, columns, []partial{{name: "日"}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutput))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
