package story

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compactLayout positions every field in consecutive columns so test rows
// stay readable.
func compactLayout() Layout {
	return Layout{
		FieldGroupNumber:      0,
		FieldGroupCharacter:   1,
		FieldMemberNumber:     2,
		FieldMemberCharacter:  3,
		FieldDisplayCharacter: 4,
		FieldMeaning:          5,
		FieldStory:            6,
		FieldReading:          7,
	}
}

func TestExtract_GroupsAndStories(t *testing.T) {
	rows := []Row{
		{"", "Kanji_sequence", "", "", "", "", "", ""},
		{"1", "日", "1", "", "", "day", "The sun [1] sets.", "ニチ"},
		{"1", "日", "2", "旦", "", "dawn", "Sun over the horizon [2].", "タン"},
		{"2", "月", "", "", "", "moon", "A crescent.", "ゲツ"},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, GroupRecord{
		GroupNumber:    "1",
		GroupIdentity:  "日",
		GroupMeaning:   "day",
		GroupStoryText: "The sun [1] sets.",
		Reading:        "ニチ",
	}, res.Groups[0])
	assert.Equal(t, "月", res.Groups[1].GroupIdentity)

	require.Len(t, res.Stories, 3)
	assert.Equal(t, Record{
		GroupIdentity:     "日",
		MemberNumber:      "2",
		DisplayIdentity:   "旦",
		CanonicalIdentity: "旦",
		Meaning:           "dawn",
		StoryText:         "Sun over the horizon [2].",
		FrameNumber:       "2",
		Reading:           "タン",
	}, res.Stories[1])
	assert.Equal(t, "1", res.Stories[2].MemberNumber, "blank member number defaults to 1")
	assert.Equal(t, "", res.Stories[2].FrameNumber)
	assert.Equal(t, 1, res.Skipped.Blank)
}

func TestExtract_CharacterPrecedence(t *testing.T) {
	rows := []Row{
		{"1", "日", "1", "旦", "明", "bright", "", ""},
		{"1", "日", "2", "旦", "", "dawn", "", ""},
		{"1", "日", "3", "", "", "sun", "", ""},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Stories, 3)
	assert.Equal(t, "明", res.Stories[0].CanonicalIdentity, "display wins")
	assert.Equal(t, "旦", res.Stories[1].CanonicalIdentity, "member wins over group")
	assert.Equal(t, "日", res.Stories[2].CanonicalIdentity, "group is the fallback")
}

func TestExtract_SkipsRows(t *testing.T) {
	rows := []Row{
		{},
		{"1", "", "1", "", "", "", "", ""},
		{"1", "  ", "1", "", "", "", "", ""},
		{"1", "Kanji_sequence", "1", "", "", "", "", ""},
		{"1", "A", "1", "", "", "letter", "", ""},
		{"1", "日", "1", "", "ひ", "kana", "", ""},
		{"1", "日", "1", "", "日月", "two", "", ""},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	assert.Empty(t, res.Stories)
	assert.Empty(t, res.Groups)
	assert.Equal(t, 4, res.Skipped.Blank)
	assert.Equal(t, 3, res.Skipped.NotIdeograph)
	assert.Equal(t, 7, res.Skipped.Total())
}

func TestExtract_RepeatedFirstMemberLastWriteWins(t *testing.T) {
	rows := []Row{
		{"1", "日", "1", "", "", "day", "first", "ニチ"},
		{"2", "月", "1", "", "", "moon", "", "ゲツ"},
		{"9", "日", "1", "", "", "sun", "second", "ジツ"},
		{"9", "日", "2", "旦", "", "dawn", "member", "タン"},
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, logger).Extract(rows)

	require.Len(t, res.Groups, 2)
	assert.Equal(t, "日", res.Groups[0].GroupIdentity, "overwrite keeps first position")
	assert.Equal(t, "9", res.Groups[0].GroupNumber)
	assert.Equal(t, "sun", res.Groups[0].GroupMeaning)
	assert.Equal(t, "second", res.Groups[0].GroupStoryText)
	assert.Len(t, res.Stories, 4)
	assert.Contains(t, logs.String(), "group record overwritten")
}

func TestExtract_FirstSeenMemberCreatesGroup(t *testing.T) {
	rows := []Row{
		{"3", "木", "2", "本", "", "book", "", "ホン"},
		{"3", "木", "3", "末", "", "end", "", "マツ"},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "book", res.Groups[0].GroupMeaning, "later non-first members do not overwrite")
}

func TestExtract_NumericCells(t *testing.T) {
	rows := []Row{
		{"12.0", "日", "1.0", "", "", "day", "", ""},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Groups, 1)
	assert.Equal(t, "12", res.Groups[0].GroupNumber)
	assert.Equal(t, "1", res.Stories[0].MemberNumber)
}

func TestLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 18, l.Width())

	row := Row{"a", "b"}
	assert.Equal(t, "b", Layout{FieldMeaning: 1}.Cell(row, FieldMeaning))
	assert.Equal(t, "", Layout{FieldMeaning: 5}.Cell(row, FieldMeaning))
	assert.Equal(t, "", Layout{}.Cell(row, FieldMeaning))
}

func TestExtract_FoldsLineBreaks(t *testing.T) {
	rows := []Row{
		{"1", "日", "1", "", "", "day\r\n", "The sun [1]\r\nsets.\rAgain.", "ニチ"},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Stories, 1)
	assert.Equal(t, "The sun [1]\nsets.\nAgain.", res.Stories[0].StoryText)
	assert.Equal(t, "day", res.Stories[0].Meaning)
	assert.Equal(t, "The sun [1]\nsets.\nAgain.", res.Groups[0].GroupStoryText)
	assert.Equal(t, "1", res.Stories[0].FrameNumber)
}

func TestExtract_RejectsCompatibilityIdeograph(t *testing.T) {
	// U+F900 and U+8C48 are distinct source characters; NFC would merge them.
	rows := []Row{
		{"1", "日", "1", "", "", "day", "", ""},
		{"1", "日", "2", "\uF900", "", "compat", "", ""},
		{"1", "日", "3", "\u8C48", "", "unified", "", ""},
	}

	res := NewExtractor(compactLayout(), DefaultHeaderSentinel, nil).Extract(rows)

	require.Len(t, res.Stories, 2)
	assert.Equal(t, "\u8C48", res.Stories[1].CanonicalIdentity)
	assert.Equal(t, 1, res.Skipped.NotIdeograph)
}
