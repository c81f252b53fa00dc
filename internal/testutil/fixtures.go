package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/kanjiparse/internal/story"
	"github.com/roach88/kanjiparse/internal/workbook"
)

// StorySheet is the sheet name used by the sample workbook.
const StorySheet = "Story_all"

// StoryRow places values at their default-layout positions.
func StoryRow(values map[story.Field]string) story.Row {
	layout := story.DefaultLayout()
	row := make(story.Row, layout.Width())
	for field, v := range values {
		row[layout[field]] = v
	}
	return row
}

// StoryRows is a small story sheet in the default layout: a header, two
// groups of two members with one character repeated across groups, a row
// without a group character and a row whose character is not an ideograph.
func StoryRows() []story.Row {
	return []story.Row{
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:    "Group_no",
			story.FieldGroupCharacter: story.DefaultHeaderSentinel,
			story.FieldMemberNumber:   "Member_no",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:     "1",
			story.FieldGroupCharacter:  "日",
			story.FieldMemberNumber:    "1",
			story.FieldMemberCharacter: "日",
			story.FieldMeaning:         "sun",
			story.FieldStory:           "The sun [12]",
			story.FieldReading:         "ニチ",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:     "1",
			story.FieldGroupCharacter:  "日",
			story.FieldMemberNumber:    "2",
			story.FieldMemberCharacter: "明",
			story.FieldMeaning:         "bright",
			story.FieldStory:           "Sun and moon ［13］",
			story.FieldReading:         "メイ",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber: "7",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:     "2",
			story.FieldGroupCharacter:  "月",
			story.FieldMemberNumber:    "1",
			story.FieldMemberCharacter: "月",
			story.FieldMeaning:         "moon",
			story.FieldStory:           "The moon, rising",
			story.FieldReading:         "ゲツ",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:      "2",
			story.FieldGroupCharacter:   "月",
			story.FieldMemberNumber:     "2",
			story.FieldMemberCharacter:  "日",
			story.FieldDisplayCharacter: "明",
			story.FieldMeaning:          "bright (alt)",
		}),
		StoryRow(map[story.Field]string{
			story.FieldGroupNumber:    "3",
			story.FieldGroupCharacter: "ABC",
			story.FieldMemberNumber:   "1",
		}),
	}
}

// WriteStoryWorkbook writes StoryRows to dir/stories.xlsx and returns the path.
func WriteStoryWorkbook(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "stories.xlsx")
	if err := workbook.WriteSheet(path, StorySheet, StoryRows()); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return path
}

// DictionaryXML is a small KANJIDIC2 document. Radical 72 and 74 form
// groups, セイ is the only on-reading shared by three characters and あか the
// only kun stem shared by three.
const DictionaryXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE kanjidic2 [
<!ELEMENT kanjidic2 (header,character*)>
]>
<kanjidic2>
<header><file_version>4</file_version></header>
<character><literal>日</literal>
<radical><rad_value rad_type="classical">72</rad_value></radical>
<misc><grade>1</grade><stroke_count>4</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">ニチ</reading><reading r_type="ja_kun">ひ</reading>
<meaning>day</meaning><meaning>sun</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>明</literal>
<radical><rad_value rad_type="classical">72</rad_value></radical>
<misc><grade>2</grade><stroke_count>8</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">メイ</reading><reading r_type="ja_kun">あか.るい</reading>
<meaning>bright</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>月</literal>
<radical><rad_value rad_type="classical">74</rad_value></radical>
<misc><grade>1</grade><stroke_count>4</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">ゲツ</reading><reading r_type="ja_kun">つき</reading>
<meaning>moon</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>晴</literal>
<radical><rad_value rad_type="classical">72</rad_value></radical>
<misc><stroke_count>12</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">セイ</reading><reading r_type="ja_kun">は.れる</reading>
<meaning>clear up</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>星</literal>
<radical><rad_value rad_type="classical">72</rad_value></radical>
<misc><stroke_count>9</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">セイ</reading><reading r_type="ja_kun">ほし</reading>
<meaning>star</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>青</literal>
<radical><rad_value rad_type="classical">174</rad_value></radical>
<misc><stroke_count>8</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">セイ</reading><reading r_type="ja_kun">あお</reading>
<meaning>blue</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>赤</literal>
<radical><rad_value rad_type="classical">155</rad_value></radical>
<misc><stroke_count>7</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">セキ</reading><reading r_type="ja_kun">あか</reading>
<meaning>red</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>朝</literal>
<radical><rad_value rad_type="classical">74</rad_value></radical>
<misc><stroke_count>12</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">チョウ</reading><reading r_type="ja_kun">あさ</reading>
<meaning>morning</meaning>
</rmgroup></reading_meaning>
</character>
<character><literal>紅</literal>
<radical><rad_value rad_type="classical">120</rad_value></radical>
<misc><stroke_count>9</stroke_count></misc>
<reading_meaning><rmgroup>
<reading r_type="ja_on">コウ</reading><reading r_type="ja_kun">あか.い</reading>
<meaning>crimson</meaning>
</rmgroup></reading_meaning>
</character>
</kanjidic2>
`

// WriteDictionary writes DictionaryXML to dir/kanjidic2.xml and returns the
// path.
func WriteDictionary(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "kanjidic2.xml")
	if err := os.WriteFile(path, []byte(DictionaryXML), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	return path
}
