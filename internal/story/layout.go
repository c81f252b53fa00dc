package story

// Field names a semantic column of the story sheet.
type Field string

const (
	FieldGroupNumber      Field = "group_number"
	FieldGroupCharacter   Field = "group_character"
	FieldMemberNumber     Field = "member_number"
	FieldMemberCharacter  Field = "member_character"
	FieldDisplayCharacter Field = "display_character"
	FieldMeaning          Field = "meaning"
	FieldStory            Field = "story"
	FieldReading          Field = "reading"
)

// Fields lists every field a Layout may position.
var Fields = []Field{
	FieldGroupNumber,
	FieldGroupCharacter,
	FieldMemberNumber,
	FieldMemberCharacter,
	FieldDisplayCharacter,
	FieldMeaning,
	FieldStory,
	FieldReading,
}

// DefaultHeaderSentinel is the group-character cell value of header rows.
const DefaultHeaderSentinel = "Kanji_sequence"

// Row is one spreadsheet row as positional cell text.
type Row []string

// Layout maps semantic fields to zero-based column indices.
// A field missing from the layout reads as an empty cell.
type Layout map[Field]int

// DefaultLayout returns the column positions of the Story_all sheet.
func DefaultLayout() Layout {
	return Layout{
		FieldGroupNumber:      2,
		FieldGroupCharacter:   3,
		FieldMemberNumber:     4,
		FieldMemberCharacter:  5,
		FieldDisplayCharacter: 13,
		FieldMeaning:          14,
		FieldStory:            15,
		FieldReading:          17,
	}
}

// Cell returns the raw text of field in row, or "" when the row is too
// short or the layout does not position the field.
func (l Layout) Cell(row Row, f Field) string {
	idx, ok := l[f]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Width returns the number of columns a row needs to cover every field.
func (l Layout) Width() int {
	width := 0
	for _, idx := range l {
		if idx+1 > width {
			width = idx + 1
		}
	}
	return width
}
