package story

import (
	"io"
	"log/slog"

	"github.com/roach88/kanjiparse/internal/normalize"
)

// defaultMemberNumber applies when the member-number cell is blank.
const defaultMemberNumber = "1"

// Skips counts rows dropped by the extractor, per reason.
type Skips struct {
	Blank        int `json:"blank"`         // empty group cell or header sentinel
	NoCharacter  int `json:"no_character"`  // display, member and group cells all empty
	NotIdeograph int `json:"not_ideograph"` // resolved character is not a single CJK ideograph
}

// Total returns the number of skipped rows.
func (s Skips) Total() int {
	return s.Blank + s.NoCharacter + s.NotIdeograph
}

// Result holds the extractor output.
type Result struct {
	Groups  []GroupRecord
	Stories []Record
	Skipped Skips
}

// Extractor maps story rows to records using a Layout.
type Extractor struct {
	layout   Layout
	sentinel string
	logger   *slog.Logger
}

// NewExtractor creates an extractor. An empty sentinel disables header
// detection; a nil logger discards output.
func NewExtractor(layout Layout, sentinel string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Extractor{layout: layout, sentinel: sentinel, logger: logger}
}

// Extract scans rows in order.
//
// Character cells are only trimmed, never NFC-normalized: a compatibility
// ideograph keeps its code point and fails the ideograph check instead of
// silently becoming its unified counterpart.
//
// A row whose member number is 1, or whose group character has not been seen
// yet, (re)writes that group's record. Repeated first-member rows for the
// same group overwrite the earlier record in place (last write wins) and are
// logged at warn level for review.
func (e *Extractor) Extract(rows []Row) Result {
	var res Result
	groupIndex := make(map[string]int)
	firstMemberSeen := make(map[string]bool)

	for i, row := range rows {
		rawGroup := e.layout.Cell(row, FieldGroupCharacter)
		groupChar := normalize.Clean(rawGroup)
		if groupChar == "" || (e.sentinel != "" && groupChar == e.sentinel) {
			res.Skipped.Blank++
			continue
		}

		actual := firstNonEmpty(
			normalize.Clean(e.layout.Cell(row, FieldDisplayCharacter)),
			normalize.Clean(e.layout.Cell(row, FieldMemberCharacter)),
			groupChar,
		)
		if actual == "" {
			res.Skipped.NoCharacter++
			continue
		}
		if !normalize.IsIdeograph(actual) {
			res.Skipped.NotIdeograph++
			e.logger.Debug("row dropped: not an ideograph", "row", i+1, "value", actual)
			continue
		}

		member := normalize.Number(e.layout.Cell(row, FieldMemberNumber))
		if member == "" {
			member = defaultMemberNumber
		}
		meaning := normalize.Clean(e.layout.Cell(row, FieldMeaning))
		storyText := normalize.Clean(e.layout.Cell(row, FieldStory))
		reading := normalize.Clean(e.layout.Cell(row, FieldReading))

		idx, seen := groupIndex[groupChar]
		if member == defaultMemberNumber || !seen {
			group := GroupRecord{
				GroupNumber:    normalize.Number(e.layout.Cell(row, FieldGroupNumber)),
				GroupIdentity:  groupChar,
				GroupMeaning:   meaning,
				GroupStoryText: storyText,
				Reading:        reading,
			}
			if seen {
				if member == defaultMemberNumber && firstMemberSeen[groupChar] {
					e.logger.Warn("group record overwritten by repeated first member",
						"group", groupChar,
						"row", i+1,
					)
				}
				res.Groups[idx] = group
			} else {
				groupIndex[groupChar] = len(res.Groups)
				res.Groups = append(res.Groups, group)
			}
			if member == defaultMemberNumber {
				firstMemberSeen[groupChar] = true
			}
		}

		res.Stories = append(res.Stories, Record{
			GroupIdentity:     groupChar,
			MemberNumber:      member,
			DisplayIdentity:   actual,
			CanonicalIdentity: actual,
			Meaning:           meaning,
			StoryText:         storyText,
			FrameNumber:       normalize.ExtractFrameNumber(storyText),
			Reading:           reading,
		})
	}

	e.logger.Debug("story rows extracted",
		"rows", len(rows),
		"groups", len(res.Groups),
		"stories", len(res.Stories),
		"skipped", res.Skipped.Total(),
	)
	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
