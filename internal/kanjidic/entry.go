package kanjidic

// Reading and radical type tags used by KANJIDIC2.
const (
	ReadingOn        = "ja_on"
	ReadingKun       = "ja_kun"
	RadicalClassical = "classical"
)

// MaxMeanings is the number of default-language meanings kept per character.
const MaxMeanings = 3

// Entry is one dictionary character as it appears in the source.
type Entry struct {
	Literal     string
	Radicals    []Radical
	Readings    []Reading
	Meanings    []Meaning
	StrokeCount string // first stroke count, "" when absent
	Grade       string // "" when absent
}

// Radical is a typed radical number.
type Radical struct {
	Type  string
	Value string
}

// Reading is a typed reading such as ja_on or ja_kun.
type Reading struct {
	Type  string
	Value string
}

// Meaning is a gloss. Lang is nil for the default (English) meaning set.
type Meaning struct {
	Lang  *string
	Value string
}

// Attributes is the reduced view of an entry.
type Attributes struct {
	Character   string   `json:"character"`
	RadicalCode string   `json:"radical_code"`
	OnReadings  []string `json:"on_readings"`
	KunReadings []string `json:"kun_readings"`
	Meanings    []string `json:"meanings"`
	StrokeCount string   `json:"stroke_count"`
	Grade       string   `json:"grade"`
}
