package kanjidic

import "github.com/roach88/kanjiparse/internal/normalize"

// Dictionary maps characters to attributes and keeps scan order.
type Dictionary struct {
	order []string
	attrs map[string]Attributes
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{attrs: make(map[string]Attributes)}
}

// Add stores a unless its character is already present. It reports whether
// a was stored.
func (d *Dictionary) Add(a Attributes) bool {
	if _, ok := d.attrs[a.Character]; ok {
		return false
	}
	d.order = append(d.order, a.Character)
	d.attrs[a.Character] = a
	return true
}

// Get returns the attributes of character.
func (d *Dictionary) Get(character string) (Attributes, bool) {
	a, ok := d.attrs[character]
	return a, ok
}

// Len returns the number of characters.
func (d *Dictionary) Len() int {
	return len(d.order)
}

// Each calls fn for every entry in scan order.
func (d *Dictionary) Each(fn func(Attributes)) {
	for _, c := range d.order {
		fn(d.attrs[c])
	}
}

// Reduce converts a single entry. ok is false when the entry has no literal.
func Reduce(e Entry) (Attributes, bool) {
	literal := normalize.Clean(e.Literal)
	if literal == "" {
		return Attributes{}, false
	}

	a := Attributes{
		Character:   literal,
		StrokeCount: normalize.Clean(e.StrokeCount),
		Grade:       normalize.Clean(e.Grade),
	}
	for _, r := range e.Radicals {
		if r.Type == RadicalClassical {
			a.RadicalCode = normalize.Clean(r.Value)
			break
		}
	}
	for _, r := range e.Readings {
		value := normalize.Text(r.Value)
		switch r.Type {
		case ReadingOn:
			a.OnReadings = append(a.OnReadings, value)
		case ReadingKun:
			a.KunReadings = append(a.KunReadings, value)
		}
	}
	for _, m := range e.Meanings {
		if m.Lang != nil {
			continue
		}
		if len(a.Meanings) == MaxMeanings {
			break
		}
		a.Meanings = append(a.Meanings, normalize.Clean(m.Value))
	}
	return a, true
}

// Extract reduces entries into a dictionary. The first entry for a
// character wins; later duplicates are ignored.
func Extract(entries []Entry) *Dictionary {
	d := NewDictionary()
	for _, e := range entries {
		if a, ok := Reduce(e); ok {
			d.Add(a)
		}
	}
	return d
}
