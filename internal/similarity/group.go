// Package similarity derives study groups of characters that share a radical
// or a leading reading.
//
// Groups are computed from a kanjidic.Dictionary after the scan completes.
// Members keep dictionary scan order and groups are emitted in order of the
// first appearance of their key.
package similarity

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/roach88/kanjiparse/internal/kanjidic"
	"github.com/roach88/kanjiparse/internal/tabular"
)

// Type distinguishes the grouping criterion.
type Type string

const (
	TypeRadical    Type = "radical"
	TypeOnReading  Type = "on_reading"
	TypeKunReading Type = "kun_reading"
)

// Minimum member counts for a group to be emitted.
const (
	MinRadicalMembers = 2
	MinReadingMembers = 3
)

// minKunStem is the shortest kun-reading stem, in characters, that forms a group.
const minKunStem = 2

// okuriganaSeparator splits a kun reading into stem and conjugating suffix.
const okuriganaSeparator = "."

// Columns is the output column order.
var Columns = []string{
	"group_type",
	"group_key",
	"group_label",
	"member_characters",
	"member_count",
}

// Group is a cluster of characters sharing a key.
type Group struct {
	Type    Type     `json:"group_type"`
	Key     string   `json:"group_key"`
	Label   string   `json:"group_label"`
	Members []string `json:"member_characters"`
}

// Count returns the number of members.
func (g Group) Count() int {
	return len(g.Members)
}

// Row returns the group keyed by output column; members are comma-joined.
func (g Group) Row() tabular.Row {
	return tabular.Row{
		"group_type":        string(g.Type),
		"group_key":         g.Key,
		"group_label":       g.Label,
		"member_characters": strings.Join(g.Members, ","),
		"member_count":      strconv.Itoa(g.Count()),
	}
}

// partition collects characters under keys, preserving first-seen key order
// and member order.
type partition struct {
	keys    []string
	members map[string][]string
}

func newPartition() *partition {
	return &partition{members: make(map[string][]string)}
}

func (p *partition) add(key, character string) {
	if _, ok := p.members[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.members[key] = append(p.members[key], character)
}

func (p *partition) groups(t Type, minMembers int, label func(string) string) []Group {
	var out []Group
	for _, key := range p.keys {
		members := p.members[key]
		if len(members) < minMembers {
			continue
		}
		out = append(out, Group{
			Type:    t,
			Key:     key,
			Label:   label(key),
			Members: members,
		})
	}
	return out
}

// ByRadical groups characters by classical radical code.
func ByRadical(d *kanjidic.Dictionary) []Group {
	p := newPartition()
	d.Each(func(a kanjidic.Attributes) {
		if a.RadicalCode != "" {
			p.add(a.RadicalCode, a.Character)
		}
	})
	return p.groups(TypeRadical, MinRadicalMembers, RadicalLabel)
}

// ByOnReading groups characters by their first on-reading.
func ByOnReading(d *kanjidic.Dictionary) []Group {
	p := newPartition()
	d.Each(func(a kanjidic.Attributes) {
		if len(a.OnReadings) == 0 {
			return
		}
		if first := strings.TrimSpace(a.OnReadings[0]); first != "" {
			p.add(first, a.Character)
		}
	})
	return p.groups(TypeOnReading, MinReadingMembers, func(key string) string {
		return "On-reading: " + key
	})
}

// ByKunReading groups characters by the stem of their first kun-reading.
// Stems shorter than two characters are too ambiguous to group on.
func ByKunReading(d *kanjidic.Dictionary) []Group {
	p := newPartition()
	d.Each(func(a kanjidic.Attributes) {
		if len(a.KunReadings) == 0 {
			return
		}
		stem := KunStem(a.KunReadings[0])
		if utf8.RuneCountInString(stem) >= minKunStem {
			p.add(stem, a.Character)
		}
	})
	return p.groups(TypeKunReading, MinReadingMembers, func(key string) string {
		return "Kun-reading: " + key
	})
}

// KunStem strips the okurigana suffix from a kun reading ("あか.るい" -> "あか").
func KunStem(reading string) string {
	stem, _, _ := strings.Cut(reading, okuriganaSeparator)
	return strings.TrimSpace(stem)
}

// Synthesize returns radical, on-reading and kun-reading groups, in that order.
func Synthesize(d *kanjidic.Dictionary) []Group {
	var out []Group
	out = append(out, ByRadical(d)...)
	out = append(out, ByOnReading(d)...)
	out = append(out, ByKunReading(d)...)
	return out
}

// Counts tallies groups per type.
func Counts(groups []Group) map[Type]int {
	counts := map[Type]int{TypeRadical: 0, TypeOnReading: 0, TypeKunReading: 0}
	for _, g := range groups {
		counts[g.Type]++
	}
	return counts
}
