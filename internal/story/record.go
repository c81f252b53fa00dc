package story

import "github.com/roach88/kanjiparse/internal/tabular"

// Output column names, in file order.
var (
	GroupColumns = []string{
		"group_number",
		"group_identity",
		"group_meaning",
		"group_story_text",
		"reading",
	}
	RecordColumns = []string{
		"group_identity",
		"member_number",
		"display_identity",
		"canonical_identity",
		"meaning",
		"story_text",
		"frame_number",
		"reading",
	}
)

// GroupRecord describes one group-level character.
type GroupRecord struct {
	GroupNumber    string `json:"group_number"`
	GroupIdentity  string `json:"group_identity"`
	GroupMeaning   string `json:"group_meaning"`
	GroupStoryText string `json:"group_story_text"`
	Reading        string `json:"reading"`
}

// Row returns the record keyed by output column.
func (g GroupRecord) Row() tabular.Row {
	return tabular.Row{
		"group_number":     g.GroupNumber,
		"group_identity":   g.GroupIdentity,
		"group_meaning":    g.GroupMeaning,
		"group_story_text": g.GroupStoryText,
		"reading":          g.Reading,
	}
}

// Record is one character entry of the story sheet.
//
// CanonicalIdentity is the character as written in the source;
// DisplayIdentity is the unique row key and may carry a disambiguating
// suffix.
type Record struct {
	GroupIdentity     string `json:"group_identity"`
	MemberNumber      string `json:"member_number"`
	DisplayIdentity   string `json:"display_identity"`
	CanonicalIdentity string `json:"canonical_identity"`
	Meaning           string `json:"meaning"`
	StoryText         string `json:"story_text"`
	FrameNumber       string `json:"frame_number"`
	Reading           string `json:"reading"`
}

// Row returns the record keyed by output column.
func (r Record) Row() tabular.Row {
	return tabular.Row{
		"group_identity":     r.GroupIdentity,
		"member_number":      r.MemberNumber,
		"display_identity":   r.DisplayIdentity,
		"canonical_identity": r.CanonicalIdentity,
		"meaning":            r.Meaning,
		"story_text":         r.StoryText,
		"frame_number":       r.FrameNumber,
		"reading":            r.Reading,
	}
}
