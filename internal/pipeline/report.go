package pipeline

import (
	"time"

	"github.com/roach88/kanjiparse/internal/similarity"
	"github.com/roach88/kanjiparse/internal/story"
)

// Output names.
const (
	OutputStoryGroups      = "story_groups"
	OutputStories          = "stories"
	OutputSimilarityGroups = "similarity_groups"
	OutputDatabase         = "database"
)

// Report summarizes a run.
type Report struct {
	RunID      string             `json:"run_id"`
	StartedAt  time.Time          `json:"started_at"`
	Stories    *StorySummary      `json:"stories,omitempty"`
	Dictionary *DictionarySummary `json:"dictionary,omitempty"`
	Sources    []SourceStatus     `json:"sources"`
	Outputs    []OutputStatus     `json:"outputs"`
}

// StorySummary describes the story stage.
type StorySummary struct {
	Rows       int         `json:"rows"`
	Groups     int         `json:"groups"`
	Stories    int         `json:"stories"`
	Duplicates int         `json:"duplicate_characters"`
	Skipped    story.Skips `json:"skipped"`
}

// DictionarySummary describes the dictionary stage.
type DictionarySummary struct {
	Characters int                     `json:"characters"`
	Groups     map[similarity.Type]int `json:"groups"`
}

// SourceStatus records whether an input was used.
type SourceStatus struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Used  bool   `json:"used"`
	Error string `json:"error,omitempty"`
}

// OutputStatus records what happened to one output.
type OutputStatus struct {
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	Rows    int    `json:"rows"`
	Written bool   `json:"written"`
	Reason  string `json:"reason,omitempty"`
}

// Written returns the outputs that were written.
func (r *Report) Written() []OutputStatus {
	var out []OutputStatus
	for _, o := range r.Outputs {
		if o.Written {
			out = append(out, o)
		}
	}
	return out
}

// Skipped returns the outputs that were skipped.
func (r *Report) Skipped() []OutputStatus {
	var out []OutputStatus
	for _, o := range r.Outputs {
		if !o.Written {
			out = append(out, o)
		}
	}
	return out
}

func (r *Report) skip(name, path, reason string) {
	r.Outputs = append(r.Outputs, OutputStatus{Name: name, Path: path, Reason: reason})
}

func (r *Report) wrote(name, path string, rows int) {
	r.Outputs = append(r.Outputs, OutputStatus{Name: name, Path: path, Rows: rows, Written: true})
}
