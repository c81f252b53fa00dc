package identity

import "github.com/roach88/kanjiparse/internal/story"

// Assign returns the display identity for each canonical identity, in order.
//
// A value that occurs once is returned unchanged. For a value c occurring
// N > 1 times, the first occurrence stays c and the j-th repeat (j >= 1)
// becomes c + Marker(j-1), yielding c, c①, c②, ... in input order.
func Assign(canonicals []string) []string {
	counts := make(map[string]int, len(canonicals))
	for _, c := range canonicals {
		counts[c]++
	}

	seen := make(map[string]int, len(counts))
	out := make([]string, len(canonicals))
	for i, c := range canonicals {
		if counts[c] == 1 {
			out[i] = c
			continue
		}
		n := seen[c]
		seen[c] = n + 1
		if n == 0 {
			out[i] = c
			continue
		}
		out[i] = c + Marker(n-1)
	}
	return out
}

// Resolve returns a copy of records with DisplayIdentity assigned from
// CanonicalIdentity. CanonicalIdentity is left untouched.
func Resolve(records []story.Record) []story.Record {
	canonicals := make([]string, len(records))
	for i, r := range records {
		canonicals[i] = r.CanonicalIdentity
	}

	display := Assign(canonicals)
	out := make([]story.Record, len(records))
	for i, r := range records {
		r.DisplayIdentity = display[i]
		out[i] = r
	}
	return out
}

// Duplicates returns the number of canonical identities that occur more than
// once.
func Duplicates(records []story.Record) int {
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.CanonicalIdentity]++
	}
	dup := 0
	for _, n := range counts {
		if n > 1 {
			dup++
		}
	}
	return dup
}
