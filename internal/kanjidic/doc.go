// Package kanjidic reads KANJIDIC2 character entries and reduces them to the
// attributes the similarity grouping needs.
//
// Decode streams the XML document one <character> element at a time, so
// the full dictionary is never materialized as a tree. Extract turns the
// entries into a Dictionary that remembers scan order; grouping output
// depends on that order.
package kanjidic
