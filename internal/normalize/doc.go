// Package normalize cleans scalar cell values before they reach the extractors.
//
// Every function here is total: missing input becomes empty text, never an
// error. Identity-bearing text is NFC-normalized so that a character typed
// in decomposed form compares equal to its precomposed spelling.
package normalize
