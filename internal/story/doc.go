// Package story turns positional spreadsheet rows into story group records
// and per-character story records.
//
// Column positions are never hard-coded in the extractor: a Layout maps each
// semantic field to a zero-based column index, so a drift in the source
// sheet is a configuration change. The extractor produces records in row
// order with DisplayIdentity equal to CanonicalIdentity; duplicate
// characters are disambiguated afterwards by package identity.
package story
