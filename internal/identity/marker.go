// Package identity assigns unique display identities to story records whose
// canonical character repeats.
package identity

import "strconv"

const (
	circledOne   = '①'
	circledCount = 20
)

// Marker returns the disambiguating suffix for index k (k >= 0).
//
// Indices 0-19 map to the circled numbers ① through ⑳; from 20 on the
// marker is the parenthesized ordinal "(k+1)". The mapping is injective:
// circled glyphs and parenthesized digits never coincide.
func Marker(k int) string {
	if k < 0 {
		panic("identity: negative marker index " + strconv.Itoa(k))
	}
	if k < circledCount {
		return string(rune(circledOne + k))
	}
	return "(" + strconv.Itoa(k+1) + ")"
}
