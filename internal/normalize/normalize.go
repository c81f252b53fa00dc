package normalize

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// ideographs covers the CJK Unified Ideographs block plus Extensions A and B.
var ideographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1},
	},
}

var framePattern = regexp.MustCompile(`\[([0-9]+)\]`)

// decimalPattern accepts plain decimal notation with an optional exponent,
// as spreadsheets render numeric cells.
var decimalPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

// lineBreaks folds CRLF and lone CR to LF. CSV readers do not preserve CR
// inside quoted fields.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// maxExactInt is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactInt = 1 << 53

func trim(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

// Clean returns the trimmed string form of value, or "" when value is nil.
// Line breaks are folded to "\n".
func Clean(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return trim(v)
	case *string:
		if v == nil {
			return ""
		}
		return trim(*v)
	case fmt.Stringer:
		if isNilPointer(value) {
			return ""
		}
		return trim(v.String())
	}
	if isNilPointer(value) {
		return ""
	}
	return trim(fmt.Sprint(value))
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Text is Clean for strings followed by NFC normalization. Use it for
// readings and other kana text; identity cells go through Clean so that
// compatibility ideographs are not folded into unified ones.
func Text(s string) string {
	return norm.NFC.String(trim(s))
}

// Number returns the canonical text of a spreadsheet numeric cell.
// Integral floats lose their fractional part ("1.0" -> "1"); anything that
// is not plain decimal notation ("inf", "0x10", "n/a") or is too large to
// hold exactly is returned trimmed.
func Number(s string) string {
	s = trim(s)
	if s == "" || !decimalPattern.MatchString(s) {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) > maxExactInt {
		return s
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ExtractFrameNumber returns the digits of the first "[<digits>]" token in
// text, or "" when there is none. Full-width brackets and digits are folded
// to ASCII before matching.
func ExtractFrameNumber(text string) string {
	if text == "" {
		return ""
	}
	m := framePattern.FindStringSubmatch(width.Fold.String(text))
	if m == nil {
		return ""
	}
	return m[1]
}

// IsIdeograph reports whether s is exactly one CJK ideograph.
func IsIdeograph(s string) bool {
	runes := []rune(s)
	if len(runes) != 1 {
		return false
	}
	return unicode.Is(ideographs, runes[0])
}
