package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	var nilString *string
	padded := "  日  "

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, ""},
		{"nil string pointer", nilString, ""},
		{"string pointer", &padded, "日"},
		{"trims", "  story text \n", "story text"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"empty", "", ""},
		{"crlf", "two\r\nlines", "two\nlines"},
		{"lone cr", "a\rb\r\n", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.value))
		})
	}
}

func TestExtractFrameNumber(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"the sun [8] rises", "8"},
		{"no frame", ""},
		{"", ""},
		{"[12] first [34] second", "12"},
		{"[x] then [7]", "7"},
		{"unclosed [9", ""},
		{"full width ［８］", "8"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFrameNumber(tt.text))
		})
	}
}

func TestIsIdeograph(t *testing.T) {
	assert.True(t, IsIdeograph("日"))
	assert.True(t, IsIdeograph("㐀"), "extension A lower bound")
	assert.True(t, IsIdeograph("𠀀"), "extension B lower bound")
	assert.False(t, IsIdeograph("A"))
	assert.False(t, IsIdeograph(""))
	assert.False(t, IsIdeograph("ひ"))
	assert.False(t, IsIdeograph("日月"), "more than one character")
	assert.False(t, IsIdeograph("日①"))
}

func TestText(t *testing.T) {
	// "が" spelled as か + combining voiced mark.
	assert.Equal(t, "\u304c", Text(" \u304b\u3099 "))
	assert.Equal(t, "\u3042\n\u3044", Text("\u3042\r\n\u3044"))
}

func TestIsIdeograph_CompatibilityIdeograph(t *testing.T) {
	// U+F900 is a compatibility ideograph; NFC maps it to U+8C48.
	assert.False(t, IsIdeograph(Clean("\uF900")))
	assert.Equal(t, "\uF900", Clean(" \uF900 "))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1", Number("1"))
	assert.Equal(t, "1", Number("1.0"))
	assert.Equal(t, "2.5", Number(" 2.5 "))
	assert.Equal(t, "", Number("  "))
	assert.Equal(t, "n/a", Number("n/a"))
	assert.Equal(t, "-3", Number("-3.0"))
	assert.Equal(t, "120", Number("1.2E+2"))
	assert.Equal(t, "0.5", Number(".5"))
}

func TestNumber_KeepsNonDecimalText(t *testing.T) {
	for _, s := range []string{"inf", "+Inf", "NaN", "0x1p4", "0x10", "1_000", "1e400", "1.2.3"} {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, Number(s))
		})
	}
	assert.Equal(t, "12345678901234567890", Number("12345678901234567890"))
}
