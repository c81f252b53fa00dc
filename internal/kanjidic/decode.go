package kanjidic

import (
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformed marks a document that cannot be parsed as XML at all.
var ErrMalformed = errors.New("malformed dictionary document")

type xmlCharacter struct {
	Literal      string        `xml:"literal"`
	RadValues    []xmlRadValue `xml:"radical>rad_value"`
	StrokeCounts []string      `xml:"misc>stroke_count"`
	Grade        string        `xml:"misc>grade"`
	Readings     []xmlReading  `xml:"reading_meaning>rmgroup>reading"`
	Meanings     []xmlMeaning  `xml:"reading_meaning>rmgroup>meaning"`
}

type xmlRadValue struct {
	Type  string `xml:"rad_type,attr"`
	Value string `xml:",chardata"`
}

type xmlReading struct {
	Type  string `xml:"r_type,attr"`
	Value string `xml:",chardata"`
}

type xmlMeaning struct {
	Lang  *string `xml:"m_lang,attr"`
	Value string  `xml:",chardata"`
}

func (c xmlCharacter) entry() Entry {
	e := Entry{Literal: c.Literal, Grade: c.Grade}
	for _, r := range c.RadValues {
		e.Radicals = append(e.Radicals, Radical{Type: r.Type, Value: r.Value})
	}
	for _, r := range c.Readings {
		e.Readings = append(e.Readings, Reading{Type: r.Type, Value: r.Value})
	}
	for _, m := range c.Meanings {
		e.Meanings = append(e.Meanings, Meaning{Lang: m.Lang, Value: m.Value})
	}
	if len(c.StrokeCounts) > 0 {
		e.StrokeCount = c.StrokeCounts[0]
	}
	return e
}

// Decode streams the <character> children of the document root to fn in
// document order. Syntax errors are reported as ErrMalformed; an error
// returned by fn stops decoding and is returned unchanged.
func Decode(r io.Reader, fn func(Entry) error) error {
	dec := xml.NewDecoder(r)
	depth := 0
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 && t.Name.Local == "character" {
				var c xmlCharacter
				if err := dec.DecodeElement(&c, &t); err != nil {
					return fmt.Errorf("%w: %w", ErrMalformed, err)
				}
				if err := fn(c.entry()); err != nil {
					return err
				}
				continue
			}
			if depth == 0 {
				sawRoot = true
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}

	if !sawRoot {
		return fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return nil
}

// ReadDictionary decodes r straight into a Dictionary without keeping the
// raw entries.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	err := Decode(r, func(e Entry) error {
		if a, ok := Reduce(e); ok {
			d.Add(a)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Open opens a dictionary file, transparently decompressing *.gz files.
// The caller must close the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &gzipFile{Reader: zr, file: f}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}

// Load reads the dictionary at path.
func Load(path string) (*Dictionary, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadDictionary(rc)
}
