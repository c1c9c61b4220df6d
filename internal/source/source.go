// Package source models named byte buffers and the byte-range bookkeeping
// every later stage (lexer, parser, diagnostics) anchors to.
package source

import (
	"os"
	"sync"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source is a named, immutable byte buffer. Identity is by address: two
// ranges only compare equal if they point at the same *Source value.
type Source struct {
	name     string
	contents []byte
}

// New wraps already-loaded bytes under name. LoadFile is the variant that
// reads from disk; the CLI driver (cmd/main.go) reads stdin itself and
// passes the bytes here.
func New(name string, contents []byte) *Source {
	return &Source{name: name, contents: contents}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Contents() []byte { return s.contents }

func (s *Source) Size() uint32 { return uint32(len(s.contents)) }

// At returns the byte at index, or 0 if index is out of range.
func (s *Source) At(index uint32) byte {
	if s == nil || index >= uint32(len(s.contents)) {
		return 0
	}
	return s.contents[index]
}

// LoadFile reads path and wraps its contents in a Source, stripping a
// leading UTF-8 byte-order mark if one is present so a file saved by an
// editor that writes one lexes identically to one that doesn't.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, DecodeUTF8(data)), nil
}

// DecodeUTF8 strips a leading UTF-8 BOM from data if present, leaving
// data unchanged otherwise. Used by LoadFile and by callers reading a
// source buffer from a stream (stdin) rather than a named file.
func DecodeUTF8(data []byte) []byte {
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return data
	}
	return out
}

var (
	invalidOnce   sync.Once
	invalidSource *Source
)

// Invalid returns the process-wide sentinel Source used by InvalidRange and
// by any Range whose owning Source was never set.
func Invalid() *Source {
	invalidOnce.Do(func() {
		invalidSource = &Source{name: "<invalid>"}
	})
	return invalidSource
}
