package lexer

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/rivo/uniseg"

	"lox/internal/source"
)

// Cursor is a forward-only position in a file. It advances by extended
// grapheme cluster (a user-perceived character, possibly several bytes),
// never by raw byte, so multi-byte input is classified as one unit.
// Offsets stay in bytes so spans slice the original content exactly.
type Cursor struct {
	File  *source.File
	Off   uint32
	limit uint32
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		limit: limit,
	}
}

// EOF reports whether the cursor has consumed the whole file.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek returns the next grapheme cluster without consuming it, or "" at EOF.
func (c *Cursor) Peek() string {
	if c.EOF() {
		return ""
	}
	g, _, _, _ := uniseg.FirstGraphemeCluster(c.File.Content[c.Off:], -1)
	return string(g)
}

// Peek2 returns the next two grapheme clusters without consuming them.
// Either may be "" when the input runs out first.
func (c *Cursor) Peek2() (g0, g1 string) {
	if c.EOF() {
		return "", ""
	}
	first, rest, _, _ := uniseg.FirstGraphemeCluster(c.File.Content[c.Off:], -1)
	if len(rest) == 0 {
		return string(first), ""
	}
	second, _, _, _ := uniseg.FirstGraphemeCluster(rest, -1)
	return string(first), string(second)
}

// Bump consumes the next grapheme cluster and returns it, or "" at EOF.
func (c *Cursor) Bump() string {
	if c.EOF() {
		return ""
	}
	g, _, _, _ := uniseg.FirstGraphemeCluster(c.File.Content[c.Off:], -1)
	size, err := safecast.Conv[uint32](len(g))
	if err != nil {
		panic(fmt.Errorf("grapheme size overflow: %w", err))
	}
	c.Off += size
	return string(g)
}

// Eat consumes the next grapheme cluster if it equals g.
func (c *Cursor) Eat(g string) bool {
	if c.Peek() != g {
		return false
	}
	c.Bump()
	return true
}

// Mark is a bookmark for building the span of the fragment being read.
type Mark uint32

// Mark saves the current cursor position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span of everything consumed since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
