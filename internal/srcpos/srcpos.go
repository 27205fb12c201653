// Package srcpos tracks line/column positions within a batch input file, so
// the grisu2fmt CLI can report which line a malformed numeric literal came
// from instead of just its byte offset.
package srcpos

import (
	"fmt"
	"sort"
	"strings"
)

// Position is a 1-based line and column.
type Position struct {
	Line, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// File indexes the newlines of a source text on demand, so that repeated
// Position lookups at increasing offsets amortize to a single linear scan.
type File struct {
	name string
	src  string

	lineOffsets       []int
	lastScannedOffset int
}

func NewFile(name, src string) *File {
	return &File{
		name: name,
		src:  src,
	}
}

func (f *File) Name() string { return f.name }

// Position returns the line and column of the byte at offset.
func (f *File) Position(offset int) Position {
	var line int
	if offset > f.lastScannedOffset {
		line = f.scanTo(offset)
	} else {
		line = sort.Search(len(f.lineOffsets), func(x int) bool { return f.lineOffsets[x] > offset }) - 1
	}

	var lineStart int
	if line >= 0 {
		lineStart = f.lineOffsets[line]
	}
	return Position{
		Line: line + 2,
		Col:  offset - lineStart + 1,
	}
}

func (f *File) scanTo(offset int) int {
	o := f.lastScannedOffset
	for o < offset {
		p := strings.Index(f.src[o:], "\n")
		if p == -1 {
			f.lastScannedOffset = len(f.src)
			return len(f.lineOffsets) - 1
		}
		o = o + p + 1
		f.lineOffsets = append(f.lineOffsets, o)
	}
	f.lastScannedOffset = o

	if o == offset {
		return len(f.lineOffsets) - 1
	}

	return len(f.lineOffsets) - 2
}
