// Package loc maps compact source offsets to paths, lines, and columns.
package loc

import (
	"fmt"
	"sort"
)

// Loc is a span of byte offsets into the concatenation of a set of Files.
// Offsets start at 1; the end is exclusive.
// The zero value indicates no location.
type Loc [2]int

// A Locer has a location.
type Locer interface {
	Loc() Loc
}

// Join returns the smallest Loc that covers both a and b.
// If either is the zero Loc, the other is returned.
func Join(a, b Loc) Loc {
	switch {
	case (a == Loc{}):
		return b
	case (b == Loc{}):
		return a
	}
	if b[0] < a[0] {
		a[0] = b[0]
	}
	if b[1] > a[1] {
		a[1] = b[1]
	}
	return a
}

// A Location identifies a string in a file.
// Lines and columns start at 1 and are inclusive.
// The zero value indicates no location.
type Location struct {
	Path string
	Line [2]int
	Col  [2]int
}

func (l Location) String() string {
	if (l == Location{}) {
		return ""
	}
	if l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1] {
		return fmt.Sprintf("%s:%d.%d", l.Path, l.Line[0], l.Col[0])
	}
	return fmt.Sprintf("%s:%d.%d-%d.%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
}

// File describes a file by its path, size, and newline byte offsets.
type File interface {
	Path() string
	Len() int
	NewLines() []int
}

// Files tracks locations within a set of files.
// Each file's offsets follow those of the files before it.
type Files []File

// Len returns the total length of all files.
func (fs Files) Len() int {
	var n int
	for _, f := range fs {
		n += f.Len()
	}
	return n
}

// Location returns the Location of l.
// The zero Loc has the zero Location.
// Location panics if l is out of range or spans more than one file.
func (fs Files) Location(l Loc) Location {
	switch {
	case (l == Loc{}):
		return Location{}
	case len(fs) == 0:
		panic("no files")
	case l[0] < 1 || l[0] > l[1] || l[1]-1 > fs.Len():
		panic(fmt.Sprintf("bad Loc %v", l))
	}
	last := l[1] - 1
	if last > l[0]-1 {
		last--
	}
	p0, l0, c0 := fs.position(l[0] - 1)
	p1, l1, c1 := fs.position(last)
	if p0 != p1 {
		panic(fmt.Sprintf("multi-file Loc %v: %s and %s", l, p0, p1))
	}
	return Location{Path: p0, Line: [2]int{l0, l1}, Col: [2]int{c0, c1}}
}

// position returns the path, line, and column of the 0-based offset q.
func (fs Files) position(q int) (string, int, int) {
	var f File
	for i := range fs {
		f = fs[i]
		if q < f.Len() || i == len(fs)-1 {
			break
		}
		q -= f.Len()
	}
	nls := f.NewLines()
	line := sort.SearchInts(nls, q)
	start := 0
	if line > 0 {
		start = nls[line-1] + 1
	}
	return f.Path(), line + 1, q - start + 1
}
