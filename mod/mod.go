// Package mod finds call sheets in directory trees.
package mod

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// Ext is the file extension of call sheets.
const Ext = ".sheet"

// A Dir is a directory of call sheets.
type Dir struct {
	Path    string
	Sheets  []string
	Subdirs []*Dir
}

// Load returns the Dir at path and all of its subdirectories.
// Hidden files and directories, those beginning with ".", are skipped.
func Load(path string) (*Dir, error) {
	ents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	dir := &Dir{Path: path}
	for _, ent := range ents {
		if strings.HasPrefix(ent.Name(), ".") {
			continue
		}
		entPath := filepath.Join(path, ent.Name())
		switch {
		case ent.IsDir():
			sub, err := Load(entPath)
			if err != nil {
				return nil, err
			}
			dir.Subdirs = append(dir.Subdirs, sub)
		case filepath.Ext(ent.Name()) == Ext:
			dir.Sheets = append(dir.Sheets, entPath)
		}
	}
	sort.Strings(dir.Sheets)
	sort.Slice(dir.Subdirs, func(i, j int) bool { return dir.Subdirs[i].Path < dir.Subdirs[j].Path })
	return dir, nil
}

// AllSheets returns the sheets of d followed by those of its subdirectories.
func (d *Dir) AllSheets() []string {
	sheets := append([]string(nil), d.Sheets...)
	for _, sub := range d.Subdirs {
		sheets = append(sheets, sub.AllSheets()...)
	}
	return sheets
}

// Sources returns the sheets named by paths.
// A path to a file names that file, whatever its extension.
// A path to a directory names all sheets in its tree.
// Each sheet is returned once, in the order first named.
func Sources(paths []string) ([]string, error) {
	var srcs []string
	seen := set.New[string](len(paths))
	add := func(p string) {
		if seen.Insert(filepath.Clean(p)) {
			srcs = append(srcs, p)
		}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		dir, err := Load(p)
		if err != nil {
			return nil, err
		}
		sheets := dir.AllSheets()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: no %s files", p, Ext)
		}
		for _, s := range sheets {
			add(s)
		}
	}
	return srcs, nil
}
