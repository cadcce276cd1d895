package fstree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultProgressEvery is the default number of scanned entries between
// progress callbacks.
const DefaultProgressEvery = 5000

// Diagnostics receives non-fatal problems encountered during a scan.
// Entries that cannot be read are reported here and degrade to zero-size
// placeholders instead of aborting the scan.
type Diagnostics interface {
	// Issue reports that path could not be fully read; err is the
	// underlying OS error.
	Issue(path string, err error)
}

// ScanOptions configures a scan.
type ScanOptions struct {
	// Diags receives per-entry errors. May be nil.
	Diags Diagnostics
	// Progress is invoked periodically with the cumulative number of
	// entries scanned and the path most recently visited. May be nil.
	Progress func(entries int64, path string)
	// ProgressEvery is the number of entries between Progress calls
	// (default DefaultProgressEvery).
	ProgressEvery int64
}

// Scan builds a size-annotated tree rooted at root.
//
// Each directory's size is the sum of its children's sizes plus the link
// sizes of symlinks directly inside it; symlinks are never descended and
// never become nodes. Unreadable entries are reported to opts.Diags and
// count as size 0. The only fatal conditions are a root that does not
// exist or is not a directory.
func Scan(root string, opts ScanOptions) (*Dir, error) {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = DefaultProgressEvery
	}

	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", root)
	}

	s := &scanner{opts: opts}

	return s.scanDir(root, filepath.Base(root)), nil
}

// scanner carries per-scan state so concurrent scans never share
// counters.
type scanner struct {
	opts    ScanOptions
	scanned int64
}

// bump counts one scanned entry and fires the progress callback on the
// configured cadence.
func (s *scanner) bump(path string) {
	s.scanned++

	if s.opts.Progress != nil && s.scanned%s.opts.ProgressEvery == 0 {
		s.opts.Progress(s.scanned, path)
	}
}

// issue forwards a non-fatal error to the diagnostic sink, if any.
func (s *scanner) issue(path string, err error) {
	if s.opts.Diags != nil {
		s.opts.Diags.Issue(path, err)
	}
}

// scanFile stats one regular (or other non-directory, non-symlink) entry.
// A failed stat degrades to size 0.
func (s *scanner) scanFile(path string, ent fs.DirEntry) *File {
	var size int64

	if info, err := ent.Info(); err != nil {
		s.issue(path, err)
	} else {
		size = info.Size()
	}

	s.bump(path)

	return NewFile(ent.Name(), size)
}

// scanDir recursively builds the subtree at path.
//
//nolint:varnamelen // ent is standard for DirEntry
func (s *scanner) scanDir(path, name string) *Dir {
	defer s.bump(path)

	// Windows junctions enumerate as directories rather than links, so
	// the entry's own identity must match its resolved identity before
	// descending; a mismatch means a reparse point redirecting to a tree
	// mounted elsewhere. Treated as an opaque leaf, not an error.
	lst, err := os.Lstat(path)
	if err != nil {
		s.issue(path, err)

		return NewDir(name, 0, nil)
	}

	full, err := os.Stat(path)
	if err != nil {
		s.issue(path, err)

		return NewDir(name, 0, nil)
	}

	if !os.SameFile(lst, full) {
		return NewDir(name, 0, nil)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		s.issue(path, err)

		return NewDir(name, 0, nil)
	}

	var (
		size     int64
		children []Node
	)

	for _, ent := range entries {
		childPath := filepath.Join(path, ent.Name())

		switch {
		case ent.Type()&fs.ModeSymlink != 0:
			// Symlinks contribute their own link size, whatever they
			// point at.
			info, err := ent.Info()
			if err != nil {
				s.issue(childPath, err)

				continue
			}

			size += info.Size()
		case ent.IsDir():
			child := s.scanDir(childPath, ent.Name())
			children = append(children, child)
			size += child.Size()
		default:
			child := s.scanFile(childPath, ent)
			children = append(children, child)
			size += child.Size()
		}
	}

	return NewDir(name, size, children)
}
