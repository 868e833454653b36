package scan

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/contextpilot/pilot/ignore"
)

// Scanner walks a project tree, applying an ignore filter and an
// optional extension filter.
type Scanner struct {
	filter     *ignore.Filter
	extensions []string
}

// New creates a scanner over the given filter.
func New(filter *ignore.Filter) *Scanner {
	return &Scanner{filter: filter}
}

// WithExtensions restricts content embedding to files whose name ends
// in one of the given suffixes. Suffixes may be given with or without
// the leading dot. An empty list means no restriction.
func (s *Scanner) WithExtensions(exts ...string) *Scanner {
	s.extensions = make([]string, 0, len(exts))
	for _, ext := range exts {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extensions = append(s.extensions, ext)
	}
	return s
}

// Scan walks root depth-first and returns a snapshot of everything
// that passed the ignore rules. Excluded directories are pruned
// without being descended.
func (s *Scanner) Scan(root string) (*Snapshot, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("scan: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("scan: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan: root %s is not a directory", abs)
	}

	snap := &Snapshot{Root: abs}
	var tree strings.Builder
	tree.WriteString(".")

	if err := s.walk(abs, "", "", &tree, snap); err != nil {
		return nil, err
	}

	snap.Tree = tree.String()
	return snap, nil
}

// walk visits one directory level: directories before files, both
// sorted case-insensitively for deterministic output.
func (s *Scanner) walk(dir, rel, prefix string, tree *strings.Builder, snap *Snapshot) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan: read dir %s: %w", dir, err)
	}

	var dirs, files []os.DirEntry
	for _, e := range dirEntries {
		if e.IsDir() {
			dirs = append(dirs, e)
		} else {
			files = append(files, e)
		}
	}
	sortEntries(dirs)
	sortEntries(files)

	var visible []os.DirEntry
	for _, e := range dirs {
		if !s.filter.IsExcluded(childRel(rel, e.Name()), true) {
			visible = append(visible, e)
		}
	}
	for _, e := range files {
		if !s.filter.IsExcluded(childRel(rel, e.Name()), false) {
			visible = append(visible, e)
		}
	}

	for i, e := range visible {
		last := i == len(visible)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		tree.WriteString("\n" + prefix + connector + e.Name())

		childRelPath := childRel(rel, e.Name())
		if e.IsDir() {
			if err := s.walk(filepath.Join(dir, e.Name()), childRelPath, childPrefix, tree, snap); err != nil {
				return err
			}
			continue
		}
		snap.Entries = append(snap.Entries, s.fileEntry(filepath.Join(dir, e.Name()), childRelPath, snap))
	}
	return nil
}

// fileEntry builds the entry for one surviving file, reading its
// content when it is eligible for embedding.
func (s *Scanner) fileEntry(absPath, relPath string, snap *Snapshot) FileEntry {
	entry := FileEntry{RelPath: relPath, AbsPath: absPath}

	if info, err := os.Stat(absPath); err == nil {
		entry.Size = info.Size()
	}

	// Extension filtering applies after ignore filtering and only
	// gates content embedding; the file stays in the tree.
	if !s.matchesExtension(relPath) {
		return entry
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("unreadable file %s: %v", relPath, err))
		return entry
	}
	if !utf8.Valid(data) {
		// Binary: visible in the tree, no content embedded.
		return entry
	}

	entry.Content = string(data)
	entry.Included = true
	return entry
}

func (s *Scanner) matchesExtension(relPath string) bool {
	if len(s.extensions) == 0 {
		return true
	}
	name := path.Base(relPath)
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func childRel(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}

func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name()), strings.ToLower(entries[j].Name())
		if a == b {
			return entries[i].Name() < entries[j].Name()
		}
		return a < b
	})
}
