package scan

// FileEntry is one file that survived ignore filtering.
type FileEntry struct {
	// RelPath is the slash-separated path relative to the scan root.
	RelPath string

	// AbsPath is the absolute path on disk.
	AbsPath string

	// Size is the file size in bytes.
	Size int64

	// Content is the decoded file text. Empty for binary, unreadable,
	// or extension-filtered files.
	Content string

	// Included marks the entry as selected for content embedding.
	// Entries with Included false still appear in the tree rendering.
	Included bool

	// Tokens is the content token count. It is computed lazily by the
	// budget analyzer and only for included entries.
	Tokens int

	// Approx is set when Tokens came from the character-length
	// fallback rather than the real counting backend.
	Approx bool
}

// Snapshot is the result of one scan. It is constructed per invocation
// and never mutated afterwards except for token annotation by the
// budget analyzer.
type Snapshot struct {
	// Root is the absolute scan root.
	Root string

	// Entries lists surviving files in tree order: depth-first,
	// directories before files, lexicographic within each group.
	Entries []FileEntry

	// Tree is the ASCII rendering of the full included hierarchy.
	Tree string

	// TotalTokens is the sum of included entry tokens plus the tree
	// rendering cost. Set by the budget analyzer.
	TotalTokens int

	// Warnings collects non-fatal scan problems (unreadable files).
	Warnings []string
}

// IncludedEntries returns the entries selected for content embedding,
// in snapshot order.
func (s *Snapshot) IncludedEntries() []FileEntry {
	var included []FileEntry
	for _, e := range s.Entries {
		if e.Included {
			included = append(included, e)
		}
	}
	return included
}
