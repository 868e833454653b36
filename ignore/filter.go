package ignore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPatterns is the built-in exclude set applied before any
// project rules: version-control metadata, virtual environments,
// bytecode caches, dependency directories, and build output.
var DefaultPatterns = []string{
	".git/",
	".hg/",
	".svn/",
	"__pycache__/",
	".pytest_cache/",
	".ruff_cache/",
	".mypy_cache/",
	"venv/",
	".venv/",
	"node_modules/",
	".eggs/",
	"*.egg-info/",
	"build/",
	"dist/",
	"target/",
	"*.pyc",
	".DS_Store",
}

// IgnoreFileName is the project ignore file read by LoadProjectFile.
const IgnoreFileName = ".gitignore"

// Filter evaluates an ordered ignore rule list against candidate paths.
// Rules added later override earlier matches on the same path.
type Filter struct {
	rules    []*Rule
	warnings []string
}

// New creates a filter preloaded with DefaultPatterns.
func New() *Filter {
	f := &Filter{}
	f.Add(DefaultPatterns...)
	return f
}

// NewEmpty creates a filter with no rules at all.
func NewEmpty() *Filter {
	return &Filter{}
}

// Add appends patterns to the rule list. Malformed patterns are skipped
// with a recorded warning; they never abort filtering.
func (f *Filter) Add(patterns ...string) {
	for _, p := range patterns {
		rule, err := ParseRule(p, len(f.rules))
		if err != nil {
			f.warnings = append(f.warnings, err.Error())
			continue
		}
		if rule == nil {
			continue
		}
		f.rules = append(f.rules, rule)
	}
}

// LoadProjectFile reads the project's ignore file under root and
// appends its patterns. A missing file is not an error.
func (f *Filter) LoadProjectFile(root string) error {
	file, err := os.Open(filepath.Join(root, IgnoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("ignore: open %s: %w", IgnoreFileName, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		f.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("ignore: read %s: %w", IgnoreFileName, err)
	}
	return nil
}

// IsExcluded reports whether the slash-separated relative path should
// be excluded. An excluded ancestor directory excludes the whole
// subtree; negated rules inside it cannot re-include descendants.
func (f *Filter) IsExcluded(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	if relPath == "." || relPath == "" {
		return false
	}

	parts := strings.Split(relPath, "/")
	for i := 1; i < len(parts); i++ {
		if f.matchLast(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	return f.matchLast(relPath, isDir)
}

// matchLast applies every rule in order; the last matching rule's
// polarity wins. No match means not excluded.
func (f *Filter) matchLast(relPath string, isDir bool) bool {
	excluded := false
	for _, rule := range f.rules {
		if rule.Match(relPath, isDir) {
			excluded = !rule.Negated
		}
	}
	return excluded
}

// Warnings returns messages for patterns that were skipped as
// malformed.
func (f *Filter) Warnings() []string {
	return f.warnings
}
