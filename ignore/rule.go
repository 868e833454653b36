package ignore

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Rule is a single parsed ignore pattern.
type Rule struct {
	// Pattern is the normalized glob pattern, without polarity or
	// directory markers.
	Pattern string

	// Negated re-includes matching paths instead of excluding them.
	Negated bool

	// Anchored patterns match relative to the rule file's directory.
	// Unanchored patterns match the basename at any depth.
	Anchored bool

	// DirOnly restricts the rule to directories (trailing slash).
	DirOnly bool

	// Order is the rule's position in the combined rule list. Later
	// rules override earlier ones on the same path.
	Order int
}

// ParseRule parses one line of gitignore syntax.
//
// Blank lines and comments yield (nil, nil). A syntactically invalid
// glob yields an error; callers are expected to skip the rule and keep
// going.
func ParseRule(line string, order int) (*Rule, error) {
	// Trailing spaces are ignored unless escaped.
	if !strings.HasSuffix(line, "\\ ") {
		line = strings.TrimRight(line, " ")
	}
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	r := &Rule{Order: order}

	if strings.HasPrefix(line, "!") {
		r.Negated = true
		line = line[1:]
	} else if strings.HasPrefix(line, `\!`) || strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") {
		r.DirOnly = true
		line = strings.TrimRight(line, "/")
	}

	if strings.HasPrefix(line, "/") {
		r.Anchored = true
		line = strings.TrimPrefix(line, "/")
	} else if strings.Contains(line, "/") && !strings.HasPrefix(line, "**") {
		// A slash anywhere in the pattern anchors it to the root,
		// unless the pattern starts with ** (matches at any depth).
		r.Anchored = true
	}

	if line == "" {
		return nil, fmt.Errorf("ignore: empty pattern %q", line)
	}
	if !doublestar.ValidatePattern(line) {
		return nil, fmt.Errorf("ignore: invalid pattern %q", line)
	}

	r.Pattern = line
	return r, nil
}

// Match reports whether the rule matches the given slash-separated
// relative path. DirOnly rules never match files.
func (r *Rule) Match(relPath string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return false
	}

	target := relPath
	if !r.Anchored && !strings.Contains(r.Pattern, "/") {
		target = path.Base(relPath)
	}

	// Pattern validity is checked at parse time, so the only error
	// doublestar can return here never fires.
	ok, err := doublestar.Match(r.Pattern, target)
	return err == nil && ok
}
