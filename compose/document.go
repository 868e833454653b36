package compose

import "strings"

// Kind selects the prompt document shape.
type Kind int

const (
	// KindFullContext embeds the whole project: tree and file contents.
	KindFullContext Kind = iota

	// KindDiscovery sends the tree only and instructs the assistant to
	// request files via the literal command template.
	KindDiscovery

	// KindFileDelivery carries the contents of explicitly requested files.
	KindFileDelivery

	// KindCommitMessage wraps a git diff with commit instructions.
	KindCommitMessage
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFullContext:
		return "full-context"
	case KindDiscovery:
		return "discovery"
	case KindFileDelivery:
		return "file-delivery"
	case KindCommitMessage:
		return "commit-message"
	default:
		return "unknown"
	}
}

// PhaseSeparator joins phases in the rendered document.
const PhaseSeparator = "\n\n"

// Phase is one named text block of a document.
type Phase struct {
	Name string
	Text string
}

// Document is an ordered sequence of phases. Phase order is fixed per
// kind and never reordered at render time.
type Document struct {
	Kind   Kind
	Phases []Phase
}

// Render concatenates the phases with the stable separator.
func (d *Document) Render() string {
	texts := make([]string, len(d.Phases))
	for i, p := range d.Phases {
		texts[i] = p.Text
	}
	return strings.Join(texts, PhaseSeparator)
}

// Phase returns the named phase's text and whether it exists.
func (d *Document) Phase(name string) (string, bool) {
	for _, p := range d.Phases {
		if p.Name == name {
			return p.Text, true
		}
	}
	return "", false
}
