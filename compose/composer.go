package compose

import (
	"fmt"
	"strings"

	"github.com/contextpilot/pilot/scan"
	"github.com/contextpilot/pilot/template"
)

// DefaultProgramName is the command name embedded in the discovery
// file-request template.
const DefaultProgramName = "pilot"

// RequestCommand returns the literal, copy-pasteable file-request
// command template for the discovery preamble. The exact shape matters:
// the user pastes the assistant's instantiation of it straight back
// into a shell.
func RequestCommand(programName string) string {
	return programName + " files path/to/file.py"
}

// File is one explicitly supplied file for delivery documents.
type File struct {
	RelPath string
	Content string
}

// Request carries the inputs for one composition. Which fields are
// required depends on the kind.
type Request struct {
	// Task is the user's task description (full-context, discovery).
	Task string

	// Snapshot provides the tree and file contents (full-context,
	// discovery).
	Snapshot *scan.Snapshot

	// Files are explicitly supplied files (file-delivery).
	Files []File

	// Diff is literal git diff text (commit-message).
	Diff string
}

type builderFunc func(Request) (*Document, error)

// Composer renders prompt documents. Kinds dispatch through an
// explicit builder table.
type Composer struct {
	engine   *template.Engine
	program  string
	builders map[Kind]builderFunc
}

// New creates a composer with the default program name.
func New() *Composer {
	c := &Composer{
		engine:  template.NewEngine(),
		program: DefaultProgramName,
	}
	c.builders = map[Kind]builderFunc{
		KindFullContext:   c.buildFullContext,
		KindDiscovery:     c.buildDiscovery,
		KindFileDelivery:  c.buildFileDelivery,
		KindCommitMessage: c.buildCommitMessage,
	}
	return c
}

// WithProgramName overrides the program name used in the discovery
// request template.
func (c *Composer) WithProgramName(name string) *Composer {
	if name != "" {
		c.program = name
	}
	return c
}

// Compose renders a document of the given kind. Composition is
// deterministic: the same kind and request yield byte-identical
// output.
func (c *Composer) Compose(kind Kind, req Request) (*Document, error) {
	builder, ok := c.builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	return builder(req)
}

func (c *Composer) buildFullContext(req Request) (*Document, error) {
	if req.Snapshot == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoSnapshot, KindFullContext)
	}
	if strings.TrimSpace(req.Task) == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoTask, KindFullContext)
	}

	preamble, err := c.engine.Render(fullContextPreamble, nil)
	if err != nil {
		return nil, err
	}

	sections := make([]string, 0, len(req.Snapshot.Entries))
	for _, entry := range req.Snapshot.IncludedEntries() {
		sections = append(sections, fileSection(entry.RelPath, entry.Content))
	}

	return &Document{
		Kind: KindFullContext,
		Phases: []Phase{
			{Name: "preamble", Text: preamble},
			{Name: "task", Text: taskSection(req.Task)},
			{Name: "structure", Text: treeSection(req.Snapshot.Tree)},
			{Name: "files", Text: "# File Contents\n\n" + strings.Join(sections, "\n\n")},
		},
	}, nil
}

func (c *Composer) buildDiscovery(req Request) (*Document, error) {
	if req.Snapshot == nil {
		return nil, fmt.Errorf("%w for %s", ErrNoSnapshot, KindDiscovery)
	}
	if strings.TrimSpace(req.Task) == "" {
		return nil, fmt.Errorf("%w for %s", ErrNoTask, KindDiscovery)
	}

	preamble, err := c.engine.Render(discoveryPreamble, map[string]any{
		"request_command": RequestCommand(c.program),
	})
	if err != nil {
		return nil, err
	}

	return &Document{
		Kind: KindDiscovery,
		Phases: []Phase{
			{Name: "preamble", Text: preamble},
			{Name: "task", Text: taskSection(req.Task)},
			{Name: "structure", Text: treeSection(req.Snapshot.Tree)},
		},
	}, nil
}

func (c *Composer) buildFileDelivery(req Request) (*Document, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoFiles, KindFileDelivery)
	}

	phases := make([]Phase, 0, len(req.Files)+1)
	phases = append(phases, Phase{Name: "preamble", Text: fileDeliveryPreamble})
	for _, f := range req.Files {
		phases = append(phases, Phase{Name: f.RelPath, Text: fileSection(f.RelPath, f.Content)})
	}

	return &Document{Kind: KindFileDelivery, Phases: phases}, nil
}

func (c *Composer) buildCommitMessage(req Request) (*Document, error) {
	if strings.TrimSpace(req.Diff) == "" {
		return nil, fmt.Errorf("%w for %s", ErrEmptyDiff, KindCommitMessage)
	}

	return &Document{
		Kind: KindCommitMessage,
		Phases: []Phase{
			{Name: "preamble", Text: commitMessagePreamble},
			{Name: "diff", Text: "## Full Git Diff\n```diff\n" + strings.TrimRight(req.Diff, "\n") + "\n```"},
		},
	}, nil
}

// fileSection renders one file with its path header. The header line
// is a fixed marker plus the relative path, so it can never be
// mistaken for file content.
func fileSection(relPath, content string) string {
	return "## `" + relPath + "`:\n```\n" + strings.TrimSpace(content) + "\n```"
}

func taskSection(task string) string {
	return "# Your Task\n" + strings.TrimSpace(task)
}

func treeSection(tree string) string {
	return "# Project Structure\n```\n" + tree + "\n```"
}
