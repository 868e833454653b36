package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/contextpilot/pilot/compose"
	"github.com/contextpilot/pilot/config"
	"github.com/contextpilot/pilot/gitdiff"
	"github.com/contextpilot/pilot/ignore"
	"github.com/contextpilot/pilot/scan"
	"github.com/contextpilot/pilot/tokens"
	"github.com/contextpilot/pilot/truncate"
)

// strategyKinds maps a budget verdict to the document kind it selects.
var strategyKinds = map[tokens.Strategy]compose.Kind{
	tokens.StrategyFull:      compose.KindFullContext,
	tokens.StrategyDiscovery: compose.KindDiscovery,
}

// Options configures an Engine.
type Options struct {
	// Root is the project root. Empty means the current directory.
	Root string

	// Config holds resolved tunables. The zero value gets defaults.
	Config config.Config

	// CountFunc overrides the token counting backend. Nil selects the
	// shared tiktoken encoding.
	CountFunc tokens.CountFunc
}

// Result is the outcome of one engine operation.
type Result struct {
	// Document is the composed prompt document.
	Document *compose.Document

	// Text is the rendered document.
	Text string

	// Snapshot is the scanned project, when the operation scanned one.
	Snapshot *scan.Snapshot

	// Verdict is the budget decision, when one was made.
	Verdict *tokens.Verdict

	// Warnings collects non-fatal problems: malformed ignore
	// patterns and unreadable files.
	Warnings []string
}

// Engine runs the context assembly pipeline. It is constructed per
// process but holds no per-invocation state; every operation is
// driven entirely by its inputs.
type Engine struct {
	root     string
	cfg      config.Config
	analyzer *tokens.Analyzer
	composer *compose.Composer
}

// New creates an engine for the given root.
func New(opts Options) (*Engine, error) {
	root := opts.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("engine: resolve root: %w", err)
	}

	cfg := opts.Config
	if cfg.Output == "" {
		cfg = config.Default()
	}

	countFn := opts.CountFunc
	if countFn == nil {
		countFn = tokens.TiktokenCount
	}

	return &Engine{
		root:     abs,
		cfg:      cfg,
		analyzer: tokens.NewAnalyzerWithCountFunc(countFn),
		composer: compose.New().WithProgramName(cfg.ProgramName),
	}, nil
}

// Root returns the engine's absolute project root.
func (e *Engine) Root() string {
	return e.root
}

// AssistOptions tunes a single Assist invocation.
type AssistOptions struct {
	// Extensions overrides the configured suffix filter.
	Extensions []string

	// Threshold overrides the configured token budget.
	Threshold int

	// ExtraIgnore patterns apply at the highest priority.
	ExtraIgnore []string
}

// Assist scans the project, classifies it against the token budget,
// and composes either a full-context or a discovery prompt.
func (e *Engine) Assist(task string, opts AssistOptions) (*Result, error) {
	filter, err := e.buildFilter(opts.ExtraIgnore)
	if err != nil {
		return nil, err
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = e.cfg.Extensions
	}

	snap, err := scan.New(filter).WithExtensions(exts...).Scan(e.root)
	if err != nil {
		return nil, err
	}
	if len(snap.IncludedEntries()) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrEmptyProject, e.root)
	}

	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = e.cfg.EffectiveThreshold()
	}
	verdict, err := e.analyzer.Analyze(snap, threshold)
	if err != nil {
		return nil, err
	}

	doc, err := e.composer.Compose(strategyKinds[verdict.Strategy], compose.Request{
		Task:     task,
		Snapshot: snap,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Document: doc,
		Text:     doc.Render(),
		Snapshot: snap,
		Verdict:  verdict,
		Warnings: append(filter.Warnings(), snap.Warnings...),
	}, nil
}

// DeliverFiles composes a file-delivery document from explicit paths.
// The paths need not have been part of any prior snapshot; relative
// paths resolve against the engine root. Any missing or unreadable
// path is a hard failure naming that path.
func (e *Engine) DeliverFiles(paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, compose.ErrNoFiles
	}

	files := make([]compose.File, 0, len(paths))
	for _, p := range paths {
		abs := p
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(e.root, p)
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, p)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: %s (not valid text)", ErrMissingFile, p)
		}
		files = append(files, compose.File{
			RelPath: filepath.ToSlash(p),
			Content: string(data),
		})
	}

	doc, err := e.composer.Compose(compose.KindFileDelivery, compose.Request{Files: files})
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Text: doc.Render()}, nil
}

// CommitOptions tunes a CommitMessage invocation.
type CommitOptions struct {
	// StagedOnly restricts the diff to the index.
	StagedOnly bool

	// MaxDiffTokens, when positive, caps the diff with middle
	// truncation before composing.
	MaxDiffTokens int
}

// CommitMessage retrieves the git diff and wraps it in a
// commit-suggestion prompt. Diff retrieval failures propagate; an
// empty diff is ErrNoChanges.
func (e *Engine) CommitMessage(opts CommitOptions) (*Result, error) {
	diff, err := gitdiff.Diff(e.root, opts.StagedOnly)
	if err != nil {
		return nil, err
	}
	if !gitdiff.HasChanges(diff) {
		return nil, ErrNoChanges
	}

	var warnings []string
	if opts.MaxDiffTokens > 0 {
		capped, truncated := truncate.New(truncate.FromMiddle).
			WithCounter(tokens.NewTiktokenCounter()).
			Truncate(diff, opts.MaxDiffTokens)
		if truncated {
			warnings = append(warnings, fmt.Sprintf("diff capped to ~%d tokens", opts.MaxDiffTokens))
			diff = capped
		}
	}

	doc, err := e.composer.Compose(compose.KindCommitMessage, compose.Request{Diff: diff})
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Text: doc.Render(), Warnings: warnings}, nil
}

// buildFilter assembles the ignore rule stack: built-in defaults, the
// project ignore file, configured patterns, then per-invocation extras.
// The output file is always ignored so generated prompts never feed
// back into a scan.
func (e *Engine) buildFilter(extra []string) (*ignore.Filter, error) {
	filter := ignore.New()
	if err := filter.LoadProjectFile(e.root); err != nil {
		return nil, err
	}
	filter.Add(e.cfg.Ignore...)
	filter.Add(extra...)
	if e.cfg.Output != "" {
		filter.Add(filepath.Base(e.cfg.Output))
	}
	return filter, nil
}
