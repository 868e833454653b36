package tokens

import (
	"github.com/contextpilot/pilot/scan"
)

// DefaultThreshold is the context window budget in tokens. Projects at
// or under it get the full-context strategy; larger projects switch to
// guided discovery.
const DefaultThreshold = 100000

// Strategy is the budget classification of a snapshot.
type Strategy int

const (
	// StrategyFull embeds every included file's content in the prompt.
	StrategyFull Strategy = iota

	// StrategyDiscovery sends only the tree and lets the assistant
	// request files incrementally.
	StrategyDiscovery
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyFull:
		return "full"
	case StrategyDiscovery:
		return "discovery"
	default:
		return "unknown"
	}
}

// Verdict records a budget decision together with the numbers that
// produced it.
type Verdict struct {
	// Strategy is the selected prompt strategy.
	Strategy Strategy

	// TotalTokens is the sum of included file tokens plus the tree cost.
	TotalTokens int

	// TreeTokens is the token cost of the tree rendering alone.
	TreeTokens int

	// Threshold is the budget the total was compared against.
	Threshold int

	// Approximate is the number of entries whose count fell back to
	// the character-length estimate.
	Approximate int
}

// Analyzer computes per-entry token counts and classifies snapshots
// against a threshold.
type Analyzer struct {
	count    CountFunc
	fallback *EstimatingCounter
}

// NewAnalyzer creates an analyzer backed by the shared tiktoken
// encoding, falling back to character-length estimation per text when
// the backend fails.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithCountFunc(TiktokenCount)
}

// NewAnalyzerWithCountFunc creates an analyzer over a custom counting
// backend. Used by callers that bring their own tokenizer, and by
// tests.
func NewAnalyzerWithCountFunc(fn CountFunc) *Analyzer {
	return &Analyzer{count: fn, fallback: NewEstimatingCounter()}
}

// Analyze counts tokens for every included entry, annotates the
// snapshot, and returns the verdict. Strategy selection is a pure
// function of (total, threshold): total <= threshold selects the
// full-context strategy, so a total exactly at the threshold still
// fits. A snapshot with zero included files is valid; its total is
// just the tree cost, and whether that is an error is the caller's
// decision.
func (a *Analyzer) Analyze(snap *scan.Snapshot, threshold int) (*Verdict, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	verdict := &Verdict{Threshold: threshold}

	total := 0
	for i := range snap.Entries {
		entry := &snap.Entries[i]
		if !entry.Included {
			continue
		}
		n, approx := a.countOne(entry.Content)
		entry.Tokens = n
		entry.Approx = approx
		if approx {
			verdict.Approximate++
		}
		total += n
	}

	treeTokens, treeApprox := a.countOne(snap.Tree)
	if treeApprox {
		verdict.Approximate++
	}
	verdict.TreeTokens = treeTokens
	total += treeTokens

	snap.TotalTokens = total
	verdict.TotalTokens = total

	if total <= threshold {
		verdict.Strategy = StrategyFull
	} else {
		verdict.Strategy = StrategyDiscovery
	}
	return verdict, nil
}

// countOne counts a single text, falling back to the deterministic
// estimate when the backend errors. The bool reports whether the
// fallback was used.
func (a *Analyzer) countOne(text string) (int, bool) {
	n, err := a.count(text)
	if err != nil {
		return a.fallback.Count(text), true
	}
	return n, false
}
