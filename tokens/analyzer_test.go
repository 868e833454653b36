package tokens

import (
	"errors"
	"strings"
	"testing"

	"github.com/contextpilot/pilot/scan"
)

// wordCount is a deterministic test backend: one token per
// whitespace-separated word.
func wordCount(text string) (int, error) {
	return len(strings.Fields(text)), nil
}

func snapshotWith(entries ...scan.FileEntry) *scan.Snapshot {
	return &scan.Snapshot{Root: "/p", Entries: entries, Tree: "one two three"}
}

func TestAnalyzeTotalsAndAnnotation(t *testing.T) {
	snap := snapshotWith(
		scan.FileEntry{RelPath: "a.py", Content: "x = 1", Included: true},       // 3 words
		scan.FileEntry{RelPath: "b.py", Content: "y = 2 + z", Included: true},   // 5 words
		scan.FileEntry{RelPath: "img.png", Content: "", Included: false},        // not counted
	)

	verdict, err := NewAnalyzerWithCountFunc(wordCount).Analyze(snap, 100)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Entries[0].Tokens != 3 || snap.Entries[1].Tokens != 5 {
		t.Errorf("per-entry tokens wrong: %d, %d", snap.Entries[0].Tokens, snap.Entries[1].Tokens)
	}
	if snap.Entries[2].Tokens != 0 {
		t.Error("excluded entry must not be counted")
	}
	if verdict.TreeTokens != 3 {
		t.Errorf("tree tokens: expected 3, got %d", verdict.TreeTokens)
	}
	// Exact accounting: files + tree, nothing else.
	if verdict.TotalTokens != 3+5+3 {
		t.Errorf("total: expected 11, got %d", verdict.TotalTokens)
	}
	if snap.TotalTokens != verdict.TotalTokens {
		t.Error("snapshot total must mirror the verdict total")
	}
}

func TestAnalyzeStrategySelection(t *testing.T) {
	tests := []struct {
		name      string
		content   string // word-counted
		threshold int
		want      Strategy
	}{
		{
			name:      "small project under threshold",
			content:   strings.Repeat("w ", 10),
			threshold: 100,
			want:      StrategyFull,
		},
		{
			name:      "large project over threshold",
			content:   strings.Repeat("w ", 200),
			threshold: 100,
			want:      StrategyDiscovery,
		},
		{
			name:      "exactly at threshold selects full",
			content:   strings.Repeat("w ", 97), // 97 + 3 tree = 100
			threshold: 100,
			want:      StrategyFull,
		},
		{
			name:      "one over threshold selects discovery",
			content:   strings.Repeat("w ", 98), // 98 + 3 tree = 101
			threshold: 100,
			want:      StrategyDiscovery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotWith(scan.FileEntry{RelPath: "a.py", Content: tt.content, Included: true})
			verdict, err := NewAnalyzerWithCountFunc(wordCount).Analyze(snap, tt.threshold)
			if err != nil {
				t.Fatal(err)
			}
			if verdict.Strategy != tt.want {
				t.Errorf("strategy: expected %v, got %v (total %d)", tt.want, verdict.Strategy, verdict.TotalTokens)
			}
		})
	}
}

func TestAnalyzeFallbackOnBackendFailure(t *testing.T) {
	// Backend fails for one file only.
	failFor := "bad content here"
	fn := func(text string) (int, error) {
		if text == failFor {
			return 0, errors.New("backend exploded")
		}
		return len(strings.Fields(text)), nil
	}

	snap := snapshotWith(
		scan.FileEntry{RelPath: "good.py", Content: "a b c", Included: true},
		scan.FileEntry{RelPath: "bad.py", Content: failFor, Included: true},
	)

	verdict, err := NewAnalyzerWithCountFunc(fn).Analyze(snap, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Entries[0].Approx {
		t.Error("successful count must not be flagged approximate")
	}
	if !snap.Entries[1].Approx {
		t.Error("fallback count must be flagged approximate")
	}
	want := EstimateTokens(failFor)
	if snap.Entries[1].Tokens != want {
		t.Errorf("fallback tokens: expected %d, got %d", want, snap.Entries[1].Tokens)
	}
	if verdict.Approximate != 1 {
		t.Errorf("expected 1 approximate entry, got %d", verdict.Approximate)
	}
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	snap := &scan.Snapshot{Root: "/p", Tree: "."}
	verdict, err := NewAnalyzerWithCountFunc(wordCount).Analyze(snap, 100)
	if err != nil {
		t.Fatal(err)
	}
	// Analysis succeeds; the total is just the tree cost.
	if verdict.TotalTokens != verdict.TreeTokens {
		t.Errorf("empty snapshot total should equal tree cost, got %d vs %d",
			verdict.TotalTokens, verdict.TreeTokens)
	}
	if verdict.Strategy != StrategyFull {
		t.Errorf("expected full strategy for empty snapshot, got %v", verdict.Strategy)
	}
}

func TestAnalyzeDefaultThreshold(t *testing.T) {
	snap := snapshotWith(scan.FileEntry{RelPath: "a.py", Content: "a b", Included: true})
	verdict, err := NewAnalyzerWithCountFunc(wordCount).Analyze(snap, 0)
	if err != nil {
		t.Fatal(err)
	}
	if verdict.Threshold != DefaultThreshold {
		t.Errorf("expected default threshold %d, got %d", DefaultThreshold, verdict.Threshold)
	}
}

func TestTiktokenCounterFallsBackSafely(t *testing.T) {
	// The tiktoken encoding may not be loadable in offline test runs;
	// either way Count must return something sane.
	c := NewTiktokenCounter()
	if got := c.Count("hello world, how are you?"); got <= 0 {
		t.Errorf("expected positive count, got %d", got)
	}
}
