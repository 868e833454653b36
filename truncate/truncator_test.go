package truncate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/contextpilot/pilot/tokens"
)

func TestTruncateNoOpWhenFits(t *testing.T) {
	tr := New(FromEnd)
	text := "short text"
	got, truncated := tr.Truncate(text, 100)
	if truncated {
		t.Error("text under the limit must not be truncated")
	}
	if got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestTruncateEnd(t *testing.T) {
	tr := New(FromEnd)
	text := strings.Repeat("abcd ", 200) // ~250 tokens

	got, truncated := tr.Truncate(text, 50)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !strings.HasSuffix(got, DefaultEndMarker) {
		t.Errorf("expected end marker, got %q", got[len(got)-30:])
	}
	if n := tokens.EstimateTokens(got); n > 50 {
		t.Errorf("result exceeds limit: %d tokens", n)
	}
	if !strings.HasPrefix(got, "abcd ") {
		t.Error("end truncation must keep the head")
	}
}

func TestTruncateMiddleKeepsHeadAndTailLines(t *testing.T) {
	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, fmt.Sprintf("line number %03d of the diff", i))
	}
	text := strings.Join(lines, "\n")

	tr := New(FromMiddle)
	got, truncated := tr.Truncate(text, 100)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if !strings.Contains(got, DefaultMiddleMarker) {
		t.Error("expected middle marker in result")
	}
	if !strings.Contains(got, "line number 000") {
		t.Error("middle truncation must keep the first lines")
	}
	if !strings.Contains(got, "line number 099") {
		t.Error("middle truncation must keep the last lines")
	}
	if strings.Contains(got, "line number 050") {
		t.Error("middle content should be removed")
	}
}

func TestTruncateTinyBudget(t *testing.T) {
	tr := New(FromEnd)
	got, truncated := tr.Truncate(strings.Repeat("x", 1000), 1)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if got != DefaultEndMarker {
		t.Errorf("budget smaller than the marker should yield just the marker, got %q", got)
	}
}

func TestTruncateWithCustomCounter(t *testing.T) {
	// One token per character makes budgets exact.
	tr := New(FromEnd).WithCounter(tokens.NewEstimatingCounterWithRatio(1)).WithMarker("")
	got, truncated := tr.Truncate("abcdefghij", 4)
	if !truncated {
		t.Fatal("expected truncation")
	}
	if got != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", got)
	}
}

func TestToTokens(t *testing.T) {
	text := strings.Repeat("word ", 100)
	got := ToTokens(text, 10)
	if n := tokens.EstimateTokens(got); n > 10 {
		t.Errorf("result exceeds limit: %d tokens", n)
	}
}
