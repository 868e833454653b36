package truncate

import (
	"strings"

	"github.com/contextpilot/pilot/tokens"
)

// Strategy defines where content is removed.
type Strategy int

const (
	// FromEnd removes content from the end.
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping the head
	// and tail.
	FromMiddle
)

// DefaultEndMarker is appended when end truncation cuts content.
const DefaultEndMarker = "\n...[truncated]"

// DefaultMiddleMarker replaces the removed middle section.
const DefaultMiddleMarker = "\n...[middle truncated]...\n"

// Truncator reduces text to fit within a token limit.
type Truncator struct {
	counter  tokens.Counter
	strategy Strategy
	marker   string
}

// New creates a truncator with the given strategy and the estimating
// counter.
func New(strategy Strategy) *Truncator {
	marker := DefaultEndMarker
	if strategy == FromMiddle {
		marker = DefaultMiddleMarker
	}
	return &Truncator{
		counter:  tokens.NewEstimatingCounter(),
		strategy: strategy,
		marker:   marker,
	}
}

// WithCounter sets a custom token counter.
func (t *Truncator) WithCounter(counter tokens.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithMarker sets a custom truncation marker.
func (t *Truncator) WithMarker(marker string) *Truncator {
	t.marker = marker
	return t
}

// Truncate reduces text to at most maxTokens tokens. The bool reports
// whether anything was removed.
func (t *Truncator) Truncate(text string, maxTokens int) (string, bool) {
	if t.counter.FitsInLimit(text, maxTokens) {
		return text, false
	}
	if t.strategy == FromMiddle {
		return t.truncateMiddle(text, maxTokens), true
	}
	return t.truncateEnd(text, maxTokens), true
}

// truncateEnd keeps the longest prefix that fits, found by binary
// search over rune length.
func (t *Truncator) truncateEnd(text string, maxTokens int) string {
	budget := maxTokens - t.counter.Count(t.marker)
	if budget <= 0 {
		return t.marker
	}

	runes := []rune(text)
	low, high := 0, len(runes)
	for low < high {
		mid := (low + high + 1) / 2
		if t.counter.FitsInLimit(string(runes[:mid]), budget) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	if low == 0 {
		return t.marker
	}
	return string(runes[:low]) + t.marker
}

// truncateMiddle keeps whole lines from the head and tail so that a
// capped diff still shows its first and last hunks intact.
func (t *Truncator) truncateMiddle(text string, maxTokens int) string {
	budget := maxTokens - t.counter.Count(t.marker)
	if budget <= 0 {
		return t.marker
	}

	lines := strings.Split(text, "\n")
	half := budget / 2

	head := t.fitLines(lines, half, false)
	tail := t.fitLines(lines[head:], budget-half, true)

	if head == 0 && tail == 0 {
		return t.truncateEnd(text, maxTokens)
	}
	if head+tail >= len(lines) {
		return text
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:head], "\n"))
	sb.WriteString(t.marker)
	sb.WriteString(strings.Join(lines[len(lines)-tail:], "\n"))
	return sb.String()
}

// fitLines returns how many whole lines fit in the token budget,
// taken from the front or (reverse=true) the back of the slice.
func (t *Truncator) fitLines(lines []string, budget int, reverse bool) int {
	count := 0
	used := 0
	for i := range lines {
		idx := i
		if reverse {
			idx = len(lines) - 1 - i
		}
		n := t.counter.Count(lines[idx]) + 1 // +1 for the newline
		if used+n > budget {
			break
		}
		used += n
		count++
	}
	return count
}

// ToTokens truncates text from the end to fit maxTokens, using the
// default estimating counter.
func ToTokens(text string, maxTokens int) string {
	result, _ := New(FromEnd).Truncate(text, maxTokens)
	return result
}
