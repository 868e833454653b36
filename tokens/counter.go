package tokens

import (
	"unicode/utf8"
)

// DefaultCharsPerToken is the character-to-token ratio used by the
// estimating fallback. Roughly 4 characters per token for English text.
const DefaultCharsPerToken = 4.0

// Counter estimates token counts for text.
type Counter interface {
	// Count estimates the number of tokens in the given text.
	Count(text string) int

	// FitsInLimit returns true if the text fits within the token limit.
	FitsInLimit(text string, limit int) bool
}

// CountFunc is the black-box counting contract used by the Analyzer.
// An error from the backend triggers the estimating fallback for that
// text only.
type CountFunc func(text string) (int, error)

// EstimatingCounter approximates token counts from rune length. It is
// the fallback when the tiktoken backend is unavailable, and the
// flagged substitute when counting an individual file fails.
type EstimatingCounter struct {
	// CharsPerToken is the average characters per token.
	CharsPerToken float64
}

// NewEstimatingCounter creates an estimator with the default ratio.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{CharsPerToken: DefaultCharsPerToken}
}

// NewEstimatingCounterWithRatio creates an estimator with a custom
// ratio. Ratios <= 0 fall back to the default.
func NewEstimatingCounterWithRatio(charsPerToken float64) *EstimatingCounter {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &EstimatingCounter{CharsPerToken: charsPerToken}
}

// Count estimates tokens from the rune count. Deterministic: the same
// text always yields the same estimate.
func (c *EstimatingCounter) Count(text string) int {
	runes := utf8.RuneCountInString(text)
	return int(float64(runes)/c.CharsPerToken + 0.5)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *EstimatingCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// CountFunc adapts the estimator to the Analyzer's counting contract.
// It never fails.
func (c *EstimatingCounter) CountFunc() CountFunc {
	return func(text string) (int, error) {
		return c.Count(text), nil
	}
}

// EstimateTokens is a convenience function using the default ratio.
func EstimateTokens(text string) int {
	return NewEstimatingCounter().Count(text)
}
