package tokens

import (
	"fmt"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used for counting. cl100k_base
// is the GPT-4 encoding and a close approximation for other providers.
const DefaultEncoding = "cl100k_base"

// The encoding table is process-wide state: loaded lazily on first use,
// read-only afterwards, shared by every counter for the rest of the
// process.
var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
	encodingErr  error
)

func loadEncoding() (*tiktoken.Tiktoken, error) {
	encodingOnce.Do(func() {
		encoding, encodingErr = tiktoken.GetEncoding(DefaultEncoding)
		if encodingErr != nil {
			encodingErr = fmt.Errorf("tokens: load encoding %s: %w", DefaultEncoding, encodingErr)
		}
	})
	return encoding, encodingErr
}

// TiktokenCount counts tokens with the shared cl100k_base encoding.
// It satisfies CountFunc; an error means the encoding table could not
// be loaded.
func TiktokenCount(text string) (int, error) {
	enc, err := loadEncoding()
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// TiktokenCounter is a Counter backed by the shared encoding, with a
// transparent estimating fallback when the encoding is unavailable.
type TiktokenCounter struct {
	fallback *EstimatingCounter
}

// NewTiktokenCounter creates a tiktoken-backed counter.
func NewTiktokenCounter() *TiktokenCounter {
	return &TiktokenCounter{fallback: NewEstimatingCounter()}
}

// Count returns the token count for the text. If the encoding cannot
// be loaded, the estimating fallback is used instead.
func (c *TiktokenCounter) Count(text string) int {
	n, err := TiktokenCount(text)
	if err != nil {
		return c.fallback.Count(text)
	}
	return n
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *TiktokenCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}
