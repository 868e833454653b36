// Package truncate provides token-aware text truncation.
//
// Its main consumer is the commit-message pipeline, which can cap very
// large git diffs before they are wrapped into a prompt. Middle
// truncation keeps the head and tail of the text (for a diff, the
// first and last hunks) and replaces the middle with a marker line.
//
//	tr := truncate.New(truncate.FromMiddle)
//	capped, truncated := tr.Truncate(diff, 8000)
//
// Counting defaults to the ~4 chars/token estimate; provide a real
// counter with WithCounter for exact budgets.
package truncate
