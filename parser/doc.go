// Package parser extracts structured content from assistant replies.
//
// During guided discovery the assistant answers with follow-up file
// requests of the form:
//
//	pilot files src/main.py src/utils.py
//
// ExtractFileRequests finds those lines, whether bare, backtick-quoted,
// or inside fenced code blocks, and returns the requested paths in
// order, deduplicated, so the next invocation can be assembled
// mechanically. Parse additionally exposes the reply's fenced code
// blocks and remaining prose.
package parser
