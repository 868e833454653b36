// Package tokens provides token counting and context budget analysis.
//
// The real counting backend is tiktoken's cl100k_base encoding, loaded
// lazily once per process and reused. When the backend cannot be
// loaded, or fails for an individual file, counting degrades to a
// deterministic character-length estimate (~4 characters per token)
// and the affected entries are flagged as approximate.
//
// The Analyzer classifies a project snapshot against a token threshold:
// at or under the threshold the full-context strategy applies,
// otherwise guided discovery.
package tokens
