// Package ignore implements gitignore-style path filtering.
//
// A Filter holds an ordered list of rules built from three sources, in
// ascending priority: built-in defaults, the project's .gitignore, and
// caller-supplied extra patterns. Matching follows the standard
// gitignore rules: the last matching pattern decides, a trailing slash
// restricts a pattern to directories, a pattern without a slash matches
// the basename at any depth, and a leading "!" re-includes a path,
// unless one of its ancestor directories is already excluded.
//
// Malformed patterns never abort filtering; they are skipped and
// recorded as warnings retrievable via Warnings.
package ignore
