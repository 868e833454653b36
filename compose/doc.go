// Package compose renders prompt documents from project snapshots,
// explicit file lists, or git diffs.
//
// A Document is an ordered sequence of named phases; the order is
// fixed per document kind and phases are joined with a stable
// separator, so composing twice from the same inputs yields
// byte-identical output. Four kinds exist:
//
//   - KindFullContext: workflow preamble, task, tree, and every
//     included file's content
//   - KindDiscovery: preamble with the literal file-request command
//     template, task, and the tree only
//   - KindFileDelivery: explicitly supplied files with path headers
//   - KindCommitMessage: conventional-commit instructions wrapping a
//     git diff
//
// Kinds dispatch through an explicit builder table, not reflection.
package compose
