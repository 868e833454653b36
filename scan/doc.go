// Package scan walks a project tree under ignore-rule filtering and
// produces an immutable Snapshot: the surviving file entries plus an
// ASCII rendering of the directory hierarchy.
//
// Excluded directories are pruned, never descended, so nothing beneath
// them can leak into the entry list or the tree. Binary and unreadable
// files stay visible in the tree but carry no content. An optional
// extension filter narrows which files are selected for content
// embedding; it is applied after ignore filtering and never re-includes
// a path the ignore rules removed.
package scan
