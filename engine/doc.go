// Package engine sequences the context assembly pipeline: filter,
// scan, budget analysis, and prompt composition.
//
// Each operation corresponds to one CLI command and is independent;
// the engine holds no state between invocations. The guided-discovery
// protocol is realized purely through the documents themselves: a
// discovery prompt embeds the literal file-request command, and
// DeliverFiles accepts any explicit path list without requiring it to
// have come from a prior scan.
package engine
