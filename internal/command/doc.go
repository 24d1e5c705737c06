// Package command maps human-readable command definitions to integer
// command ids, optionally binding typed, named arguments.
//
// Commands express user intent from keyboard shortcuts, menus and the
// command palette. A bare command name resolves to a static id from the
// catalog. A definition with trailing text ("ScrollUp n=5") additionally
// parses the text against the command's argument specs and registers a
// command instance with a freshly minted id, retrievable later together
// with its argument values.
//
// The catalog and argument spec tables are immutable after startup; the
// Registry is the only mutable state and is expected to be owned and
// mutated by a single goroutine.
package command
