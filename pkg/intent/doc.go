// Package intent reads a natural-language automation description into
// a structured set of module intents: one trigger, optional
// processing, any number of actions, plus branching and
// failure-handling hints. Matching is ordered keyword tables over the
// lowercased description; the result is deterministic for identical
// input.
package intent
