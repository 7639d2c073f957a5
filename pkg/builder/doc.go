// Package builder assembles the typed module graph from extracted
// intents: it orders nodes, overlays kind defaults, resolves
// "{{id.capability}}" bindings against preceding nodes, and
// deduplicates service connections. The builder never invents data;
// references it cannot resolve are emitted as "{{?.capability}}"
// placeholders for the validation engine to flag.
package builder
