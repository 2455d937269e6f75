// Package resolve answers the central query of the engine: given a key
// label, a context, and a modifier state, which bindings fire? It walks
// the configuration layer stack, matches entries, deduplicates repeated
// bindings across layers, analyzes conflicts, and caches per-key usage
// behind a configuration fingerprint.
package resolve
