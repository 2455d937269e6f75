// Package scope classifies binding groups against editor contexts.
//
// Binding groups are organized primarily by interaction mode ("Object
// Mode", "Mesh", "Knife Tool Modal Map") rather than by a clean context
// enumeration, so classification combines scope-tag equality with
// name-based heuristics. The heuristics are declared as a per-context
// rule table (see rules.go) so each context's behavior is testable in
// isolation. The rules are best-effort: a group with a misleading name
// can be misclassified, and callers should treat relevance as advisory
// rather than authoritative.
package scope
