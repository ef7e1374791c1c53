// Package statelabel implements the domain layer for post state labels.
//
// A state label is a short human-readable marker (e.g. "Landing Page") shown
// next to a post's title in an administrative list. Which posts carry which
// labels is driven by a configured mapping of option keys to labels: a post
// gets a label when the stored value behind the option key matches the post's
// identifier.
//
// # Core Types
//
// State is a single (option key, label) pair. Configuration is an ordered
// slice of States; order determines the order labels are applied when more
// than one state matches the same post.
//
// Registry holds a validated state mapping plus the LookupFunc used to fetch
// stored option values. Construct it with New, which rejects empty or
// all-invalid mappings and nil lookup functions. The mapping can be replaced
// wholesale with SetStates, which re-runs validation.
//
// Labels is an ordered key->label set. Resolve appends to whatever Labels the
// host passes in and never removes entries owned by other decorators.
//
// # Host Integration
//
// The host's extension point is modeled as the Dispatcher interface; Attach
// subscribes the registry's Resolve exactly once. TryRegister wraps
// construction and attachment, converting configuration failures into an
// optional error callback and a nil result so host wiring can fail soft.
package statelabel
