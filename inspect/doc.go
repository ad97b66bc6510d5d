// Package inspect implements the value-resolution and tree-serialization
// engine behind turtledebug.
//
// The package models runtime values from an inspected environment as a
// tagged union ([Value]) over the closed kind set nil, boolean, number,
// string, function, opaque, and container. A [Container] is a lazy view
// over an aggregate value: children are converted on access, which lets
// cyclic object graphs be represented without eager expansion.
//
// Two operations form the public surface:
//
//   - [Resolve] turns a user-supplied path expression into a value,
//     either by traversing a dot-separated path through an [Env] or by
//     evaluating a call-like expression against it.
//   - [Policy.Decorated] and [Policy.Plain] render a value as an ordered
//     sequence of text lines, sharing one traversal policy (key ordering,
//     cycle detection, depth and breadth limits) and differing only in
//     decoration.
//
// Rendering is a pure function of (value, policy): the visited set used
// for cycle detection is local to a single render call, so no state leaks
// between the two variants or between successive inspections.
package inspect
