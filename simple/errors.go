// SPDX-License-Identifier: MIT
// Package simple: sentinel error set.
// This file defines ONLY package-level sentinel errors. Contract
// violations are fatal: operations panic with an error that wraps one
// of these sentinels, so tests and boundary recovers classify them via
// errors.Is. Nothing in this package returns them as values.

package simple

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "simple: ..." for consistency and easy
// grepping. Panic sites wrap with fmt.Errorf("...: %w", ErrX) to attach
// the offending indices; errors.Is still matches the sentinel.

var (
	// ErrNodeNotFound indicates a node handle whose slot is empty
	// (already removed) or out of range for this container.
	ErrNodeNotFound = errors.New("simple: node not found")

	// ErrEdgeNotFound indicates an edge handle whose cell is empty
	// (already removed) or was never written in this container.
	ErrEdgeNotFound = errors.New("simple: edge not found")

	// ErrNodeHasEdges indicates RemoveNode was called while at least one
	// incident edge cell (outgoing or incoming) is still occupied.
	ErrNodeHasEdges = errors.New("simple: node still has incident edges")
)
