// Package order models the order lifecycle the workflow engine couples to.
// The engine consumes, but does not own, this state machine: transitions are
// triggered alongside step completions and validated here.
package order
