// Package services contains stateless domain services of the workflow engine:
// the business state resolver, which derives step labels from live order and
// payment state, and the transition table, which owns the coupling between
// step completions and order status changes.
package services
