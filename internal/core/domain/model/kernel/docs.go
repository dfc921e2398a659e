// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation enforced at construction,
// independent of any specific aggregate.
package kernel
