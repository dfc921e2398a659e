// Package workflow holds the domain model of the checklist progress engine:
// role-scoped step definitions, progress records with last-writer-wins
// overwrite semantics, and the typed role / status-category enumerations
// that replace string dispatch at the call sites.
package workflow
