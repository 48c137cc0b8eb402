// Package service contains the application-specific use cases around the
// card store. It orchestrates the store (defined in internal/store), the
// event emitter, and logging to fulfill application features, and maps store
// outcomes to errors the API layer can translate.
//
// Key components:
//
// 1. CardService:
//   - Card management: create, read, list, search, archive, tag, delete
//   - Aggregate statistics over a single snapshot of the store
//
// 2. ProgressService:
//   - Mastery, retention, and per-category performance reporting
//
// The review workflow lives in the card_review subpackage.
//
// Services depend on store interfaces, never on a specific implementation.
package service
