// Package domain contains the core flashcard entities, value objects, and
// domain logic: cards and their normalization rules, operation results,
// aggregate statistics and progress reports. It has no knowledge of how
// cards are stored or served.
package domain
