// Package store defines the card store contract and the errors shared by
// its implementations. Implementations live under internal/platform; the
// only one today is the in-memory store in internal/platform/memory.
package store
