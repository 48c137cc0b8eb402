// Package memory provides a concurrent in-memory implementation of
// store.CardStore.
//
// Locking is two-level. A read-write mutex guards the card map itself and is
// held exclusively only by Insert and Remove. Every stored card has its own
// read-write mutex guarding its fields. Operations that check a card and then
// update it hold the map's read lock, so the card cannot be removed under
// them, and take the card's write lock for the update. Updates of different
// cards therefore run in parallel while updates of the same card are totally
// ordered.
package memory
