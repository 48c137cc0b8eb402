// Package card_review implements the review workflow: picking the next due
// card, applying a learner's answer through the card store's scheduler, and
// keeping a bounded per-card review history fed by events.
package card_review
