// Package events carries card lifecycle notifications between services.
//
// The review service emits CardReviewed with the applied review, and the card
// service emits CardRemoved when a card is deleted. The review log subscribes
// to both: it appends reviews and forgets the history of removed cards.
// Delivery is synchronous and in-process.
package events
