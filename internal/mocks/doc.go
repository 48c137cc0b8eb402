// Package mocks provides hand-written mocks of the service interfaces for
// handler tests.
//
// Each mock has a function field per method for custom behavior and default
// return values used when the field is nil:
//
//	reviews := mocks.NewMockCardReviewService(mocks.WithError(card_review.ErrNoCardsDue))
//	cards := &mocks.MockCardService{
//	    DeleteCardFn: func(ctx context.Context, id uuid.UUID) error {
//	        return store.ErrCardNotFound
//	    },
//	}
package mocks
