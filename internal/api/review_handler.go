package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-cards/internal/api/shared"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/service/card_review"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	cardReviewService card_review.CardReviewService
	logger            *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(cardReviewService card_review.CardReviewService, logger *slog.Logger) *ReviewHandler {
	if cardReviewService == nil {
		panic("cardReviewService cannot be nil for ReviewHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		cardReviewService: cardReviewService,
		logger:            logger.With(slog.String("component", "review_handler")),
	}
}

// GetNextReviewCard handles GET /cards/next requests.
// It responds 204 No Content when no card is due.
func (h *ReviewHandler) GetNextReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	card, err := h.cardReviewService.GetNextCard(r.Context())
	if errors.Is(err, card_review.ErrNoCardsDue) {
		log.Debug("no cards due for review")
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get next review card")
		return
	}

	log.Debug("next review card", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// SubmitAnswer handles POST /cards/{id}/answer requests
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cardReviewService.SubmitAnswer(r.Context(), cardID, card_review.ReviewAnswer{
		Correct: *req.Correct,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit answer")
		return
	}

	log.Debug("answer submitted",
		slog.String("card_id", cardID.String()),
		slog.Bool("correct", *req.Correct),
		slog.Int("interval", card.Interval))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// GetHistory handles GET /cards/{id}/reviews requests
func (h *ReviewHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	entries, err := h.cardReviewService.History(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review history")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(entries))
}
