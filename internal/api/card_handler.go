package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/scry-cards/internal/api/shared"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/service"
)

// CardHandler handles card management HTTP requests
type CardHandler struct {
	cardService service.CardService
	logger      *slog.Logger
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if cardService == nil {
		panic("cardService cannot be nil for CardHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		cardService: cardService,
		logger:      logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /cards requests
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateCardRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), req.Draft())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create card")
		return
	}

	log.Debug("card created", slog.String("card_id", card.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// ListCards handles GET /cards requests.
// Archived cards are included when include_archived=true.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	includeArchived, err := queryBool(r, "include_archived", false)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cards := h.cardService.ListCards(r.Context(), includeArchived)
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// SearchCards handles GET /cards/search?q=&answers= requests
func (h *CardHandler) SearchCards(w http.ResponseWriter, r *http.Request) {
	includeAnswers, err := queryBool(r, "answers", false)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cards := h.cardService.SearchCards(r.Context(), r.URL.Query().Get("q"), includeAnswers)
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetCard handles GET /cards/{id} requests
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	card, err := h.cardService.GetCard(r.Context(), cardID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{id} requests
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(r.Context(), cardID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	log.Debug("card deleted", slog.String("card_id", cardID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// SetArchived handles PUT /cards/{id}/archive requests
func (h *CardHandler) SetArchived(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req SetArchivedRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cardService.SetArchived(r.Context(), cardID, *req.Archived)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// AddTag handles POST /cards/{id}/tags requests
func (h *CardHandler) AddTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req AddTagRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	card, err := h.cardService.AddTag(r.Context(), cardID, req.Tag)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// RemoveTag handles DELETE /cards/{id}/tags/{tag} requests
func (h *CardHandler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := handlePathUUID(w, r, "id", log)
	if !ok {
		return
	}

	card, err := h.cardService.RemoveTag(r.Context(), cardID, chi.URLParam(r, "tag"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}
