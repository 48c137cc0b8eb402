package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-cards/internal/api/shared"
	"github.com/phrazzld/scry-cards/internal/platform/logger"
	"github.com/phrazzld/scry-cards/internal/service"
)

// StatsHandler serves aggregate statistics and progress reports.
type StatsHandler struct {
	cardService     service.CardService
	progressService service.ProgressService
	logger          *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(
	cardService service.CardService,
	progressService service.ProgressService,
	logger *slog.Logger,
) *StatsHandler {
	if cardService == nil || progressService == nil {
		panic("services cannot be nil for StatsHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		cardService:     cardService,
		progressService: progressService,
		logger:          logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /stats requests
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.cardService.Stats(r.Context()))
}

// GetProgress handles GET /progress requests
func (h *StatsHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	report := h.progressService.Report(r.Context())
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("progress report generated",
		slog.Int("card_count", report.CardCount),
		slog.Float64("mastery_percentage", report.MasteryPercentage))
	shared.RespondWithJSON(w, r, http.StatusOK, report)
}

// Health handles GET /health requests. It reports liveness and the number
// of stored cards.
func (h *StatsHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Cards:  h.cardService.Count(r.Context()),
	})
}
