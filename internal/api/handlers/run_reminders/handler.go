package run_reminders

import (
	"net/http"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
)

// SweepResponse HTTP response model
type SweepResponse struct {
	Checked  int `json:"checked"`
	Sent24h  int `json:"sent24h"`
	Sent1h   int `json:"sent1h"`
	Failures int `json:"failures"`
}

// Handler triggers a reminder sweep on demand, outside the cron cadence.
// Useful after downtime or when verifying mail delivery.
type Handler struct {
	useCase SendRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /internal/reminders/run
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /internal/reminders/run - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SweepResponse{
		Checked:  result.Checked,
		Sent24h:  result.Sent24h,
		Sent1h:   result.Sent1h,
		Failures: result.Failures,
	})
}
