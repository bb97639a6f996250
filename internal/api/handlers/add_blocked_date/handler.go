package add_blocked_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleService "github.com/clearpath-advisory/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

// AddBlockedDateRequest HTTP request model
type AddBlockedDateRequest struct {
	Date   string  `json:"date"` // "2026-12-25"
	Reason *string `json:"reason,omitempty"`
}

// BlockedDateResponse HTTP response model
type BlockedDateResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /internal/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddBlockedDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/blocked-dates - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddBlockedDate(r.Context(), date, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("POST /internal/blocked-dates - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/blocked-dates - blocked %s", req.Date)
	handlers.RespondJSON(w, http.StatusCreated, BlockedDateResponse{
		ID:     result.ID,
		Date:   result.Date.Format(domain.DateFormat),
		Reason: result.Reason,
	})
}
