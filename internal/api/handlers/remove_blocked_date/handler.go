package remove_blocked_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
	scheduleService "github.com/clearpath-advisory/booking-service/internal/service/schedule"
)

const (
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgNotFound    = "date is not blocked"
)

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

// Handle DELETE /internal/blocked-dates/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveBlockedDate(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrBlockedDateNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /internal/blocked-dates/{date} - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /internal/blocked-dates/{date} - unblocked %s", rawDate)
	w.WriteHeader(http.StatusNoContent)
}
