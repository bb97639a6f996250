package list_blocked_dates

import (
	"net/http"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

// Listing defaults to the next year when no range is given.
const defaultRangeDays = 365

// BlockedDateItem HTTP response model
type BlockedDateItem struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// ListResponse HTTP response model
type ListResponse struct {
	BlockedDates []BlockedDateItem `json:"blockedDates"`
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

// Handle GET /internal/blocked-dates?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from := time.Now()
	to := from.AddDate(0, 0, defaultRangeDays)

	if raw := q.Get("from"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
	}
	if raw := q.Get("to"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		to = parsed
	}

	result, err := h.service.ListBlockedDates(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /internal/blocked-dates - failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]BlockedDateItem, 0, len(result))
	for _, bd := range result {
		items = append(items, BlockedDateItem{
			ID:     bd.ID,
			Date:   bd.Date.Format(domain.DateFormat),
			Reason: bd.Reason,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{BlockedDates: items})
}
