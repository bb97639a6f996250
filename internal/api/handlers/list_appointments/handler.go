package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
	appointmentsService "github.com/clearpath-advisory/booking-service/internal/service/appointments"
	"github.com/clearpath-advisory/booking-service/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid filter parameters"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /internal/appointments?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRequest{}
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &from
	}

	if raw := q.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &to
	}

	if raw := q.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := q.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeInactive = include
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /internal/appointments - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}
