package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
	cancelAppointment "github.com/clearpath-advisory/booking-service/internal/usecase/cancel_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "appointment not found"
	msgAlreadyCancelled   = "appointment is already cancelled"
	msgAlreadyPast        = "appointment is already in the past"
)

// CancelRequest HTTP request model. The token travels in the body, not
// the URL, to keep it out of access logs.
type CancelRequest struct {
	CancelToken string `json:"cancelToken"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/cancel - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{CancelToken: req.CancelToken})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelAppointment.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, cancelAppointment.ErrAlreadyPast):
			handlers.RespondGone(w, msgAlreadyPast)

		default:
			h.logger.Error("POST /appointments/cancel - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/cancel - cancelled appointment id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, CancelResponse{
		ID:        result.ID,
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime.String(),
		Status:    result.Status,
	})
}
