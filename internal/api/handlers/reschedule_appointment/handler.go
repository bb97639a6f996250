package reschedule_appointment

import (
	"errors"
	"net/http"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	createAppointment "github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
	rescheduleAppointment "github.com/clearpath-advisory/booking-service/internal/usecase/reschedule_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgNotFound           = "appointment not found"
	msgAlreadyCancelled   = "appointment is already cancelled"
	msgAlreadyPast        = "appointment is already in the past"
	msgSlotNotAvailable   = "the selected time slot is no longer available"
	msgProvisioningFailed = "could not set up the meeting, please try again"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/reschedule - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/reschedule - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrInvalidInput),
			errors.Is(err, createAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAlreadyCancelled):
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, rescheduleAppointment.ErrAlreadyPast):
			handlers.RespondGone(w, msgAlreadyPast)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments/reschedule - slot not available: date=%s time=%s",
				req.NewDate, req.NewStartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrMeetingProvisioning):
			h.logger.Error("POST /appointments/reschedule - meeting provisioning failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgProvisioningFailed)

		default:
			h.logger.Error("POST /appointments/reschedule - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/reschedule - appointment id=%d replaced by id=%d",
		result.RescheduledFrom, result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
