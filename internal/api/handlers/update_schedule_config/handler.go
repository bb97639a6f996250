package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	getScheduleConfig "github.com/clearpath-advisory/booking-service/internal/api/handlers/get_schedule_config"
	scheduleService "github.com/clearpath-advisory/booking-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTime        = "invalid time format, expected HH:MM"
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

// Handle PUT /internal/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /internal/schedule - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /internal/schedule - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("PUT /internal/schedule - validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /internal/schedule - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /internal/schedule - configuration updated")
	handlers.RespondJSON(w, http.StatusOK, getScheduleConfig.FromServiceResponse(result))
}
