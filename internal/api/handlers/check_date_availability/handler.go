package check_date_availability

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/clearpath-advisory/booking-service/internal/api/handlers"
	"github.com/clearpath-advisory/booking-service/internal/domain"
	getAvailableSlots "github.com/clearpath-advisory/booking-service/internal/usecase/get_available_slots"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

// DateAvailabilityResponse HTTP response model
type DateAvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

type Handler struct {
	useCase CheckDateUseCase
	logger  Logger
}

func NewHandler(useCase CheckDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/dates/{date}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /dates/{date}/availability - invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.CheckDate(r.Context(), getAvailableSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /dates/{date}/availability - failed for date=%s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DateAvailabilityResponse{
		Date:      result.Date.Format(domain.DateFormat),
		Available: result.Available,
	})
}
