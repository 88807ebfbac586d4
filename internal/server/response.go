package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
	"github.com/jhrahman/shiftmate/internal/domain/roster"
)

type errorResponse struct {
	Error string `json:"error"`
}

type assignmentResponse struct {
	Week       entity.WeekKey  `json:"week"`
	Label      string          `json:"label"`
	Range      string          `json:"range"`
	Morning    entity.Person   `json:"morning"`
	Evening    []entity.Person `json:"evening"`
	Overridden bool            `json:"overridden"`
}

func (s *Server) assignment(a entity.Assignment) assignmentResponse {
	return assignmentResponse{
		Week:       a.Week,
		Label:      s.roster.Label(a.WeekMonday),
		Range:      a.WeekRange(),
		Morning:    a.Morning,
		Evening:    a.Evening,
		Overridden: a.Overridden,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, roster.ErrInvalidOverrideSelection),
		errors.Is(err, roster.ErrInvalidWeekKey):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrWebhookNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNotificationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Sugar().Errorw("Request failed",
			"request_id", requestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, status, err.Error())
}
