package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/jhrahman/shiftmate/internal/calendar"
	"github.com/jhrahman/shiftmate/internal/domain"
	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

const (
	defaultUpcomingWeeks = 4
	maxUpcomingWeeks     = 52
	calendarWeeks        = 12
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) team(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.roster.Team())
}

// rosterWeek resolves ?date=YYYY-MM-DD, or ?offset=N weeks from the
// current one. Without either it shows the current week.
func (s *Server) rosterWeek(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if date := q.Get("date"); date != "" {
		t, err := time.ParseInLocation(domain.WeekKeyLayout, date, s.cfg.Location)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q. Use YYYY-MM-DD", date))
			return
		}
		writeJSON(w, http.StatusOK, s.assignment(s.roster.Resolve(r.Context(), t)))
		return
	}

	offset, err := intParam(q.Get("offset"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "offset must be an integer")
		return
	}
	writeJSON(w, http.StatusOK, s.assignment(s.roster.Week(r.Context(), offset)))
}

func (s *Server) rosterUpcoming(w http.ResponseWriter, r *http.Request) {
	weeks, err := intParam(r.URL.Query().Get("weeks"), defaultUpcomingWeeks)
	if err != nil || weeks < 1 || weeks > maxUpcomingWeeks {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("weeks must be between 1 and %d", maxUpcomingWeeks))
		return
	}

	assignments, err := s.roster.Upcoming(r.Context(), weeks)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([]assignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, s.assignment(a))
	}
	writeJSON(w, http.StatusOK, out)
}

type overrideResponse struct {
	Week       entity.WeekKey     `json:"week"`
	Overridden bool               `json:"overridden"`
	Assignment assignmentResponse `json:"assignment"`
}

func (s *Server) getOverride(w http.ResponseWriter, r *http.Request) {
	week := entity.WeekKey(mux.Vars(r)["week"])

	overridden, err := s.roster.HasOverride(r.Context(), week)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	a, err := s.roster.WeekOf(r.Context(), week)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, overrideResponse{
		Week:       week,
		Overridden: overridden,
		Assignment: s.assignment(a),
	})
}

type morningRequest struct {
	PersonID *int `json:"person_id"`
}

func (s *Server) setMorning(w http.ResponseWriter, r *http.Request) {
	week := entity.WeekKey(mux.Vars(r)["week"])

	var req morningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PersonID == nil {
		writeError(w, http.StatusBadRequest, `body must be {"person_id": <id>}`)
		return
	}

	if err := s.roster.SetMorning(r.Context(), week, *req.PersonID); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeWeek(w, r, week)
}

type eveningRequest struct {
	PersonIDs []int `json:"person_ids"`
}

func (s *Server) setEvening(w http.ResponseWriter, r *http.Request) {
	week := entity.WeekKey(mux.Vars(r)["week"])

	var req eveningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, `body must be {"person_ids": [<id>, <id>]}`)
		return
	}

	if err := s.roster.SetEvening(r.Context(), week, req.PersonIDs); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeWeek(w, r, week)
}

func (s *Server) clearOverride(w http.ResponseWriter, r *http.Request) {
	week := entity.WeekKey(mux.Vars(r)["week"])

	if err := s.roster.ClearOverride(r.Context(), week); err != nil {
		s.fail(w, r, err)
		return
	}
	s.writeWeek(w, r, week)
}

// writeWeek answers an edit with the week as it now resolves.
func (s *Server) writeWeek(w http.ResponseWriter, r *http.Request, week entity.WeekKey) {
	a, err := s.roster.WeekOf(r.Context(), week)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.assignment(a))
}

func (s *Server) webhookStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"configured": s.roster.NotifiersConfigured()})
}

type notifyRequest struct {
	Offset int `json:"offset"`
}

type notifyResponse struct {
	Success    bool               `json:"success"`
	Assignment assignmentResponse `json:"assignment"`
	Error      string             `json:"error,omitempty"`
}

func (s *Server) notify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, `body must be {"offset": <weeks>}`)
			return
		}
	}

	a, err := s.roster.NotifyWeek(r.Context(), req.Offset)
	s.writeNotify(w, r, a, err)
}

func (s *Server) notifyWeekly(w http.ResponseWriter, r *http.Request) {
	a, err := s.roster.NotifyUpcoming(r.Context())
	s.writeNotify(w, r, a, err)
}

func (s *Server) writeNotify(w http.ResponseWriter, r *http.Request, a entity.Assignment, err error) {
	if errors.Is(err, domain.ErrWebhookNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	resp := notifyResponse{Success: err == nil, Assignment: s.assignment(a)}
	if err != nil {
		s.log.Warn("Notification request failed",
			zap.String("request_id", requestID(r.Context())),
			zap.String("week", a.Week.String()),
			zap.Error(err),
		)
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) calendarFeed(w http.ResponseWriter, r *http.Request) {
	weeks, err := intParam(r.URL.Query().Get("weeks"), calendarWeeks)
	if err != nil || weeks < 1 || weeks > maxUpcomingWeeks {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("weeks must be between 1 and %d", maxUpcomingWeeks))
		return
	}

	assignments, err := s.roster.Upcoming(r.Context(), weeks)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="roster.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(calendar.Build(s.cfg.CalendarName, assignments, s.now())))
}

func intParam(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
