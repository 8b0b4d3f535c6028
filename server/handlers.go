package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ayoisaiah/focustab/focusmode"
	"github.com/ayoisaiah/focustab/internal/models"
	"github.com/ayoisaiah/focustab/internal/timeutil"
	"github.com/ayoisaiah/focustab/stats"
)

const maxBodyBytes = 1 << 16

type (
	enterRequest struct {
		Label string `json:"label"`
	}

	phaseRequest struct {
		Phase string `json:"phase"`
	}

	minutesRequest struct {
		Minutes int `json:"minutes"`
	}

	modeRequest struct {
		Mode string `json:"mode"`
	}

	historyResponse struct {
		Sessions []*models.SessionRecord `json:"sessions"`
		Summary  stats.Summary           `json:"summary"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		s.log.Debug("unable to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err != nil {
		return errInvalidBody.Wrap(err)
	}

	return nil
}

// state responds with the session snapshot.
func (s *Server) state(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusOK, s.ctrl.State())
}

func (s *Server) getSession(w http.ResponseWriter, _ *http.Request) {
	s.state(w)
}

// control adapts a controller method that takes no arguments.
func (s *Server) control(f func()) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		f()
		s.state(w)
	}
}

func (s *Server) enter(w http.ResponseWriter, r *http.Request) {
	var req enterRequest

	// an empty body enters without a task
	err := readJSON(w, r, &req)
	if err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.ctrl.EnterFocusMode(req.Label)
	s.state(w)
}

func (s *Server) exit(w http.ResponseWriter, _ *http.Request) {
	s.ctrl.ExitFocusMode()
	s.state(w)
}

func (s *Server) setPhase(w http.ResponseWriter, r *http.Request) {
	var req phaseRequest

	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	p := focusmode.Phase(req.Phase)
	if !p.Valid() {
		s.writeError(w, http.StatusBadRequest, errInvalidPhase.Fmt(req.Phase))
		return
	}

	s.ctrl.SetPhase(p)
	s.state(w)
}

func (s *Server) addMinutes(w http.ResponseWriter, r *http.Request) {
	var req minutesRequest

	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.ctrl.AddMinutes(req.Minutes)
	s.state(w)
}

func (s *Server) setTimerMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest

	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	m := models.TimerMode(req.Mode)
	if !m.Valid() {
		s.writeError(w, http.StatusBadRequest, errInvalidTimerMode.Fmt(req.Mode))
		return
	}

	s.ctrl.SetTimerMode(m)
	s.state(w)
}

func (s *Server) setPomodoroPhase(w http.ResponseWriter, r *http.Request) {
	var req phaseRequest

	if err := readJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	p := models.PomodoroPhase(req.Phase)
	if !p.Valid() {
		s.writeError(
			w,
			http.StatusBadRequest,
			errInvalidPomodoroPhase.Fmt(req.Phase),
		)

		return
	}

	s.ctrl.SetPomodoroPhase(p)
	s.state(w)
}

func (s *Server) updateSettings(w http.ResponseWriter, r *http.Request) {
	var patch focusmode.SettingsPatch

	if err := readJSON(w, r, &patch); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.ctrl.UpdateSettings(patch)
	s.state(w)
}

func (s *Server) quote(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, focusmode.RandomQuote())
}

func (s *Server) celebration(w http.ResponseWriter, r *http.Request) {
	seconds := s.ctrl.State().TotalSessionSeconds

	if v := r.URL.Query().Get("seconds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, errInvalidSeconds)
			return
		}

		seconds = n
	}

	s.writeJSON(w, http.StatusOK, focusmode.CelebrationFor(seconds))
}

// historyRange reads the since and until query parameters. The range
// defaults to the last seven days.
func (s *Server) historyRange(r *http.Request) (start, end time.Time, err error) {
	end = timeutil.RoundToEnd(s.now())
	start = timeutil.RoundToStart(end.AddDate(0, 0, -(defaultHistoryDays - 1)))

	q := r.URL.Query()

	if v := q.Get("since"); v != "" {
		start, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return start, end, errInvalidTime.Fmt("since")
		}
	}

	if v := q.Get("until"); v != "" {
		end, err = time.Parse(time.RFC3339, v)
		if err != nil {
			return start, end, errInvalidTime.Fmt("until")
		}
	}

	return start, end, nil
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		s.writeError(w, http.StatusNotFound, errNoHistory)
		return
	}

	start, end, err := s.historyRange(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), historyTimeout)
	defer cancel()

	sessions, err := s.history.Sessions(ctx, start, end)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}

		s.writeError(w, status, errHistory.Wrap(err))

		return
	}

	if sessions == nil {
		sessions = []*models.SessionRecord{}
	}

	s.writeJSON(w, http.StatusOK, historyResponse{
		Sessions: sessions,
		Summary:  stats.Compute(sessions, start, end),
	})
}
