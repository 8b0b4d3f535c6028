package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	eventBuffer = 32

	// snapshotEvent is the name of the event carrying the state at the
	// time the stream was opened.
	snapshotEvent = "snapshot"
)

// events streams session events to the client as server-sent events until
// the client goes away or the controller is closed.
func (s *Server) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ch := s.ctrl.Subscribe(eventBuffer)
	defer s.ctrl.Unsubscribe(ch)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")

	w.WriteHeader(http.StatusOK)

	err := writeEvent(w, snapshotEvent, s.ctrl.State())
	if err != nil {
		return
	}

	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-ch:
			if !open {
				return
			}

			err := writeEvent(w, string(ev.Type), ev)
			if err != nil {
				s.log.Debug("event stream closed", "error", err)
				return
			}

			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, b)

	return err
}
