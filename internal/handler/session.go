package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/session"
)

// SessionResponse is the body of POST /sessions.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// AskRequest is the body of POST /sessions/{id}/turns.
type AskRequest struct {
	Query string `json:"query"`
}

// StartSession handles POST /sessions. The returned id scopes the chat log.
func (s *Server) StartSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Start()
	writeJSON(w, http.StatusCreated, SessionResponse{ID: sess.ID, CreatedAt: sess.CreatedAt})
}

// EndSession handles DELETE /sessions/{id}; the chat log is discarded.
func (s *Server) EndSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	if err := s.sessions.End(id); err != nil {
		s.writeServiceError(w, r, err, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListTurns handles GET /sessions/{id}/turns: the chat history in the order
// the questions were answered.
func (s *Server) ListTurns(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dataResponse[domain.ChatTurn]{Data: sess.Log.Turns()})
}

// AskQuestion handles POST /sessions/{id}/turns.
func (s *Server) AskQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	var body AskRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	turn, err := s.chat.Ask(r.Context(), sess.Log, body.Query)
	if err != nil {
		s.writeServiceError(w, r, err, "session not found")
		return
	}
	writeJSON(w, http.StatusCreated, turn)
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, ok := sessionID(w, r)
	if !ok {
		return nil, false
	}
	sess, err := s.sessions.Get(id)
	if err != nil {
		s.writeServiceError(w, r, err, "session not found")
		return nil, false
	}
	return sess, true
}

// sessionID parses the {id} path parameter. A malformed id cannot name a
// session, so it is reported as not found.
func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "session not found")
		return uuid.UUID{}, false
	}
	return id, true
}
