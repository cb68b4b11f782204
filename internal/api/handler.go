// Package api exposes the lookup and the session screen over HTTP.
package api

import (
	"context"
	"net/http"
	"net/url"

	"cnpj-lookup/internal/common/errors"
	"cnpj-lookup/internal/common/logger"
	"cnpj-lookup/internal/lookup"
	"cnpj-lookup/internal/view"
	"cnpj-lookup/internal/view/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// ReadinessCheck reports whether a dependency can serve traffic.
type ReadinessCheck func(ctx context.Context) error

type Handler struct {
	looker     lookup.Looker
	dispatcher *view.Dispatcher
	sessions   store.Store
	logger     logger.Logger
	checks     map[string]ReadinessCheck
}

func NewHandler(looker lookup.Looker, dispatcher *view.Dispatcher, sessions store.Store, log logger.Logger) *Handler {
	return &Handler{
		looker:     looker,
		dispatcher: dispatcher,
		sessions:   sessions,
		logger:     log,
		checks:     make(map[string]ReadinessCheck),
	}
}

// AddReadinessCheck registers a dependency probed by /ready.
func (h *Handler) AddReadinessCheck(name string, check ReadinessCheck) {
	h.checks[name] = check
}

type SessionResponse struct {
	SessionID string    `json:"sessionId"`
	Page      view.Page `json:"page"`
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	failed := map[string]string{}
	for name, check := range h.checks {
		if err := check(r.Context()); err != nil {
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		h.logger.Warn("readiness check failed", map[string]interface{}{"checks": failed})
		sendJSON(w, http.StatusServiceUnavailable, map[string]interface{}{"status": "not ready", "checks": failed})
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LookupCNPJ is the session-less lookup. A "/" in the identifier must be
// sent percent-encoded.
func (h *Handler) LookupCNPJ(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "cnpj"))
	if err != nil {
		sendErr(w, errors.NewInvalidFormatError(chi.URLParam(r, "cnpj")))
		return
	}

	result, err := h.looker.Lookup(r.Context(), raw)
	if err != nil {
		sendErr(w, err)
		return
	}

	sendJSON(w, http.StatusOK, result)
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	state := view.NewState()

	if err := h.sessions.Save(r.Context(), id, state); err != nil {
		h.logError(r, "create session failed", err)
		sendErr(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, SessionResponse{SessionID: id, Page: view.Render(state, view.Feedback{})})
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	state, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		sendErr(w, err)
		return
	}

	sendJSON(w, http.StatusOK, SessionResponse{SessionID: id, Page: view.Render(state, view.Feedback{})})
}

// DispatchAction applies one action to the session and returns the new
// page. Concurrent actions on one session are not serialized; the last
// save wins.
func (h *Handler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var action view.Action
	if err := decodeJSON(r, &action); err != nil {
		sendErr(w, err)
		return
	}

	state, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		sendErr(w, err)
		return
	}

	out, err := h.dispatcher.Dispatch(r.Context(), state, action)
	if err != nil {
		sendErr(w, err)
		return
	}

	if err := h.sessions.Save(r.Context(), id, out.State); err != nil {
		h.logError(r, "save session failed", err)
		sendErr(w, err)
		return
	}

	sendJSON(w, http.StatusOK, SessionResponse{SessionID: id, Page: view.Render(out.State, out.Feedback)})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Delete(r.Context(), id); err != nil {
		sendErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		sendErr(w, errors.NewSessionNotFoundError(raw))
		return "", false
	}
	return id.String(), true
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg, map[string]interface{}{
		"requestId": middleware.GetReqID(r.Context()),
		"path":      r.URL.Path,
		"error":     err.Error(),
	})
}
