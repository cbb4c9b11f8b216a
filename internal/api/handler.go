// Package api exposes the per-user reading log session over JSON HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"readinglog/internal/app"
	"readinglog/internal/catalog"
	"readinglog/internal/httpx"
	"readinglog/internal/reconcile"
	"readinglog/internal/store"
	"readinglog/internal/validation"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	sessions *Registry
	log      *logrus.Entry
}

func NewHandler(sessions *Registry, log *logrus.Entry) *Handler {
	return &Handler{sessions: sessions, log: log.WithField("component", "api")}
}

// stale marks a response built from the previous collection because the
// reload failed.
var stale = httpx.Meta{"stale": true}

// entry resolves the caller's session entry. It writes the error response
// and returns nil when there is no authenticated user. loadErr is set when
// this request created the session and some collection failed to load.
func (h *Handler) entry(w http.ResponseWriter, r *http.Request) (e *Entry, loadErr error) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return nil, nil
	}
	e, loadErr = h.sessions.Get(r.Context(), userID)
	if loadErr != nil {
		h.log.WithError(loadErr).WithField("user_id", userID).Warn("session loaded with errors")
	}
	return e, loadErr
}

// respondFetched writes a fetched collection. A failed reload still answers
// with the previous collection, flagged stale.
func (h *Handler) respondFetched(w http.ResponseWriter, r *http.Request, data any, err error) {
	switch {
	case err == nil:
		httpx.JSONSuccess(w, r, data, nil)
	case errors.Is(err, app.ErrClosed):
		h.writeError(w, r, err)
	default:
		httpx.JSONSuccess(w, r, data, stale)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
		case errors.Is(err, io.EOF):
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Request body is required", nil)
		default:
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		}
		return false
	}
	return true
}

// writeError maps domain errors onto HTTP statuses. Store and catalog
// failures other than not-found are reported as a bad gateway without
// internal detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid input", details(verr))
	case errors.Is(err, app.ErrNoActiveChild):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "NO_ACTIVE_CHILD", "Select a child first", nil)
	case errors.Is(err, app.ErrUnknownChild):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "UNKNOWN_CHILD", "Unknown child", nil)
	case errors.Is(err, app.ErrValidation):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", validationMessage(err), nil)
	case errors.Is(err, catalog.ErrCriteriaRequired), errors.Is(err, catalog.ErrUnknownOption):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_SEARCH", err.Error(), nil)
	case errors.Is(err, catalog.ErrNoPreviousSearch):
		httpx.JSONError(w, r, http.StatusConflict, "NO_PREVIOUS_SEARCH", "Run a search first", nil)
	case errors.Is(err, app.ErrBusy):
		httpx.JSONError(w, r, http.StatusConflict, "BUSY", "The same operation is already in progress", nil)
	case errors.Is(err, reconcile.ErrInvalidTransition):
		httpx.JSONError(w, r, http.StatusConflict, "INVALID_STATE", err.Error(), nil)
	case errors.Is(err, app.ErrClosed):
		httpx.JSONError(w, r, http.StatusServiceUnavailable, "SESSION_CLOSED", "Session expired, retry the request", nil)
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	case errors.Is(err, store.ErrInvalidReference):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "INVALID_REFERENCE", "Referenced child or book does not exist", nil)
	default:
		h.log.WithError(err).WithFields(logrus.Fields{
			"request_id": httpx.RequestIDFrom(r),
			"path":       r.URL.Path,
		}).Error("upstream request failed")
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream service failed", nil)
	}
}

func details(verr *validation.Error) []httpx.ErrorDetail {
	out := make([]httpx.ErrorDetail, len(verr.Fields))
	for i, f := range verr.Fields {
		out[i] = httpx.ErrorDetail{Field: f.Field, Message: f.Message}
	}
	return out
}

func validationMessage(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, ": "); ok && rest != "" {
		return rest
	}
	return "Invalid input"
}

// isReloadFailure reports whether err came from reloading after the change
// was applied, rather than from rejecting it.
func isReloadFailure(err error) bool {
	return !app.IsValidation(err) && !errors.Is(err, app.ErrClosed)
}
