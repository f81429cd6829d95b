// Package handlers exposes the advisory engine over JSON HTTP: typed
// advisory requests, free-text chat, and session state management.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sarvajith2007/FINBOT/internal/cache"
	"github.com/Sarvajith2007/FINBOT/internal/models"
	"github.com/Sarvajith2007/FINBOT/internal/session"
)

type Handler struct {
	store    session.Store
	cache    cache.Cache
	cacheTTL time.Duration
}

func New(store session.Store, resultCache cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		store:    store,
		cache:    resultCache,
		cacheTTL: cacheTTL,
	}
}

// Routes mounts every endpoint on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/advise", h.Advise)
		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Put("/profile", h.UpdateProfile)
			r.Post("/expenses", h.AddExpenses)
			r.Put("/holdings", h.SetHoldings)
			r.Post("/chat", h.Chat)
		})
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps engine errors to HTTP statuses: the validation sentinels
// become 400, unknown sessions 404, everything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrInvalidRule),
		errors.Is(err, models.ErrInvalidHoldings),
		errors.Is(err, models.ErrUnknownCategory),
		errors.Is(err, models.ErrUnsupportedTopic):
		status = http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", models.ErrInvalidInput, err)
	}
	return nil
}
