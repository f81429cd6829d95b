package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Sarvajith2007/FINBOT/internal/advisor"
	"github.com/Sarvajith2007/FINBOT/internal/cache"
	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// Advise runs a typed advisory request through the engine. Results are
// memoized on the raw request body; the engine is pure, so identical bodies
// always produce identical results.
func (h *Handler) Advise(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fmt.Errorf("%w: unreadable request body", models.ErrInvalidInput))
		return
	}

	key := cache.Key("advise", body)
	if cached, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(cached))
		return
	}

	var req advisor.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, fmt.Errorf("%w: malformed request body: %v", models.ErrInvalidInput, err))
		return
	}

	result, err := advisor.HandleRequest(req)
	if err != nil {
		writeError(w, err)
		return
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.cache.Set(r.Context(), key, string(encoded), h.cacheTTL); err != nil {
		slog.Warn("failed to cache result", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(encoded)
}
