package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// CreateSession starts a new session from a profile.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := decode(r, &profile); err != nil {
		writeError(w, err)
		return
	}
	if err := profile.Validate(); err != nil {
		writeError(w, err)
		return
	}

	sess, err := h.store.Create(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// GetSession returns the full session state.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// DeleteSession removes a session.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateProfile replaces the session's profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := decode(r, &profile); err != nil {
		writeError(w, err)
		return
	}
	if err := profile.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.UpdateProfile(r.Context(), chi.URLParam(r, "id"), profile); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// AddExpenses appends expense entries to the session's log. Entries are
// checked up front so a bad batch is rejected whole.
func (h *Handler) AddExpenses(w http.ResponseWriter, r *http.Request) {
	var expenses []models.ExpenseEntry
	if err := decode(r, &expenses); err != nil {
		writeError(w, err)
		return
	}
	for _, entry := range expenses {
		if _, ok := entry.Category.Group(); !ok {
			writeError(w, fmt.Errorf("%w: %q", models.ErrUnknownCategory, entry.Category))
			return
		}
		if entry.Amount < 0 {
			writeError(w, fmt.Errorf("%w: expense amount must be non-negative, got %.2f", models.ErrInvalidInput, entry.Amount))
			return
		}
	}

	if err := h.store.AddExpenses(r.Context(), chi.URLParam(r, "id"), expenses); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"added": len(expenses)})
}

// SetHoldings replaces the session's holdings snapshot.
func (h *Handler) SetHoldings(w http.ResponseWriter, r *http.Request) {
	var holdings models.Holdings
	if err := decode(r, &holdings); err != nil {
		writeError(w, err)
		return
	}
	for class, amount := range holdings {
		if amount < 0 {
			writeError(w, fmt.Errorf("%w: %s amount must be non-negative, got %.2f", models.ErrInvalidHoldings, class, amount))
			return
		}
	}

	if err := h.store.SetHoldings(r.Context(), chi.URLParam(r, "id"), holdings); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
