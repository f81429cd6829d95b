package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sarvajith2007/FINBOT/internal/advisor"
	"github.com/Sarvajith2007/FINBOT/internal/intent"
	"github.com/Sarvajith2007/FINBOT/internal/models"
	"github.com/Sarvajith2007/FINBOT/internal/session"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	SessionID string             `json:"session_id"`
	Topic     advisor.Topic      `json:"topic"`
	Reply     []string           `json:"reply"`
	Figures   map[string]float64 `json:"figures,omitempty"`
}

// Chat routes a free-text message through the intent layer and the engine,
// filling in profile, expenses, and holdings from the session. Engine
// validation failures come back as a conversational reply rather than an
// error status; the transcript records both sides either way.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, fmt.Errorf("%w: empty message", models.ErrInvalidInput))
		return
	}

	sessionID := chi.URLParam(r, "id")
	sess, err := h.store.Get(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	topic, params := intent.Parse(req.Message)
	switch topic {
	case advisor.TopicBudget:
		params.Expenses = sess.Expenses
	case advisor.TopicInvestment:
		params.Holdings = sess.Holdings
	}

	resp := chatResponse{SessionID: sessionID, Topic: topic}
	result, err := advisor.HandleRequest(advisor.Request{
		Topic:   topic,
		Profile: sess.Profile,
		Params:  params,
	})
	switch {
	case err == nil:
		resp.Reply = result.Advice
		resp.Figures = result.Figures
	case isEngineRejection(err):
		resp.Reply = []string{
			"I couldn't work that out: " + err.Error() + ".",
			"Try including the numbers, like \"$10,000 at 7% for 20 years\".",
		}
	default:
		writeError(w, err)
		return
	}

	now := time.Now()
	if err := h.store.AppendTranscript(r.Context(), sessionID,
		session.Message{Role: "user", Text: req.Message, Timestamp: now},
		session.Message{Role: "advisor", Text: strings.Join(resp.Reply, "\n"), Timestamp: now},
	); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isEngineRejection(err error) bool {
	return errors.Is(err, models.ErrInvalidInput) ||
		errors.Is(err, models.ErrInvalidRule) ||
		errors.Is(err, models.ErrInvalidHoldings) ||
		errors.Is(err, models.ErrUnknownCategory)
}
