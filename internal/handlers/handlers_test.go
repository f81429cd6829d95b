package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sarvajith2007/FINBOT/internal/cache"
	"github.com/Sarvajith2007/FINBOT/internal/models"
	"github.com/Sarvajith2007/FINBOT/internal/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := session.NewMemoryStore()
	h := New(store, cache.NewMemoryCache(), time.Minute)

	r := chi.NewRouter()
	h.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	encoded, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, srv.URL+"/api/sessions", models.UserProfile{
		Name:          "Riley",
		Age:           30,
		AnnualIncome:  60000,
		RiskTolerance: models.RiskModerate,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating session, got %d", resp.StatusCode)
	}

	var sess session.Session
	decodeBody(t, resp, &sess)
	if sess.ID == "" {
		t.Fatal("expected a session ID")
	}
	return sess.ID
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from health check, got %d", resp.StatusCode)
	}
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/sessions/"+id+"/profile", models.UserProfile{
		Name:          "Riley",
		Age:           31,
		AnnualIncome:  66000,
		RiskTolerance: models.RiskAggressive,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 updating profile, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/sessions/"+id+"/expenses", []models.ExpenseEntry{
		{Category: models.CategoryHousing, Amount: 1800, Timestamp: time.Now()},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 adding expenses, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/sessions/"+id+"/holdings", models.Holdings{
		models.AssetStocks: 40000,
		models.AssetBonds:  10000,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 setting holdings, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var sess session.Session
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id, nil)
	decodeBody(t, resp, &sess)
	if sess.Profile.Age != 31 {
		t.Errorf("expected updated age 31, got %d", sess.Profile.Age)
	}
	if len(sess.Expenses) != 1 {
		t.Errorf("expected 1 expense, got %d", len(sess.Expenses))
	}
	if sess.Holdings[models.AssetStocks] != 40000 {
		t.Errorf("expected 40000 in stocks, got %.2f", sess.Holdings[models.AssetStocks])
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/sessions/"+id, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 deleting session, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSessionValidation(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{
			name:       "invalid profile on create",
			method:     http.MethodPost,
			path:       "/api/sessions",
			body:       models.UserProfile{Age: -1, RiskTolerance: models.RiskModerate},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown expense category",
			method:     http.MethodPost,
			path:       "/api/sessions/" + id + "/expenses",
			body:       []models.ExpenseEntry{{Category: "yachts", Amount: 50}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative expense amount",
			method:     http.MethodPost,
			path:       "/api/sessions/" + id + "/expenses",
			body:       []models.ExpenseEntry{{Category: models.CategoryFood, Amount: -5}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative holding",
			method:     http.MethodPut,
			path:       "/api/sessions/" + id + "/holdings",
			body:       models.Holdings{models.AssetStocks: -100},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown session",
			method:     http.MethodGet,
			path:       "/api/sessions/missing",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, tt.method, srv.URL+tt.path, tt.body)
			defer resp.Body.Close()
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestAdvise(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]any{
		"topic": "calculator",
		"params": map[string]any{
			"calculation":        "compound",
			"principal":          10000,
			"annual_rate_pct":    7,
			"compounds_per_year": 12,
			"years":              20,
		},
	}

	resp := postJSON(t, srv.URL+"/api/advise", body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from advise, got %d", resp.StatusCode)
	}

	var result struct {
		Topic   string             `json:"topic"`
		Figures map[string]float64 `json:"figures"`
		Advice  []string           `json:"advice"`
	}
	decodeBody(t, resp, &result)

	if result.Topic != "calculator" {
		t.Errorf("expected topic calculator, got %q", result.Topic)
	}
	if math.Abs(result.Figures["final_value"]-40387.39) > 0.5 {
		t.Errorf("expected final value near 40387.39, got %.2f", result.Figures["final_value"])
	}
	if len(result.Advice) == 0 {
		t.Error("expected at least one advice line")
	}
}

func TestAdviseIsMemoized(t *testing.T) {
	srv := newTestServer(t)

	body := map[string]any{
		"topic": "investment",
		"profile": map[string]any{
			"name":           "Riley",
			"age":            30,
			"annual_income":  60000,
			"risk_tolerance": "moderate",
		},
	}

	read := func() string {
		resp := postJSON(t, srv.URL+"/api/advise", body)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 from advise, got %d", resp.StatusCode)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(resp.Body); err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		return buf.String()
	}

	first := read()
	second := read()
	if first != second {
		t.Error("expected identical responses for identical request bodies")
	}
}

func TestAdviseRejectsUnknownTopic(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/advise", map[string]any{"topic": "astrology"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown topic, got %d", resp.StatusCode)
	}
}

func TestChat(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)
	chatURL := fmt.Sprintf("%s/api/sessions/%s/chat", srv.URL, id)

	resp := postJSON(t, chatURL, map[string]string{
		"message": "calculate compound interest on $10,000 at 7% over 20 years",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from chat, got %d", resp.StatusCode)
	}

	var reply struct {
		Topic   string             `json:"topic"`
		Reply   []string           `json:"reply"`
		Figures map[string]float64 `json:"figures"`
	}
	decodeBody(t, resp, &reply)

	if reply.Topic != "calculator" {
		t.Errorf("expected calculator topic, got %q", reply.Topic)
	}
	if math.Abs(reply.Figures["final_value"]-40387.39) > 0.5 {
		t.Errorf("expected final value near 40387.39, got %.2f", reply.Figures["final_value"])
	}

	resp = postJSON(t, chatURL, map[string]string{"message": "hello"})
	decodeBody(t, resp, &reply)
	if reply.Topic != "general" {
		t.Errorf("expected general topic for a greeting, got %q", reply.Topic)
	}
	if len(reply.Reply) == 0 {
		t.Error("expected a greeting reply")
	}

	var sess session.Session
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/sessions/"+id, nil)
	decodeBody(t, resp, &sess)
	if len(sess.Transcript) != 4 {
		t.Errorf("expected 4 transcript messages after 2 exchanges, got %d", len(sess.Transcript))
	}
}

func TestChatDegradesGracefullyOnMissingNumbers(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	resp := postJSON(t, fmt.Sprintf("%s/api/sessions/%s/chat", srv.URL, id), map[string]string{
		"message": "what would my mortgage payment be?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with a conversational fallback, got %d", resp.StatusCode)
	}

	var reply struct {
		Reply []string `json:"reply"`
	}
	decodeBody(t, resp, &reply)
	if len(reply.Reply) == 0 {
		t.Fatal("expected a fallback reply asking for numbers")
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	srv := newTestServer(t)
	id := createSession(t, srv)

	resp := postJSON(t, fmt.Sprintf("%s/api/sessions/%s/chat", srv.URL, id), map[string]string{"message": "  "})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty message, got %d", resp.StatusCode)
	}
}
