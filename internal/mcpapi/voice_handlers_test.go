package mcpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/krishvadhani19/resemble-project/internal/resemble"
)

func TestListVoices_PassThrough(t *testing.T) {
	body := `{"data":[{"uuid":"v1","name":"Amy","language":"en-US"}],"meta":{"page":1,"page_size":10,"total":1}}`

	r, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if got := q.Get("page"); got != "1" {
			t.Errorf("page = %q, want 1", got)
		}
		if got := q.Get("page_size"); got != "10" {
			t.Errorf("page_size = %q, want 10", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))

	res, err := r.handleListVoices(context.Background(), callRequest("list_voices", map[string]any{}))
	if err != nil {
		t.Fatalf("handleListVoices() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, text = %q", resultText(t, res))
	}

	text := resultText(t, res)
	if text != body {
		t.Errorf("text = %s, want verbatim provider body", text)
	}

	var doc struct {
		Data []map[string]any `json:"data"`
		Meta struct {
			Page     int `json:"page"`
			PageSize int `json:"page_size"`
			Total    int `json:"total"`
		} `json:"meta"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	if len(doc.Data) != 1 {
		t.Errorf("data length = %d, want 1", len(doc.Data))
	}
	if doc.Meta.Page != 1 || doc.Meta.PageSize != 10 {
		t.Errorf("meta = %+v, want page 1 page_size 10", doc.Meta)
	}
}

func TestListVoices_CustomPagination(t *testing.T) {
	r, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if got := q.Get("page"); got != "3" {
			t.Errorf("page = %q, want 3", got)
		}
		if got := q.Get("page_size"); got != "25" {
			t.Errorf("page_size = %q, want 25", got)
		}
		_, _ = w.Write([]byte(`{"data":[],"meta":{"page":3,"page_size":25,"total":0}}`))
	}))

	// Arguments arrive as float64 after JSON decoding.
	res, err := r.handleListVoices(context.Background(), callRequest("list_voices", map[string]any{
		"page":      float64(3),
		"page_size": float64(25),
	}))
	if err != nil {
		t.Fatalf("handleListVoices() error = %v", err)
	}
	if res.IsError {
		t.Fatalf("IsError = true, text = %q", resultText(t, res))
	}
}

func TestListVoices_ProviderError(t *testing.T) {
	r, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))

	res, err := r.handleListVoices(context.Background(), callRequest("list_voices", map[string]any{}))
	if err != nil {
		t.Fatalf("handleListVoices() error = %v, want nil (failures stay in the result)", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true")
	}

	var doc map[string]string
	if err := json.Unmarshal([]byte(resultText(t, res)), &doc); err != nil {
		t.Fatalf("error payload is not a JSON document: %v", err)
	}
	if doc["error"] == "" {
		t.Error(`doc["error"] is empty, want a non-empty description`)
	}
}

func TestListVoices_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	srv.Close() // connection refused from here on

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	r := NewRouter(RouterConfig{VoiceUUID: "55592656", OutputFormat: "mp3", OutputDir: t.TempDir()},
		logger,
		resemble.New(resemble.ClientConfig{APIKey: "test-key", VoicesURL: srv.URL}))

	res, err := r.handleListVoices(context.Background(), callRequest("list_voices", map[string]any{}))
	if err != nil {
		t.Fatalf("handleListVoices() error = %v, want nil (failures stay in the result)", err)
	}
	if !res.IsError {
		t.Error("IsError = false, want true")
	}

	var doc map[string]string
	if err := json.Unmarshal([]byte(resultText(t, res)), &doc); err != nil {
		t.Fatalf("error payload is not a JSON document: %v", err)
	}
	if doc["error"] == "" {
		t.Error(`doc["error"] is empty, want a non-empty description`)
	}
}
