package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSendBatch(t *testing.T) {
	t.Run("delivers a batch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/messages/batch" {
				t.Errorf("path: got %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("authorization: got %s", got)
			}

			var req batchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if len(req.Tokens) != 2 || req.Title != "title" {
				t.Errorf("request: got %+v", req)
			}

			json.NewEncoder(w).Encode(batchResponse{Accepted: 2})
		}))
		defer server.Close()

		client := NewClient(server.URL, "secret", 3)
		accepted, err := client.SendBatch(context.Background(), []string{"a", "b"}, "title", "body", map[string]string{"type": "REMINDER"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted != 2 {
			t.Errorf("accepted: got %d, want 2", accepted)
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		client := NewClient("http://unreachable.invalid", "", 3)
		accepted, err := client.SendBatch(context.Background(), nil, "title", "body", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted != 0 {
			t.Errorf("accepted: got %d, want 0", accepted)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			json.NewEncoder(w).Encode(batchResponse{Accepted: 1})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", 3)
		accepted, err := client.SendBatch(context.Background(), []string{"a"}, "title", "body", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted != 1 {
			t.Errorf("accepted: got %d, want 1", accepted)
		}
		if calls.Load() != 3 {
			t.Errorf("calls: got %d, want 3", calls.Load())
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL, "", 2)
		if _, err := client.SendBatch(context.Background(), []string{"a"}, "title", "body", nil); err == nil {
			t.Fatal("want error after exhausted retries")
		}
	})
}
