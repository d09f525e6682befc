package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/config"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
	"github.com/yourusername/telegram-media-vault/internal/domain/media/repository/memory"
)

func newAdminServer(cache *memory.Cache) *Server {
	return NewServer(
		&config.ServerConfig{Host: "127.0.0.1", Port: 0},
		&config.WebhookConfig{},
		&recordingDispatcher{},
		cache,
		zerolog.Nop(),
	)
}

func TestHealthz(t *testing.T) {
	server := newAdminServer(memory.New(0))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if body["ok"] != true {
		t.Errorf("Expected ok=true, got %v", body)
	}
}

func TestCacheKeys(t *testing.T) {
	cache := memory.New(0)
	cache.Put("file-1", entities.CacheEntry{Data: []byte("x")})
	cache.Put("file-2", entities.CacheEntry{Data: []byte("y")})
	server := newAdminServer(cache)

	req := httptest.NewRequest(http.MethodGet, "/cache_keys", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Count int      `json:"count"`
		Keys  []string `json:"keys"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if body.Count != 2 || len(body.Keys) != 2 {
		t.Errorf("Expected two keys, got %+v", body)
	}
}

func TestDeleteCache(t *testing.T) {
	cache := memory.New(0)
	cache.Put("file-1", entities.CacheEntry{Data: []byte("x")})
	server := newAdminServer(cache)

	// present key
	req := httptest.NewRequest(http.MethodPost, "/admin/delete_cache/file-1", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if _, ok := cache.Get("file-1"); ok {
		t.Error("Expected entry removed")
	}

	// absent key
	req = httptest.NewRequest(http.MethodPost, "/admin/delete_cache/file-1", nil)
	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON body: %v", err)
	}
	if body["deleted"] != nil {
		t.Errorf("Expected deleted=null for absent key, got %v", body)
	}
}
