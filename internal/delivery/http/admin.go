package http

import (
	"net/http"
	"time"
)

// Administrative endpoints. Unauthenticated by default — a deployment
// hardening concern, kept compatible with the original surface.

// handleHealthz answers the health probe
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleCacheKeys lists the cached file identifiers
func (s *Server) handleCacheKeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	keys := s.cache.Keys()
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(keys),
		"keys":  keys,
	})
}

// handleDeleteCache removes one cache entry by file identifier
func (s *Server) handleDeleteCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	fileID := r.PathValue("file_id")
	if !s.cache.Delete(fileID) {
		writeJSON(w, http.StatusOK, map[string]any{"deleted": nil, "msg": "not found"})
		return
	}

	s.logger.Info().Str("file_id", fileID).Msg("Cache entry deleted")
	writeJSON(w, http.StatusOK, map[string]any{"deleted": fileID})
}
