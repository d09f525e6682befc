package http

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-telegram/bot/models"
)

// secretTokenHeader is set by Telegram when the webhook was registered with
// a secret token
const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// handleWebhook accepts POST /webhook/{secret}: authenticate, parse, hand
// off to the dispatch pool and answer 200 immediately. The response never
// reflects the dispatch outcome; Telegram only needs the fast acknowledge.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	if s.secret != "" {
		// Header takes precedence when present; the path segment is the
		// fallback for deployments not using Telegram's secret_token.
		if header := r.Header.Get(secretTokenHeader); header != "" {
			if !tokenEqual(header, s.secret) {
				s.logger.Warn().Msg("Webhook secret header mismatch")
				writeJSON(w, http.StatusForbidden, map[string]string{"error": "invalid webhook secret header"})
				return
			}
		} else if !tokenEqual(r.PathValue("secret"), s.secret) {
			s.logger.Warn().Msg("Webhook secret path mismatch")
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "invalid webhook path secret"})
			return
		}
	}

	var update models.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		s.logger.Error().Err(err).Msg("Failed to parse webhook JSON")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	if !s.dispatcher.Enqueue(&update) {
		// Queue full: drop rather than block the platform. Telegram would
		// otherwise retry the same update against a saturated service.
		s.logger.Warn().Int64("update_id", update.ID).Msg("Dispatch queue full, update dropped")
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// tokenEqual compares secrets in constant time
func tokenEqual(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
