package telegram

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/telegram-media-vault/config"
	mediaerrors "github.com/yourusername/telegram-media-vault/internal/domain/media/errors"
	pkgerrors "github.com/yourusername/telegram-media-vault/pkg/errors"
)

var testTelegramConfig = config.TelegramConfig{
	BotToken:    "123456:test-token",
	APIEndpoint: "https://api.telegram.org",
}

// downloadClient builds a Client pointed at a test file endpoint, skipping
// the Bot API side entirely
func downloadClient(fileBase string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		fileBase:   fileBase,
		logger:     zerolog.Nop(),
	}
}

func TestDownloadByPath(t *testing.T) {
	payload := []byte("binary-content")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photos/file_1.jpg" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	client := downloadClient(srv.URL)

	got, err := client.DownloadByPath(context.Background(), "photos/file_1.jpg")
	if err != nil {
		t.Fatalf("DownloadByPath failed: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Downloaded bytes differ: %q", got)
	}
}

func TestDownloadByPath_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := downloadClient(srv.URL)

	_, err := client.DownloadByPath(context.Background(), "photos/expired.jpg")
	if err == nil {
		t.Fatal("Expected error for non-success status")
	}

	var remoteErr *pkgerrors.RemoteCallError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("Expected RemoteCallError, got %T: %v", err, err)
	}
	if remoteErr.Status != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", remoteErr.Status)
	}
}

func TestSendMessage_Validation(t *testing.T) {
	client := &Client{logger: zerolog.Nop()}

	if err := client.SendMessage(context.Background(), 0, "text", nil, ""); !errors.Is(err, mediaerrors.ErrEmptyChatID) {
		t.Errorf("Expected ErrEmptyChatID, got %v", err)
	}
	if err := client.SendMessage(context.Background(), 111, "", nil, ""); !errors.Is(err, mediaerrors.ErrEmptyMessage) {
		t.Errorf("Expected ErrEmptyMessage, got %v", err)
	}
}

func TestSendPhoto_RequiresSource(t *testing.T) {
	client := &Client{logger: zerolog.Nop()}

	err := client.SendPhoto(context.Background(), 111, "", nil, "")
	if !errors.Is(err, mediaerrors.ErrNoMediaSource) {
		t.Errorf("Expected ErrNoMediaSource, got %v", err)
	}
}

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient(&testTelegramConfig, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient with token failed: %v", err)
	}

	empty := testTelegramConfig
	empty.BotToken = ""
	if _, err := NewClient(&empty, zerolog.Nop()); err == nil {
		t.Error("Expected error for empty token")
	}
}
