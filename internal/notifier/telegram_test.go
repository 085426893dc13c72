package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken123/sendMessage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token123", "chat42")
	tn.BaseURL = srv.URL
	if err := tn.Send("hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got["chat_id"] != "chat42" || got["text"] != "hello" || got["parse_mode"] != "Markdown" {
		t.Errorf("payload = %v", got)
	}
}

func TestSendAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false,"description":"bot was blocked"}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token123", "chat42")
	tn.BaseURL = srv.URL
	if err := tn.Send("hello"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSendPhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bottoken123/sendPhoto" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("chat_id"); got != "chat42" {
			t.Errorf("chat_id = %q", got)
		}
		if _, _, err := r.FormFile("photo"); err != nil {
			t.Errorf("photo part missing: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "chart.png")
	if err := os.WriteFile(path, []byte("fake png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	tn := NewTelegramNotifier("token123", "chat42")
	tn.BaseURL = srv.URL
	if err := tn.SendPhoto(path); err != nil {
		t.Fatalf("send photo: %v", err)
	}
}

func TestSendPhotoMissingFile(t *testing.T) {
	tn := NewTelegramNotifier("token123", "chat42")
	if err := tn.SendPhoto(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
