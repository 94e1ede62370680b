package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/JC2405/medicitas-client/client"
	"github.com/JC2405/medicitas-client/storage"
)

// newTestServices wires the full stack (file store, API client, services)
// against an httptest backend, with a bearer token already persisted.
func newTestServices(t *testing.T, handler http.Handler) *Services {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.SaveToken(context.Background(), "tok-test"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	api := client.New(client.Config{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
		Store:   store,
	})
	return New(api)
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}
