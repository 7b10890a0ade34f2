package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mamadbah2/mangsho/internal/config"
)

func TestNotifyPostsAlert(t *testing.T) {
	var gotBody Alert
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(config.AlertConfig{WebhookURL: srv.URL, AuthToken: "secret"})
	err := client.Notify(context.Background(), Alert{Title: "Daily back-office summary", Message: "all good"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}

	if gotBody.Title != "Daily back-office summary" || gotBody.Message != "all good" {
		t.Errorf("payload = %+v", gotBody)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestNotifyFailsOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"receiver offline"}`))
	}))
	defer srv.Close()

	client := NewClient(config.AlertConfig{WebhookURL: srv.URL})
	err := client.Notify(context.Background(), Alert{Title: "t", Message: "m"})
	if err == nil {
		t.Fatal("want error on 502")
	}
	if !strings.Contains(err.Error(), "status=502") || !strings.Contains(err.Error(), "receiver offline") {
		t.Errorf("error = %v", err)
	}
}

func TestNotifyFailsOnUnreachableHost(t *testing.T) {
	client := NewClient(config.AlertConfig{WebhookURL: "http://127.0.0.1:1/hook"})
	if err := client.Notify(context.Background(), Alert{Title: "t", Message: "m"}); err == nil {
		t.Error("want transport error")
	}
}
