package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestMessage(t *testing.T) {
	var got slackWebhookMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	webhook, _ := url.Parse(ts.URL)
	err := Message(context.Background(), webhook, "payload %s signed", "f94fc5d2")
	if err != nil {
		t.Fatal(err)
	}
	if got.Text != "payload f94fc5d2 signed" {
		t.Errorf("unexpected text %q", got.Text)
	}
}

func TestMessageNoWebhook(t *testing.T) {
	if err := Message(context.Background(), nil, "nothing"); err != nil {
		t.Error(err)
	}
}

func TestMessageRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer ts.Close()

	webhook, _ := url.Parse(ts.URL)
	if err := Message(context.Background(), webhook, "x"); err == nil {
		t.Error("expected error")
	}
}
