package xrpldata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, func()) {
	ts := httptest.NewServer(h)
	c, err := NewClient(ts.URL + "/api/v1/")
	if err != nil {
		t.Fatal(err)
	}
	c.Backoff = time.Millisecond
	return c, ts.Close
}

func TestTokenCreation(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tokencreation" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("issuer") != "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz" || q.Get("currency") != "534F4C4F00000000000000000000000000000000" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		fmt.Fprintf(w, `{"issuer":%q,"currency":%q,"date":"2021-03-16T12:33:51.000Z"}`, q.Get("issuer"), q.Get("currency"))
	})
	defer done()

	tc, err := c.TokenCreation(context.Background(), "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz", "SOLO")
	if err != nil {
		t.Fatal(err)
	}
	if tc == nil {
		t.Fatal("expected token creation")
	}
	want := time.Date(2021, 3, 16, 12, 33, 51, 0, time.UTC)
	if !tc.Time().Equal(want) {
		t.Errorf("wanted %s, got %s", want, tc.Time())
	}
}

func TestTokenCreationUnknown(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	defer done()

	tc, err := c.TokenCreation(context.Background(), "rA", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if tc != nil {
		t.Errorf("wanted nil, got %+v", tc)
	}
}

func TestTokenCreationBadCurrency(t *testing.T) {
	var requests int32
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		http.NotFound(w, r)
	})
	defer done()

	_, err := c.TokenCreation(context.Background(), "rA", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err == nil {
		t.Error("expected error for an oversized currency code")
	}
	if n := atomic.LoadInt32(&requests); n != 0 {
		t.Errorf("expected no request, got %d", n)
	}
}

func TestRetry(t *testing.T) {
	var count int32
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&count, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"date":"2020-01-02"}`)
	})
	defer done()

	tc, err := c.TokenCreation(context.Background(), "rA", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if tc == nil || tc.Time().Year() != 2020 {
		t.Errorf("unexpected result %+v", tc)
	}
	if atomic.LoadInt32(&count) != 3 {
		t.Errorf("expected 3 attempts, got %d", count)
	}

	// give up eventually
	atomic.StoreInt32(&count, -100)
	_, err = c.TokenCreation(context.Background(), "rA", "USD")
	if err == nil {
		t.Error("expected error after retries exhausted")
	}
}

func TestBadRequestNotRetried(t *testing.T) {
	var count int32
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&count, 1)
		http.Error(w, "bad", http.StatusBadRequest)
	})
	defer done()

	_, err := c.TokenCreation(context.Background(), "rA", "USD")
	if err == nil {
		t.Error("expected error")
	}
	if atomic.LoadInt32(&count) != 1 {
		t.Errorf("expected 1 attempt, got %d", count)
	}
}
