// Package rippledtest provides a fake rippled websocket endpoint for
// tests.
package rippledtest

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// Reply is what a Handler wants sent back for a request.
type Reply struct {
	Result       json.RawMessage
	Error        string // when not empty, reply with status "error"
	ErrorMessage string
	Delay        time.Duration
}

type Handler func(req map[string]interface{}) *Reply

type Server struct {
	*httptest.Server
	URL string // ws://

	// When true, a stream message without id precedes each reply.
	Noise bool

	mu       sync.Mutex
	handlers map[string]Handler
	requests []map[string]interface{}
	conns    []*websocket.Conn
}

func NewServer(t testing.TB) *Server {
	s := &Server{
		handlers: make(map[string]Handler),
	}
	upgrader := websocket.Upgrader{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %s", err)
			return
		}
		s.serve(t, conn)
	}))
	s.URL = "ws" + strings.TrimPrefix(s.Server.URL, "http")
	return s
}

// Handle registers a handler for a command.
func (s *Server) Handle(command string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[command] = h
}

// Requests returns the requests received so far.
func (s *Server) Requests() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]interface{}(nil), s.requests...)
}

// Drop closes every client connection, as a server going away would.
func (s *Server) Drop() {
	s.mu.Lock()
	conns := s.conns
	s.conns = nil
	s.mu.Unlock()
	for _, conn := range conns {
		conn.Close()
	}
}

func (s *Server) serve(t testing.TB, conn *websocket.Conn) {
	defer conn.Close()
	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.mu.Unlock()
	var writeMu sync.Mutex
	write := func(v interface{}) {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.WriteJSON(v)
	}

	for {
		req := make(map[string]interface{})
		err := conn.ReadJSON(&req)
		if err != nil {
			return
		}

		s.mu.Lock()
		s.requests = append(s.requests, req)
		h, ok := s.handlers[req["command"].(string)]
		noise := s.Noise
		s.mu.Unlock()

		go func() {
			reply := &Reply{Error: "unknownCmd", ErrorMessage: "Unknown method."}
			if ok {
				reply = h(req)
			}
			if reply.Delay > 0 {
				time.Sleep(reply.Delay)
			}
			if noise {
				write(map[string]interface{}{"type": "ledgerClosed", "ledger_index": 1})
			}

			res := map[string]interface{}{
				"id":   req["id"],
				"type": "response",
			}
			if reply.Error != "" {
				res["status"] = "error"
				res["error"] = reply.Error
				res["error_message"] = reply.ErrorMessage
				res["request"] = req
			} else {
				res["status"] = "success"
				res["result"] = reply.Result
			}
			write(res)
		}()
	}
}

// Result replies with a fixed result.
func Result(raw json.RawMessage) Handler {
	return func(map[string]interface{}) *Reply {
		return &Reply{Result: raw}
	}
}

// NotFound replies the way rippled does for a missing account.
func NotFound() Handler {
	return func(map[string]interface{}) *Reply {
		return &Reply{Error: "actNotFound", ErrorMessage: "Account not found."}
	}
}

// Fixture reads a JSON file, typically under testdata.
func Fixture(t testing.TB, filename string) json.RawMessage {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	return json.RawMessage(b)
}
