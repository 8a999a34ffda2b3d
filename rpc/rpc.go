// Helpers to make websocket API calls to rippled.
//
// A Client holds one connection.  Each request carries a unique id,
// and the response with the same id is routed back to the caller, so
// any number of requests may be outstanding at once.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/y0ssar1an/q"
)

const (
	Mainnet = "wss://s1.ripple.com"
	Testnet = "wss://testnet.xrpl-labs.com"

	handshakeTimeout = 15 * time.Second
	writeTimeout     = 10 * time.Second
)

var ErrClosed = errors.New("rpc: connection closed")

// Endpoint returns the public server for mainnet or testnet.
func Endpoint(testnet bool) string {
	if testnet {
		return Testnet
	}
	return Mainnet
}

// Response is the envelope of every websocket API response.
// {"id":1,"result":{...},"status":"success","type":"response"}
type Response struct {
	ID     uint64          `json:"id"`
	Status string          `json:"status"`
	Type   string          `json:"type"`
	Result json.RawMessage `json:"result"`

	// Present only when error:
	Error        string          `json:"error,omitempty"`
	ErrorCode    int             `json:"error_code,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Request      json.RawMessage `json:"request,omitempty"`
}

func (r Response) UnmarshalResult(v interface{}) error {
	return json.Unmarshal(r.Result, v)
}

// Examples of potential errors:
// {"error":"actNotFound","error_code":19,"error_message":"Account not found.","id":2,"request":{"account":"r...","command":"account_info","id":2,"strict":true},"status":"error","type":"response"}
type ResultError struct {
	Command  string
	Server   string
	Response Response
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s to %s returned %s: %s (Request: %s)", e.Command, e.Server, e.Response.Error, e.Response.ErrorMessage, string(e.Response.Request))
}

// IsNotFound reports whether err is rippled's answer for a missing
// account or transaction.
func IsNotFound(err error) bool {
	re, ok := errors.Cause(err).(*ResultError)
	if !ok {
		return false
	}
	switch re.Response.Error {
	case "actNotFound", "txnNotFound", "objectNotFound", "entryNotFound":
		return true
	}
	return false
}

type Client struct {
	url  string
	conn *websocket.Conn

	writeMu sync.Mutex

	mu      sync.Mutex // guards fields below
	nextID  uint64
	pending map[uint64]chan *Response
	err     error // set once connection fails or closes

	done chan struct{}
}

func (c *Client) String() string {
	return fmt.Sprintf("websocket API via %s", c.url)
}

// Dial connects to a rippled websocket.
func Dial(ctx context.Context, url string) (*Client, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", url)
	}

	c := &Client{
		url:     url,
		conn:    conn,
		pending: make(map[uint64]chan *Response),
		done:    make(chan struct{}),
	}
	go c.readLoop()

	glog.V(1).Infof("connected to %s", url)
	return c, nil
}

// Close tears down the connection.  Outstanding requests fail with
// ErrClosed.
func (c *Client) Close() error {
	c.writeMu.Lock()
	err := c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	c.writeMu.Unlock()
	if err != nil {
		glog.V(2).Infof("close message to %s: %s", c.url, err)
	}
	c.fail(ErrClosed)
	return c.conn.Close()
}

// Done is closed when the connection is no longer usable.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) fail(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}
	c.err = err
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
	close(c.done)
}

func (c *Client) readLoop() {
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				err = ErrClosed
			}
			c.fail(errors.Wrapf(err, "read from %s", c.url))
			return
		}

		id := jsoniter.Get(msg, "id")
		if id.ValueType() != jsoniter.NumberValue {
			// stream messages (i.e. ledgerClosed) carry no id
			glog.V(3).Infof("ignoring %s message from %s", jsoniter.Get(msg, "type").ToString(), c.url)
			continue
		}

		res := &Response{}
		err = json.Unmarshal(msg, res)
		if err != nil {
			q.Q(string(msg)) // debug
			glog.Errorf("failed to decode response from %s: %s", c.url, err)
			continue
		}

		c.mu.Lock()
		ch, ok := c.pending[res.ID]
		delete(c.pending, res.ID)
		c.mu.Unlock()

		if !ok {
			// caller gave up waiting
			glog.V(2).Infof("dropping response %d from %s", res.ID, c.url)
			continue
		}
		ch <- res // buffered
	}
}

// Request sends a command with params, waits for the matching
// response, and decodes its result into target (unless target is
// nil).
func (c *Client) Request(ctx context.Context, command string, params map[string]interface{}, target interface{}) (*Response, error) {
	c.mu.Lock()
	if c.err != nil {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	c.nextID++
	id := c.nextID
	ch := make(chan *Response, 1)
	c.pending[id] = ch
	c.mu.Unlock()

	req := make(map[string]interface{}, len(params)+2)
	for k, v := range params {
		req[k] = v
	}
	req["id"] = id
	req["command"] = command

	c.writeMu.Lock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err := c.conn.WriteJSON(req)
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return nil, errors.Wrapf(err, "%s to %s", command, c.url)
	}
	glog.V(2).Infof("sent %s (id %d) to %s", command, id, c.url)

	var res *Response
	select {
	case <-ctx.Done():
		c.forget(id)
		return nil, errors.Wrapf(ctx.Err(), "%s to %s", command, c.url)
	case r, ok := <-ch:
		if !ok {
			c.mu.Lock()
			err := c.err
			c.mu.Unlock()
			return nil, errors.Wrapf(err, "%s to %s", command, c.url)
		}
		res = r
	}

	if res.Status != "success" {
		return res, &ResultError{Command: command, Server: c.url, Response: *res}
	}

	if target != nil {
		err = res.UnmarshalResult(target)
		if err != nil {
			q.Q(string(res.Result)) // debug
			return res, errors.Wrapf(err, "failed to parse %s result", command)
		}
	}
	return res, nil
}

func (c *Client) forget(id uint64) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
