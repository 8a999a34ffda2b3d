package xumm

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

// Wait blocks until the payload is resolved, cancelled or expired, then
// returns its final state.  It follows the payload's status websocket,
// and falls back to polling when that is unavailable.
func (this *Client) Wait(ctx context.Context, created *Created) (*PayloadStatus, error) {
	if created.Refs.WebsocketStatus != "" {
		err := this.watch(ctx, created.Refs.WebsocketStatus)
		if err == nil {
			return this.Get(ctx, created.UUID)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		glog.Warningf("payload %s status feed: %s (polling instead)", created.UUID, err)
	}
	return this.poll(ctx, created.UUID)
}

// watch returns nil once the feed reports the payload resolved or
// expired.
//
// Feed messages look like
//   {"message":"Welcome f94fc5d2-0dfe-4123-9182-a9f3b5addc8a"}
//   {"opened":true}
//   {"payload_uuidv4":"f94fc5d2-...","signed":true,"user_token":true,"return_url":{...}}
//   {"expired":true}
func (this *Client) watch(ctx context.Context, wsURL string) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 30 * time.Second,
	}
	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	// ReadMessage does not watch ctx.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		glog.V(2).Infof("payload status: %s", msg)

		if jsoniter.Get(msg, "signed").ValueType() == jsoniter.BoolValue {
			return nil // signed or rejected
		}
		if jsoniter.Get(msg, "expired").ToBool() {
			return nil
		}
	}
}

func (this *Client) poll(ctx context.Context, id string) (*PayloadStatus, error) {
	ticker := time.NewTicker(this.PollInterval)
	defer ticker.Stop()
	for {
		status, err := this.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if status.Done() {
			return status, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
