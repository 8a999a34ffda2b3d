// Package xumm submits transaction payloads to the Xumm platform API,
// and follows them until they are signed, rejected or expired.
package xumm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/y0ssar1an/q"

	"github.com/xumm-community/xc/tx"
)

const DefaultBase = "https://xumm.app/api/v1/" // trailing slash needed

type Client struct {
	base   *url.URL
	key    string
	secret string
	client http.Client

	// How often Wait polls, when the status websocket is unavailable.
	PollInterval time.Duration
}

func NewClient(base, key, secret string) (*Client, error) {
	var err error
	if key == "" || secret == "" {
		return nil, errors.New("xumm API key and secret required")
	}

	client := &Client{
		key:          key,
		secret:       secret,
		client:       http.Client{Timeout: 30 * time.Second},
		PollInterval: 3 * time.Second,
	}
	client.base, err = url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "bad xumm url %q", base)
	}
	return client, nil
}

func (this *Client) Endpoint(segment ...string) (*url.URL, error) {
	return this.base.Parse(path.Join(segment...))
}

// ErrorResponse is the body of a failed API call.
// {"error":{"reference":"a61ba59a-0304-44ae-a86e-d74808bd5190","code":812}}
type ErrorResponse struct {
	Err struct {
		Reference string `json:"reference"`
		Code      int    `json:"code"`
	} `json:"error"`

	Method string `json:"-"`
	URL    string `json:"-"`
	Status string `json:"-"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%s %s returned %s (code %d, reference %s)", e.Method, e.URL, e.Status, e.Err.Code, e.Err.Reference)
}

func (this *Client) do(ctx context.Context, method string, endpoint *url.URL, body interface{}, target interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s %s: failed to encode request", method, endpoint)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", this.key)
	req.Header.Set("X-API-Secret", this.secret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := this.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrapf(err, "%s %s", method, endpoint)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "%s %s: failed to read response", method, endpoint)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		e := &ErrorResponse{Method: method, URL: endpoint.String(), Status: res.Status}
		_ = json.Unmarshal(raw, e) // best effort
		return e
	}
	if target == nil {
		return nil
	}
	err = json.Unmarshal(raw, target)
	if err != nil {
		q.Q(string(raw)) // debug
		return errors.Wrapf(err, "%s %s unexpected response", method, endpoint)
	}
	return nil
}

// Prepare applies request options to the payload.  An XrplAccount pins
// the signing account, except for SignIn and Issuing requests.
// A Referer becomes the return URL, so the signer comes back with the
// payload id.
func Prepare(req Request) (*Payload, error) {
	p := req.Payload
	if p.TxJSON == nil || p.TxJSON.Type() == "" {
		return nil, errors.New("payload has no transaction")
	}

	// Copy, to leave the caller's map alone.
	t := make(tx.TxJSON, len(p.TxJSON))
	for k, v := range p.TxJSON {
		t[k] = v
	}
	p.TxJSON = t

	account := strings.TrimSpace(req.Options.XrplAccount)
	if account != "" && !req.Options.Issuing && t.Type() != tx.SignIn && !t.Has("Account") {
		err := tx.Prepare(t, tx.SetAddress(account))
		if err != nil {
			return nil, err
		}
	}

	if req.Options.Referer != "" {
		opts := Options{}
		if p.Options != nil {
			opts = *p.Options
		}
		sep := "?"
		if strings.Contains(req.Options.Referer, "?") {
			sep = "&"
		}
		opts.ReturnURL = &ReturnURL{Web: req.Options.Referer + sep + "payloadId={id}"}
		p.Options = &opts
	}
	return &p, nil
}

// Submit creates a payload, ready for the user to sign.
func (this *Client) Submit(ctx context.Context, req Request) (*Created, error) {
	p, err := Prepare(req)
	if err != nil {
		return nil, err
	}
	endpoint, err := this.Endpoint("platform", "payload")
	if err != nil {
		return nil, err
	}

	created := &Created{}
	err = this.do(ctx, "POST", endpoint, p, created)
	if err != nil {
		return nil, err
	}
	if created.UUID == "" {
		return nil, errors.Errorf("POST %s: no payload id in response", endpoint)
	}
	glog.V(1).Infof("created payload %s (%s)", created.UUID, p.TxJSON.Type())
	return created, nil
}

func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", errors.Wrapf(err, "bad payload id %q", id)
	}
	return u.String(), nil
}

// Get fetches the current state of a payload.
func (this *Client) Get(ctx context.Context, id string) (*PayloadStatus, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	endpoint, err := this.Endpoint("platform", "payload", id)
	if err != nil {
		return nil, err
	}
	status := &PayloadStatus{}
	err = this.do(ctx, "GET", endpoint, nil, status)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// Cancel withdraws a payload not yet opened by the signer.
func (this *Client) Cancel(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}
	endpoint, err := this.Endpoint("platform", "payload", id)
	if err != nil {
		return err
	}
	return this.do(ctx, "DELETE", endpoint, nil, nil)
}
