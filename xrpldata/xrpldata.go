// Package xrpldata queries the xrpldata.com API for facts not
// available from rippled, such as when a token was first issued.
package xrpldata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/y0ssar1an/q"
)

const DefaultBase = "https://xrpldata.com/api/v1/" // trailing slash needed

type Client struct {
	base   *url.URL
	client http.Client

	// Retries and Backoff control retry of failed GETs.  Wait between
	// attempts grows linearly.
	Retries int
	Backoff time.Duration
}

func NewClient(base string) (*Client, error) {
	var err error

	client := &Client{
		client:  http.Client{Timeout: 30 * time.Second},
		Retries: 3,
		Backoff: time.Second,
	}

	client.base, err = url.Parse(base)
	if err != nil {
		return nil, errors.Wrapf(err, "bad xrpldata url %q", base)
	}
	return client, nil
}

// Produces a url for an endpoint.
func (this *Client) Endpoint(segment ...string) (*url.URL, error) {
	return this.base.Parse(path.Join(segment...))
}

var (
	getError    = errors.New("GET failed")
	ErrNotFound = errors.New("not found")
)

// Retry requests which fail for reasons other than our own request.
func (this *Client) Get(ctx context.Context, target interface{}, endpoint *url.URL, values url.Values) error {
	count := 0
	for {
		count++
		err := this.get(ctx, target, endpoint, values)
		if err != nil && errors.Cause(err) == getError {
			if count > this.Retries {
				return errors.Wrapf(err, "xrpldata GET failed (%d attempts)", count)
			}
			glog.V(1).Infof("retrying after %s", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(count) * this.Backoff): // wait between attempts
			}
		} else {
			return err
		}
	}
}

func (this *Client) get(ctx context.Context, target interface{}, endpoint *url.URL, values url.Values) error {
	u := *endpoint
	if values != nil {
		u.RawQuery = values.Encode()
	}

	req, err := http.NewRequest("GET", u.String(), nil)
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")

	res, err := this.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrapf(getError, "GET %s: %s", u.String(), err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "GET %s", u.String())
	case res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests:
		return errors.Wrapf(getError, "GET %s returned %s", u.String(), res.Status)
	case res.StatusCode != http.StatusOK:
		return errors.Errorf("GET %s returned %s", u.String(), res.Status)
	}

	var raw json.RawMessage
	err = json.NewDecoder(res.Body).Decode(&raw)
	if err != nil {
		return errors.Wrapf(err, "GET %s could not decode response", u.String())
	}
	err = json.Unmarshal(raw, target)
	if err != nil {
		q.Q(string(raw)) // debug
		return errors.Wrapf(err, "GET %s unexpected response", u.String())
	}
	return nil
}
