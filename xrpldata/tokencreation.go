package xrpldata

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/xumm-community/xc/util"
)

// {"issuer":"rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz","currency":"534F4C4F00000000000000000000000000000000","date":"2021-03-16T12:33:51.000Z","hash":"..."}
type TokenCreation struct {
	Issuer   string `json:"issuer"`
	Currency string `json:"currency"`
	Date     string `json:"date"`
	Hash     string `json:"hash,omitempty"`
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time parses Date.  The zero time means unknown.
func (tc *TokenCreation) Time() time.Time {
	if tc == nil || tc.Date == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, tc.Date)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

// TokenCreation looks up when issuer first issued currency.  The
// currency may be given in either display or ledger form.  An unknown
// token returns nil and no error.
func (this *Client) TokenCreation(ctx context.Context, issuer, currency string) (*TokenCreation, error) {
	code, err := util.ParseCurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	endpoint, err := this.Endpoint("tokencreation")
	if err != nil {
		return nil, err
	}
	values := url.Values{}
	values.Set("issuer", issuer)
	values.Set("currency", code)

	result := &TokenCreation{}
	err = this.Get(ctx, result, endpoint, values)
	if errors.Cause(err) == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if result.Date == "" {
		return nil, nil
	}
	return result, nil
}
