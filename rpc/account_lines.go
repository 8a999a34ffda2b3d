package rpc

import (
	"context"
)

// account_lines
// {"account":"r9cZA1mLK5R5Am25ArfXFmqgNwjZgnfk59","lines":[{"account":"r3vi7mWxru9rJCxETCyA1CHvzL96eZWx5z","balance":"0","currency":"ASP","limit":"0","limit_peer":"10","quality_in":0,"quality_out":0}],"ledger_current_index":14380381,"validated":false}
type AccountLinesResult struct {
	Account string      `json:"account"`
	Lines   []TrustLine `json:"lines"`
	Marker  interface{} `json:"marker,omitempty"`
}

type TrustLine struct {
	Account      string `json:"account"` // peer
	Balance      string `json:"balance"`
	Currency     string `json:"currency"`
	Limit        string `json:"limit"`
	LimitPeer    string `json:"limit_peer"`
	QualityIn    uint32 `json:"quality_in"`
	QualityOut   uint32 `json:"quality_out"`
	NoRipple     bool   `json:"no_ripple,omitempty"`
	NoRipplePeer bool   `json:"no_ripple_peer,omitempty"`
	Authorized   bool   `json:"authorized,omitempty"`
	Freeze       bool   `json:"freeze,omitempty"`
}

// AccountLines requests all of an account's trust lines, following
// markers until the last page.
func (c *Client) AccountLines(ctx context.Context, account string) ([]TrustLine, error) {
	var lines []TrustLine
	var marker interface{}
	for {
		params := map[string]interface{}{
			"account":      account,
			"ledger_index": "validated",
		}
		if marker != nil {
			params["marker"] = marker
		}

		result := &AccountLinesResult{}
		_, err := c.Request(ctx, "account_lines", params, result)
		if err != nil {
			return lines, err
		}
		lines = append(lines, result.Lines...)

		if result.Marker == nil {
			return lines, nil
		}
		marker = result.Marker
	}
}
