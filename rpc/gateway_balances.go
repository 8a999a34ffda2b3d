package rpc

import (
	"context"
)

// gateway_balances
// {"account":"rMwjYedjc7qqtKYVLiAccJSmCwih4LnE2q","obligations":{"EUR":"0.03","USD":"50"},"balances":{"rKm4uWpg9tfwbVSeATv4KxDe6mpE9yPkgJ":[{"currency":"EUR","value":"29826.1965999999"}]},"ledger_index":14483195,"validated":true}
type GatewayBalancesResult struct {
	Account     string                     `json:"account"`
	Obligations map[string]string          `json:"obligations,omitempty"`
	Balances    map[string][]CurrencyValue `json:"balances,omitempty"`
	Assets      map[string][]CurrencyValue `json:"assets,omitempty"`
	LedgerIndex uint32                     `json:"ledger_index,omitempty"`
	Validated   bool                       `json:"validated"`
}

type CurrencyValue struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// GatewayBalances requests the total of each currency an issuer has
// outstanding, as of the latest validated ledger.
func (c *Client) GatewayBalances(ctx context.Context, account string) (*GatewayBalancesResult, error) {
	params := map[string]interface{}{
		"account":      account,
		"ledger_index": "validated",
	}

	result := &GatewayBalancesResult{}
	_, err := c.Request(ctx, "gateway_balances", params, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
