package rpc

import (
	"context"
	"fmt"
	"math"
)

const dropsPerXRP = 1000000

// server_info
// {"info":{"build_version":"1.7.0","complete_ledgers":"61000000-61234600","hostid":"HI","load_factor":1,"peers":21,"server_state":"full","uptime":410748,"validated_ledger":{"base_fee_xrp":1e-05,"hash":"7714...","reserve_base_xrp":20,"reserve_inc_xrp":5,"seq":61234600}}}
type ServerInfoResult struct {
	Info ServerInfo `json:"info"`
}

type ServerInfo struct {
	BuildVersion    string           `json:"build_version"`
	CompleteLedgers string           `json:"complete_ledgers"`
	HostID          string           `json:"hostid"`
	LoadFactor      float64          `json:"load_factor"` // Not integer!
	Peers           int              `json:"peers"`
	ServerState     string           `json:"server_state"`
	Uptime          int              `json:"uptime"`
	ValidatedLedger *ValidatedLedger `json:"validated_ledger,omitempty"`
}

type ValidatedLedger struct {
	BaseFeeXRP     float64 `json:"base_fee_xrp"`
	Hash           string  `json:"hash"`
	ReserveBaseXRP float64 `json:"reserve_base_xrp"`
	ReserveIncXRP  float64 `json:"reserve_inc_xrp"`
	Seq            uint32  `json:"seq"`
}

// Fee estimates the current transaction cost, in drops, as described
// in https://xrpl.org/transaction-cost.html#server_info.  Zero when
// the server has no validated ledger.
func (info *ServerInfo) Fee() int64 {
	if info.ValidatedLedger == nil {
		return 0
	}
	load := info.LoadFactor
	if load == 0 {
		load = 1
	}
	return int64(math.Round(info.ValidatedLedger.BaseFeeXRP * dropsPerXRP * load))
}

func (info *ServerInfo) String() string {
	seq := uint32(0)
	if info.ValidatedLedger != nil {
		seq = info.ValidatedLedger.Seq
	}
	return fmt.Sprintf("%s %s, ledger %d, peers %d, load factor %g", info.BuildVersion, info.ServerState, seq, info.Peers, info.LoadFactor)
}

// ServerInfo asks the server for its state, and the reserves and fee
// of the last validated ledger.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	result := &ServerInfoResult{}
	_, err := c.Request(ctx, "server_info", nil, result)
	if err != nil {
		return nil, err
	}
	return &result.Info, nil
}
