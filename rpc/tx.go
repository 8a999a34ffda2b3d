package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// {"Account":"rMWAmTH2Lc3GWJN6AYBXPXTPjcsSve8Zqu","Fee":"20","Sequence":5,"SetFlag":2,"SigningPubKey":"022145995B86AD97B4E63881979CF2E565EF0C35DE2F3B948F1959241C0FD96A99","TransactionType":"AccountSet","TxnSignature":"3045...","date":551089522,"hash":"C6BFEC290E4B3D3164F0F1D6BB09EFE72C8E23BF474DC5826FEC4A747904D682","inLedger":2061007,"ledger_index":2061007,"meta":{"AffectedNodes":[...],"TransactionIndex":3,"TransactionResult":"tesSUCCESS"},"validated":true}

type MetaData struct {
	TransactionIndex  uint32
	TransactionResult string
}

type TxResult struct {
	Account         string
	TransactionType string
	Sequence        uint32
	Fee             string
	Hash            string `json:"hash"`
	LedgerIndex     uint32 `json:"ledger_index,omitempty"`

	Meta      *MetaData `json:"meta,omitempty"`
	Validated bool      `json:"validated"`

	// When unmarshalling, save the raw bytes for further unmarshalling
	// into type-specific structs.
	raw []byte
}

type txResultNoRaw TxResult // Same fields, without methods.

func (tx *TxResult) UnmarshalJSON(data []byte) error {
	tx.raw = data
	a := (*txResultNoRaw)(tx)
	return json.Unmarshal(data, a)
}

func (tx *TxResult) Raw() []byte {
	return tx.raw
}

func (tx *TxResult) String() string {
	return fmt.Sprintf("type: %s account: %s sequence: %d hash: %s ", tx.TransactionType, tx.Account, tx.Sequence, tx.Hash)
}

func (tx *TxResult) Succeeded() bool {
	return tx.Validated && tx.Meta != nil && tx.Meta.TransactionResult == "tesSUCCESS"
}

// Tx looks up a transaction by hash.
func (c *Client) Tx(ctx context.Context, hash string) (*TxResult, error) {
	params := map[string]interface{}{
		"transaction": hash,
	}
	result := &TxResult{}
	_, err := c.Request(ctx, "tx", params, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
