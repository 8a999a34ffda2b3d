package rpc

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	ObjectSignerList = "signer_list"
	ObjectEscrow     = "escrow"
)

type AccountObjectsResult struct {
	Account        string            `json:"account"`
	AccountObjects []json.RawMessage `json:"account_objects"`
	LedgerIndex    uint32            `json:"ledger_index,omitempty"`
	Validated      bool              `json:"validated"`
}

// SignerLists decodes the objects of type SignerList.
func (r *AccountObjectsResult) SignerLists() ([]SignerList, error) {
	var lists []SignerList
	for _, raw := range r.AccountObjects {
		sl := SignerList{}
		err := json.Unmarshal(raw, &sl)
		if err != nil {
			return lists, errors.Wrap(err, "failed to parse account object")
		}
		if sl.LedgerEntryType != "SignerList" {
			continue
		}
		lists = append(lists, sl)
	}
	return lists, nil
}

// AccountObjects requests ledger objects owned by an account.  Type
// filters the objects, use "" for all.
func (c *Client) AccountObjects(ctx context.Context, account string, typ string) (*AccountObjectsResult, error) {
	params := map[string]interface{}{
		"account": account,
	}
	if typ != "" {
		params["type"] = typ
	}

	result := &AccountObjectsResult{}
	_, err := c.Request(ctx, "account_objects", params, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
