package rpc

import (
	"context"
)

// account_info
// {"account_data":{"Account":"rs2GgdxJx34DwwAUsz1wse3yUCnggQpCCg","Balance":"10000000000","Flags":0,"LedgerEntryType":"AccountRoot","OwnerCount":0,"PreviousTxnID":"F295A38531D6808917F6B42A5E583F89D0613C0153096F497648C771EADE183A","PreviousTxnLgrSeq":1918860,"Sequence":1,"index":"3066338D048B57636FA27F4027619FD8910AF9C1E2F2148AECA288B1B85D8E9F"},"ledger_current_index":1974161,"validated":false}
type AccountInfoResult struct {
	AccountData        AccountData  `json:"account_data"`
	SignerLists        []SignerList `json:"signer_lists,omitempty"` // API v2 places signer lists here
	LedgerCurrentIndex uint32       `json:"ledger_current_index,omitempty"`
	LedgerIndex        uint32       `json:"ledger_index,omitempty"`
	Validated          bool         `json:"validated"`
}

type AccountData struct {
	Account           string
	Balance           string // drops
	Flags             uint32
	Domain            string `json:",omitempty"` // hex
	EmailHash         string `json:",omitempty"`
	MessageKey        string `json:",omitempty"`
	RegularKey        string `json:",omitempty"`
	TransferRate      uint32 `json:",omitempty"`
	TickSize          uint8  `json:",omitempty"`
	LedgerEntryType   string
	OwnerCount        uint32
	PreviousTxnID     string
	PreviousTxnLgrSeq uint32
	Sequence          uint32
	Index             string `json:"index"`

	SignerLists []SignerList `json:"signer_lists,omitempty"` // API v1 places signer lists here
}

// {"Flags":0,"LedgerEntryType":"SignerList","OwnerNode":"0","SignerEntries":[{"SignerEntry":{"Account":"rsA2LpzuawewSBQXkiju3YQTMzW13pAAdW","SignerWeight":2}}],"SignerListID":0,"SignerQuorum":3,"index":"A9C28A28B85CD533217F5C0A0C7767666B093FA58A0F2D80026FCC4CD932DDC7"}
type SignerList struct {
	LedgerEntryType string
	SignerQuorum    uint32
	SignerEntries   []struct {
		SignerEntry SignerEntry
	}
	SignerListID uint32
	Index        string `json:"index"`
}

type SignerEntry struct {
	Account      string
	SignerWeight uint16
}

func (sl SignerList) Entries() []SignerEntry {
	entries := make([]SignerEntry, 0, len(sl.SignerEntries))
	for _, e := range sl.SignerEntries {
		entries = append(entries, e.SignerEntry)
	}
	return entries
}

// Signers returns the account's signer lists, wherever the server
// placed them.
func (r *AccountInfoResult) Signers() []SignerList {
	if r == nil {
		return nil
	}
	if len(r.SignerLists) > 0 {
		return r.SignerLists
	}
	if len(r.AccountData.SignerLists) > 0 {
		return r.AccountData.SignerLists
	}
	return nil
}

// AccountInfo requests an account's settings.  With signerLists, the
// response includes the account's multi-signing setup.
func (c *Client) AccountInfo(ctx context.Context, account string, signerLists bool) (*AccountInfoResult, error) {
	params := map[string]interface{}{
		"account": account,
		"strict":  true,
	}
	if signerLists {
		params["signer_lists"] = true
	}

	result := &AccountInfoResult{}
	_, err := c.Request(ctx, "account_info", params, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
