package xumm

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/tx"
)

// TransactionValidation summarizes the outcome of a payload.
type TransactionValidation struct {
	ID      string // payload uuid
	Type    string // transaction type
	Account string // signing account
	TxID    string
	Result  string // engine result, when submitted
	Testnet bool
	Success bool

	// Where the signer was sent afterwards, if anywhere.
	Redirect string
}

// Network names the network the transaction went to.
func (tv *TransactionValidation) Network() string {
	if tv.Testnet {
		return "test net"
	}
	return "live net"
}

func (tv *TransactionValidation) String() string {
	if tv.Success {
		if tv.Type == tx.SignIn {
			return "Signed in as " + tv.Account + "."
		}
		return "Your transaction was successful on " + tv.Network() + "."
	}
	return "Your transaction was not successful. Please try again."
}

func isTestnet(r Response) bool {
	switch strings.ToUpper(r.DispatchedNodeType) {
	case "TESTNET", "DEVNET":
		return true
	case "MAINNET":
		return false
	}
	u, err := url.Parse(r.DispatchedTo)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return testnetHosts[host] || strings.HasSuffix(host, ".rippletest.net")
}

// testnetHosts are the non-production nodes Xumm dispatches to.
var testnetHosts = map[string]bool{
	"testnet.xrpl-labs.com":        true,
	"s.altnet.rippletest.net":      true,
	"s.devnet.rippletest.net":      true,
	"xls20-sandbox.rippletest.net": true,
}

// Validation interprets a payload's state.  A SignIn succeeds when
// signed, anything else only when the ledger accepted it.
func Validation(status *PayloadStatus) *TransactionValidation {
	tv := &TransactionValidation{
		ID:      status.Meta.UUID,
		Type:    status.Payload.TxType,
		Account: status.Response.Account,
		TxID:    status.Response.TxID,
		Result:  status.Response.DispatchedResult,
		Testnet: isTestnet(status.Response),

		Redirect: status.Meta.ReturnURLWeb,
	}
	if !status.Meta.Signed {
		return tv
	}
	if tv.Type == tx.SignIn {
		tv.Success = tv.Account != ""
	} else {
		tv.Success = tv.Result == "tesSUCCESS"
	}
	return tv
}

func (this *Client) Validate(ctx context.Context, id string) (*TransactionValidation, error) {
	status, err := this.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !status.Meta.Exists && status.Meta.UUID == "" {
		return nil, errors.Errorf("payload %s not found", id)
	}
	return Validation(status), nil
}

// Confirm checks the transaction against a rippled server, which
// should be on the same network.  Success is cleared when the ledger
// does not show the transaction succeeded.
func Confirm(ctx context.Context, ledger *rpc.Client, tv *TransactionValidation) error {
	if tv.Type == tx.SignIn || tv.TxID == "" {
		return nil
	}
	result, err := ledger.Tx(ctx, tv.TxID)
	if err != nil {
		tv.Success = false
		return errors.Wrapf(err, "transaction %s", tv.TxID)
	}
	if result.Meta != nil {
		tv.Result = result.Meta.TransactionResult
	}
	tv.Success = result.Succeeded()
	return nil
}
