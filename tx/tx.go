// Helpers to compose XRPL transactions as JSON, suitable for the
// txjson field of a signing service payload.
//
// Transactions are built with functional options, for example
//
//    t, err := tx.NewAccountSet(tx.SetDomain(hexDomain), tx.SetAccountFlag(util.AsfRequireDest))
//
// Fields which the signer fills in (Sequence, Fee unless overridden,
// SigningPubKey) are left out.
package tx

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
)

const (
	AccountSet   = "AccountSet"
	EscrowFinish = "EscrowFinish"
	Payment      = "Payment"
	SignIn       = "SignIn"
)

// TxJSON is a transaction in rippled's JSON format.
type TxJSON map[string]interface{}

type Option func(TxJSON) error

func (t TxJSON) Type() string {
	s, _ := t["TransactionType"].(string)
	return s
}

func (t TxJSON) String(field string) string {
	switch v := t[field].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (t TxJSON) Has(field string) bool {
	_, ok := t[field]
	return ok
}

func New(txType string, options ...Option) (TxJSON, error) {
	t := TxJSON{"TransactionType": txType}
	err := Prepare(t, options...)
	return t, err
}

func Prepare(t TxJSON, options ...Option) error {
	for _, option := range options {
		err := option(t)
		if err != nil {
			return err
		}
	}

	// Validate fields required for all transactions.
	if t.Type() == "" {
		return errors.New("Transaction requires type.")
	}
	return nil
}

func expect(t TxJSON, option string, types ...string) error {
	for _, typ := range types {
		if t.Type() == typ {
			return nil
		}
	}
	return errors.Errorf("%s: unexpected transaction type %q", option, t.Type())
}

func parseAccount(address interface{}) (*data.Account, error) {
	switch address := address.(type) {
	default:
		return nil, fmt.Errorf("Unexpected address type %T", address)
	case string:
		account, err := data.NewAccountFromAddress(strings.TrimSpace(address))
		if err != nil {
			return nil, errors.Wrapf(err, "Bad address %s", address)
		}
		return account, nil
	case data.Account:
		return &address, nil
	case *data.Account:
		return address, nil
	}
}

func SetAddress(address interface{}) Option {
	return func(t TxJSON) error {
		account, err := parseAccount(address)
		if err != nil {
			return err
		}
		t["Account"] = account.String()
		return nil
	}
}

func SetSequence(seq uint32) Option {
	return func(t TxJSON) error {
		t["Sequence"] = seq
		return nil
	}
}

// SetFee sets the fee, in drops.
func SetFee(drops uint64) Option {
	return func(t TxJSON) error {
		t["Fee"] = fmt.Sprintf("%d", drops)
		return nil
	}
}

func SetDestination(address interface{}) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetDestination", Payment)
		if err != nil {
			return err
		}
		account, err := parseAccount(address)
		if err != nil {
			return err
		}
		t["Destination"] = account.String()
		return nil
	}
}

func SetDestinationTag(tag *uint32) Option {
	return func(t TxJSON) error {
		if tag == nil {
			return nil
		}
		err := expect(t, "SetDestinationTag", Payment)
		if err != nil {
			return err
		}
		t["DestinationTag"] = *tag
		return nil
	}
}

// SetAmount accepts an amount of XRP (i.e. "12.5"), which is
// converted to drops.
func SetAmount(xrp string) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetAmount", Payment)
		if err != nil {
			return err
		}
		drops, err := XRPToDrops(xrp)
		if err != nil {
			return err
		}
		t["Amount"] = drops
		return nil
	}
}

func AddMemo(memo string) Option {
	return func(t TxJSON) error {
		if memo == "" {
			return nil // No memo
		}
		memos, _ := t["Memos"].([]interface{})
		memos = append(memos, map[string]interface{}{
			"Memo": map[string]interface{}{
				"MemoData": strings.ToUpper(hex.EncodeToString([]byte(memo))),
			},
		})
		t["Memos"] = memos
		return nil
	}
}

// XRPToDrops converts a decimal amount of XRP to a string of drops.
func XRPToDrops(xrp string) (string, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(xrp))
	if !ok || r.Sign() <= 0 {
		return "", errors.Errorf("Invalid XRP amount: %q", xrp)
	}
	r.Mul(r, big.NewRat(1000000, 1))
	if !r.IsInt() {
		return "", errors.Errorf("Invalid XRP amount (more than 6 decimal places): %q", xrp)
	}
	return r.Num().String(), nil
}
