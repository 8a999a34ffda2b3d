// Helpers shared by the xc packages and commands.
package util

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/rubblelabs/ripple/data"
	"src.d10.dev/command"
)

const (
	DropsPerXRP = 1000000
)

// Print a numeric value, avoiding scientific notation.
func FormatValue(v data.Value) string {
	// unfortunately rubblelabs does not export data.Value:isScientific,
	// so we must manipulate strings
	str := v.String()
	if strings.Index(str, "e") != -1 {
		// simply using fmt.Sprintf("%f", v.Float()) produces, for example "0.000000"
		rat := v.Rat()
		command.V(1).Infof("formatValue: converting scientific notation from %q to %q", v.String(), rat.FloatString(16))
		str = trimZeros(rat.FloatString(16))
	}
	return str
}

// FormatAmount renders an IOU amount string (as found in
// gateway_balances obligations) without scientific notation.  Strings
// that cannot be parsed are returned unchanged.
func FormatAmount(amount string) string {
	v, err := data.NewValue(amount, false)
	if err != nil {
		return amount
	}
	return FormatValue(*v)
}

// DropsToXRP converts a balance in drops, as returned by account_info,
// to XRP.  An empty string is zero.
func DropsToXRP(drops string) (*big.Rat, error) {
	if drops == "" {
		return new(big.Rat), nil
	}
	r, ok := new(big.Rat).SetString(drops)
	if !ok || !r.IsInt() {
		return nil, errors.Errorf("bad drops value %q", drops)
	}
	return r.Quo(r, big.NewRat(DropsPerXRP, 1)), nil
}

// FormatXRP formats an XRP amount with up to six decimal places.
func FormatXRP(xrp *big.Rat) string {
	if xrp == nil {
		return "0"
	}
	return trimZeros(xrp.FloatString(6))
}

func trimZeros(s string) string {
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// HexToString decodes a hex encoded ledger field (i.e. Domain).  Empty
// or malformed input yields "".
func HexToString(h string) string {
	if h == "" {
		return ""
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		command.V(1).Infof("cannot decode hex field %q: %s", h, err)
		return ""
	}
	return string(b)
}

// StringToHex encodes a string for a ledger field, in upper case.
func StringToHex(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// ValidAddress reports whether s is a well formed classic XRPL address
// (including checksum).
func ValidAddress(s string) bool {
	if s == "" {
		return false
	}
	_, err := data.NewAccountFromAddress(s)
	return err == nil
}

// ParseAddress is like data.NewAccountFromAddress, with a friendlier error.
func ParseAddress(s string) (*data.Account, error) {
	acct, err := data.NewAccountFromAddress(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("bad address (%q): %w", s, err)
	}
	return acct, nil
}
