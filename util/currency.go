package util

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	currencyHexLength = 40
	maxCurrencyBytes  = currencyHexLength / 2
)

// ParseCurrencyCode accepts a code in display or ledger form, and
// returns the ledger form.  Codes which do not fit in 160 bits are an
// error.
func ParseCurrencyCode(code string) (string, error) {
	switch {
	case code == "":
		return "", errors.New("empty currency code")
	case isCurrencyHex(code), len(code) <= maxCurrencyBytes:
		return CurrencyCodeForXRPL(code), nil
	}
	return "", errors.Errorf("currency code %q longer than %d bytes", code, maxCurrencyBytes)
}

// CurrencyCodeForXRPL converts a currency code to the form used on the
// ledger.  Standard three character codes are used as is.  Anything
// else (including "XRP", which may not be issued) is hex encoded and
// padded to 160 bits.
func CurrencyCodeForXRPL(code string) string {
	if len(code) == 3 && strings.ToUpper(code) != "XRP" {
		return code
	}
	if isCurrencyHex(code) {
		return strings.ToUpper(code)
	}
	b := []byte(code)
	if len(b) > maxCurrencyBytes {
		b = b[:maxCurrencyBytes] // see ParseCurrencyCode
	}
	h := strings.ToUpper(hex.EncodeToString(b))
	if len(h) < currencyHexLength {
		h += strings.Repeat("0", currencyHexLength-len(h))
	}
	return h
}

// CurrencyCodeForDisplay reverses CurrencyCodeForXRPL where possible.
// Hex codes that don't decode to printable text are shown as is.
func CurrencyCodeForDisplay(code string) string {
	if !isCurrencyHex(code) {
		return code
	}
	b, err := hex.DecodeString(code)
	if err != nil {
		return code
	}
	s := strings.TrimRight(string(b), "\x00")
	if s == "" {
		return code
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return code
		}
	}
	return s
}

func isCurrencyHex(code string) bool {
	if len(code) != currencyHexLength {
		return false
	}
	_, err := hex.DecodeString(code)
	return err == nil
}
