package tx

import (
	"regexp"

	"github.com/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^([0-9A-F]{2})*$`)

func NewAccountSet(options ...Option) (TxJSON, error) {
	return New(AccountSet, options...)
}

func SetAccountFlag(flag uint32) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetAccountFlag", AccountSet)
		if err != nil {
			return err
		}
		t["SetFlag"] = flag
		return nil
	}
}

func ClearAccountFlag(flag uint32) Option {
	return func(t TxJSON) error {
		err := expect(t, "ClearAccountFlag", AccountSet)
		if err != nil {
			return err
		}
		t["ClearFlag"] = flag
		return nil
	}
}

// SetDomain expects the domain already hex encoded.  Note that "" is
// used to unset the domain, while nil leaves it unchanged.
func SetDomain(domainHex *string) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetDomain", AccountSet)
		if err != nil {
			return err
		}
		if domainHex == nil {
			return nil
		}
		if !hexPattern.MatchString(*domainHex) {
			return errors.Errorf("SetDomain: expected upper case hex, got %q", *domainHex)
		}
		t["Domain"] = *domainHex
		return nil
	}
}

// SetEmailHash expects an md5 hash in upper case hex.  Thirty two
// zeros remove the hash from the account.
func SetEmailHash(hash *string) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetEmailHash", AccountSet)
		if err != nil {
			return err
		}
		if hash == nil {
			return nil
		}
		if len(*hash) != 32 || !hexPattern.MatchString(*hash) {
			return errors.Errorf("SetEmailHash: expected 128 bit hash, got %q", *hash)
		}
		t["EmailHash"] = *hash
		return nil
	}
}
