// Package form holds the state of the transaction forms.  A form
// compares what the user entered against the account's current
// settings, decides whether the entry is valid, and produces the
// payload to sign.
package form

import (
	"crypto/md5"
	"fmt"
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/tx"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/xumm"
)

const (
	accountSetExpire = 1 // minutes
	noEmailHash      = "00000000000000000000000000000000"
)

var ErrInvalidAccountSet = errors.New("account settings unchanged or invalid")

// AccountSet edits an account's Domain, EmailHash and two of its
// flags.
type AccountSet struct {
	Domain         string
	Email          string
	RequireDestTag bool
	DisableMaster  bool

	// Settings before any edit, nil when the account is unknown.
	original *rpc.AccountData

	DomainChanged         bool
	ValidDomain           bool
	EmailChanged          bool
	ValidEmail            bool
	RequireDestTagChanged bool
	DisableMasterChanged  bool

	valid bool
}

func NewAccountSet(original *rpc.AccountData) *AccountSet {
	f := &AccountSet{}
	f.Reload(original)
	return f
}

// Reload resets the inputs to the account's current settings.  The
// email is never shown, only its hash is known.
func (f *AccountSet) Reload(original *rpc.AccountData) {
	f.original = original
	f.Domain = ""
	f.Email = ""
	f.RequireDestTag = false
	f.DisableMaster = false
	if original != nil {
		f.Domain = util.HexToString(original.Domain)
		f.RequireDestTag = util.RequireDestinationTag(original.Flags)
		f.DisableMaster = util.MasterKeyDisabled(original.Flags)
	}
	f.Check()
}

func (f *AccountSet) domainHex() string {
	return util.StringToHex(strings.TrimSpace(f.Domain))
}

func (f *AccountSet) emailHash() string {
	sum := md5.Sum([]byte(strings.TrimSpace(f.Email)))
	return fmt.Sprintf("%X", sum)
}

func (f *AccountSet) originalFlags() uint32 {
	if f.original == nil {
		return 0
	}
	return f.original.Flags
}

// Check recomputes what changed and whether the form may be sent.
func (f *AccountSet) Check() {
	o := f.original

	domain := strings.TrimSpace(f.Domain)
	f.DomainChanged = domain != "" && (o == nil || o.Domain == "" || f.domainHex() != o.Domain)
	f.ValidDomain = !f.DomainChanged || domain != ""

	email := strings.TrimSpace(f.Email)
	f.EmailChanged = email != "" && (o == nil || f.emailHash() != o.EmailHash)
	f.ValidEmail = !f.EmailChanged || IsEmail(email)

	f.RequireDestTagChanged = util.RequireDestinationTag(f.originalFlags()) != f.RequireDestTag
	f.DisableMasterChanged = util.MasterKeyDisabled(f.originalFlags()) != f.DisableMaster

	anyChange := f.DomainChanged || f.EmailChanged || f.RequireDestTagChanged || f.DisableMasterChanged

	// A single AccountSet carries at most one SetFlag or ClearFlag.
	bothFlags := f.RequireDestTagChanged && f.DisableMasterChanged

	f.valid = f.ValidDomain && f.ValidEmail && anyChange && !bothFlags
}

func (f *AccountSet) Valid() bool {
	return f.valid
}

// Payload produces the AccountSet for the changes entered.  The
// instruction lists each change, one per line.
func (f *AccountSet) Payload() (*xumm.Payload, error) {
	f.Check()
	if !f.valid {
		return nil, ErrInvalidAccountSet
	}
	o := f.original

	var options []tx.Option
	var instruction strings.Builder

	if f.RequireDestTagChanged {
		if f.RequireDestTag {
			options = append(options, tx.SetAccountFlag(util.AsfRequireDest))
			instruction.WriteString("- Set 'Require Destination Tag'\n")
		} else {
			options = append(options, tx.ClearAccountFlag(util.AsfRequireDest))
			instruction.WriteString("- Unset 'Require Destination Tag'\n")
		}
	}
	if f.DisableMasterChanged {
		if f.DisableMaster {
			options = append(options, tx.SetAccountFlag(util.AsfDisableMaster))
			instruction.WriteString("- Deactivate Master Key\n")
		} else {
			options = append(options, tx.ClearAccountFlag(util.AsfDisableMaster))
			instruction.WriteString("- Reactivate Master Key\n")
		}
	}

	if strings.TrimSpace(f.Domain) != "" && f.ValidDomain && (o == nil || f.domainHex() != o.Domain) {
		domain := f.domainHex()
		options = append(options, tx.SetDomain(&domain))
		instruction.WriteString("- Set a new Domain\n")
	}
	if strings.TrimSpace(f.Email) != "" && f.ValidEmail && (o == nil || f.emailHash() != o.EmailHash) {
		hash := f.emailHash()
		options = append(options, tx.SetEmailHash(&hash))
		instruction.WriteString("- Set a new EmailHash\n")
	}

	t, err := tx.NewAccountSet(options...)
	if err != nil {
		return nil, errors.Wrap(err, "AccountSet")
	}
	return xumm.NewPayload(t, accountSetExpire).Instruct(instruction.String()), nil
}

// DeleteDomainPayload removes the account's Domain.
func (f *AccountSet) DeleteDomainPayload() (*xumm.Payload, error) {
	empty := ""
	t, err := tx.NewAccountSet(tx.SetDomain(&empty))
	if err != nil {
		return nil, err
	}
	instruction := "Delete your Domain attached to this account"
	if f.original != nil && f.original.Domain != "" {
		instruction += ": " + util.HexToString(f.original.Domain)
	} else {
		instruction += "."
	}
	return xumm.NewPayload(t, accountSetExpire).Instruct(instruction), nil
}

// DeleteEmailHashPayload removes the account's EmailHash.
func (f *AccountSet) DeleteEmailHashPayload() (*xumm.Payload, error) {
	zero := noEmailHash
	t, err := tx.NewAccountSet(tx.SetEmailHash(&zero))
	if err != nil {
		return nil, err
	}
	return xumm.NewPayload(t, accountSetExpire).Instruct("Delete your Email attached to this account"), nil
}

// IsEmail accepts a bare address, with a dotted domain of hostname
// labels and an alphabetic top level.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if !isHostLabel(label) {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

func isHostLabel(label string) bool {
	if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for _, r := range label {
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}
