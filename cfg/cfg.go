// Package cfg keeps the dashboard's preferences between runs, in an
// ini file alongside the command configuration.
package cfg

// prefs.cfg example:

/*
# Colors for a dark terminal.
dark_mode=true

# Query testnet rather than the live network.
test_mode=false

# Account shown when the dashboard starts.
account=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B
*/

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-ini/ini"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/xumm-community/xc/util"
)

const (
	keyDarkMode = "dark_mode"
	keyTestMode = "test_mode"
	keyAccount  = "account"
)

type Prefs struct {
	DarkMode bool
	TestMode bool
	Account  string // empty until the user signs in, or picks one

	file *ini.File
	path string
}

// DefaultPath is prefs.cfg under the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "no configuration directory")
	}
	return filepath.Join(dir, "xc", "prefs.cfg"), nil
}

// Load reads preferences from path.  A missing file yields defaults.
func Load(path string) (*Prefs, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load preferences %q", path)
	}
	p := &Prefs{file: file, path: path}

	section := file.Section("")
	p.DarkMode = section.Key(keyDarkMode).MustBool(false)
	p.TestMode = section.Key(keyTestMode).MustBool(false)

	account := strings.TrimSpace(section.Key(keyAccount).String())
	if account != "" && !util.ValidAddress(account) {
		glog.Warningf("ignoring bad account %q in %s", account, path)
		account = ""
	}
	p.Account = account
	return p, nil
}

// Save writes preferences back to their file, keeping any comments
// and keys not known here.
func (p *Prefs) Save() error {
	if p.file == nil {
		p.file = ini.Empty()
	}
	section := p.file.Section("")
	section.Key(keyDarkMode).SetValue(formatBool(p.DarkMode))
	section.Key(keyTestMode).SetValue(formatBool(p.TestMode))
	if p.Account == "" {
		section.DeleteKey(keyAccount)
	} else {
		section.Key(keyAccount).SetValue(p.Account)
	}

	err := os.MkdirAll(filepath.Dir(p.path), 0700)
	if err != nil {
		return errors.Wrap(err, "failed to save preferences")
	}
	err = p.file.SaveTo(p.path)
	if err != nil {
		return errors.Wrapf(err, "failed to save preferences %q", p.path)
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func (p *Prefs) ToggleDarkMode() bool {
	p.DarkMode = !p.DarkMode
	return p.DarkMode
}

func (p *Prefs) ToggleTestMode() bool {
	p.TestMode = !p.TestMode
	return p.TestMode
}

// SetAccount changes the account shown, "" to forget it.
func (p *Prefs) SetAccount(account string) error {
	account = strings.TrimSpace(account)
	if account != "" && !util.ValidAddress(account) {
		return errors.Errorf("bad address %q", account)
	}
	p.Account = account
	return nil
}
