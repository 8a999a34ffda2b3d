// Copyright (C) 2021  Xumm Community
// This file is part of github.com/xumm-community/xc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-ini/ini"
	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/xumm-community/xc/util"
)

// Account is an address, as entered on the command line or configured
// under a nickname.
type Account struct {
	Address  string
	Tag      *uint32 // destination tag, when configured
	Nickname string
}

func (this Account) String() string {
	if this.Nickname != "" {
		return fmt.Sprintf("%s (%s)", this.Nickname, this.Address)
	}
	return this.Address
}

var accountByNickname map[string]Account
var nicknameByAddress map[string]string

// Nicknames are configured as sections, i.e.
//
//   [bitstamp]
//   address=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B
//   tag=12345
func initializeNicknames() error {
	// once
	if accountByNickname != nil {
		return nil
	}

	cfg, err := command.Config()
	if err != nil {
		if errors.Is(err, config.ConfigNotFound) {
			// no config, no nicknames
			accountByNickname = make(map[string]Account)
			nicknameByAddress = make(map[string]string)
			return nil
		}
		return err
	}
	return loadNicknames(cfg)
}

func loadNicknames(cfg *ini.File) error {
	byNickname := make(map[string]Account)
	byAddress := make(map[string]string)

	for _, section := range cfg.Sections() {
		if !section.HasKey("address") {
			continue
		}
		a := Account{
			Nickname: section.Name(),
			Address:  strings.TrimSpace(section.Key("address").Value()),
		}
		if !util.ValidAddress(a.Address) {
			return fmt.Errorf("bad address %q in [%s]", a.Address, a.Nickname)
		}
		if section.HasKey("tag") {
			t, err := section.Key("tag").Uint()
			if err != nil {
				return fmt.Errorf("failed to parse configuration [%s]: %w", section.Name(), err)
			}
			tmp := uint32(t)
			a.Tag = &tmp
		}
		byNickname[a.Nickname] = a

		// first nickname wins, when an address has several
		if _, ok := byAddress[a.Address]; !ok {
			byAddress[a.Address] = a.Nickname
		}
	}

	accountByNickname = byNickname
	nicknameByAddress = byAddress
	return nil
}

// FormatAccount returns "nickname (address)" when a nickname is
// configured, otherwise the address.
func FormatAccount(address string) string {
	if initializeNicknames() != nil {
		return address
	}
	nick, ok := nicknameByAddress[address]
	if !ok {
		return address
	}
	return Account{Address: address, Nickname: nick}.String()
}

// ParseAccountArg accepts accounts by local nickname, as well as by
// address.
func ParseAccountArg(arg []string) ([]Account, error) {
	err := initializeNicknames()
	if err != nil {
		return nil, err
	}

	var account []Account
	for _, a := range arg {
		acct, ok := accountByNickname[a]
		if !ok {
			address := strings.TrimSpace(a)
			_, err := util.ParseAddress(address)
			if err != nil {
				return account, err
			}
			acct = Account{Address: address}
		}
		account = append(account, acct)
	}
	return account, nil
}
