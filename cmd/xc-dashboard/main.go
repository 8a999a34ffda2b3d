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

// Command xc-dashboard
//
// A terminal dashboard for one XRP Ledger account: its settings,
// signer lists, balance, trust lines and the IOUs it has issued.
//
// The account is, in order of preference, the -as flag, the account
// remembered after `xc-tx signin | xc-tx submit`, or the "account"
// configured.
//
// Keys:
//
//   t  switch between dark and light colors
//   n  switch between the live network and testnet
//   r  reload
//   q  quit
//
// Colors and network are remembered in the preferences file (see
// -prefs).
package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/xumm-community/xc/cfg"
	"github.com/xumm-community/xc/internal/cmd"
)

func main() {
	command.RegisterCommand(command.Command{
		Application: "xc",
		Description: "Show an XRP Ledger account in a terminal dashboard.",
	})

	asFlag := command.CommandFlagSet.String("as", "", "account to show (address or nickname)")
	prefsFlag := command.CommandFlagSet.String("prefs", "", "preferences file (default prefs.cfg in the user configuration directory)")

	_, err := command.Config()
	if errors.Is(err, config.ConfigNotFound) {
		// not a problem, we'll use defaults
		command.Info(err)
		err = nil
	}
	command.CheckUsage(err)

	log.SetPrefix("xc-dashboard: ")

	path := *prefsFlag
	if path == "" {
		path, err = cfg.DefaultPath()
		command.Check(err)
	}
	prefs, err := cfg.Load(path)
	command.Check(err)

	address, err := chooseAccount(*asFlag, prefs)
	command.Check(err)
	command.V(1).Infof("showing %q, testnet %t", address, prefs.TestMode)

	m := newModel(prefs, address, loadDashboard)
	m.formatAccount = cmd.FormatAccount

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	if err != nil {
		command.Check(fmt.Errorf("dashboard failed: %w", err))
	}

	command.Exit()
}

// chooseAccount resolves the -as flag, else the remembered account,
// else the configured one.  The result may be "".
func chooseAccount(as string, prefs *cfg.Prefs) (string, error) {
	if as == "" {
		as = prefs.Account
	}
	if as == "" {
		dfault, err := cmd.DefaultAccount()
		if err != nil {
			return "", err
		}
		as = dfault
	}
	if as == "" {
		return "", nil
	}
	accounts, err := cmd.ParseAccountArg([]string{as})
	if err != nil {
		return "", err
	}
	return accounts[0].Address, nil
}
