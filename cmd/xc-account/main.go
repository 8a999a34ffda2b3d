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

// Command xc-account
//
// Inspect XRP Ledger accounts: their settings, signer lists, balances,
// the IOUs they have issued, and the tokens they issue.
//
// Accounts may be given by address, or by a nickname configured as
//
//   [bitstamp]
//   address=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B
//
// With no account, operations use the "account" configured.  Use the
// global -testnet flag to query testnet.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/rpc"
)

var testnetFlag *bool

func main() {
	command.RegisterCommand(command.Command{
		Application: "xc",
		Description: "Inspect account(s) on the XRP Ledger.",
	})

	testnetFlag = command.CommandFlagSet.Bool("testnet", false, "query testnet rather than the live network")

	_, err := command.Config()
	if errors.Is(err, config.ConfigNotFound) {
		// not a problem, we'll use defaults
		command.Info(err)
		err = nil
	}
	command.CheckUsage(err)

	// this command requires an operation
	if len(flag.CommandLine.Args()) < 1 {
		command.CheckUsage(errors.New("command requires an operation"))
	}

	// default prefix for subcommand
	log.SetPrefix(fmt.Sprintf("xc-account %s: ", flag.CommandLine.Args()[0]))

	err = command.CurrentOperation().Operate()
	command.CheckUsage(err)

	command.Exit()
}

// dial connects to rippled on the network chosen by -testnet.
func dial(ctx context.Context) (*rpc.Client, error) {
	rippled, err := cmd.Rippled(*testnetFlag)
	if err != nil {
		return nil, err
	}
	client, err := rpc.Dial(ctx, rippled)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %q: %w", rippled, err)
	}
	command.V(1).Infof("connected to %q", rippled)
	return client, nil
}

// accountArgs parses the operation's arguments, or falls back to the
// configured account.
func accountArgs(args []string) ([]cmd.Account, error) {
	if len(args) == 0 {
		dfault, err := cmd.DefaultAccount()
		if err != nil {
			return nil, err
		}
		if dfault == "" {
			return nil, errors.New("Expected <account> parameter.")
		}
		args = []string{dfault}
	}
	return cmd.ParseAccountArg(args)
}
