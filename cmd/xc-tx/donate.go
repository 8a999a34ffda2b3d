package main

import (
	"errors"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/xumm"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     donateMain,
		Name:        "donate",
		Syntax:      "donate -to=<account> [-amount=<xrp>]",
		Description: `Operation "donate" composes a donation, a Payment any account may sign.`,
	})
	command.RegisterOperation(command.Operation{
		Handler:     signinMain,
		Name:        "signin",
		Syntax:      "signin",
		Description: `Operation "signin" asks the user to prove control of an account.  "submit" remembers the account signed in.`,
	})
}

func donateMain() error {
	toFlag := command.OperationFlagSet.String("to", "", "address or nickname to receive the donation")
	amountFlag := command.OperationFlagSet.String("amount", "10", "amount of XRP")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	if *toFlag == "" {
		return errors.New("operation requires -to=<account> flag")
	}
	to, err := cmd.ParseAccountArg([]string{*toFlag})
	command.Check(err)

	xrplAccount := ""
	if asAccount != nil {
		xrplAccount = asAccount.Address
	}
	req, err := xumm.Donation(to[0].Address, *amountFlag, to[0].Tag, xrplAccount, *refererFlag)
	command.Check(err)
	command.V(1).Infof("prepared donation of %s XRP to %s", *amountFlag, to[0])
	return encodeOutput(*req)
}

func signinMain() error {
	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	return encodeOutput(*xumm.SignIn(*refererFlag))
}
