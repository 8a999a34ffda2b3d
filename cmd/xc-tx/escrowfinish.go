package main

import (
	"errors"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/form"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     escrowfinishMain,
		Name:        "escrowfinish",
		Syntax:      "escrowfinish -owner=<account> -sequence=<int> [-password=<preimage>]",
		Description: `Operation "escrowfinish" composes an EscrowFinish, releasing a time or crypto-condition escrow.`,
	})
}

func escrowfinishMain() error {
	f := &form.EscrowFinish{}
	command.OperationFlagSet.StringVar(&f.Owner, "owner", "", "account which created the escrow")
	command.OperationFlagSet.StringVar(&f.Sequence, "sequence", "", "sequence number of the EscrowCreate")
	command.OperationFlagSet.StringVar(&f.Password, "password", "", "preimage of the escrow's condition")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}

	f.Check()
	if !f.ValidAddress {
		return errors.New("operation requires -owner=<account> flag")
	}
	if !f.ValidSequence {
		return errors.New("operation requires -sequence=<int> flag")
	}
	if f.Password != "" && !f.ValidCondition {
		return errors.New("-password must not be blank")
	}
	p, err := f.Payload()
	if err != nil {
		return err
	}
	if f.ValidCondition {
		command.V(1).Infof("condition %s, fee %s drops", p.TxJSON.String("Condition"), p.TxJSON.String("Fee"))
	}
	return encodeOutput(newRequest(p))
}
