package main

import (
	"context"
	"errors"
	"fmt"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/xumm"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     statusMain,
		Name:        "status",
		Syntax:      "status [-confirm] <payload uuid> [...]",
		Description: `Operation "status" shows the outcome of payloads.`,
	})
}

func statusMain() error {
	confirmFlag := command.OperationFlagSet.Bool("confirm", false, "confirm each transaction on the ledger")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	args := command.OperationFlagSet.Args()
	if len(args) == 0 {
		return errors.New("Expected <payload uuid> parameter.")
	}

	client, err := cmd.Xumm()
	command.Check(err)

	ctx := context.Background()
	for _, id := range args {
		tv, err := client.Validate(ctx, id)
		if err != nil {
			command.Errorf("payload %s: %s", id, err)
			continue
		}
		if *confirmFlag && tv.Success {
			ledger, err := dial(ctx, tv.Testnet)
			command.Check(err)
			err = xumm.Confirm(ctx, ledger, tv)
			ledger.Close()
			if err != nil {
				command.Errorf("payload %s: %s", id, err)
			}
		}

		fmt.Printf("%s (%s)\n", id, util.FormatOptional(tv.Type))
		fmt.Printf("\t%s\n", tv)
		if tv.Account != "" {
			fmt.Printf("\tAccount: %s\n", cmd.FormatAccount(tv.Account))
		}
		if tv.Result != "" {
			fmt.Printf("\tResult: %s\n", tv.Result)
		}
		if tv.Success && tv.TxID != "" {
			fmt.Print(util.FormatTransactionLinks(tv.TxID, tv.Testnet))
		}
	}
	return nil
}
