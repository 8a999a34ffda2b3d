package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/account"
	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/util"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     iousMain,
		Name:        "ious",
		Syntax:      "ious [<issuer> ...]",
		Description: `Operation "ious" lists the currencies an account has issued, and the amount outstanding.`,
	})
}

func iousMain() error {
	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	issuers, err := accountArgs(command.OperationFlagSet.Args())
	command.Check(err)

	ctx := context.Background()
	client, err := dial(ctx)
	command.Check(err)
	defer client.Close()

	for _, issuer := range issuers {
		ious, err := account.LoadIOUs(ctx, client, issuer.Address)
		if err != nil {
			command.Errorf("gateway_balances failed for %s: %s", issuer, err)
			continue
		}
		if len(ious) == 0 {
			fmt.Printf("%s: no IOUs issued\n\n", cmd.FormatAccount(issuer.Address))
			continue
		}

		table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.Debug)
		fmt.Fprintf(table, "%s\t Currency\t Amount\t\n", cmd.FormatAccount(issuer.Address))
		for _, iou := range ious {
			fmt.Fprintf(table, "\t %s\t %s\t\n", util.CurrencyCodeForDisplay(iou.Currency), util.FormatAmount(iou.Amount))
		}
		table.Flush()
		fmt.Println("") // blank line
	}
	return nil
}
