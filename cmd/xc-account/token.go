package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/token"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/xrpldata"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     tokenMain,
		Name:        "token",
		Syntax:      "token [-resolvedby=<explorer>] <issuer> <currency>",
		Description: `Operation "token" describes a token: its issuer's domain, whether the issuer is blackholed, and when the token was created.`,
	})
}

func tokenMain() error {
	resolvedBy := command.OperationFlagSet.String("resolvedby", "", "service which resolved the issuer (XRPScan or Bithomp), chooses the explorer link")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	args := command.OperationFlagSet.Args()
	if len(args) != 2 {
		return errors.New("Expected <issuer> <currency> parameters.")
	}
	issuers, err := cmd.ParseAccountArg(args[:1])
	command.Check(err)
	_, err = util.ParseCurrencyCode(args[1])
	if err != nil {
		return err
	}

	ctx := context.Background()
	client, err := dial(ctx)
	command.Check(err)
	defer client.Close()

	dataAPI, err := cmd.XrplData()
	command.Check(err)
	dataClient, err := xrpldata.NewClient(dataAPI)
	if err != nil {
		command.Check(fmt.Errorf("Failed to connect to xrpldata (%q): %w", dataAPI, err)) // exits
	}

	d, err := token.LoadDetails(ctx, client, dataClient, token.Issuer{
		Account:    issuers[0].Address,
		Currency:   args[1],
		ResolvedBy: *resolvedBy,
	})
	command.Check(err)

	table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	fmt.Fprintf(table, "Issuer\t %s\n", cmd.FormatAccount(d.Account))
	fmt.Fprintf(table, "Currency\t %s\n", d.CurrencyDisplay())
	fmt.Fprintf(table, "Currency (ledger)\t %s\n", d.CurrencyHex())
	if d.AccountData == nil {
		fmt.Fprintf(table, "Domain\t (issuer not found)\n")
	} else {
		fmt.Fprintf(table, "Domain\t %s\n", util.FormatOptional(d.DomainURL()))
		fmt.Fprintf(table, "Blackholed\t %t\n", d.Blackholed())
	}
	fmt.Fprintf(table, "Created\t %s\n", d.CreatedAt())
	fmt.Fprintf(table, "Explorer\t %s\n", d.ExplorerLink())
	table.Flush()
	return nil
}

