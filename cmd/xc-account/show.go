package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"src.d10.dev/command"

	"github.com/xumm-community/xc/account"
	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/util"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     showMain,
		Name:        "show",
		Syntax:      "show [<account> ...]",
		Description: "Show current settings, signer lists and balances of accounts.",
	})
}

func showMain() error {
	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	accounts, err := accountArgs(command.OperationFlagSet.Args())
	command.Check(err)

	ctx := context.Background()
	client, err := dial(ctx)
	command.Check(err)
	defer client.Close()

	snapshots := make([]*account.Snapshot, len(accounts))
	lines := make([][]rpc.TrustLine, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range accounts {
		i, a := i, a // https://golang.org/doc/faq#closures_and_goroutines
		g.Go(func() (err error) {
			snapshots[i], err = account.Load(gctx, client, a.Address)
			return err
		})
		g.Go(func() error {
			result, err := client.AccountLines(gctx, a.Address)
			if err != nil {
				// not found is already reported by account.Load
				if !rpc.IsNotFound(err) {
					command.Errorf("account_lines failed for %s: %s", a, err)
				}
				return nil
			}
			lines[i] = result
			return nil
		})
	}
	err = g.Wait()
	command.Check(err)

	for i, a := range accounts {
		s := snapshots[i]
		d := s.Data()
		if d == nil {
			command.Errorf("account %s not found", a)
			continue
		}

		table := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.Debug)
		fmt.Fprintln(table, "Account\t XRP\t Sequence\t Owner Count\t Flags\t Ledger Index\t")
		fmt.Fprintf(table, "%s\t %s\t %d\t %d\t %s\t %d\t\n",
			cmd.FormatAccount(d.Account),
			util.FormatXRP(s.BalanceXRP()),
			d.Sequence,
			d.OwnerCount,
			util.FormatAccountFlags(d.Flags),
			s.Info.LedgerCurrentIndex,
		)
		table.Flush()
		fmt.Println("") // blank line

		table = tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
		fmt.Fprintf(table, "Domain\t %s\n", util.FormatOptional(util.HexToString(d.Domain)))
		fmt.Fprintf(table, "EmailHash\t %s\n", util.FormatOptional(d.EmailHash))
		fmt.Fprintf(table, "Regular Key\t %s\n", util.FormatOptional(d.RegularKey))
		fmt.Fprintf(table, "Require Destination Tag\t %t\n", util.RequireDestinationTag(d.Flags))
		fmt.Fprintf(table, "Master Key Disabled\t %t\n", util.MasterKeyDisabled(d.Flags))
		table.Flush()
		fmt.Println("")

		for _, list := range s.SignerLists() {
			table = tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)
			fmt.Fprintf(table, "Signer List (quorum %d)\t Weight\t\n", list.SignerQuorum)
			for _, entry := range list.Entries() {
				fmt.Fprintf(table, "%s\t %d\t\n", cmd.FormatAccount(entry.Account), entry.SignerWeight)
			}
			table.Flush()
			fmt.Println("")
		}

		table = tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', tabwriter.DiscardEmptyColumns)
		fmt.Fprintln(table, "Balances\t Amount\t Currency/Issuer\t Limit\t Peer Limit\t")
		fmt.Fprintf(table, "%s\t %s\t %s\t\t\t\n", cmd.FormatAccount(d.Account), util.FormatXRP(s.BalanceXRP()), "XRP")
		for _, line := range lines[i] {
			fmt.Fprintf(table, "%s\t %s\t %s/%s\t %s\t %s\t\n",
				cmd.FormatAccount(d.Account),
				util.FormatAmount(line.Balance),
				util.CurrencyCodeForDisplay(line.Currency),
				cmd.FormatAccount(line.Account),
				util.FormatAmount(line.Limit),
				util.FormatAmount(line.LimitPeer),
			)
		}
		table.Flush()
		fmt.Println("")
	}
	return nil
}
