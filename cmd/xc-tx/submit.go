package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
	"src.d10.dev/command"

	"github.com/xumm-community/xc/cfg"
	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/internal/pipeline"
	"github.com/xumm-community/xc/tx"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/util/slack"
	"github.com/xumm-community/xc/xumm"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     submitMain,
		Name:        "submit",
		Syntax:      "submit [-notify=<webhook>] [-confirm] < requests",
		Description: `Operation "submit" creates a Xumm payload for each request read from stdin, and waits until each is signed, rejected or expired.`,
	})
}

func submitMain() error {
	notifyFlag := command.OperationFlagSet.String("notify", "", "Slack webhook URL to notify of each outcome")
	confirmFlag := command.OperationFlagSet.Bool("confirm", false, "confirm each transaction on the ledger")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}

	var webhook *url.URL
	if *notifyFlag != "" {
		webhook, err = url.Parse(*notifyFlag)
		if err != nil {
			return fmt.Errorf("bad webhook (%q): %w", *notifyFlag, err)
		}
	}

	client, err := cmd.Xumm()
	command.Check(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Read requests from stdin
	requests := make(chan xumm.Request)
	go func() {
		defer close(requests)
		err := pipeline.DecodeInput(requests, os.Stdin)
		if err != nil {
			command.Errorf("failed to decode input: %s", err)
		}
	}()

	// errgroup in order to wait for the outcome of all payloads.
	var g errgroup.Group
	count := 0
	for req := range requests {
		req := req
		count++

		created, err := client.Submit(ctx, req)
		if err != nil {
			command.Errorf("failed to submit %s: %s", req.Payload.TxJSON.Type(), err)
			continue
		}
		if req.Payload.Instruction() != "" {
			fmt.Printf("%s\n", req.Payload.Instruction())
		}
		fmt.Printf("Sign %s at %s\n", req.Payload.TxJSON.Type(), created.Next.Always)

		g.Go(func() error {
			tv, err := waitValidate(ctx, client, created, *confirmFlag)
			if err != nil {
				if ctx.Err() != nil {
					cancelPayload(client, created.UUID)
				}
				command.Errorf("payload %s: %s", created.UUID, err)
				return nil
			}
			report(tv)

			err = slack.Message(ctx, webhook, "%s payload %s: %s", tv.Type, tv.ID, tv)
			if err != nil {
				glog.Errorf("notify: %s", err)
			}
			return nil
		})
	}
	if count == 0 {
		command.Infof("no requests found on stdin")
	}

	return g.Wait()
}

func waitValidate(ctx context.Context, client *xumm.Client, created *xumm.Created, confirm bool) (*xumm.TransactionValidation, error) {
	status, err := client.Wait(ctx, created)
	if err != nil {
		return nil, err
	}
	tv := xumm.Validation(status)
	if tv.ID == "" {
		tv.ID = created.UUID
	}

	if confirm && tv.Success {
		ledger, err := dial(ctx, tv.Testnet)
		if err != nil {
			return tv, err
		}
		defer ledger.Close()
		err = xumm.Confirm(ctx, ledger, tv)
		if err != nil {
			return tv, err
		}
	}
	return tv, nil
}

// report prints the outcome, and remembers an account signed in.
func report(tv *xumm.TransactionValidation) {
	fmt.Println(tv)
	if !tv.Success {
		return
	}
	if tv.TxID != "" {
		fmt.Print(util.FormatTransactionLinks(tv.TxID, tv.Testnet))
	}
	if tv.Type == tx.SignIn {
		rememberAccount(tv.Account)
	}
}

func rememberAccount(account string) {
	path, err := cfg.DefaultPath()
	if err != nil {
		glog.Warning(err)
		return
	}
	prefs, err := cfg.Load(path)
	if err == nil {
		err = prefs.SetAccount(account)
	}
	if err == nil {
		err = prefs.Save()
	}
	if err != nil {
		glog.Warning(err)
		return
	}
	command.V(1).Infof("saved %s to %s", account, path)
}

// cancelPayload withdraws a payload when we stop waiting for it.
func cancelPayload(client *xumm.Client, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := client.Cancel(ctx, id)
	if err != nil {
		glog.Warningf("failed to cancel payload %s: %s", id, err)
	}
}
