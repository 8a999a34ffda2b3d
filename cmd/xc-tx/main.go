// Command xc-tx
//
// Compose XRP Ledger transactions, and have them signed with Xumm.
//
// Operations such as "accountset" and "escrowfinish" write payload
// requests to stdout.  Operation "submit" reads them from stdin,
// creates each payload on the Xumm platform, prints the link to sign
// it, and waits for the outcome.  For example
//
//   xc-tx -as=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B accountset -domain=example.com | xc-tx submit
//
// Xumm API credentials are configured as
//
//   xumm_key=...
//   xumm_secret=...
//
// or taken from XUMM_API_KEY and XUMM_API_SECRET.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"src.d10.dev/command"
	"src.d10.dev/command/config"

	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/internal/pipeline"
	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/xumm"
)

var (
	asFlag      *string
	refererFlag *string
	testnetFlag *bool

	asAccount *cmd.Account // signing account, when known
)

func main() {
	command.RegisterCommand(command.Command{
		Application: "xc",
		Description: "Compose transactions and sign them with Xumm.",
	})

	asFlag = command.CommandFlagSet.String("as", "", "Address of signing account")
	refererFlag = command.CommandFlagSet.String("referer", "", "URL the signer returns to")
	testnetFlag = command.CommandFlagSet.Bool("testnet", false, "use testnet rather than the live network")

	_, err := command.Config()
	if errors.Is(err, config.ConfigNotFound) {
		// not a problem, we'll use defaults
		err = nil
	}
	// if error, fail and show usage
	command.CheckUsage(err)

	if *asFlag == "" {
		*asFlag, err = cmd.DefaultAccount()
		command.Check(err)
	}
	if *asFlag != "" {
		tmp, err := cmd.ParseAccountArg([]string{*asFlag})
		if err != nil {
			command.Check(fmt.Errorf("bad address (%q): %w", *asFlag, err))
		}
		asAccount = &tmp[0]
	}

	// this command requires an operation
	if len(flag.CommandLine.Args()) < 1 {
		command.CheckUsage(errors.New("command requires an operation"))
	}

	// default prefix for subcommand
	log.SetPrefix(fmt.Sprintf("xc-tx %s: ", flag.CommandLine.Args()[0]))

	err = command.CurrentOperation().Operate()
	command.CheckUsage(err)

	command.Exit()
}

// newRequest wraps a payload with the global options.
func newRequest(p *xumm.Payload) xumm.Request {
	req := xumm.Request{
		Options: xumm.RequestOptions{Referer: *refererFlag},
		Payload: *p,
	}
	if asAccount != nil {
		req.Options.XrplAccount = asAccount.Address
	}
	return req
}

func encodeOutput(req ...xumm.Request) error {
	c := make(chan xumm.Request, len(req))
	for _, r := range req {
		c <- r
	}
	close(c)
	return pipeline.EncodeOutput(os.Stdout, c)
}

func dial(ctx context.Context, testnet bool) (*rpc.Client, error) {
	rippled, err := cmd.Rippled(testnet)
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
