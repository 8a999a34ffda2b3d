package main

import (
	"context"
	"errors"
	"strconv"

	"src.d10.dev/command"

	"github.com/xumm-community/xc/form"
	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/xumm"
)

func init() {
	command.RegisterOperation(command.Operation{
		Handler:     accountsetMain,
		Name:        "accountset",
		Syntax:      "accountset [-domain=<domain>] [-email=<address>] [-requiredest=<bool>] [-disablemaster=<bool>] [-deletedomain] [-deleteemail]",
		Description: `Operation "accountset" composes an AccountSet, changing the settings which differ from the account's current ones.`,
	})
}

func accountsetMain() error {
	domainFlag := command.OperationFlagSet.String("domain", "", "domain to publish")
	emailFlag := command.OperationFlagSet.String("email", "", "email address, only its hash is published")
	requireDestFlag := command.OperationFlagSet.String("requiredest", "", "true or false, require a destination tag on incoming payments")
	disableMasterFlag := command.OperationFlagSet.String("disablemaster", "", "true or false, disable the master key")
	deleteDomainFlag := command.OperationFlagSet.Bool("deletedomain", false, "remove the account's domain")
	deleteEmailFlag := command.OperationFlagSet.Bool("deleteemail", false, "remove the account's email hash")

	err := command.OperationFlagSet.Parse(command.Args()[1:])
	if err != nil {
		return err
	}
	if asAccount == nil {
		return errors.New("operation requires -as <account> flag")
	}

	ctx := context.Background()
	client, err := dial(ctx, *testnetFlag)
	command.Check(err)
	defer client.Close()

	var original *rpc.AccountData
	info, err := client.AccountInfo(ctx, asAccount.Address, false)
	if err != nil {
		if !rpc.IsNotFound(err) {
			return err
		}
		command.Infof("account %s not found, all settings are new", asAccount)
	} else {
		original = &info.AccountData
	}
	f := form.NewAccountSet(original)

	var requests []xumm.Request
	if *deleteDomainFlag {
		p, err := f.DeleteDomainPayload()
		command.Check(err)
		requests = append(requests, newRequest(p))
	}
	if *deleteEmailFlag {
		p, err := f.DeleteEmailHashPayload()
		command.Check(err)
		requests = append(requests, newRequest(p))
	}

	if *domainFlag != "" {
		f.Domain = *domainFlag
	}
	f.Email = *emailFlag
	if *requireDestFlag != "" {
		f.RequireDestTag, err = strconv.ParseBool(*requireDestFlag)
		if err != nil {
			return err
		}
	}
	if *disableMasterFlag != "" {
		f.DisableMaster, err = strconv.ParseBool(*disableMasterFlag)
		if err != nil {
			return err
		}
	}
	f.Check()

	switch {
	case f.EmailChanged && !f.ValidEmail:
		command.Errorf("bad email address (%q)", *emailFlag)
	case f.RequireDestTagChanged && f.DisableMasterChanged:
		command.Errorf("change -requiredest and -disablemaster in separate transactions")
	case f.Valid():
		p, err := f.Payload()
		command.Check(err)
		requests = append(requests, newRequest(p))
		command.V(1).Infof("prepared AccountSet for %s:\n%s", asAccount, p.Instruction())
	case len(requests) == 0:
		command.Infof("no changes to %s", asAccount)
	}

	if len(requests) == 0 {
		return nil
	}
	return encodeOutput(requests...)
}
