// Package account loads the state of an XRPL account: its settings,
// signer lists and balance, and the IOUs it has issued.
package account

import (
	"context"
	"math/big"
	"sort"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/util"
)

// Snapshot is what is known about an account after one load.  Info
// and Objects are nil when the account does not exist or the request
// failed.  A new load replaces the whole snapshot.
type Snapshot struct {
	Account string
	Info    *rpc.AccountInfoResult
	Objects *rpc.AccountObjectsResult
}

// Data returns the account root fields, or nil.
func (s *Snapshot) Data() *rpc.AccountData {
	if s == nil || s.Info == nil {
		return nil
	}
	return &s.Info.AccountData
}

// BalanceXRP is the account's balance in XRP, zero when unknown.
func (s *Snapshot) BalanceXRP() *big.Rat {
	d := s.Data()
	if d == nil {
		return new(big.Rat)
	}
	xrp, err := util.DropsToXRP(d.Balance)
	if err != nil {
		glog.Warningf("account %s: %s", s.Account, err)
		return new(big.Rat)
	}
	return xrp
}

// SignerLists from account_objects, falling back to those returned
// with account_info.
func (s *Snapshot) SignerLists() []rpc.SignerList {
	if s == nil {
		return nil
	}
	if s.Objects != nil {
		lists, err := s.Objects.SignerLists()
		if err != nil {
			glog.Warningf("account %s: %s", s.Account, err)
		}
		if len(lists) > 0 {
			return lists
		}
	}
	return s.Info.Signers()
}

// Load fetches account_info and the account's signer list
// concurrently.  Failures are logged and leave the corresponding
// field nil; the error returned is reserved for a cancelled context.
func Load(ctx context.Context, client *rpc.Client, account string) (*Snapshot, error) {
	s := &Snapshot{Account: account}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := client.AccountInfo(gctx, account, false)
		if err != nil {
			logFailure("account_info", account, err)
			return ctx.Err()
		}
		s.Info = info
		return nil
	})
	g.Go(func() error {
		objects, err := client.AccountObjects(gctx, account, rpc.ObjectSignerList)
		if err != nil {
			logFailure("account_objects", account, err)
			return ctx.Err()
		}
		s.Objects = objects
		return nil
	})

	err := g.Wait()
	return s, err
}

func logFailure(command, account string, err error) {
	if rpc.IsNotFound(err) {
		glog.V(1).Infof("%s %s: %s", command, account, err)
	} else {
		glog.Warningf("%s %s: %s", command, account, err)
	}
}

// IOU is an issued currency and the total outstanding.
type IOU struct {
	Currency string
	Amount   string
}

// LoadIOUs returns the obligations of an issuer, sorted by currency.
// An issuer with no obligations returns nil.
func LoadIOUs(ctx context.Context, client *rpc.Client, issuer string) ([]IOU, error) {
	result, err := client.GatewayBalances(ctx, issuer)
	if err != nil {
		return nil, err
	}
	return Obligations(result), nil
}

// Obligations flattens a gateway_balances result.
func Obligations(result *rpc.GatewayBalancesResult) []IOU {
	if result == nil || len(result.Obligations) == 0 {
		return nil
	}
	ious := make([]IOU, 0, len(result.Obligations))
	for currency, amount := range result.Obligations {
		ious = append(ious, IOU{Currency: currency, Amount: amount})
	}
	sort.Slice(ious, func(i, j int) bool {
		return ious[i].Currency < ious[j].Currency
	})
	return ious
}
