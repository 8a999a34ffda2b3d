// Package token describes the issuer of a token: its domain, whether
// it can still issue, and when the token was created.
package token

import (
	"context"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/xrpldata"
)

// Accounts with no known private key.  An issuer whose only key is one
// of these can never sign again.
var blackholeKeys = map[string]bool{
	"rrrrrrrrrrrrrrrrrrrrrhoLvTp": true, // ACCOUNT_ZERO
	"rrrrrrrrrrrrrrrrrrrrBZbvji":  true, // ACCOUNT_ONE
	"rrrrrrrrrrrrrrrrrNAMEtxvNvQ": true,
	"rrrrrrrrrrrrrrrrrrrn5RM1rHd": true, // NaN address
}

// Issuer identifies a token.  ResolvedBy names the service which
// resolved the issuer's identity (i.e. "XRPScan" or "Bithomp").
type Issuer struct {
	Account    string
	Currency   string
	ResolvedBy string
}

type Details struct {
	Issuer
	AccountData *rpc.AccountData // nil when lookup failed
	SignerLists []rpc.SignerList // nil when none, or lookup failed
	Creation    *xrpldata.TokenCreation
}

// LoadDetails looks up the issuer's account and the token's creation
// concurrently.  Either lookup may fail, leaving its part of Details
// empty.
func LoadDetails(ctx context.Context, client *rpc.Client, data *xrpldata.Client, issuer Issuer) (*Details, error) {
	d := &Details{Issuer: issuer}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := client.AccountInfo(gctx, issuer.Account, true)
		if err != nil {
			glog.Warningf("token issuer %s: %s", issuer.Account, err)
			return ctx.Err()
		}
		d.AccountData = &info.AccountData
		d.SignerLists = info.Signers()
		return nil
	})
	if data != nil {
		g.Go(func() error {
			creation, err := data.TokenCreation(gctx, issuer.Account, issuer.Currency)
			if err != nil {
				glog.Warningf("token creation %s/%s: %s", issuer.Currency, issuer.Account, err)
				return ctx.Err()
			}
			d.Creation = creation
			return nil
		})
	}

	err := g.Wait()
	return d, err
}

// Domain is the issuer's decoded Domain field, or "".
func (d *Details) Domain() string {
	if d.AccountData == nil {
		return ""
	}
	return util.HexToString(d.AccountData.Domain)
}

func (d *Details) DomainURL() string {
	return util.DomainURL(d.Domain())
}

func (d *Details) ExplorerLink() string {
	return util.AccountExplorerLink(d.Account, d.ResolvedBy)
}

// Blackholed reports whether the issuer can no longer sign
// transactions, so no more of the token can be issued.
func (d *Details) Blackholed() bool {
	a := d.AccountData
	if a == nil || len(d.SignerLists) > 0 || a.RegularKey == "" || !util.MasterKeyDisabled(a.Flags) {
		return false
	}
	return blackholeKeys[a.RegularKey]
}

func (d *Details) CurrencyHex() string {
	return util.CurrencyCodeForXRPL(d.Currency)
}

func (d *Details) CurrencyDisplay() string {
	return util.CurrencyCodeForDisplay(d.Currency)
}

// CreatedAt formats the token creation date, "-" when unknown.
func (d *Details) CreatedAt() string {
	t := d.Creation.Time()
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.RFC1123)
}
