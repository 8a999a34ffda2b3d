package xumm

import (
	"github.com/xumm-community/xc/tx"
)

// Donation is a Payment of amount XRP to destination.  The signer may
// be any account, xrplAccount is only passed along.
func Donation(destination, amount string, tag *uint32, xrplAccount, referer string) (*Request, error) {
	t, err := tx.NewPayment(
		tx.SetDestination(destination),
		tx.SetDestinationTag(tag),
		tx.SetAmount(amount),
	)
	if err != nil {
		return nil, err
	}
	p := NewPayload(t, 0).Instruct("Thank you for your donation!")
	p.CustomMeta.Blob = map[string]interface{}{"isDonation": true}

	return &Request{
		Options: RequestOptions{
			XrplAccount: xrplAccount,
			Referer:     referer,
			Issuing:     true,
		},
		Payload: *p,
	}, nil
}

// SignIn asks the user to prove control of an account.  The signed
// payload's response names the account.
func SignIn(referer string) *Request {
	p := NewPayload(tx.NewSignIn(), 0)
	return &Request{
		Options: RequestOptions{Referer: referer},
		Payload: *p,
	}
}
