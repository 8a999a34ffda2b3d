package tx

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/xumm-community/xc/condition"
)

func NewEscrowFinish(options ...Option) (TxJSON, error) {
	return New(EscrowFinish, options...)
}

func SetOwner(address interface{}) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetOwner", EscrowFinish)
		if err != nil {
			return err
		}
		account, err := parseAccount(address)
		if err != nil {
			return err
		}
		t["Owner"] = account.String()
		return nil
	}
}

// SetOfferSequence identifies the escrow, by the sequence number of
// the EscrowCreate transaction which created it.
func SetOfferSequence(seq uint32) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetOfferSequence", EscrowFinish)
		if err != nil {
			return err
		}
		t["OfferSequence"] = seq
		return nil
	}
}

func SetCondition(conditionHex string) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetCondition", EscrowFinish)
		if err != nil {
			return err
		}
		t["Condition"] = conditionHex
		return nil
	}
}

func SetFulfillment(fulfillmentHex string) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetFulfillment", EscrowFinish)
		if err != nil {
			return err
		}
		t["Fulfillment"] = fulfillmentHex
		return nil
	}
}

// SetPreimage derives Condition and Fulfillment from the secret
// preimage, and sets the higher Fee required to finish a conditional
// escrow.
func SetPreimage(preimage []byte) Option {
	return func(t TxJSON) error {
		err := expect(t, "SetPreimage", EscrowFinish)
		if err != nil {
			return err
		}

		p := condition.NewPreimageSha256(preimage)
		fulfillment, err := p.FulfillmentHex()
		if err != nil {
			return errors.Wrap(err, "SetPreimage: fulfillment")
		}
		cond, err := p.ConditionHex()
		if err != nil {
			return errors.Wrap(err, "SetPreimage: condition")
		}

		// a mismatch here would be a bug, not bad input
		if err := condition.Validate(fulfillment, cond); err != nil {
			glog.Errorf("SetPreimage: fulfillment not valid for condition: %s", err)
		} else if glog.V(2) {
			glog.Infof("SetPreimage: condition %s fulfilled by %s", cond, fulfillment)
		}

		t["Condition"] = cond
		t["Fulfillment"] = fulfillment
		return SetFee(condition.EscrowFinishFee(len(preimage)))(t)
	}
}
