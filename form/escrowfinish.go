package form

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/xumm-community/xc/tx"
	"github.com/xumm-community/xc/util"
	"github.com/xumm-community/xc/xumm"
)

const escrowFinishExpire = 5 // minutes

var (
	ErrInvalidEscrowFinish = errors.New("escrow owner and sequence required")
	ErrBlankPassword       = errors.New("escrow password is blank")
)

// EscrowFinish releases an escrow.  Password is the preimage of the
// escrow's crypto-condition, and may be empty for a time based escrow.
type EscrowFinish struct {
	Owner    string
	Sequence string
	Password string

	ValidAddress   bool
	ValidSequence  bool
	ValidCondition bool

	valid bool
}

func (f *EscrowFinish) sequence() (uint32, error) {
	seq, err := strconv.ParseUint(strings.TrimSpace(f.Sequence), 10, 32)
	return uint32(seq), err
}

func (f *EscrowFinish) Check() {
	_, err := f.sequence()
	f.ValidSequence = err == nil
	f.ValidAddress = util.ValidAddress(strings.TrimSpace(f.Owner))
	f.ValidCondition = strings.TrimSpace(f.Password) != ""

	f.valid = f.ValidAddress && f.ValidSequence && (f.Password == "" || f.ValidCondition)
}

func (f *EscrowFinish) Valid() bool {
	return f.valid
}

func (f *EscrowFinish) Payload() (*xumm.Payload, error) {
	f.Check()
	if !f.valid {
		if f.ValidAddress && f.ValidSequence {
			return nil, ErrBlankPassword
		}
		return nil, ErrInvalidEscrowFinish
	}
	seq, _ := f.sequence()

	options := []tx.Option{
		tx.SetOwner(strings.TrimSpace(f.Owner)),
		tx.SetOfferSequence(seq),
	}
	if f.ValidCondition {
		options = append(options, tx.SetPreimage([]byte(strings.TrimSpace(f.Password))))
	}

	t, err := tx.NewEscrowFinish(options...)
	if err != nil {
		return nil, errors.Wrap(err, "EscrowFinish")
	}
	return xumm.NewPayload(t, escrowFinishExpire), nil
}

// Clear empties the form, after the escrow is finished.  The password
// is left, in case the same preimage protects other escrows.
func (f *EscrowFinish) Clear() {
	f.Owner = ""
	f.Sequence = ""
	f.ValidAddress = false
	f.ValidSequence = false
	f.valid = false
}
