// Package condition implements the PREIMAGE-SHA-256 crypto-condition
// type used to lock and release escrows on the XRP Ledger.
//
// An escrow created with a Condition can only be finished by an
// EscrowFinish presenting the matching Fulfillment, that is, the
// preimage whose SHA-256 digest the condition carries.
//
// Encodings follow draft-thomas-crypto-conditions (DER):
//
//    fulfillment: A0 <len> 80 <len> <preimage>
//    condition:   A0 25 80 20 <sha256(preimage)> 81 <len> <cost>
//
// Cost of a preimage condition is the length of the preimage.
package condition

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// [0] constructed: the PreimageSha256 choice of Fulfillment and Condition
	tagPreimageSha256 = asn1.Tag(0).ContextSpecific().Constructed()
	tagPreimage       = asn1.Tag(0).ContextSpecific() // fulfillment field
	tagFingerprint    = asn1.Tag(0).ContextSpecific() // condition field
	tagCost           = asn1.Tag(1).ContextSpecific()

	ErrMismatch = errors.New("fulfillment does not match condition")
)

type PreimageSha256 struct {
	preimage []byte
}

func NewPreimageSha256(preimage []byte) *PreimageSha256 {
	p := make([]byte, len(preimage))
	copy(p, preimage)
	return &PreimageSha256{preimage: p}
}

func (this *PreimageSha256) Preimage() []byte {
	return this.preimage
}

func (this *PreimageSha256) Fingerprint() []byte {
	sum := sha256.Sum256(this.preimage)
	return sum[:]
}

func (this *PreimageSha256) Cost() uint64 {
	return uint64(len(this.preimage))
}

// Fulfillment returns the DER encoded fulfillment.
func (this *PreimageSha256) Fulfillment() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(tagPreimageSha256, func(b *cryptobyte.Builder) {
		b.AddASN1(tagPreimage, func(b *cryptobyte.Builder) {
			b.AddBytes(this.preimage)
		})
	})
	return b.Bytes()
}

// Condition returns the DER encoded condition.
func (this *PreimageSha256) Condition() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(tagPreimageSha256, func(b *cryptobyte.Builder) {
		b.AddASN1(tagFingerprint, func(b *cryptobyte.Builder) {
			b.AddBytes(this.Fingerprint())
		})
		b.AddASN1(tagCost, func(b *cryptobyte.Builder) {
			b.AddBytes(encodeCost(this.Cost()))
		})
	})
	return b.Bytes()
}

// FulfillmentHex is the upper case hex fulfillment, as expected in an
// EscrowFinish Fulfillment field.
func (this *PreimageSha256) FulfillmentHex() (string, error) {
	b, err := this.Fulfillment()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// ConditionHex is the upper case hex condition, as expected in an
// EscrowCreate or EscrowFinish Condition field.
func (this *PreimageSha256) ConditionHex() (string, error) {
	b, err := this.Condition()
	if err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

// ParseFulfillment decodes a DER encoded PREIMAGE-SHA-256 fulfillment.
func ParseFulfillment(der []byte) (*PreimageSha256, error) {
	input := cryptobyte.String(der)
	var outer, preimage cryptobyte.String
	if !input.ReadASN1(&outer, tagPreimageSha256) || !input.Empty() {
		return nil, errors.New("malformed fulfillment: expected PREIMAGE-SHA-256")
	}
	if !outer.ReadASN1(&preimage, tagPreimage) || !outer.Empty() {
		return nil, errors.New("malformed fulfillment: expected preimage")
	}
	return NewPreimageSha256(preimage), nil
}

// Validate checks that a hex encoded fulfillment satisfies a hex
// encoded condition.
func Validate(fulfillmentHex, conditionHex string) error {
	f, err := hex.DecodeString(fulfillmentHex)
	if err != nil {
		return errors.Wrap(err, "bad fulfillment hex")
	}
	c, err := hex.DecodeString(conditionHex)
	if err != nil {
		return errors.Wrap(err, "bad condition hex")
	}

	fulfillment, err := ParseFulfillment(f)
	if err != nil {
		return err
	}
	derived, err := fulfillment.Condition()
	if err != nil {
		return err
	}
	if !bytes.Equal(derived, c) {
		return ErrMismatch
	}
	return nil
}

// EscrowFinishFee is the fee, in drops, of an EscrowFinish which
// presents a fulfillment of the given preimage length.
func EscrowFinishFee(preimageLength int) uint64 {
	chunks := (preimageLength + 15) / 16
	return 330 + 10*uint64(chunks)
}

// DER INTEGER content octets of a non-negative value.
func encodeCost(cost uint64) []byte {
	var out []byte
	for {
		out = append([]byte{byte(cost)}, out...)
		cost >>= 8
		if cost == 0 {
			break
		}
	}
	if out[0]&0x80 != 0 {
		out = append([]byte{0}, out...)
	}
	return out
}
