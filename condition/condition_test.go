package condition

import (
	"strings"
	"testing"
)

const (
	sha256Empty = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"
	sha256AAA   = "9834876DCFB05CB167A5C24953EBA58C4AC89B1ADF57F28F2F9D09AF107EE8F0"
)

func TestPreimageSha256(t *testing.T) {
	for _, test := range []struct {
		preimage               string
		fulfillment, condition string
	}{
		{"", "A0028000", "A0258020" + sha256Empty + "810100"},
		{"aaa", "A0058003616161", "A0258020" + sha256AAA + "810103"},
	} {
		p := NewPreimageSha256([]byte(test.preimage))

		f, err := p.FulfillmentHex()
		if err != nil {
			t.Fatal(err)
		}
		if f != test.fulfillment {
			t.Errorf("preimage %q fulfillment: wanted %s, got %s", test.preimage, test.fulfillment, f)
		}

		c, err := p.ConditionHex()
		if err != nil {
			t.Fatal(err)
		}
		if c != test.condition {
			t.Errorf("preimage %q condition: wanted %s, got %s", test.preimage, test.condition, c)
		}

		if err := Validate(f, c); err != nil {
			t.Errorf("preimage %q: %s", test.preimage, err)
		}
	}
}

func TestLongPreimage(t *testing.T) {
	// lengths over 127 need long form DER lengths, and a cost with the
	// high bit set needs a leading zero octet
	p := NewPreimageSha256([]byte(strings.Repeat("x", 200)))

	f, err := p.FulfillmentHex()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(f, "A081CB8081C8") {
		t.Errorf("unexpected fulfillment prefix: %s", f[:16])
	}

	c, err := p.ConditionHex()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(c, "A0268020") || !strings.HasSuffix(c, "810200C8") {
		t.Errorf("unexpected condition: %s", c)
	}

	if err := Validate(f, c); err != nil {
		t.Error(err)
	}
}

func TestValidateMismatch(t *testing.T) {
	f, _ := NewPreimageSha256([]byte("secret")).FulfillmentHex()
	c, _ := NewPreimageSha256([]byte("other")).ConditionHex()

	if err := Validate(f, c); err != ErrMismatch {
		t.Errorf("wanted ErrMismatch, got %v", err)
	}
	if err := Validate("zz", c); err == nil {
		t.Error("expected error for bad hex")
	}
	if err := Validate("A0038101FF", c); err == nil {
		t.Error("expected error for malformed fulfillment")
	}
}

func TestEscrowFinishFee(t *testing.T) {
	for _, test := range []struct {
		length int
		want   uint64
	}{
		{0, 330},
		{1, 340},
		{16, 340},
		{17, 350},
		{32, 350},
		{33, 360},
	} {
		if got := EscrowFinishFee(test.length); got != test.want {
			t.Errorf("EscrowFinishFee(%d): wanted %d, got %d", test.length, test.want, got)
		}
	}
}
