package account

import (
	"context"
	"testing"
	"time"

	"github.com/xumm-community/xc/internal/rippledtest"
	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/util"
)

const (
	accountInfo = `{"account_data":{"Account":"rU2mEJSLqBRkYLVTv55rFTgQajkLTnT6mA","Balance":"48995000","Flags":131072,"Sequence":42},"ledger_current_index":61234600}`

	accountObjects = `{"account":"rU2mEJSLqBRkYLVTv55rFTgQajkLTnT6mA","account_objects":[{"LedgerEntryType":"SignerList","SignerQuorum":1,"SignerEntries":[{"SignerEntry":{"Account":"rsA2LpzuawewSBQXkiju3YQTMzW13pAAdW","SignerWeight":1}}]}]}`
)

func dial(t *testing.T, s *rippledtest.Server) *rpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := rpc.Dial(ctx, s.URL)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLoad(t *testing.T) {
	s := rippledtest.NewServer(t)
	defer s.Close()
	s.Handle("account_info", rippledtest.Result([]byte(accountInfo)))
	s.Handle("account_objects", rippledtest.Result([]byte(accountObjects)))

	c := dial(t, s)
	defer c.Close()

	snap, err := Load(context.Background(), c, "rU2mEJSLqBRkYLVTv55rFTgQajkLTnT6mA")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Data() == nil || snap.Data().Sequence != 42 {
		t.Fatalf("unexpected account data: %+v", snap.Data())
	}
	if got := util.FormatXRP(snap.BalanceXRP()); got != "48.995" {
		t.Errorf("balance: wanted 48.995, got %s", got)
	}
	if lists := snap.SignerLists(); len(lists) != 1 || lists[0].SignerQuorum != 1 {
		t.Errorf("unexpected signer lists: %+v", lists)
	}
	if !util.RequireDestinationTag(snap.Data().Flags) {
		t.Error("expected RequireDest flag")
	}
}

func TestLoadNotFound(t *testing.T) {
	s := rippledtest.NewServer(t)
	defer s.Close()
	s.Handle("account_info", rippledtest.NotFound())
	s.Handle("account_objects", rippledtest.NotFound())

	c := dial(t, s)
	defer c.Close()

	snap, err := Load(context.Background(), c, "rrrrrrrrrrrrrrrrrrrrrhoLvTp")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Info != nil || snap.Objects != nil {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
	if snap.Data() != nil {
		t.Error("expected nil data")
	}
	if snap.BalanceXRP().Sign() != 0 {
		t.Error("expected zero balance")
	}
	if snap.SignerLists() != nil {
		t.Error("expected no signer lists")
	}
}

func TestLoadIOUs(t *testing.T) {
	s := rippledtest.NewServer(t)
	defer s.Close()

	c := dial(t, s)
	defer c.Close()

	s.Handle("gateway_balances", rippledtest.Result([]byte(`{"account":"rA","obligations":{"USD":"50","EUR":"0.03","534F4C4F00000000000000000000000000000000":"100"}}`)))
	ious, err := LoadIOUs(context.Background(), c, "rA")
	if err != nil {
		t.Fatal(err)
	}
	want := []IOU{
		{"534F4C4F00000000000000000000000000000000", "100"},
		{"EUR", "0.03"},
		{"USD", "50"},
	}
	if len(ious) != len(want) {
		t.Fatalf("wanted %v, got %v", want, ious)
	}
	for i := range want {
		if ious[i] != want[i] {
			t.Errorf("wanted %v, got %v", want[i], ious[i])
		}
	}

	s.Handle("gateway_balances", rippledtest.Result([]byte(`{"account":"rA","obligations":{}}`)))
	ious, err = LoadIOUs(context.Background(), c, "rA")
	if err != nil {
		t.Fatal(err)
	}
	if ious != nil {
		t.Errorf("wanted nil, got %v", ious)
	}
}
