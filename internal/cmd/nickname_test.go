package cmd

import (
	"testing"

	"github.com/go-ini/ini"
)

func TestNicknames(t *testing.T) {
	cfg, err := ini.Load([]byte(`
account=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B

[bitstamp]
address=rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B

[sologenic]
address=rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz
tag=42
`))
	if err != nil {
		t.Fatal(err)
	}
	err = loadNicknames(cfg)
	if err != nil {
		t.Fatal(err)
	}

	accounts, err := ParseAccountArg([]string{"bitstamp", "sologenic", "rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz"})
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %v", accounts)
	}
	if accounts[0].Address != "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B" || accounts[0].Tag != nil {
		t.Errorf("unexpected %+v", accounts[0])
	}
	if accounts[1].Tag == nil || *accounts[1].Tag != 42 {
		t.Errorf("expected tag 42, got %+v", accounts[1])
	}
	if accounts[2].Nickname != "" {
		t.Errorf("expected no nickname, got %+v", accounts[2])
	}

	if s := FormatAccount("rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz"); s != "sologenic (rsoLo2S1kiGeCcn6hCUXVrCpGMWLrRrLZz)" {
		t.Errorf("unexpected format %q", s)
	}
	if s := FormatAccount("rrrrrrrrrrrrrrrrrrrrBZbvji"); s != "rrrrrrrrrrrrrrrrrrrrBZbvji" {
		t.Errorf("unexpected format %q", s)
	}

	_, err = ParseAccountArg([]string{"nobody"})
	if err == nil {
		t.Error("expected error for unknown nickname")
	}
}

func TestBadNickname(t *testing.T) {
	cfg, err := ini.Load([]byte("[bad]\naddress=rNope\n"))
	if err != nil {
		t.Fatal(err)
	}
	if err := loadNicknames(cfg); err == nil {
		t.Error("expected error for bad address")
	}
}
