package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xumm-community/xc/account"
	"github.com/xumm-community/xc/cfg"
	"github.com/xumm-community/xc/rpc"
)

const testAddress = "rU2mEJSLqBRkYLVTv55rFTgQajkLTnT6mA"

type fakeLoader struct {
	calls   int
	testnet []bool
	err     error
}

func (f *fakeLoader) load(ctx context.Context, address string, testnet bool) (*dashboard, error) {
	f.calls++
	f.testnet = append(f.testnet, testnet)
	if f.err != nil {
		return nil, f.err
	}
	return &dashboard{
		Snapshot: &account.Snapshot{
			Account: address,
			Info: &rpc.AccountInfoResult{AccountData: rpc.AccountData{
				Account:  address,
				Balance:  "48995000",
				Domain:   "6578616D706C652E636F6D",
				Sequence: 42,
			}},
		},
		Lines: []rpc.TrustLine{
			{Account: "rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B", Balance: "12.5", Currency: "USD"},
		},
		IOUs: []account.IOU{{Currency: "EUR", Amount: "0.03"}},
		Server: &rpc.ServerInfo{
			ServerState: "full",
			LoadFactor:  1,
			ValidatedLedger: &rpc.ValidatedLedger{
				BaseFeeXRP:     0.00001,
				ReserveBaseXRP: 10,
				ReserveIncXRP:  2,
				Seq:            61234600,
			},
		},
	}, nil
}

func key(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func applyMsg(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T, want model", next)
	}
	return drainCmd(t, got, cmd)
}

func press(t *testing.T, m model, k string) model {
	t.Helper()
	return applyMsg(t, m, key(k))
}

func drainCmd(t *testing.T, m model, cmd tea.Cmd) model {
	t.Helper()
	for i := 0; cmd != nil && i < 8; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		next, nextCmd := m.Update(msg)
		got, ok := next.(model)
		if !ok {
			t.Fatalf("command update returned %T, want model", next)
		}
		m = got
		cmd = nextCmd
	}
	if cmd != nil {
		t.Fatal("commands did not settle")
	}
	return m
}

func newTestModel(t *testing.T, address string) (model, *fakeLoader, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xc", "prefs.cfg")
	prefs, err := cfg.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeLoader{}
	m := newModel(prefs, address, f.load)
	return drainCmd(t, m, m.Init()), f, path
}

func TestInitLoads(t *testing.T) {
	m, f, _ := newTestModel(t, testAddress)
	if f.calls != 1 || f.testnet[0] {
		t.Fatalf("expected one live net load, got %d %v", f.calls, f.testnet)
	}
	if m.loading || m.data == nil {
		t.Fatalf("expected data loaded, got %+v", m)
	}

	view := m.View()
	for _, expect := range []string{testAddress, "48.995", "example.com", "USD", "12.5", "EUR", "0.03", "no signer list", "live net", "61234600", "10 drops", "10 XRP"} {
		if !strings.Contains(view, expect) {
			t.Errorf("view lacks %q:\n%s", expect, view)
		}
	}
}

func TestNoAccount(t *testing.T) {
	m, f, _ := newTestModel(t, "")
	if f.calls != 0 {
		t.Errorf("expected no load, got %d", f.calls)
	}
	if !strings.Contains(m.View(), "No account") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
	m = press(t, m, "r")
	if f.calls != 0 {
		t.Errorf("reload without account should not load, got %d", f.calls)
	}
}

func TestToggleTheme(t *testing.T) {
	m, f, path := newTestModel(t, testAddress)
	if m.theme.dark {
		t.Fatal("expected light colors by default")
	}

	m = press(t, m, "t")
	if !m.theme.dark || !m.prefs.DarkMode {
		t.Error("expected dark colors")
	}
	if f.calls != 1 {
		t.Errorf("theme change should not reload, got %d loads", f.calls)
	}

	saved, err := cfg.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !saved.DarkMode {
		t.Error("dark mode not saved")
	}
}

func TestToggleTestMode(t *testing.T) {
	m, f, path := newTestModel(t, testAddress)

	m = press(t, m, "n")
	if f.calls != 2 || !f.testnet[1] {
		t.Fatalf("expected a testnet reload, got %d %v", f.calls, f.testnet)
	}
	if !strings.Contains(m.View(), "test net") {
		t.Errorf("view should name test net:\n%s", m.View())
	}

	saved, err := cfg.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !saved.TestMode {
		t.Error("test mode not saved")
	}
}

func TestReload(t *testing.T) {
	m, f, _ := newTestModel(t, testAddress)
	m = press(t, m, "r")
	if f.calls != 2 || m.seq != 2 {
		t.Errorf("expected second load, got %d calls seq %d", f.calls, m.seq)
	}
}

func TestStaleLoad(t *testing.T) {
	m, _, _ := newTestModel(t, testAddress)

	// a reload whose result has not arrived yet
	next, _ := m.reload()
	m = applyMsg(t, next, loadedMsg{seq: 1, err: errors.New("late")})
	if m.err != nil || !m.loading {
		t.Errorf("stale result applied: %+v", m)
	}
}

func TestLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.cfg")
	prefs, err := cfg.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeLoader{err: errors.New("connection refused")}
	m := newModel(prefs, testAddress, f.load)
	m = drainCmd(t, m, m.Init())

	if !strings.Contains(m.View(), "connection refused") {
		t.Errorf("view should show the error:\n%s", m.View())
	}
}

func TestNotFound(t *testing.T) {
	m, _, _ := newTestModel(t, testAddress)
	m = applyMsg(t, m, loadedMsg{seq: m.seq, data: &dashboard{Snapshot: &account.Snapshot{Account: testAddress}}})
	if !strings.Contains(m.View(), "not found") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, testAddress)
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}
