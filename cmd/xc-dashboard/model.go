package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/xumm-community/xc/account"
	"github.com/xumm-community/xc/cfg"
	"github.com/xumm-community/xc/internal/cmd"
	"github.com/xumm-community/xc/rpc"
)

const loadTimeout = 30 * time.Second

// dashboard is everything shown about the account after one load.
type dashboard struct {
	Snapshot *account.Snapshot
	Lines    []rpc.TrustLine
	IOUs     []account.IOU
	Server   *rpc.ServerInfo
}

// loader fetches a dashboard from the live network, or testnet.
type loader func(ctx context.Context, address string, testnet bool) (*dashboard, error)

// loadDashboard queries rippled for the account, its trust lines, its
// obligations and the server's state concurrently.  Only a failure to connect is an
// error; missing parts are left empty.
func loadDashboard(ctx context.Context, address string, testnet bool) (*dashboard, error) {
	rippled, err := cmd.Rippled(testnet)
	if err != nil {
		return nil, err
	}
	client, err := rpc.Dial(ctx, rippled)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %q: %w", rippled, err)
	}
	defer client.Close()

	d := &dashboard{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Snapshot, err = account.Load(gctx, client, address)
		return err
	})
	g.Go(func() error {
		lines, err := client.AccountLines(gctx, address)
		if err != nil {
			if !rpc.IsNotFound(err) {
				glog.Warningf("account_lines %s: %s", address, err)
			}
			return nil
		}
		d.Lines = lines
		return nil
	})
	g.Go(func() error {
		ious, err := account.LoadIOUs(gctx, client, address)
		if err != nil {
			if !rpc.IsNotFound(err) {
				glog.Warningf("gateway_balances %s: %s", address, err)
			}
			return nil
		}
		d.IOUs = ious
		return nil
	})
	g.Go(func() error {
		server, err := client.ServerInfo(gctx)
		if err != nil {
			glog.Warningf("server_info %s: %s", client, err)
			return nil
		}
		d.Server = server
		return nil
	})
	err = g.Wait()
	return d, err
}

// loadedMsg carries a load result.  Results of a load superseded by a
// later one are dropped, by seq.
type loadedMsg struct {
	seq  int
	data *dashboard
	err  error
}

type model struct {
	prefs   *cfg.Prefs
	address string
	load    loader
	theme   theme

	seq     int
	loading bool
	data    *dashboard
	err     error
	status  string // last preference error, if any
	width   int

	// formatAccount names addresses, i.e. by nickname.
	formatAccount func(string) string
}

func newModel(prefs *cfg.Prefs, address string, load loader) model {
	m := model{
		prefs:   prefs,
		address: address,
		load:    load,
		theme:   themeFor(prefs.DarkMode),

		formatAccount: func(address string) string { return address },
	}
	if address != "" {
		m.seq = 1
		m.loading = true
	}
	return m
}

func (m model) Init() tea.Cmd {
	if !m.loading {
		return nil
	}
	return m.loadCmd()
}

func (m model) loadCmd() tea.Cmd {
	seq, address, testnet, load := m.seq, m.address, m.prefs.TestMode, m.load
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		data, err := load(ctx, address, testnet)
		return loadedMsg{seq: seq, data: data, err: err}
	}
}

// reload discards what is shown and starts a new load.
func (m model) reload() (model, tea.Cmd) {
	if m.address == "" {
		return m, nil
	}
	m.seq++
	m.loading = true
	m.data = nil
	m.err = nil
	return m, m.loadCmd()
}

func (m model) savePrefs() model {
	m.status = ""
	if err := m.prefs.Save(); err != nil {
		glog.Warning(err)
		m.status = err.Error()
	}
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		m.data = msg.data
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.theme = themeFor(m.prefs.ToggleDarkMode())
			return m.savePrefs(), nil
		case "n":
			m.prefs.ToggleTestMode()
			return m.savePrefs().reload()
		case "r":
			return m.reload()
		}
	}
	return m, nil
}
