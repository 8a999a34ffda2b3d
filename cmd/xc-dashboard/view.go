package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xumm-community/xc/rpc"
	"github.com/xumm-community/xc/util"
)

func (m model) View() string {
	var sections []string

	network := "live net"
	if m.prefs.TestMode {
		network = "test net"
	}
	sections = append(sections, m.theme.title.Render("XRPL Dashboard")+"  "+m.theme.muted.Render(network))

	switch {
	case m.address == "":
		sections = append(sections, m.theme.muted.Render("No account.  Sign in with `xc-tx signin | xc-tx submit`, or use -as <account>."))
	case m.loading:
		sections = append(sections, m.theme.muted.Render("Loading "+m.formatAccount(m.address)+" ..."))
	case m.err != nil:
		sections = append(sections, m.theme.bad.Render("Failed to load "+m.address+": "+m.err.Error()))
	case m.data == nil || m.data.Snapshot.Data() == nil:
		sections = append(sections, m.theme.warn.Render("Account "+m.formatAccount(m.address)+" not found on "+network+"."))
	default:
		sections = append(sections,
			m.accountView(),
			m.signerListView(),
			m.balanceView(),
			m.iouView(),
			m.serverView(),
		)
	}

	if m.status != "" {
		sections = append(sections, m.theme.bad.Render(m.status))
	}
	sections = append(sections, m.footerView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m model) row(label, value string) string {
	return m.theme.label.Render(label) + m.theme.value.Render(value)
}

func (m model) boolRow(label string, b bool) string {
	if b {
		return m.theme.label.Render(label) + m.theme.good.Render("yes")
	}
	return m.theme.label.Render(label) + m.theme.muted.Render("no")
}

func (m model) section(heading string, lines ...string) string {
	body := strings.Join(append([]string{m.theme.heading.Render(heading)}, lines...), "\n")
	return m.theme.box.Render(body)
}

func (m model) accountView() string {
	s := m.data.Snapshot
	d := s.Data()
	return m.section("Account",
		m.row("Address", m.formatAccount(d.Account)),
		m.row("Sequence", fmt.Sprint(d.Sequence)),
		m.row("Owner Count", fmt.Sprint(d.OwnerCount)),
		m.row("Flags", util.FormatAccountFlags(d.Flags)),
		m.row("Domain", util.FormatOptional(util.HexToString(d.Domain))),
		m.row("EmailHash", util.FormatOptional(d.EmailHash)),
		m.row("Regular Key", util.FormatOptional(d.RegularKey)),
		m.boolRow("Require Destination Tag", util.RequireDestinationTag(d.Flags)),
		m.boolRow("Master Key Disabled", util.MasterKeyDisabled(d.Flags)),
	)
}

func (m model) signerListView() string {
	lists := m.data.Snapshot.SignerLists()
	if len(lists) == 0 {
		return m.section("Signer List", m.theme.muted.Render("no signer list"))
	}
	var lines []string
	for _, list := range lists {
		lines = append(lines, m.row("Quorum", fmt.Sprint(list.SignerQuorum)))
		for _, entry := range list.Entries() {
			lines = append(lines, m.row(fmt.Sprintf("weight %d", entry.SignerWeight), m.formatAccount(entry.Account)))
		}
	}
	return m.section("Signer List", lines...)
}

func (m model) balanceView() string {
	lines := []string{m.row("XRP", util.FormatXRP(m.data.Snapshot.BalanceXRP()))}
	for _, line := range m.data.Lines {
		label := util.CurrencyCodeForDisplay(line.Currency)
		value := util.FormatAmount(line.Balance) + m.theme.muted.Render("  "+m.formatAccount(line.Account))
		if line.Freeze {
			value += m.theme.warn.Render("  frozen")
		}
		lines = append(lines, m.row(label, value))
	}
	return m.section("Balances", lines...)
}

func (m model) iouView() string {
	if len(m.data.IOUs) == 0 {
		return m.section("Issued", m.theme.muted.Render("no IOUs issued"))
	}
	var lines []string
	for _, iou := range m.data.IOUs {
		lines = append(lines, m.row(util.CurrencyCodeForDisplay(iou.Currency), util.FormatAmount(iou.Amount)))
	}
	return m.section("Issued", lines...)
}

// reserve is what the account must hold, in XRP, given its owner
// count.
func reserve(v *rpc.ValidatedLedger, ownerCount uint32) float64 {
	return v.ReserveBaseXRP + v.ReserveIncXRP*float64(ownerCount)
}

func (m model) serverView() string {
	info := m.data.Server
	if info == nil {
		return m.section("Server", m.theme.muted.Render("server_info unavailable"))
	}
	lines := []string{
		m.row("State", info.ServerState+" "+info.BuildVersion),
		m.row("Fee", fmt.Sprintf("%d drops", info.Fee())),
	}
	if v := info.ValidatedLedger; v != nil {
		lines = append(lines,
			m.row("Validated Ledger", fmt.Sprint(v.Seq)),
			m.row("Reserve", fmt.Sprintf("%g XRP (%g + %g per object)", reserve(v, m.data.Snapshot.Data().OwnerCount), v.ReserveBaseXRP, v.ReserveIncXRP)),
		)
	}
	return m.section("Server", lines...)
}

func (m model) footerView() string {
	colors := "light"
	if m.theme.dark {
		colors = "dark"
	}
	keys := []string{
		"t " + colors,
		"n network",
		"r reload",
		"q quit",
	}
	return m.theme.footer.Render(strings.Join(keys, "  |  "))
}
