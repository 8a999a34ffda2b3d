package util

import (
	"fmt"
	"strings"
)

// Explorer is a block explorer which can show a transaction.
type Explorer struct {
	Name string
	Base string // transaction id is appended
}

var (
	MainnetExplorers = []Explorer{
		{"Bithomp", "https://bithomp.com/explorer/"},
		{"XRPL.org", "https://livenet.xrpl.org/transactions/"},
		{"XRPScan", "https://xrpscan.com/tx/"},
		{"XRP1ntel", "https://xrp1ntel.com/tx/"},
	}
	TestnetExplorers = []Explorer{
		{"Bithomp", "https://test.bithomp.com/explorer/"},
		{"XRPL.org", "https://testnet.xrpl.org/transactions/"},
	}
)

func (e Explorer) Link(txid string) string {
	return e.Base + txid
}

// TransactionLinks returns one link per explorer of the given network.
func TransactionLinks(txid string, testnet bool) []string {
	explorers := MainnetExplorers
	if testnet {
		explorers = TestnetExplorers
	}
	links := make([]string, 0, len(explorers))
	for _, e := range explorers {
		links = append(links, e.Link(txid))
	}
	return links
}

// FormatTransactionLinks renders TransactionLinks as "Name: link" lines.
func FormatTransactionLinks(txid string, testnet bool) string {
	explorers := MainnetExplorers
	if testnet {
		explorers = TestnetExplorers
	}
	var b strings.Builder
	for _, e := range explorers {
		fmt.Fprintf(&b, "%s: %s\n", e.Name, e.Link(txid))
	}
	return b.String()
}

// AccountExplorerLink links to an account page.  Accounts resolved by
// XRPScan link there, others to Bithomp.
func AccountExplorerLink(account, resolvedBy string) string {
	if strings.ToUpper(resolvedBy) == "XRPSCAN" {
		return "https://xrpscan.com/account/" + account
	}
	return "https://bithomp.com/explorer/" + account
}

// DomainURL prefixes a bare domain with https://.
func DomainURL(domain string) string {
	if domain == "" || strings.HasPrefix(domain, "http") {
		return domain
	}
	return "https://" + domain
}

// FormatOptional returns "-" for an empty string.
func FormatOptional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
