package parser

import "strings"

// bankMarkers maps bank display names to identifiers that appear in
// statement text. Checked in order; first hit wins.
var bankMarkers = []struct {
	name    string
	needles []string
}{
	{"HDFC Bank", []string{"HDFC BANK", "hdfcbank"}},
	{"ICICI Bank", []string{"ICICI BANK", "icicibank"}},
	{"State Bank of India", []string{"STATE BANK OF INDIA", "onlinesbi"}},
	{"Axis Bank", []string{"AXIS BANK", "axisbank"}},
	{"Kotak Mahindra Bank", []string{"KOTAK MAHINDRA", "kotak.com"}},
}

// detectBank identifies the issuing bank from the statement text, or
// returns "" when no marker is present. The tag is informational only
// and never affects parsing.
func detectBank(text string) string {
	lower := strings.ToLower(text)
	for _, bank := range bankMarkers {
		for _, needle := range bank.needles {
			if strings.Contains(lower, strings.ToLower(needle)) {
				return bank.name
			}
		}
	}
	return ""
}
