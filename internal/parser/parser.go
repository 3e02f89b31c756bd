// Package parser recovers typed invoice fields and line items from raw
// document text using label-anchored pattern matching. It is heuristic by
// design: text layout varies between suppliers, so absence of a recognizable
// field yields that field's zero value rather than an error, and downstream
// validation reports what is missing.
package parser

import (
	"regexp"
	"strings"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
)

// Label tokens scanned per field, case-insensitive. Within one field the
// longer variants come first so that e.g. "grand total" is never consumed by
// a bare "total" label.
var (
	invoiceIDLabels   = []string{"invoice number", "invoice no", "invoice id", "invoice #", "rechnungsnummer"}
	invoiceDateLabels = []string{"invoice date", "rechnungsdatum", "date", "datum"}
	buyerLabels       = []string{"kundenanschrift", "bill to", "billed to", "buyer", "customer"}
	sellerLabels      = []string{"sold by", "seller", "vendor", "supplier", "lieferant", "from"}

	// Amount labels in claim precedence: a line is claimed by at most one
	// amount field, and gross-total labels must win over the bare "total"
	// and "gesamtwert" variants they contain.
	totalWithTaxLabels = []string{"gesamtwert inkl", "grand total", "total with tax", "total incl", "amount due"}
	taxLabels          = []string{"tax amount", "mwst", "vat", "tax"}
	totalLabels        = []string{"total amount", "net total", "subtotal", "gesamtwert", "total"}

	currencyLabels = []string{"currency", "währung"}
)

var (
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	currencyPattern = regexp.MustCompile(`\b[A-Z]{3}\b`)

	// Order-number ids in the original sample set ("Bestellung AUFNR 12345").
	orderIDPattern  = regexp.MustCompile(`(?i)Bestellung\s+AUFNR\s*([A-Z0-9]+)`)
	orderIDFallback = regexp.MustCompile(`AUFNR\s*([0-9]+)`)
)

// Parse scans document text for invoice fields and line items. It never
// fails: unrelated or garbled text simply produces a mostly-empty record.
//
// For every field the earliest occurrence in document order wins; later
// matches of the same label are ignored. This is deterministic but can pick
// the wrong occurrence in multi-invoice documents, which is a known
// limitation of the label scan rather than a bug.
func Parse(text string) *domain.Invoice {
	inv := domain.NewInvoice()
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		next := ""
		if i+1 < len(lines) {
			next = lines[i+1]
		}
		scanStringFields(inv, line, next)
		scanAmountFields(inv, line)
	}

	if inv.InvoiceID == "" {
		inv.InvoiceID = matchOrderID(text)
	}

	scanLineItems(inv, lines)
	return inv
}

func scanStringFields(inv *domain.Invoice, line, next string) {
	if inv.InvoiceID == "" {
		if rest, ok := matchLabel(line, invoiceIDLabels); ok {
			inv.InvoiceID = firstToken(valueOrNextLine(rest, next))
		}
	}
	if inv.InvoiceDate == "" {
		if rest, ok := matchLabel(line, invoiceDateLabels); ok {
			inv.InvoiceDate = dateToken(valueOrNextLine(rest, next))
		}
	}
	if inv.BuyerName == "" {
		if rest, ok := matchLabel(line, buyerLabels); ok {
			inv.BuyerName = valueOrNextLine(rest, next)
		}
	}
	if inv.SellerName == "" {
		if rest, ok := matchLabel(line, sellerLabels); ok {
			inv.SellerName = valueOrNextLine(rest, next)
		}
	}
	if inv.Currency == "" {
		if rest, ok := matchLabel(line, currencyLabels); ok {
			if code := currencyPattern.FindString(strings.ToUpper(rest)); code != "" {
				inv.Currency = code
			}
		}
	}
}

// scanAmountFields lets at most one amount field claim a line, in fixed
// precedence order. The currency code is picked up as a standalone 3-letter
// token on whichever line carries an amount label.
func scanAmountFields(inv *domain.Invoice, line string) {
	type amountTarget struct {
		labels []string
		dest   **float64
	}
	targets := []amountTarget{
		{totalWithTaxLabels, &inv.TotalWithTax},
		{taxLabels, &inv.TaxAmount},
		{totalLabels, &inv.TotalAmount},
	}
	for _, t := range targets {
		rest, ok := matchLabel(line, t.labels)
		if !ok {
			continue
		}
		if inv.Currency == "" {
			inv.Currency = currencyPattern.FindString(rest)
		}
		if *t.dest == nil {
			if v, ok := firstNumber(rest); ok {
				*t.dest = domain.Amount(v)
			}
		}
		return
	}
}

// matchLabel finds the earliest case-insensitive occurrence of any label in
// the line and returns the text following it, stripped of separator
// punctuation. Labels only match on word boundaries so that "Subtotal" is
// never consumed by a bare "total" and "Updated" never matches "date".
func matchLabel(line string, labels []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, label := range labels {
		start := 0
		for {
			idx := strings.Index(lower[start:], label)
			if idx < 0 {
				break
			}
			idx += start
			if labelBoundary(lower, idx, label) {
				rest := line[idx+len(label):]
				return strings.TrimLeft(rest, " \t:：#.-"), true
			}
			start = idx + 1
		}
	}
	return "", false
}

func labelBoundary(s string, idx int, label string) bool {
	if idx > 0 && isLetter(label[0]) && isLetter(s[idx-1]) {
		return false
	}
	end := idx + len(label)
	if end < len(s) && isLetter(label[len(label)-1]) && isLetter(s[end]) {
		return false
	}
	return true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// valueOrNextLine prefers the same-line value; when the label ends the line,
// the immediately following line holds the value (address blocks in the
// sample set put the name on the line after its header).
func valueOrNextLine(rest, next string) string {
	rest = strings.TrimSpace(rest)
	if rest != "" {
		return rest
	}
	return strings.TrimSpace(next)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// dateToken prefers an ISO-8601 token anywhere in the value; otherwise the
// raw first token is kept and the format rule downstream flags it.
func dateToken(s string) string {
	if m := datePattern.FindString(s); m != "" {
		return m
	}
	return firstToken(s)
}

func matchOrderID(text string) string {
	if m := orderIDPattern.FindStringSubmatch(text); m != nil {
		return "AUFNR" + m[1]
	}
	if m := orderIDFallback.FindStringSubmatch(text); m != nil {
		return "AUFNR" + m[1]
	}
	return ""
}
