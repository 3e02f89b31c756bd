package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
)

// Rule is a single independent validation predicate over an invoice.
// Apply returns a tagged error string of the form "category:detail", or the
// empty string when the rule passes or does not apply. Rules never panic and
// never look at anything beyond the record they are given.
type Rule struct {
	Name  string
	Apply func(inv *domain.Invoice, tolerance decimal.Decimal) string
}

var currencyFormat = regexp.MustCompile(`^[A-Za-z]{3}$`)

// defaultRules returns the rule catalog in its fixed evaluation order:
// required fields, then format checks, then numeric sign checks, then the
// cross-field business rules. The order only affects error-list ordering;
// every applicable rule always runs.
func defaultRules() []Rule {
	rules := []Rule{
		requiredString("invoice_id", func(inv *domain.Invoice) string { return inv.InvoiceID }),
		requiredString("buyer_name", func(inv *domain.Invoice) string { return inv.BuyerName }),
		requiredString("seller_name", func(inv *domain.Invoice) string { return inv.SellerName }),
		requiredAmount("total_amount", func(inv *domain.Invoice) *float64 { return inv.TotalAmount }),
		requiredString("currency", func(inv *domain.Invoice) string { return inv.Currency }),
		dateFormatRule(),
		currencyFormatRule(),
		nonNegativeAmount("total_amount", func(inv *domain.Invoice) *float64 { return inv.TotalAmount }),
		nonNegativeAmount("tax_amount", func(inv *domain.Invoice) *float64 { return inv.TaxAmount }),
		nonNegativeAmount("total_with_tax", func(inv *domain.Invoice) *float64 { return inv.TotalWithTax }),
		taxReconciliationRule(),
		lineItemReconciliationRule(),
	}
	return rules
}

// requiredString flags empty string fields as missing.
func requiredString(name string, get func(*domain.Invoice) string) Rule {
	return Rule{
		Name: "required_" + name,
		Apply: func(inv *domain.Invoice, _ decimal.Decimal) string {
			if strings.TrimSpace(get(inv)) == "" {
				return domain.MissingFieldPrefix + name
			}
			return ""
		},
	}
}

// requiredAmount flags absent amounts as missing. An explicit zero is present.
func requiredAmount(name string, get func(*domain.Invoice) *float64) Rule {
	return Rule{
		Name: "required_" + name,
		Apply: func(inv *domain.Invoice, _ decimal.Decimal) string {
			if get(inv) == nil {
				return domain.MissingFieldPrefix + name
			}
			return ""
		},
	}
}

func dateFormatRule() Rule {
	return Rule{
		Name: "format_invoice_date",
		Apply: func(inv *domain.Invoice, _ decimal.Decimal) string {
			if inv.InvoiceDate == "" {
				return ""
			}
			if _, err := time.Parse("2006-01-02", inv.InvoiceDate); err != nil {
				return "bad_format:invoice_date"
			}
			return ""
		},
	}
}

func currencyFormatRule() Rule {
	return Rule{
		Name: "format_currency",
		Apply: func(inv *domain.Invoice, _ decimal.Decimal) string {
			if inv.Currency == "" {
				return ""
			}
			if !currencyFormat.MatchString(inv.Currency) {
				return "bad_format:currency"
			}
			return ""
		},
	}
}

func nonNegativeAmount(name string, get func(*domain.Invoice) *float64) Rule {
	return Rule{
		Name: "numeric_" + name,
		Apply: func(inv *domain.Invoice, _ decimal.Decimal) string {
			if v := get(inv); v != nil && *v < 0 {
				return "invalid_numeric:" + name
			}
			return ""
		},
	}
}

// taxReconciliationRule checks total_amount + tax_amount against
// total_with_tax within the configured tolerance. It only applies when all
// three amounts are present.
func taxReconciliationRule() Rule {
	return Rule{
		Name: "business_tax_reconciliation",
		Apply: func(inv *domain.Invoice, tolerance decimal.Decimal) string {
			if inv.TotalAmount == nil || inv.TaxAmount == nil || inv.TotalWithTax == nil {
				return ""
			}
			expected := decimal.NewFromFloat(*inv.TotalAmount).Add(decimal.NewFromFloat(*inv.TaxAmount))
			diff := expected.Sub(decimal.NewFromFloat(*inv.TotalWithTax)).Abs()
			if diff.GreaterThan(tolerance) {
				return "business_rule:total_mismatch"
			}
			return ""
		},
	}
}

// lineItemReconciliationRule checks the line-total sum against total_amount.
// An empty line-item list makes the rule inapplicable, not a failure.
func lineItemReconciliationRule() Rule {
	return Rule{
		Name: "business_line_item_reconciliation",
		Apply: func(inv *domain.Invoice, tolerance decimal.Decimal) string {
			if len(inv.LineItems) == 0 || inv.TotalAmount == nil {
				return ""
			}
			sum := decimal.Zero
			for _, item := range inv.LineItems {
				sum = sum.Add(decimal.NewFromFloat(item.LineTotal))
			}
			diff := sum.Sub(decimal.NewFromFloat(*inv.TotalAmount)).Abs()
			if diff.GreaterThan(tolerance) {
				return "business_rule:line_item_mismatch"
			}
			return ""
		},
	}
}
