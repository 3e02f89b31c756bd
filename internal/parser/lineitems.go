package parser

import (
	"strings"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
)

// scanLineItems applies the table-row heuristic: a row is a line carrying a
// leading free-text description followed by three or more numeric tokens,
// read positionally as quantity, unit price and (last token) line total.
// Lines that fail the shape are skipped. The heuristic is deliberately
// conservative: under-extraction is preferred over spurious rows, since an
// empty line-item list just makes the reconciliation rule inapplicable.
func scanLineItems(inv *domain.Invoice, lines []string) {
	for _, line := range lines {
		if item, ok := parseRow(line); ok {
			inv.AddLineItem(item)
		}
	}
}

func parseRow(line string) (domain.LineItem, bool) {
	// ISO dates contribute three numeric tokens of their own and are never
	// table rows.
	if datePattern.MatchString(line) {
		return domain.LineItem{}, false
	}

	locs := numberPattern.FindAllStringIndex(line, -1)
	nums := make([]float64, 0, len(locs))
	descEnd := -1
	for _, loc := range locs {
		if !amountToken(line, loc) {
			continue
		}
		v, ok := normalizeNumber(line[loc[0]:loc[1]])
		if !ok {
			continue
		}
		if descEnd < 0 {
			descEnd = loc[0]
		}
		nums = append(nums, v)
	}
	if len(nums) < 3 || descEnd <= 0 {
		return domain.LineItem{}, false
	}

	desc := trimDescription(line[:descEnd])
	if desc == "" {
		return domain.LineItem{}, false
	}

	return domain.LineItem{
		Description: desc,
		Quantity:    nums[0],
		UnitPrice:   nums[1],
		LineTotal:   nums[len(nums)-1],
	}, true
}

func trimDescription(s string) string {
	return strings.Trim(s, " \t|:-")
}
