package validator

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/invoice-qc-service/internal/domain"
)

// DefaultTolerance is the maximum allowed absolute deviation for the
// arithmetic reconciliation rules, in currency units. It was chosen for
// two-decimal currencies; zero-decimal currencies may want a different value,
// which is why the engine takes it as an option rather than a constant.
const DefaultTolerance = 0.01

// ErrInvalidInputKind is returned by Validate when the input is neither a
// typed invoice record nor a field map. It is the only error the validation
// core ever returns; every other abnormal input degrades to missing_field or
// bad_format entries in the result.
var ErrInvalidInputKind = errors.New("validator: input is neither an invoice record nor a field map")

// Engine applies the fixed rule catalog to invoice records. It is stateless
// apart from its configuration and safe for concurrent use.
type Engine struct {
	rules     []Rule
	tolerance decimal.Decimal
}

// Option configures an Engine.
type Option func(*Engine)

// WithTolerance overrides the reconciliation tolerance.
func WithTolerance(eps float64) Option {
	return func(e *Engine) {
		e.tolerance = decimal.NewFromFloat(eps)
	}
}

// NewEngine creates a validation engine with the default rule catalog.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:     defaultRules(),
		tolerance: decimal.NewFromFloat(DefaultTolerance),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate coerces input into a canonical invoice record and evaluates the
// rule catalog against it. Supported inputs are *domain.Invoice,
// domain.Invoice and map[string]interface{} (e.g. decoded external JSON);
// anything else returns ErrInvalidInputKind.
func (e *Engine) Validate(input interface{}) (domain.ValidationResult, error) {
	inv, err := Coerce(input)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	return e.ValidateRecord(inv), nil
}

// ValidateRecord evaluates every rule against the record and collects all
// violations. It is a pure function: identical records always produce
// identical results, and the record is never mutated.
func (e *Engine) ValidateRecord(inv *domain.Invoice) domain.ValidationResult {
	tagged := make([]string, 0)
	for _, rule := range e.rules {
		if tag := rule.Apply(inv, e.tolerance); tag != "" {
			tagged = append(tagged, tag)
		}
	}
	return domain.ValidationResult{
		InvoiceID: inv.InvoiceID,
		Valid:     len(tagged) == 0,
		Errors:    tagged,
	}
}

// Coerce converts any supported external representation of an invoice into
// the canonical record. Field maps are converted field by field with
// type-mismatched entries treated as absent. The returned record is always a
// fresh copy; currency codes are normalized to upper case on the way in.
func Coerce(input interface{}) (*domain.Invoice, error) {
	switch v := input.(type) {
	case *domain.Invoice:
		if v == nil {
			return nil, ErrInvalidInputKind
		}
		c := *v
		c.Currency = normalizeCurrency(c.Currency)
		return &c, nil
	case domain.Invoice:
		v.Currency = normalizeCurrency(v.Currency)
		return &v, nil
	case map[string]interface{}:
		return fromMap(v), nil
	default:
		return nil, ErrInvalidInputKind
	}
}

func normalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func fromMap(m map[string]interface{}) *domain.Invoice {
	inv := domain.NewInvoice()
	inv.InvoiceID = stringField(m, "invoice_id")
	inv.InvoiceDate = stringField(m, "invoice_date")
	inv.BuyerName = stringField(m, "buyer_name")
	inv.SellerName = stringField(m, "seller_name")
	inv.TotalAmount = numberField(m, "total_amount")
	inv.TaxAmount = numberField(m, "tax_amount")
	inv.TotalWithTax = numberField(m, "total_with_tax")
	inv.Currency = normalizeCurrency(stringField(m, "currency"))

	items, ok := m["line_items"].([]interface{})
	if !ok {
		return inv
	}
	for _, raw := range items {
		im, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		item := domain.LineItem{Description: stringField(im, "description")}
		if v := numberField(im, "quantity"); v != nil {
			item.Quantity = *v
		}
		if v := numberField(im, "unit_price"); v != nil {
			item.UnitPrice = *v
		}
		if v := numberField(im, "line_total"); v != nil {
			item.LineTotal = *v
		}
		inv.AddLineItem(item)
	}
	return inv
}

func stringField(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// numberField reads a numeric entry from a decoded JSON map. encoding/json
// produces float64 for numbers; int variants cover hand-built maps.
func numberField(m map[string]interface{}, key string) *float64 {
	switch v := m[key].(type) {
	case float64:
		return domain.Amount(v)
	case float32:
		return domain.Amount(float64(v))
	case int:
		return domain.Amount(float64(v))
	case int64:
		return domain.Amount(float64(v))
	default:
		return nil
	}
}
