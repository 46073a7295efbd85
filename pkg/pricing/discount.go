// Package pricing computes booking totals and tiered multi-area discounts.
package pricing

import "github.com/shopspring/decimal"

// SelectionKind distinguishes the line items a client picks for one booking.
type SelectionKind string

const (
	// SelectionKindArea is a body area; discount tiers key off the area count.
	SelectionKindArea SelectionKind = "area"
	// SelectionKindSpec is an add-on specification; priced but never counted
	// toward a discount tier.
	SelectionKindSpec SelectionKind = "spec"
)

// Selection is one priced line item of a booking.
type Selection struct {
	Kind      SelectionKind
	ID        string
	UnitPrice decimal.Decimal
}

// Rule is one discount tier. MaxGroups nil means the tier is open-ended.
type Rule struct {
	MinGroups          int
	MaxGroups          *int
	DiscountPercentage decimal.Decimal
}

// Matches reports whether the tier applies to the given area count.
func (r Rule) Matches(groupCount int) bool {
	if groupCount < r.MinGroups {
		return false
	}
	return r.MaxGroups == nil || groupCount <= *r.MaxGroups
}

// Quote is the priced outcome of a set of selections.
type Quote struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	FinalTotal  decimal.Decimal
	AppliedRule *Rule
}

// ApplyDiscount prices the selections against the given tiers.
//
// Only "area" selections count toward the tier match; the subtotal covers
// every selection. Rules are scanned in the order given and the LAST matching
// rule wins, so callers must supply tiers ordered ascending by MinGroups
// (the repository loads them that way). Amounts are not rounded here; display
// rounding happens at conversion time.
func ApplyDiscount(selections []Selection, rules []Rule) Quote {
	groupCount := 0
	subtotal := decimal.Zero
	for _, sel := range selections {
		subtotal = subtotal.Add(sel.UnitPrice)
		if sel.Kind == SelectionKindArea {
			groupCount++
		}
	}

	var applied *Rule
	for i := range rules {
		if rules[i].Matches(groupCount) {
			applied = &rules[i]
		}
	}

	if applied == nil {
		return Quote{Subtotal: subtotal, Discount: decimal.Zero, FinalTotal: subtotal}
	}

	discount := subtotal.Mul(applied.DiscountPercentage).Div(decimal.NewFromInt(100))
	final := subtotal.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		FinalTotal:  final,
		AppliedRule: applied,
	}
}
