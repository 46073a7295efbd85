package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func area(id string, price int64) Selection {
	return Selection{Kind: SelectionKindArea, ID: id, UnitPrice: decimal.NewFromInt(price)}
}

func spec(id string, price int64) Selection {
	return Selection{Kind: SelectionKindSpec, ID: id, UnitPrice: decimal.NewFromInt(price)}
}

func TestApplyDiscount_EmptySelections(t *testing.T) {
	rules := []Rule{
		{MinGroups: 1, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(10)},
	}

	quote := ApplyDiscount(nil, rules)

	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.Discount.IsZero())
	assert.True(t, quote.FinalTotal.IsZero())
	assert.Nil(t, quote.AppliedRule)
}

func TestApplyDiscount_TieredRules(t *testing.T) {
	rules := []Rule{
		{MinGroups: 1, MaxGroups: intPtr(1), DiscountPercentage: decimal.Zero},
		{MinGroups: 2, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(10)},
	}

	quote := ApplyDiscount([]Selection{
		area("gluteos", 100),
		area("abdomen", 100),
		area("costas", 100),
	}, rules)

	assert.Equal(t, "300", quote.Subtotal.String())
	assert.Equal(t, "30", quote.Discount.String())
	assert.Equal(t, "270", quote.FinalTotal.String())
	require.NotNil(t, quote.AppliedRule)
	assert.Equal(t, "10", quote.AppliedRule.DiscountPercentage.String())
}

func TestApplyDiscount_SpecsPricedButNotCounted(t *testing.T) {
	rules := []Rule{
		{MinGroups: 2, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(10)},
	}

	// One area plus one spec: subtotal includes both, tier sees one group.
	quote := ApplyDiscount([]Selection{
		area("gluteos", 200),
		spec("extra-profundidade", 50),
	}, rules)

	assert.Equal(t, "250", quote.Subtotal.String())
	assert.True(t, quote.Discount.IsZero())
	assert.Equal(t, "250", quote.FinalTotal.String())
	assert.Nil(t, quote.AppliedRule)
}

func TestApplyDiscount_LastMatchingRuleWins(t *testing.T) {
	rules := []Rule{
		{MinGroups: 1, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(5)},
		{MinGroups: 3, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(20)},
	}

	quote := ApplyDiscount([]Selection{
		area("a", 100), area("b", 100), area("c", 100),
	}, rules)

	require.NotNil(t, quote.AppliedRule)
	assert.Equal(t, "20", quote.AppliedRule.DiscountPercentage.String())
	assert.Equal(t, "60", quote.Discount.String())
	assert.Equal(t, "240", quote.FinalTotal.String())
}

func TestApplyDiscount_NoMatch(t *testing.T) {
	rules := []Rule{
		{MinGroups: 5, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(30)},
	}

	quote := ApplyDiscount([]Selection{area("a", 80)}, rules)

	assert.Equal(t, "80", quote.Subtotal.String())
	assert.True(t, quote.Discount.IsZero())
	assert.Equal(t, "80", quote.FinalTotal.String())
	assert.Nil(t, quote.AppliedRule)
}

func TestApplyDiscount_BoundedTier(t *testing.T) {
	rules := []Rule{
		{MinGroups: 2, MaxGroups: intPtr(3), DiscountPercentage: decimal.NewFromInt(10)},
	}

	assert.Nil(t, ApplyDiscount([]Selection{area("a", 10)}, rules).AppliedRule)
	assert.NotNil(t, ApplyDiscount([]Selection{area("a", 10), area("b", 10)}, rules).AppliedRule)
	assert.NotNil(t, ApplyDiscount([]Selection{area("a", 10), area("b", 10), area("c", 10)}, rules).AppliedRule)
	assert.Nil(t, ApplyDiscount([]Selection{area("a", 10), area("b", 10), area("c", 10), area("d", 10)}, rules).AppliedRule)
}

func TestApplyDiscount_FullDiscountNeverNegative(t *testing.T) {
	rules := []Rule{
		{MinGroups: 1, MaxGroups: nil, DiscountPercentage: decimal.NewFromInt(100)},
	}

	quote := ApplyDiscount([]Selection{area("a", 150)}, rules)

	assert.Equal(t, "150", quote.Discount.String())
	assert.True(t, quote.FinalTotal.IsZero())
}

func TestApplyDiscount_NoIntermediateRounding(t *testing.T) {
	rules := []Rule{
		{MinGroups: 1, MaxGroups: nil, DiscountPercentage: decimal.NewFromFloat(7.5)},
	}

	quote := ApplyDiscount([]Selection{area("a", 99)}, rules)

	// 7.5% of 99 is 7.425; the engine keeps the exact value.
	assert.Equal(t, "7.425", quote.Discount.String())
	assert.Equal(t, "91.575", quote.FinalTotal.String())
}
