//go:build unit

package rate_test

import (
	"context"
	"testing"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tax10 := rate.Tax{TypeID: ptr.Of(int32(1)), Rate: 0.10}
	tax8 := rate.Tax{TypeID: ptr.Of(int32(2)), Rate: 0.08}

	t.Run("base and percentage in one bucket", func(t *testing.T) {
		b := rate.Aggregate([]rate.Rule{
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 10000, Tax: tax10},
			{AdjustmentType: rate.AdjustmentPercentage, Value: 10, Tax: tax10},
		})

		require.Len(t, b.Lines, 2)
		assert.Equal(t, rate.AdjustmentBaseRate, b.Lines[0].AdjustmentType)
		assert.Equal(t, money.FromFloat(10000), b.Lines[0].Price)
		assert.Equal(t, money.FromFloat(1000), b.Lines[1].Price)
		assert.Equal(t, money.FromFloat(11000), b.Total)
	})

	t.Run("percentage groups priced against the whole base", func(t *testing.T) {
		b := rate.Aggregate([]rate.Rule{
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 8000, Tax: tax10},
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 2000, Tax: tax8},
			{AdjustmentType: rate.AdjustmentPercentage, Value: -5, Tax: tax8},
		})

		require.Len(t, b.Lines, 3)
		assert.Equal(t, money.FromFloat(-500), b.Lines[2].Price)
		assert.Equal(t, money.FromFloat(9500), b.Total)
	})

	t.Run("rules of a group are summed", func(t *testing.T) {
		b := rate.Aggregate([]rate.Rule{
			{AdjustmentType: rate.AdjustmentFlatFee, Value: 300, Tax: tax10},
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 5000, Tax: tax10},
			{AdjustmentType: rate.AdjustmentFlatFee, Value: 200, Tax: tax10},
		})

		require.Len(t, b.Lines, 2)
		assert.Equal(t, rate.AdjustmentFlatFee, b.Lines[1].AdjustmentType)
		assert.Equal(t, 500.0, b.Lines[1].AdjustmentValue)
		assert.Equal(t, money.FromFloat(5500), b.Total)
	})

	t.Run("percentage rounds to two decimals", func(t *testing.T) {
		b := rate.Aggregate([]rate.Rule{
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 333.33},
			{AdjustmentType: rate.AdjustmentPercentage, Value: 15},
		})

		assert.Equal(t, money.FromCents(5000), b.Lines[1].Price)
	})

	t.Run("no rules", func(t *testing.T) {
		b := rate.Aggregate(nil)

		assert.Empty(t, b.Lines)
		assert.True(t, b.Total.IsZero())
	})

	t.Run("output order independent of input order", func(t *testing.T) {
		rules := []rate.Rule{
			{AdjustmentType: rate.AdjustmentPercentage, Value: 10, Tax: tax8},
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 1000, Tax: tax8},
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 1000, Tax: tax10},
		}
		reversed := []rate.Rule{rules[2], rules[1], rules[0]}

		assert.Equal(t, rate.Aggregate(rules), rate.Aggregate(reversed))
	})
}

func TestFlat(t *testing.T) {
	b := rate.Flat(money.FromFloat(12345))

	require.Len(t, b.Lines, 1)
	assert.Equal(t, rate.AdjustmentBaseRate, b.Lines[0].AdjustmentType)
	assert.Equal(t, money.FromFloat(12345), b.Total)
}

func TestRuleAppliesOn(t *testing.T) {
	// 2025-03-01 is a Saturday.
	sat := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		rule rate.Rule
		want bool
	}{
		{name: "unrestricted", rule: rate.Rule{Condition: rate.ConditionNone}, want: true},
		{name: "weekend only", rule: rate.Rule{Condition: rate.ConditionDayOfWeek, ConditionValues: []int{0, 6}}, want: true},
		{name: "weekdays only", rule: rate.Rule{Condition: rate.ConditionDayOfWeek, ConditionValues: []int{1, 2, 3, 4, 5}}, want: false},
		{name: "march", rule: rate.Rule{Condition: rate.ConditionMonth, ConditionValues: []int{3}}, want: true},
		{name: "before range", rule: rate.Rule{DateStart: ptr.Of(sat.AddDate(0, 0, 1))}, want: false},
		{name: "after range", rule: rate.Rule{DateEnd: ptr.Of(sat.AddDate(0, 0, -1))}, want: false},
		{name: "range bounds inclusive", rule: rate.Rule{DateStart: ptr.Of(sat), DateEnd: ptr.Of(sat)}, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.AppliesOn(sat))
		})
	}
}

func TestParseTypes(t *testing.T) {
	_, err := rate.ParseAdjustmentType("discount")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	c, err := rate.ParseConditionType("")
	require.NoError(t, err)
	assert.Equal(t, rate.ConditionNone, c)
}

type countingSource struct {
	plan  *rate.Plan
	calls int
}

func (s *countingSource) Plan(_ context.Context, _ int32, _ rate.PlanRef) (*rate.Plan, error) {
	s.calls++
	if s.plan == nil {
		return nil, rate.ErrPlanNotFound
	}
	return s.plan, nil
}

func TestResolver(t *testing.T) {
	ctx := context.Background()
	ref := rate.PlanRef{HotelID: ptr.Of(int32(7))}
	weekend := []int{0, 6}
	src := &countingSource{plan: &rate.Plan{
		Ref:  ref,
		Name: "Breakfast",
		Type: rate.PlanPerRoom,
		Rules: []rate.Rule{
			{AdjustmentType: rate.AdjustmentBaseRate, Value: 10000},
			{AdjustmentType: rate.AdjustmentFlatFee, Value: 2000, Condition: rate.ConditionDayOfWeek, ConditionValues: weekend},
		},
	}}
	r := rate.NewResolver(src)

	fri := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	sat := fri.AddDate(0, 0, 1)

	price, err := r.PriceFor(ctx, 1, ref, fri)
	require.NoError(t, err)
	assert.Equal(t, money.FromFloat(10000), price)

	price, err = r.PriceFor(ctx, 1, ref, sat)
	require.NoError(t, err)
	assert.Equal(t, money.FromFloat(12000), price)

	assert.Equal(t, 1, src.calls)

	_, err = rate.NewResolver(&countingSource{}).PriceFor(ctx, 1, ref, fri)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
