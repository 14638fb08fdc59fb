package rate

import (
	"sort"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/pkg/errs"
)

var (
	ErrInvalidAdjustmentType = errs.NewKind("invalid adjustment type", errs.ErrValidation)
	ErrInvalidConditionType  = errs.NewKind("invalid rate condition type", errs.ErrValidation)
)

type AdjustmentType string

const (
	AdjustmentBaseRate   AdjustmentType = "base_rate"
	AdjustmentPercentage AdjustmentType = "percentage"
	AdjustmentFlatFee    AdjustmentType = "flat_fee"
)

func (a AdjustmentType) IsValid() bool {
	switch a {
	case AdjustmentBaseRate, AdjustmentPercentage, AdjustmentFlatFee:
		return true
	default:
		return false
	}
}

func ParseAdjustmentType(s string) (AdjustmentType, error) {
	a := AdjustmentType(s)
	if !a.IsValid() {
		return "", errs.Kindf(ErrInvalidAdjustmentType, "invalid adjustment type %q", s)
	}
	return a, nil
}

func (a AdjustmentType) order() int {
	switch a {
	case AdjustmentBaseRate:
		return 0
	case AdjustmentPercentage:
		return 1
	default:
		return 2
	}
}

type ConditionType string

const (
	ConditionNone      ConditionType = "no_restriction"
	ConditionDayOfWeek ConditionType = "day_of_week"
	ConditionMonth     ConditionType = "month"
)

func ParseConditionType(s string) (ConditionType, error) {
	switch c := ConditionType(s); c {
	case ConditionNone, ConditionDayOfWeek, ConditionMonth:
		return c, nil
	case "":
		return ConditionNone, nil
	default:
		return "", errs.Kindf(ErrInvalidConditionType, "invalid rate condition type %q", s)
	}
}

// Tax identifies the tax bucket a component is charged under.
type Tax struct {
	TypeID *int32
	Rate   float64
}

func (t Tax) key() taxKey {
	k := taxKey{rate: t.Rate}
	if t.TypeID != nil {
		k.typeID = *t.TypeID
		k.hasType = true
	}
	return k
}

type taxKey struct {
	hasType bool
	typeID  int32
	rate    float64
}

func (k taxKey) less(o taxKey) bool {
	if k.hasType != o.hasType {
		return !k.hasType
	}
	if k.typeID != o.typeID {
		return k.typeID < o.typeID
	}
	return k.rate < o.rate
}

// Rule is one configured plan rate component.
type Rule struct {
	AdjustmentType AdjustmentType
	// Value is an amount for base_rate and flat_fee, a percent for percentage.
	Value     float64
	Tax       Tax
	Condition ConditionType
	// ConditionValues are weekdays (0=Sunday) or months (1-12).
	ConditionValues []int
	DateStart       *time.Time
	DateEnd         *time.Time
}

// AppliesOn reports whether the rule participates in pricing the given night.
func (r Rule) AppliesOn(date time.Time) bool {
	day := truncate(date)
	if r.DateStart != nil && day.Before(truncate(*r.DateStart)) {
		return false
	}
	if r.DateEnd != nil && day.After(truncate(*r.DateEnd)) {
		return false
	}

	switch r.Condition {
	case ConditionDayOfWeek:
		return containsInt(r.ConditionValues, int(day.Weekday()))
	case ConditionMonth:
		return containsInt(r.ConditionValues, int(day.Month()))
	default:
		return true
	}
}

// Line is one priced component of a night, persisted as a rate row.
type Line struct {
	AdjustmentType  AdjustmentType
	AdjustmentValue float64
	Tax             Tax
	Price           money.Money
}

// Breakdown is the priced rate lines of one night and their total.
type Breakdown struct {
	Lines []Line
	Total money.Money
}

// Aggregate prices the rules applying to one night.
//
// Rules are grouped by (adjustment type, tax bucket). base_rate groups sum
// their amounts into the base. percentage groups sum their percents and are
// priced as round(base * pct / 100, 2) against the whole base. flat_fee
// groups are passed through summed. The output order is base, percentage,
// flat fee, each by tax bucket, so equal inputs always yield equal lines.
func Aggregate(rules []Rule) Breakdown {
	type groupKey struct {
		adj AdjustmentType
		tax taxKey
	}
	type group struct {
		key   groupKey
		tax   Tax
		value float64
	}

	groups := make(map[groupKey]*group)
	for _, r := range rules {
		k := groupKey{adj: r.AdjustmentType, tax: r.Tax.key()}
		g, ok := groups[k]
		if !ok {
			g = &group{key: k, tax: r.Tax}
			groups[k] = g
		}
		g.value += r.Value
	}

	ordered := make([]*group, 0, len(groups))
	for _, g := range groups {
		ordered = append(ordered, g)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i].key, ordered[j].key
		if a.adj.order() != b.adj.order() {
			return a.adj.order() < b.adj.order()
		}
		return a.tax.less(b.tax)
	})

	base := money.Zero()
	for _, g := range ordered {
		if g.key.adj == AdjustmentBaseRate {
			base = base.Add(money.FromFloat(g.value))
		}
	}

	out := Breakdown{Lines: make([]Line, 0, len(ordered))}
	for _, g := range ordered {
		var price money.Money
		switch g.key.adj {
		case AdjustmentBaseRate, AdjustmentFlatFee:
			price = money.FromFloat(g.value)
		case AdjustmentPercentage:
			price = base.Percent(g.value)
		}
		out.Lines = append(out.Lines, Line{
			AdjustmentType:  g.key.adj,
			AdjustmentValue: round2(g.value),
			Tax:             g.tax,
			Price:           price,
		})
		out.Total = out.Total.Add(price)
	}
	return out
}

// Flat builds the single-line breakdown used when an external system dictates the price.
func Flat(price money.Money) Breakdown {
	return Breakdown{
		Lines: []Line{{
			AdjustmentType:  AdjustmentBaseRate,
			AdjustmentValue: price.Float(),
			Price:           price,
		}},
		Total: price,
	}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return money.FromFloat(v).Float()
}
