package rate

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/pkg/errs"
)

var ErrPlanNotFound = errs.NewKind("plan not found", errs.ErrNotFound)

type PlanType string

const (
	PlanPerRoom   PlanType = "per_room"
	PlanPerPerson PlanType = "per_person"
)

// PlanRef points at a chain-wide plan, a hotel plan, or both.
type PlanRef struct {
	GlobalID *int32
	HotelID  *int32
}

func (p PlanRef) IsZero() bool {
	return p.GlobalID == nil && p.HotelID == nil
}

func (p PlanRef) String() string {
	g, h := "-", "-"
	if p.GlobalID != nil {
		g = fmt.Sprint(*p.GlobalID)
	}
	if p.HotelID != nil {
		h = fmt.Sprint(*p.HotelID)
	}
	return "plan(" + g + "/" + h + ")"
}

func (p PlanRef) key() [2]int64 {
	k := [2]int64{-1, -1}
	if p.GlobalID != nil {
		k[0] = int64(*p.GlobalID)
	}
	if p.HotelID != nil {
		k[1] = int64(*p.HotelID)
	}
	return k
}

// AddonTemplate is an add-on a plan attaches to every night by default.
type AddonTemplate struct {
	GlobalID *int32
	HotelID  *int32
	Name     string
	Price    money.Money
	Tax      Tax
}

type Plan struct {
	Ref    PlanRef
	Name   string
	Type   PlanType
	Rules  []Rule
	Addons []AddonTemplate
}

// PlanSource loads plan definitions, usually from the current transaction.
type PlanSource interface {
	Plan(ctx context.Context, hotelID int32, ref PlanRef) (*Plan, error)
}

// Resolver prices nights against plan definitions. Lookups are memoized
// for the resolver's lifetime, so create one per unit of work.
type Resolver struct {
	src   PlanSource
	plans map[planKey]*Plan
}

type planKey struct {
	hotelID int32
	ref     [2]int64
}

func NewResolver(src PlanSource) *Resolver {
	return &Resolver{src: src, plans: make(map[planKey]*Plan)}
}

func (r *Resolver) Plan(ctx context.Context, hotelID int32, ref PlanRef) (*Plan, error) {
	k := planKey{hotelID: hotelID, ref: ref.key()}
	if p, ok := r.plans[k]; ok {
		return p, nil
	}
	p, err := r.src.Plan(ctx, hotelID, ref)
	if err != nil {
		return nil, err
	}
	r.plans[k] = p
	return p, nil
}

// RatesFor returns the rate lines of the plan for one night.
func (r *Resolver) RatesFor(ctx context.Context, hotelID int32, ref PlanRef, date time.Time) (Breakdown, error) {
	p, err := r.Plan(ctx, hotelID, ref)
	if err != nil {
		return Breakdown{}, err
	}
	applicable := make([]Rule, 0, len(p.Rules))
	for _, rule := range p.Rules {
		if rule.AppliesOn(date) {
			applicable = append(applicable, rule)
		}
	}
	return Aggregate(applicable), nil
}

// PriceFor returns the total nightly price of the plan.
func (r *Resolver) PriceFor(ctx context.Context, hotelID int32, ref PlanRef, date time.Time) (money.Money, error) {
	b, err := r.RatesFor(ctx, hotelID, ref, date)
	if err != nil {
		return money.Zero(), err
	}
	return b.Total, nil
}

func (r *Resolver) PlanAddons(ctx context.Context, hotelID int32, ref PlanRef) ([]AddonTemplate, error) {
	p, err := r.Plan(ctx, hotelID, ref)
	if err != nil {
		return nil, err
	}
	return p.Addons, nil
}
