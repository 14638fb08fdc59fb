package readstore

import (
	"context"

	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/pgconv"
)

type PlanReadQueries interface {
	GetHotelPlan(ctx context.Context, db sqlc.DBTX, arg sqlc.GetHotelPlanParams) (sqlc.PlansHotel, error)
	GetGlobalPlan(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.PlansGlobal, error)
	ListPlanRates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPlanRatesParams) ([]sqlc.PlanRates, error)
	ListPlanAddons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPlanAddonsParams) ([]sqlc.PlanAddons, error)
}

// PlanReadStore loads plan definitions with their rate rules and default add-ons.
type PlanReadStore struct {
	queries PlanReadQueries
	db      sqlc.DBTX
}

func NewPlanReadStore(queries PlanReadQueries, db sqlc.DBTX) *PlanReadStore {
	return &PlanReadStore{
		queries: queries,
		db:      db,
	}
}

// Plan resolves a hotel plan when the reference names one, else the chain
// plan. A hotel plan linked to a chain plan inherits the chain id.
func (r *PlanReadStore) Plan(ctx context.Context, hotelID int32, ref rate.PlanRef) (*rate.Plan, error) {
	if ref.IsZero() {
		return nil, errs.Kindf(rate.ErrPlanNotFound, "no plan referenced")
	}

	plan := &rate.Plan{Ref: ref}
	if ref.HotelID != nil {
		row, err := r.queries.GetHotelPlan(ctx, r.db, sqlc.GetHotelPlanParams{HotelID: hotelID, ID: *ref.HotelID})
		if err != nil {
			return nil, planErr(err, ref)
		}
		plan.Name = row.Name
		plan.Type = rate.PlanType(row.PlanType)
		if plan.Ref.GlobalID == nil {
			plan.Ref.GlobalID = pgconv.Int32PtrFromPgtype(row.PlansGlobalID)
		}
	} else {
		row, err := r.queries.GetGlobalPlan(ctx, r.db, *ref.GlobalID)
		if err != nil {
			return nil, planErr(err, ref)
		}
		plan.Name = row.Name
		plan.Type = rate.PlanType(row.PlanType)
	}

	rateRows, err := r.queries.ListPlanRates(ctx, r.db, sqlc.ListPlanRatesParams{
		HotelID:       hotelID,
		PlansGlobalID: pgconv.Int32PtrToPgtype(plan.Ref.GlobalID),
		PlansHotelID:  pgconv.Int32PtrToPgtype(plan.Ref.HotelID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plan rates", err)
	}
	for _, row := range rateRows {
		rule, err := converter.RuleFromRow(row)
		if err != nil {
			return nil, err
		}
		plan.Rules = append(plan.Rules, rule)
	}

	addonRows, err := r.queries.ListPlanAddons(ctx, r.db, sqlc.ListPlanAddonsParams{
		HotelID:       hotelID,
		PlansGlobalID: pgconv.Int32PtrToPgtype(plan.Ref.GlobalID),
		PlansHotelID:  pgconv.Int32PtrToPgtype(plan.Ref.HotelID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plan addons", err)
	}
	for _, row := range addonRows {
		plan.Addons = append(plan.Addons, converter.AddonTemplateFromRow(row))
	}
	return plan, nil
}

func planErr(err error, ref rate.PlanRef) error {
	if pgconv.IsNoRows(err) {
		return errs.WithKind(infra.WrapRepoErr(ref.String()+" not found", err, infra.KindNotFound), rate.ErrPlanNotFound)
	}
	return infra.WrapRepoErr("failed to get plan", err)
}
