package readstore

import (
	"context"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/infra"
	"hotel-pms/internal/infra/repository/converter"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationReadQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByOtaRef(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReservationByOtaRefParams) (sqlc.Reservations, error)
	GetDetailByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ReservationDetails, error)
	ListDetailsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationDetails, error)
	ListAddonsByDetail(ctx context.Context, db sqlc.DBTX, reservationDetailID uuid.UUID) ([]sqlc.ReservationAddons, error)
	ListGuestsByDetail(ctx context.Context, db sqlc.DBTX, reservationDetailsID uuid.UUID) ([]uuid.UUID, error)
}

type ReservationReadStore struct {
	queries ReservationReadQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationReadQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationReadStore) FindByOTARef(ctx context.Context, hotelID int32, ref string) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByOtaRef(ctx, r.db, sqlc.GetReservationByOtaRefParams{
		HotelID:          hotelID,
		OtaReservationID: pgconv.StringToPgtype(ref),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found for OTA reference", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation by OTA reference", err)
	}
	return converter.ReservationFromRow(row)
}

func (r *ReservationReadStore) DetailByID(ctx context.Context, id uuid.UUID) (*reservation.NightDetail, error) {
	row, err := r.queries.GetDetailByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation detail not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation detail", err)
	}
	d := converter.DetailFromRow(row)
	return &d, nil
}

func (r *ReservationReadStore) DetailsByReservation(ctx context.Context, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	rows, err := r.queries.ListDetailsByReservation(ctx, r.db, reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation details", err)
	}
	out := make([]reservation.NightDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.DetailFromRow(row))
	}
	return out, nil
}

func (r *ReservationReadStore) AddonsByDetail(ctx context.Context, detailID uuid.UUID) ([]reservation.Addon, error) {
	rows, err := r.queries.ListAddonsByDetail(ctx, r.db, detailID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation addons", err)
	}
	out := make([]reservation.Addon, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.AddonFromRow(row))
	}
	return out, nil
}

func (r *ReservationReadStore) GuestsByDetail(ctx context.Context, detailID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListGuestsByDetail(ctx, r.db, detailID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation guests", err)
	}
	return ids, nil
}

type ReservationViewQueries interface {
	GetReservationView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewRow, error)
	ListReservationNights(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ListReservationNightsRow, error)
	ListPaymentsByReservation(ctx context.Context, db sqlc.DBTX, reservationID uuid.UUID) ([]sqlc.ReservationPayments, error)
}

// ReservationViewStore assembles the read view of a reservation.
type ReservationViewStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationViewStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationViewStore {
	return &ReservationViewStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationViewStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	nights, err := r.queries.ListReservationNights(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation nights", err)
	}
	payments, err := r.queries.ListPaymentsByReservation(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation payments", err)
	}

	view := &queries.ReservationView{
		ID:               row.ID,
		HotelID:          row.HotelID,
		ClientID:         row.ReservationClientID,
		ClientName:       row.ClientName,
		CheckIn:          reservation.FormatDate(pgconv.DateFromPgtype(row.CheckIn)),
		CheckOut:         reservation.FormatDate(pgconv.DateFromPgtype(row.CheckOut)),
		CheckInTime:      pgconv.TimeOfDayPtrFromPgtype(row.CheckInTime),
		CheckOutTime:     pgconv.TimeOfDayPtrFromPgtype(row.CheckOutTime),
		People:           int(row.NumberOfPeople),
		Status:           row.Status,
		Type:             row.Type,
		OTAReservationID: pgconv.StringPtrFromPgtype(row.OtaReservationID),
		Agent:            pgconv.StringPtrFromPgtype(row.Agent),
		Comment:          row.Comment,
		PaidTotal:        money.FromCents(pgconv.CentsFromNumeric(row.PaidTotal)).Float(),
		Nights:           make([]queries.NightView, 0, len(nights)),
		Payments:         make([]queries.PaymentView, 0, len(payments)),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	billable := money.Zero()
	for _, n := range nights {
		price := money.FromCents(pgconv.CentsFromNumeric(n.Price))
		if n.Billable {
			billable = billable.Add(price)
		}
		view.Nights = append(view.Nights, queries.NightView{
			DetailID:     n.ID,
			Date:         reservation.FormatDate(pgconv.DateFromPgtype(n.Date)),
			RoomID:       n.RoomID,
			RoomNumber:   n.RoomNumber,
			PlanGlobalID: pgconv.Int32PtrFromPgtype(n.PlansGlobalID),
			PlanHotelID:  pgconv.Int32PtrFromPgtype(n.PlansHotelID),
			PlanName:     pgconv.StringPtrFromPgtype(n.PlanName),
			People:       int(n.NumberOfPeople),
			Price:        price.Float(),
			Cancelled:    pgconv.UUIDPtrFromPgtype(n.Cancelled),
			Billable:     n.Billable,
		})
	}
	view.BillableTotal = billable.Float()

	for _, p := range payments {
		pay := converter.PaymentFromRow(p)
		view.Payments = append(view.Payments, queries.PaymentView{
			ID:            pay.ID,
			Date:          reservation.FormatDate(pay.Date),
			RoomID:        pay.RoomID,
			ClientID:      pay.ClientID,
			PaymentTypeID: pay.PaymentTypeID,
			Amount:        pay.Amount.Float(),
			Comment:       pay.Comment,
			InvoiceID:     pay.InvoiceID,
		})
	}
	return view, nil
}
