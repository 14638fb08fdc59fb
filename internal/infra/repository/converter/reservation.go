package converter

import (
	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	in, out, err := timesOfDay(res)
	if err != nil {
		return sqlc.CreateReservationParams{}, err
	}
	return sqlc.CreateReservationParams{
		ID:                  res.ID(),
		HotelID:             res.HotelID(),
		ReservationClientID: res.ClientID(),
		CheckIn:             pgconv.DateToPgtype(res.Stay().CheckIn()),
		CheckOut:            pgconv.DateToPgtype(res.Stay().CheckOut()),
		CheckInTime:         in,
		CheckOutTime:        out,
		NumberOfPeople:      pgconv.IntToInt32(res.People()),
		Status:              res.Status().String(),
		Type:                string(res.Type()),
		OtaReservationID:    pgconv.StringPtrToPgtype(res.OTAReservationID()),
		Agent:               pgconv.StringPtrToPgtype(res.Agent()),
		Comment:             res.Comment().String(),
		CreatedBy:           pgconv.UUIDPtrToPgtype(res.CreatedBy()),
		UpdatedBy:           pgconv.UUIDPtrToPgtype(res.UpdatedBy()),
		CreatedAt:           pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func ReservationToUpdateParams(res *reservation.Reservation) (sqlc.UpdateReservationParams, error) {
	in, out, err := timesOfDay(res)
	if err != nil {
		return sqlc.UpdateReservationParams{}, err
	}
	return sqlc.UpdateReservationParams{
		ID:                  res.ID(),
		ReservationClientID: res.ClientID(),
		CheckIn:             pgconv.DateToPgtype(res.Stay().CheckIn()),
		CheckOut:            pgconv.DateToPgtype(res.Stay().CheckOut()),
		CheckInTime:         in,
		CheckOutTime:        out,
		NumberOfPeople:      pgconv.IntToInt32(res.People()),
		Status:              res.Status().String(),
		Type:                string(res.Type()),
		OtaReservationID:    pgconv.StringPtrToPgtype(res.OTAReservationID()),
		Agent:               pgconv.StringPtrToPgtype(res.Agent()),
		Comment:             res.Comment().String(),
		UpdatedBy:           pgconv.UUIDPtrToPgtype(res.UpdatedBy()),
		UpdatedAt:           pgconv.TimeToPgtype(res.UpdatedAt()),
	}, nil
}

func timesOfDay(res *reservation.Reservation) (pgtype.Time, pgtype.Time, error) {
	in, err := pgconv.TimeOfDayPtrToPgtype(res.CheckInTime())
	if err != nil {
		return pgtype.Time{}, pgtype.Time{}, errs.Kindf(reservation.ErrInvalidDate, "invalid check-in time %q", *res.CheckInTime())
	}
	out, err := pgconv.TimeOfDayPtrToPgtype(res.CheckOutTime())
	if err != nil {
		return pgtype.Time{}, pgtype.Time{}, errs.Kindf(reservation.ErrInvalidDate, "invalid check-out time %q", *res.CheckOutTime())
	}
	return in, out, nil
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	stay, err := reservation.NewStay(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, err
	}
	comment, err := reservation.NewComment(row.Comment)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.HotelID,
		row.ReservationClientID,
		stay,
		pgconv.TimeOfDayPtrFromPgtype(row.CheckInTime),
		pgconv.TimeOfDayPtrFromPgtype(row.CheckOutTime),
		int(row.NumberOfPeople),
		reservation.Status(row.Status),
		reservation.Type(row.Type),
		pgconv.StringPtrFromPgtype(row.OtaReservationID),
		pgconv.StringPtrFromPgtype(row.Agent),
		comment,
		pgconv.UUIDPtrFromPgtype(row.CreatedBy),
		pgconv.UUIDPtrFromPgtype(row.UpdatedBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func DetailToCreateParams(d reservation.NightDetail) sqlc.CreateReservationDetailParams {
	return sqlc.CreateReservationDetailParams{
		ID:             d.ID,
		HotelID:        d.HotelID,
		ReservationID:  d.ReservationID,
		Date:           pgconv.DateToPgtype(d.Date),
		RoomID:         d.RoomID,
		PlansGlobalID:  pgconv.Int32PtrToPgtype(d.Plan.GlobalID),
		PlansHotelID:   pgconv.Int32PtrToPgtype(d.Plan.HotelID),
		PlanName:       pgconv.StringPtrToPgtype(d.PlanName),
		PlanType:       planTypeToPgtype(d.PlanType),
		NumberOfPeople: pgconv.IntToInt32(d.People),
		Price:          pgconv.CentsToNumeric(d.Price.Cents()),
		Cancelled:      pgconv.UUIDPtrToPgtype(d.Cancelled),
		Billable:       d.Billable,
	}
}

func DetailToUpdateParams(d reservation.NightDetail) sqlc.UpdateReservationDetailParams {
	return sqlc.UpdateReservationDetailParams{
		ID:             d.ID,
		ReservationID:  d.ReservationID,
		Date:           pgconv.DateToPgtype(d.Date),
		RoomID:         d.RoomID,
		PlansGlobalID:  pgconv.Int32PtrToPgtype(d.Plan.GlobalID),
		PlansHotelID:   pgconv.Int32PtrToPgtype(d.Plan.HotelID),
		PlanName:       pgconv.StringPtrToPgtype(d.PlanName),
		PlanType:       planTypeToPgtype(d.PlanType),
		NumberOfPeople: pgconv.IntToInt32(d.People),
		Price:          pgconv.CentsToNumeric(d.Price.Cents()),
		Cancelled:      pgconv.UUIDPtrToPgtype(d.Cancelled),
		Billable:       d.Billable,
	}
}

func DetailFromRow(row sqlc.ReservationDetails) reservation.NightDetail {
	var planType *rate.PlanType
	if row.PlanType.Valid {
		t := rate.PlanType(row.PlanType.String)
		planType = &t
	}
	return reservation.NightDetail{
		ID:            row.ID,
		HotelID:       row.HotelID,
		ReservationID: row.ReservationID,
		Date:          pgconv.DateFromPgtype(row.Date),
		RoomID:        row.RoomID,
		Plan: rate.PlanRef{
			GlobalID: pgconv.Int32PtrFromPgtype(row.PlansGlobalID),
			HotelID:  pgconv.Int32PtrFromPgtype(row.PlansHotelID),
		},
		PlanName:  pgconv.StringPtrFromPgtype(row.PlanName),
		PlanType:  planType,
		People:    int(row.NumberOfPeople),
		Price:     money.FromCents(pgconv.CentsFromNumeric(row.Price)),
		Cancelled: pgconv.UUIDPtrFromPgtype(row.Cancelled),
		Billable:  row.Billable,
	}
}

func planTypeToPgtype(t *rate.PlanType) pgtype.Text {
	if t == nil {
		return pgtype.Text{Valid: false}
	}
	return pgconv.StringToPgtype(string(*t))
}

func RateLineToParams(hotelID int32, detailID uuid.UUID, position int, l rate.Line) sqlc.CreateReservationRateParams {
	return sqlc.CreateReservationRateParams{
		HotelID:              hotelID,
		ReservationDetailsID: detailID,
		AdjustmentType:       string(l.AdjustmentType),
		AdjustmentValue:      pgconv.Float64ToNumeric(l.AdjustmentValue),
		TaxTypeID:            pgconv.Int32PtrToPgtype(l.Tax.TypeID),
		TaxRate:              pgconv.Float64ToNumeric(l.Tax.Rate),
		Price:                pgconv.CentsToNumeric(l.Price.Cents()),
		Position:             pgconv.IntToInt32(position),
	}
}

func AddonToCreateParams(a reservation.Addon) sqlc.CreateReservationAddonParams {
	return sqlc.CreateReservationAddonParams{
		ID:                  a.ID,
		HotelID:             a.HotelID,
		ReservationDetailID: a.DetailID,
		AddonsGlobalID:      pgconv.Int32PtrToPgtype(a.GlobalID),
		AddonsHotelID:       pgconv.Int32PtrToPgtype(a.HotelRef),
		AddonName:           a.Name,
		Quantity:            pgconv.IntToInt32(a.Quantity),
		Price:               pgconv.CentsToNumeric(a.Price.Cents()),
		TaxTypeID:           pgconv.Int32PtrToPgtype(a.Tax.TypeID),
		TaxRate:             pgconv.Float64ToNumeric(a.Tax.Rate),
	}
}

func AddonToUpsertParams(a reservation.Addon) sqlc.UpsertReservationAddonParams {
	return sqlc.UpsertReservationAddonParams(AddonToCreateParams(a))
}

func AddonFromRow(row sqlc.ReservationAddons) reservation.Addon {
	taxRate, _ := pgconv.Float64FromNumeric(row.TaxRate)
	return reservation.Addon{
		ID:       row.ID,
		HotelID:  row.HotelID,
		DetailID: row.ReservationDetailID,
		GlobalID: pgconv.Int32PtrFromPgtype(row.AddonsGlobalID),
		HotelRef: pgconv.Int32PtrFromPgtype(row.AddonsHotelID),
		Name:     row.AddonName,
		Quantity: int(row.Quantity),
		Price:    money.FromCents(pgconv.CentsFromNumeric(row.Price)),
		Tax:      rate.Tax{TypeID: pgconv.Int32PtrFromPgtype(row.TaxTypeID), Rate: taxRate},
	}
}

func PaymentToCreateParams(p reservation.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:            p.ID,
		HotelID:       p.HotelID,
		ReservationID: p.ReservationID,
		Date:          pgconv.DateToPgtype(p.Date),
		RoomID:        pgconv.Int32PtrToPgtype(p.RoomID),
		ClientID:      p.ClientID,
		PaymentTypeID: p.PaymentTypeID,
		Value:         pgconv.CentsToNumeric(p.Amount.Cents()),
		Comment:       p.Comment,
		InvoiceID:     pgconv.UUIDPtrToPgtype(p.InvoiceID),
		CreatedBy:     pgconv.UUIDPtrToPgtype(p.CreatedBy),
	}
}

func PaymentFromRow(row sqlc.ReservationPayments) reservation.Payment {
	return reservation.Payment{
		ID:            row.ID,
		HotelID:       row.HotelID,
		ReservationID: row.ReservationID,
		Date:          pgconv.DateFromPgtype(row.Date),
		RoomID:        pgconv.Int32PtrFromPgtype(row.RoomID),
		ClientID:      row.ClientID,
		PaymentTypeID: row.PaymentTypeID,
		Amount:        money.FromCents(pgconv.CentsFromNumeric(row.Value)),
		Comment:       row.Comment,
		InvoiceID:     pgconv.UUIDPtrFromPgtype(row.InvoiceID),
		CreatedBy:     pgconv.UUIDPtrFromPgtype(row.CreatedBy),
	}
}

func PaymentTypeFromRow(row sqlc.PaymentTypes) reservation.PaymentType {
	return reservation.PaymentType{
		ID:      row.ID,
		HotelID: row.HotelID,
		Name:    row.Name,
		Kind:    reservation.PaymentKind(row.Kind),
	}
}

func ParkingToCreateParams(p reservation.Parking) sqlc.CreateParkingParams {
	return sqlc.CreateParkingParams{
		ID:                   p.ID,
		HotelID:              p.HotelID,
		ReservationDetailsID: p.DetailID,
		ParkingSpotID:        p.SpotID,
		Date:                 pgconv.DateToPgtype(p.Date),
		Cancelled:            pgconv.UUIDPtrToPgtype(p.Cancelled),
	}
}

func ParkingFromRow(row sqlc.ReservationParking) reservation.Parking {
	return reservation.Parking{
		ID:        row.ID,
		HotelID:   row.HotelID,
		DetailID:  row.ReservationDetailsID,
		SpotID:    row.ParkingSpotID,
		Date:      pgconv.DateFromPgtype(row.Date),
		Cancelled: pgconv.UUIDPtrFromPgtype(row.Cancelled),
	}
}
