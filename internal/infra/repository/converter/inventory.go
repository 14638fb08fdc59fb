package converter

import (
	"time"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/room"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/pgconv"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func RoomFromRow(row sqlc.Rooms) *room.Room {
	return room.Reconstruct(
		row.ID,
		row.HotelID,
		row.RoomTypeID,
		row.RoomNumber,
		int(row.Capacity),
		int(row.Floor),
		row.Smoking,
		row.ForSale,
	)
}

func RoomsFromRows(rows []sqlc.Rooms) []*room.Room {
	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, RoomFromRow(row))
	}
	return out
}

func RuleFromRow(row sqlc.PlanRates) (rate.Rule, error) {
	adj, err := rate.ParseAdjustmentType(row.AdjustmentType)
	if err != nil {
		return rate.Rule{}, err
	}
	cond, err := rate.ParseConditionType(row.ConditionType)
	if err != nil {
		return rate.Rule{}, err
	}
	value, err := pgconv.Float64FromNumeric(row.AdjustmentValue)
	if err != nil {
		return rate.Rule{}, err
	}
	taxRate, err := pgconv.Float64FromNumeric(row.TaxRate)
	if err != nil {
		return rate.Rule{}, err
	}
	values := make([]int, len(row.ConditionValue))
	for i, v := range row.ConditionValue {
		values[i] = int(v)
	}
	return rate.Rule{
		AdjustmentType:  adj,
		Value:           value,
		Tax:             rate.Tax{TypeID: pgconv.Int32PtrFromPgtype(row.TaxTypeID), Rate: taxRate},
		Condition:       cond,
		ConditionValues: values,
		DateStart:       pgconv.DatePtrFromPgtype(row.DateStart),
		DateEnd:         pgconv.DatePtrFromPgtype(row.DateEnd),
	}, nil
}

func AddonTemplateFromRow(row sqlc.PlanAddons) rate.AddonTemplate {
	taxRate, _ := pgconv.Float64FromNumeric(row.TaxRate)
	return rate.AddonTemplate{
		GlobalID: pgconv.Int32PtrFromPgtype(row.AddonsGlobalID),
		HotelID:  pgconv.Int32PtrFromPgtype(row.AddonsHotelID),
		Name:     row.AddonName,
		Price:    money.FromCents(pgconv.CentsFromNumeric(row.Price)),
		Tax:      rate.Tax{TypeID: pgconv.Int32PtrFromPgtype(row.TaxTypeID), Rate: taxRate},
	}
}

func ClientToFindParams(a client.Attributes) sqlc.FindClientExactParams {
	return sqlc.FindClientExactParams{
		Name:                 a.Name,
		NameKana:             pgconv.StringPtrToPgtype(a.NameKana),
		NameKanji:            pgconv.StringPtrToPgtype(a.NameKanji),
		DateOfBirth:          pgconv.DatePtrToPgtype(a.DateOfBirth),
		LegalOrNaturalPerson: string(a.Person),
		Gender:               string(a.Gender),
		Email:                pgconv.StringPtrToPgtype(a.Email),
		Phone:                pgconv.StringPtrToPgtype(a.Phone),
	}
}

func ClientToCreateParams(a client.Attributes) sqlc.CreateClientParams {
	return sqlc.CreateClientParams(ClientToFindParams(a))
}

func ClientToUpdateParams(id uuid.UUID, a client.Attributes) sqlc.UpdateClientParams {
	return sqlc.UpdateClientParams{
		ID:                   id,
		Name:                 a.Name,
		NameKana:             pgconv.StringPtrToPgtype(a.NameKana),
		NameKanji:            pgconv.StringPtrToPgtype(a.NameKanji),
		DateOfBirth:          pgconv.DatePtrToPgtype(a.DateOfBirth),
		LegalOrNaturalPerson: string(a.Person),
		Gender:               string(a.Gender),
		Email:                pgconv.StringPtrToPgtype(a.Email),
		Phone:                pgconv.StringPtrToPgtype(a.Phone),
	}
}

func QueueEntryFromRow(row sqlc.OtaReservationQueue) shared.QueueEntry {
	return shared.QueueEntry{
		ID:          row.ID,
		HotelID:     row.HotelID,
		BookingRef:  row.OtaReservationID,
		Transaction: ota.TransactionType(row.TransactionType),
		ContentType: row.ContentType,
		Payload:     row.Payload,
		PayloadHash: row.PayloadHash,
		Status:      shared.QueueStatus(row.Status),
		Attempts:    int(row.Attempts),
		LastError:   pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func QueueEntryToEnqueueParams(e shared.QueueEntry) sqlc.EnqueueOtaReservationParams {
	return sqlc.EnqueueOtaReservationParams{
		HotelID:          e.HotelID,
		OtaReservationID: e.BookingRef,
		TransactionType:  string(e.Transaction),
		ContentType:      e.ContentType,
		Payload:          e.Payload,
		PayloadHash:      e.PayloadHash,
	}
}

// DatesToPgtype converts nights for array parameters.
func DatesToPgtype(dates []time.Time) []pgtype.Date {
	out := make([]pgtype.Date, len(dates))
	for i, d := range dates {
		out[i] = pgconv.DateToPgtype(d)
	}
	return out
}
