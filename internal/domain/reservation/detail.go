package reservation

import (
	"sort"
	"time"

	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/rate"

	"github.com/google/uuid"
)

// NightDetail is one room-night of a reservation. A non-nil Cancelled
// token marks the night cancelled without removing it.
type NightDetail struct {
	ID            uuid.UUID
	HotelID       int32
	ReservationID uuid.UUID
	Date          time.Time
	RoomID        int32
	Plan          rate.PlanRef
	PlanName      *string
	PlanType      *rate.PlanType
	People        int
	Price         money.Money
	Cancelled     *uuid.UUID
	Billable      bool
}

// NewNightDetail creates an unpriced, non-billable night.
func NewNightDetail(hotelID int32, reservationID uuid.UUID, roomID int32, date time.Time, people int) NightDetail {
	return NightDetail{
		ID:            uuid.New(),
		HotelID:       hotelID,
		ReservationID: reservationID,
		Date:          Day(date),
		RoomID:        roomID,
		People:        people,
		Price:         money.Zero(),
	}
}

func (d NightDetail) IsActive() bool {
	return d.Cancelled == nil
}

func (d *NightDetail) Cancel(token uuid.UUID, billable bool) {
	t := token
	d.Cancelled = &t
	d.Billable = billable
}

func (d *NightDetail) Reinstate() {
	d.Cancelled = nil
	d.Billable = true
}

// ApplyPlan snapshots the plan onto the night.
func (d *NightDetail) ApplyPlan(p *rate.Plan) {
	if p == nil {
		d.Plan = rate.PlanRef{}
		d.PlanName = nil
		d.PlanType = nil
		return
	}
	name, typ := p.Name, p.Type
	d.Plan = p.Ref
	d.PlanName = &name
	d.PlanType = &typ
}

// Addon is an ancillary charge on one night.
type Addon struct {
	ID       uuid.UUID
	HotelID  int32
	DetailID uuid.UUID
	GlobalID *int32
	HotelRef *int32
	Name     string
	Quantity int
	Price    money.Money
	Tax      rate.Tax
}

// Key identifies an add-on within a night for upserts.
func (a Addon) Key() AddonKey {
	k := AddonKey{Name: a.Name}
	if a.GlobalID != nil {
		k.GlobalID = *a.GlobalID
	}
	if a.HotelRef != nil {
		k.HotelRef = *a.HotelRef
	}
	return k
}

type AddonKey struct {
	GlobalID int32
	HotelRef int32
	Name     string
}

func (a Addon) Total() money.Money {
	return a.Price.Mul(a.Quantity)
}

// AddonFromTemplate instantiates a plan default add-on for a night.
func AddonFromTemplate(d NightDetail, t rate.AddonTemplate, quantity int) Addon {
	return Addon{
		ID:       uuid.New(),
		HotelID:  d.HotelID,
		DetailID: d.ID,
		GlobalID: t.GlobalID,
		HotelRef: t.HotelID,
		Name:     t.Name,
		Quantity: quantity,
		Price:    t.Price,
		Tax:      t.Tax,
	}
}

// Guest attributes an occupant client to a night.
type Guest struct {
	DetailID uuid.UUID
	ClientID uuid.UUID
}

type PaymentKind string

const (
	PaymentCash       PaymentKind = "cash"
	PaymentCard       PaymentKind = "card"
	PaymentInvoice    PaymentKind = "invoice"
	PaymentPoint      PaymentKind = "point"
	PaymentOTAPrepaid PaymentKind = "ota_prepaid"
	PaymentOther      PaymentKind = "other"
)

type PaymentType struct {
	ID      int32
	HotelID int32
	Name    string
	Kind    PaymentKind
}

type Payment struct {
	ID            uuid.UUID
	HotelID       int32
	ReservationID uuid.UUID
	Date          time.Time
	RoomID        *int32
	ClientID      uuid.UUID
	PaymentTypeID int32
	Amount        money.Money
	Comment       string
	InvoiceID     *uuid.UUID
	CreatedBy     *uuid.UUID
}

// Invoice is the billing header shared by invoice-type payments of a reservation.
type Invoice struct {
	ID            uuid.UUID
	HotelID       int32
	ReservationID uuid.UUID
	ClientID      uuid.UUID
}

// Parking is a parking spot booked for one night. It follows the night's
// cancellation through the reservation.
type Parking struct {
	ID        uuid.UUID
	HotelID   int32
	DetailID  uuid.UUID
	SpotID    int32
	Date      time.Time
	Cancelled *uuid.UUID
}

// MoveParking re-attaches parking to the night of the same date in nights.
// Parking whose date is no longer booked is returned as dropped.
func MoveParking(parking []Parking, nights []NightDetail) (moved, dropped []Parking) {
	byDate := make(map[string]uuid.UUID, len(nights))
	for _, d := range nights {
		byDate[FormatDate(d.Date)] = d.ID
	}
	for _, p := range parking {
		id, ok := byDate[FormatDate(p.Date)]
		if !ok {
			dropped = append(dropped, p)
			continue
		}
		p.DetailID = id
		moved = append(moved, p)
	}
	return moved, dropped
}

// DetailsOfRoom filters nights belonging to one room.
func DetailsOfRoom(details []NightDetail, roomID int32) []NightDetail {
	var out []NightDetail
	for _, d := range details {
		if d.RoomID == roomID {
			out = append(out, d)
		}
	}
	return out
}

// ActiveDetails filters out cancelled nights.
func ActiveDetails(details []NightDetail) []NightDetail {
	var out []NightDetail
	for _, d := range details {
		if d.IsActive() {
			out = append(out, d)
		}
	}
	return out
}

// RoomIDs lists distinct rooms in ascending order.
func RoomIDs(details []NightDetail) []int32 {
	seen := make(map[int32]bool)
	var ids []int32
	for _, d := range details {
		if !seen[d.RoomID] {
			seen[d.RoomID] = true
			ids = append(ids, d.RoomID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
