package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID               uuid.UUID     `json:"id"`
	HotelID          int32         `json:"hotel_id"`
	ClientID         uuid.UUID     `json:"client_id"`
	ClientName       string        `json:"client_name"`
	CheckIn          string        `json:"check_in"`
	CheckOut         string        `json:"check_out"`
	CheckInTime      *string       `json:"check_in_time,omitempty"`
	CheckOutTime     *string       `json:"check_out_time,omitempty"`
	People           int           `json:"number_of_people"`
	Status           string        `json:"status"`
	Type             string        `json:"type"`
	OTAReservationID *string       `json:"ota_reservation_id,omitempty"`
	Agent            *string       `json:"agent,omitempty"`
	Comment          string        `json:"comment"`
	BillableTotal    float64       `json:"billable_total"`
	PaidTotal        float64       `json:"paid_total"`
	Nights           []NightView   `json:"nights"`
	Payments         []PaymentView `json:"payments"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type NightView struct {
	DetailID     uuid.UUID  `json:"detail_id"`
	Date         string     `json:"date"`
	RoomID       int32      `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	PlanGlobalID *int32     `json:"plans_global_id,omitempty"`
	PlanHotelID  *int32     `json:"plans_hotel_id,omitempty"`
	PlanName     *string    `json:"plan_name,omitempty"`
	People       int        `json:"number_of_people"`
	Price        float64    `json:"price"`
	Cancelled    *uuid.UUID `json:"cancelled,omitempty"`
	Billable     bool       `json:"billable"`
}

type PaymentView struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	RoomID        *int32     `json:"room_id,omitempty"`
	ClientID      uuid.UUID  `json:"client_id"`
	PaymentTypeID int32      `json:"payment_type_id"`
	Amount        float64    `json:"amount"`
	Comment       string     `json:"comment"`
	InvoiceID     *uuid.UUID `json:"invoice_id,omitempty"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}
