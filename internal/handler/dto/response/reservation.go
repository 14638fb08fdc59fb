package response

import (
	"time"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/usecase/commands"
	"hotel-pms/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NightResponse struct {
	DetailID     uuid.UUID  `json:"detailId"`
	Date         string     `json:"date"`
	RoomID       int32      `json:"roomId"`
	RoomNumber   string     `json:"roomNumber"`
	PlanGlobalID *int32     `json:"plansGlobalId,omitempty"`
	PlanHotelID  *int32     `json:"plansHotelId,omitempty"`
	PlanName     *string    `json:"planName,omitempty"`
	People       int        `json:"numberOfPeople"`
	Price        float64    `json:"price"`
	Cancelled    *uuid.UUID `json:"cancelled,omitempty"`
	Billable     bool       `json:"billable"`
}

type PaymentResponse struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	RoomID        *int32     `json:"roomId,omitempty"`
	ClientID      uuid.UUID  `json:"clientId"`
	PaymentTypeID int32      `json:"paymentTypeId"`
	Amount        float64    `json:"value"`
	Comment       string     `json:"comment"`
	InvoiceID     *uuid.UUID `json:"invoiceId,omitempty"`
}

type ReservationResponse struct {
	ID               uuid.UUID         `json:"id"`
	HotelID          int32             `json:"hotelId"`
	ClientID         uuid.UUID         `json:"clientId"`
	ClientName       string            `json:"clientName"`
	CheckIn          string            `json:"checkIn"`
	CheckOut         string            `json:"checkOut"`
	CheckInTime      *string           `json:"checkInTime,omitempty"`
	CheckOutTime     *string           `json:"checkOutTime,omitempty"`
	People           int               `json:"numberOfPeople"`
	Status           string            `json:"status"`
	Type             string            `json:"type"`
	OTAReservationID *string           `json:"otaReservationId,omitempty"`
	Agent            *string           `json:"agent,omitempty"`
	Comment          string            `json:"comment"`
	BillableTotal    float64           `json:"billableTotal"`
	PaidTotal        float64           `json:"paidTotal"`
	Nights           []NightResponse   `json:"nights"`
	Payments         []PaymentResponse `json:"payments"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	if out.Nights == nil {
		out.Nights = []NightResponse{}
	}
	if out.Payments == nil {
		out.Payments = []PaymentResponse{}
	}
	return &out, nil
}

type AssignmentResponse struct {
	RoomID     int32 `json:"roomId"`
	RoomTypeID int32 `json:"roomTypeId"`
	Capacity   int   `json:"capacity"`
	Occupants  int   `json:"numberOfPeople"`
}

type HoldResponse struct {
	ReservationID uuid.UUID            `json:"reservationId"`
	ClientID      uuid.UUID            `json:"clientId"`
	Assignments   []AssignmentResponse `json:"rooms"`
}

func FromHoldResult(r *commands.HoldResult) (*HoldResponse, error) {
	var out HoldResponse
	if err := copier.Copy(&out, r); err != nil {
		return nil, err
	}
	return &out, nil
}

type StatusResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Status        string    `json:"status"`
}

func FromStatus(id uuid.UUID, s reservation.Status) *StatusResponse {
	return &StatusResponse{ReservationID: id, Status: s.String()}
}

type MoveRoomResponse struct {
	ReservationID      uuid.UUID  `json:"reservationId"`
	SplitReservationID *uuid.UUID `json:"splitReservationId,omitempty"`
}

func FromMoveRoomResult(r *commands.MoveRoomResult) *MoveRoomResponse {
	return &MoveRoomResponse{ReservationID: r.ReservationID, SplitReservationID: r.SplitReservationID}
}

type AvailableRoomResponse struct {
	ID         int32  `json:"id"`
	RoomTypeID int32  `json:"roomTypeId"`
	Number     string `json:"roomNumber"`
	Capacity   int    `json:"capacity"`
	Floor      int    `json:"floor"`
	Smoking    bool   `json:"smoking"`
}

func FromAvailableRooms(views []*queries.AvailableRoomView) ([]AvailableRoomResponse, error) {
	out := make([]AvailableRoomResponse, len(views))
	for i, v := range views {
		if err := copier.Copy(&out[i], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
