package request

import (
	"hotel-pms/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RecordPaymentRequest struct {
	Date          string     `json:"date,omitempty"`
	RoomID        *int32     `json:"roomId,omitempty"`
	ClientID      *uuid.UUID `json:"clientId,omitempty"`
	PaymentTypeID int32      `json:"paymentTypeId" binding:"required"`
	Amount        float64    `json:"value"`
	Comment       string     `json:"comment,omitempty" binding:"max=2000"`
}

func (r RecordPaymentRequest) ToCommand(reservationID uuid.UUID) (commands.RecordPaymentRequest, error) {
	cmd := commands.RecordPaymentRequest{ReservationID: reservationID}
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.RecordPaymentRequest{}, err
	}
	return cmd, nil
}
