package response

import (
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/usecase/commands"

	"github.com/google/uuid"
)

type RecordPaymentResponse struct {
	PaymentID uuid.UUID  `json:"paymentId"`
	InvoiceID *uuid.UUID `json:"invoiceId,omitempty"`
}

func FromPaymentResult(r *commands.PaymentResult) *RecordPaymentResponse {
	return &RecordPaymentResponse{PaymentID: r.PaymentID, InvoiceID: r.InvoiceID}
}

type EnqueueResponse struct {
	EntryID     int64               `json:"entryId"`
	Created     bool                `json:"created"`
	BookingRef  string              `json:"otaReservationId"`
	Transaction ota.TransactionType `json:"transactionType"`
}

func FromEnqueueResult(r *commands.EnqueueResult) *EnqueueResponse {
	return &EnqueueResponse{
		EntryID:     r.EntryID,
		Created:     r.Created,
		BookingRef:  r.BookingRef,
		Transaction: r.Transaction,
	}
}
