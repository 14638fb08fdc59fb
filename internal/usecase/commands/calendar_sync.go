package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/uuid"
)

// CalendarSync mirrors a reservation into the hotel calendar. Cancelled or
// deleted reservations remove their event.
type CalendarSync struct {
	uow     shared.UnitOfWork
	gateway CalendarGateway
}

func NewCalendarSync(uow shared.UnitOfWork, gateway CalendarGateway) *CalendarSync {
	return &CalendarSync{uow: uow, gateway: gateway}
}

// CalendarEventID derives a stable event id; Google accepts lowercase hex.
func CalendarEventID(reservationID uuid.UUID) string {
	return strings.ReplaceAll(reservationID.String(), "-", "")
}

func (s *CalendarSync) HandleReservationChanged(ctx context.Context, ev shared.ReservationChanged) error {
	eventID := CalendarEventID(ev.ReservationID)
	reads := s.uow.CommandReads()

	res, err := reads.ReservationByID(ctx, ev.ReservationID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return s.gateway.DeleteEvent(ctx, ev.HotelID, eventID)
		}
		return err
	}
	if res.IsCancelled() {
		return s.gateway.DeleteEvent(ctx, res.HotelID(), eventID)
	}

	details, err := reads.DetailsByReservation(ctx, res.ID())
	if err != nil {
		return err
	}
	var rooms []string
	for _, id := range reservation.RoomIDs(reservation.ActiveDetails(details)) {
		rm, err := reads.RoomByID(ctx, res.HotelID(), id)
		if err != nil {
			return err
		}
		rooms = append(rooms, rm.Number())
	}

	err = s.gateway.UpsertEvent(ctx, res.HotelID(), CalendarEvent{
		ID:          eventID,
		Summary:     calendarSummary(res, rooms),
		Description: calendarDescription(res),
		Start:       res.Stay().CheckIn(),
		End:         res.Stay().CheckOut(),
	})
	if err != nil {
		return err
	}
	slog.Debug("calendar event synced", "reservation_id", res.ID().String(), "event_id", eventID)
	return nil
}

func calendarSummary(res *reservation.Reservation, rooms []string) string {
	label := "no room"
	if len(rooms) > 0 {
		label = strings.Join(rooms, ", ")
	}
	return fmt.Sprintf("[%s] %s (%d pax)", res.Status(), label, res.People())
}

func calendarDescription(res *reservation.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reservation %s\nStay %s\nType %s\n", res.ID(), res.Stay(), res.Type())
	if ref := res.OTAReservationID(); ref != nil {
		fmt.Fprintf(&b, "OTA booking %s\n", *ref)
	}
	if agent := res.Agent(); agent != nil {
		fmt.Fprintf(&b, "Agent %s\n", *agent)
	}
	if !res.Comment().IsEmpty() {
		b.WriteString(res.Comment().String())
	}
	return b.String()
}
