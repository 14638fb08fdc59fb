// Package calendar mirrors reservations into Google Calendar.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/usecase/commands"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleGateway writes all-day events into the calendar configured for
// each hotel. Hotels without a calendar are skipped silently.
type GoogleGateway struct {
	svc       *gcal.Service
	calendars map[int32]string
}

func NewGoogleGateway(ctx context.Context, credentialsFile string, calendars map[int32]string) (*GoogleGateway, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &GoogleGateway{svc: svc, calendars: calendars}, nil
}

func (g *GoogleGateway) UpsertEvent(ctx context.Context, hotelID int32, ev commands.CalendarEvent) error {
	calendarID, ok := g.calendars[hotelID]
	if !ok {
		return nil
	}
	event := &gcal.Event{
		Id:          ev.ID,
		Summary:     ev.Summary,
		Description: ev.Description,
		Start:       &gcal.EventDateTime{Date: reservation.FormatDate(ev.Start)},
		End:         &gcal.EventDateTime{Date: reservation.FormatDate(ev.End)},
	}

	_, err := g.svc.Events.Update(calendarID, ev.ID, event).Context(ctx).Do()
	if isStatus(err, http.StatusNotFound) {
		_, err = g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	}
	if err != nil {
		return fmt.Errorf("upsert calendar event %s: %w", ev.ID, err)
	}
	return nil
}

func (g *GoogleGateway) DeleteEvent(ctx context.Context, hotelID int32, eventID string) error {
	calendarID, ok := g.calendars[hotelID]
	if !ok {
		return nil
	}
	err := g.svc.Events.Delete(calendarID, eventID).Context(ctx).Do()
	if err != nil && !isStatus(err, http.StatusNotFound) && !isStatus(err, http.StatusGone) {
		return fmt.Errorf("delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func isStatus(err error, code int) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && gerr.Code == code
}
