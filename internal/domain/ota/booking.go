// Package ota holds the typed form of OTA booking notifications. Payloads
// are decoded and validated once, so reconciliation never inspects raw fields.
package ota

import (
	"sort"
	"strings"
	"time"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/money"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/pkg/errs"
)

var (
	ErrMalformedPayload   = errs.NewKind("malformed OTA payload", errs.ErrExternalData)
	ErrUnknownTransaction = errs.NewKind("unknown OTA transaction type", errs.ErrExternalData)
	ErrMissingBookingRef  = errs.NewKind("OTA booking number is missing", errs.ErrExternalData)
	ErrInvalidPayloadData = errs.NewKind("invalid OTA booking data", errs.ErrExternalData)
	ErrUnmappedRoomType   = errs.NewKind("OTA room type code is not mapped", errs.ErrExternalData)
	ErrUnmappedPlan       = errs.NewKind("OTA plan code is not mapped", errs.ErrExternalData)
)

type TransactionType string

const (
	TransactionNew    TransactionType = "new"
	TransactionEdit   TransactionType = "edit"
	TransactionCancel TransactionType = "cancel"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionNew, TransactionEdit, TransactionCancel:
		return true
	default:
		return false
	}
}

// ParseTransactionType accepts both the feed's data classifications and the
// short names stored in the queue.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new", "newbookreport":
		return TransactionNew, nil
	case "edit", "modificationreport":
		return TransactionEdit, nil
	case "cancel", "cancellationreport":
		return TransactionCancel, nil
	default:
		return "", errs.Kindf(ErrUnknownTransaction, "unknown OTA transaction type %q", s)
	}
}

// Night is one priced room-night of the booking.
type Night struct {
	Date   time.Time
	People int
	Price  money.Money
}

// Room is one booked room with its nights and named occupants.
type Room struct {
	RoomTypeCode string
	PlanCode     string
	People       int
	Nights       []Night
	Guests       []client.Attributes
}

func (r Room) Total() money.Money {
	total := money.Zero()
	for _, n := range r.Nights {
		total = total.Add(n.Price)
	}
	return total
}

// Booking is the validated intermediate form of a booking report.
type Booking struct {
	Transaction        TransactionType
	BookingRef         string
	Agent              string
	Stay               reservation.Stay
	CheckInTime        *string
	People             int
	PlanCode           string
	PlanName           string
	Booker             client.Attributes
	Comment            string
	Rooms              []Room
	PointsDiscount     money.Money
	Prepaid            money.Money
	CancellationCharge money.Money
}

// FromReport validates a decoded report and builds its Booking.
func FromReport(r *BookingReport) (*Booking, error) {
	tx, err := ParseTransactionType(r.TransactionType.DataClassification)
	if err != nil {
		return nil, err
	}
	bi := r.BasicInformation
	ref := strings.TrimSpace(bi.TravelAgencyBookingNumber)
	if ref == "" {
		return nil, ErrMissingBookingRef
	}

	b := &Booking{
		Transaction: tx,
		BookingRef:  ref,
		Agent:       firstNonEmpty(bi.TravelAgencyName, r.TransactionType.DataFrom),
		PlanCode:    strings.TrimSpace(bi.PackagePlanCode),
		PlanName:    strings.TrimSpace(bi.PackagePlanName),
		Comment:     strings.TrimSpace(bi.OtherServiceInformation),
	}

	checkIn, err := parseDate(bi.CheckInDate, "check-in date")
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate(bi.CheckOutDate, "check-out date")
	if err != nil {
		return nil, err
	}
	if b.Stay, err = reservation.NewStay(checkIn, checkOut); err != nil {
		return nil, errs.Kindf(ErrInvalidPayloadData, "booking %s: %v", ref, err)
	}
	if t := strings.TrimSpace(bi.CheckInTime); t != "" {
		b.CheckInTime = &t
	}

	if b.CancellationCharge, err = amount(r.BasicRateInformation.CancellationCharge, "cancellation charge"); err != nil {
		return nil, err
	}
	if tx == TransactionCancel {
		return b, nil
	}

	if b.PointsDiscount, err = amount(r.BasicRateInformation.PointsDiscount, "points discount"); err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(r.BasicRateInformation.SettlementDiv), "prepaid") {
		claimed := r.BasicRateInformation.AmountClaimed
		if claimed.IsEmpty() {
			claimed = r.BasicRateInformation.TotalAccommodationCharge
		}
		if b.Prepaid, err = amount(claimed, "prepaid amount"); err != nil {
			return nil, err
		}
	}

	b.Booker = booker(bi, r.MemberInformation)
	if err := b.Booker.Validate(); err != nil {
		return nil, errs.Kindf(ErrInvalidPayloadData, "booking %s: booker: %v", ref, err)
	}

	if len(r.RoomAndGuestList.Rooms) == 0 {
		return nil, errs.Kindf(ErrInvalidPayloadData, "booking %s has no rooms", ref)
	}
	for i, rg := range r.RoomAndGuestList.Rooms {
		room, err := buildRoom(b, rg)
		if err != nil {
			return nil, errs.Wrapf(err, "booking %s room %d", ref, i+1)
		}
		b.Rooms = append(b.Rooms, room)
		b.People += room.People
	}

	if total, err := bi.GrandTotalPaxCount.Int(); err == nil && total > b.People {
		b.People = total
	}
	return b, nil
}

func buildRoom(b *Booking, rg RoomAndGuest) (Room, error) {
	info := rg.RoomInformation
	room := Room{
		RoomTypeCode: firstNonEmpty(info.NetRoomTypeGroupCode, info.RoomTypeCode),
		PlanCode:     firstNonEmpty(info.PlanGroupCode, b.PlanCode),
	}
	if room.RoomTypeCode == "" {
		return Room{}, errs.Kindf(ErrInvalidPayloadData, "room type code is missing")
	}
	people, err := info.PerRoomPaxCount.Int()
	if err != nil || people <= 0 {
		return Room{}, errs.Kindf(ErrInvalidPayloadData, "invalid pax count %q", info.PerRoomPaxCount)
	}
	room.People = people

	byDate := make(map[time.Time]Night)
	for _, rr := range rg.RoomRateInformation {
		date, err := parseDate(rr.RoomDate, "room date")
		if err != nil {
			return Room{}, err
		}
		if !b.Stay.Contains(date) {
			return Room{}, errs.Kindf(ErrInvalidPayloadData, "room date %s is outside the stay %s", reservation.FormatDate(date), b.Stay)
		}
		n := Night{Date: date, People: people}
		if pax, err := rr.PaxCount.Int(); err == nil && pax > 0 {
			n.People = pax
		}
		if n.Price, err = nightPrice(rr, n.People); err != nil {
			return Room{}, err
		}
		byDate[date] = n
	}
	for _, d := range b.Stay.Nights() {
		n, ok := byDate[d]
		if !ok {
			return Room{}, errs.Kindf(ErrInvalidPayloadData, "no rate for night %s", reservation.FormatDate(d))
		}
		room.Nights = append(room.Nights, n)
	}
	sort.Slice(room.Nights, func(i, j int) bool { return room.Nights[i].Date.Before(room.Nights[j].Date) })

	for _, g := range rg.GuestInformation {
		attrs := guest(g)
		if attrs.Validate() != nil {
			continue
		}
		room.Guests = append(room.Guests, attrs)
	}
	return room, nil
}

func nightPrice(rr RoomRateInformation, people int) (money.Money, error) {
	if !rr.TotalPerRoomRate.IsEmpty() {
		return amount(rr.TotalPerRoomRate, "room rate")
	}
	perPax, err := amount(rr.PerPaxRate, "per-pax rate")
	if err != nil {
		return money.Zero(), err
	}
	return perPax.Mul(people), nil
}

func booker(bi BasicInformation, m *MemberInformation) client.Attributes {
	a := client.Attributes{Name: bi.GuestOrGroupNameSingleByte}
	if k := strings.TrimSpace(bi.GuestOrGroupNameKanjiName); k != "" {
		a.NameKanji = &k
	}
	if m != nil {
		if strings.TrimSpace(m.MemberName) != "" {
			a.Name = m.MemberName
		}
		a.NameKanji = optional(firstNonEmpty(m.MemberKanjiName, deref(a.NameKanji)))
		a.NameKana = optional(m.MemberKanaName)
		a.Email = optional(m.MemberEmail)
		a.Phone = optional(m.MemberPhone)
		a.Gender = gender(m.MemberGender)
		if dob, err := parseDate(m.MemberDateOfBirth, "date of birth"); err == nil {
			a.DateOfBirth = &dob
		}
		if strings.TrimSpace(m.CorporateFlag) == "1" {
			a.Person = client.PersonLegal
		}
	}
	return a.Normalize()
}

func guest(g GuestInformation) client.Attributes {
	a := client.Attributes{
		Name:      firstNonEmpty(g.GuestNameSingleByte, g.GuestKanjiName),
		NameKanji: optional(g.GuestKanjiName),
		Email:     optional(g.GuestEmail),
		Phone:     optional(g.GuestPhoneNumber),
		Gender:    gender(g.GuestGender),
	}
	if dob, err := parseDate(g.GuestDateOfBirth, "date of birth"); err == nil {
		a.DateOfBirth = &dob
	}
	return a.Normalize()
}

func gender(s string) client.Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "m", "male":
		return client.GenderMale
	case "1", "f", "female":
		return client.GenderFemale
	default:
		return client.GenderOther
	}
}

func parseDate(s, field string) (time.Time, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "/", "-")
	if s == "" {
		return time.Time{}, errs.Kindf(ErrInvalidPayloadData, "%s is missing", field)
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, errs.Kindf(ErrInvalidPayloadData, "invalid %s %q", field, s)
	}
	return d, nil
}

func amount(n Number, field string) (money.Money, error) {
	f, err := n.Float()
	if err != nil {
		return money.Zero(), errs.Kindf(ErrInvalidPayloadData, "invalid %s %q", field, n)
	}
	if f < 0 {
		return money.Zero(), errs.Kindf(ErrInvalidPayloadData, "negative %s %q", field, n)
	}
	return money.FromFloat(f), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
