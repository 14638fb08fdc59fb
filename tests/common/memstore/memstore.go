//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Within snapshots every table and restores it when fn fails, so rollback
// behaves like a database transaction. It is not safe for concurrent use.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sort"
	"time"

	"hotel-pms/internal/domain/client"
	"hotel-pms/internal/domain/ota"
	"hotel-pms/internal/domain/rate"
	"hotel-pms/internal/domain/reservation"
	"hotel-pms/internal/domain/room"
	sqlc "hotel-pms/internal/infra/sqlc/generated"
	"hotel-pms/internal/pkg/errs"
	"hotel-pms/internal/pkg/ptr"
	"hotel-pms/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

type state struct {
	reservations map[uuid.UUID]reservation.Reservation
	details      map[uuid.UUID]reservation.NightDetail
	rates        map[uuid.UUID][]rate.Line
	addons       map[uuid.UUID][]reservation.Addon
	guests       map[uuid.UUID][]uuid.UUID
	payments     map[uuid.UUID]reservation.Payment
	invoices     map[uuid.UUID]reservation.Invoice
	clients      map[uuid.UUID]client.Attributes
	parking      map[uuid.UUID]reservation.Parking
	queue        map[int64]shared.QueueEntry
	queueSeq     int64
}

func newState() state {
	return state{
		reservations: make(map[uuid.UUID]reservation.Reservation),
		details:      make(map[uuid.UUID]reservation.NightDetail),
		rates:        make(map[uuid.UUID][]rate.Line),
		addons:       make(map[uuid.UUID][]reservation.Addon),
		guests:       make(map[uuid.UUID][]uuid.UUID),
		payments:     make(map[uuid.UUID]reservation.Payment),
		invoices:     make(map[uuid.UUID]reservation.Invoice),
		clients:      make(map[uuid.UUID]client.Attributes),
		parking:      make(map[uuid.UUID]reservation.Parking),
		queue:        make(map[int64]shared.QueueEntry),
	}
}

// clone copies every table. Stored values are replaced, never mutated in
// place, so copying the maps is enough.
func (s state) clone() state {
	return state{
		reservations: maps.Clone(s.reservations),
		details:      maps.Clone(s.details),
		rates:        maps.Clone(s.rates),
		addons:       maps.Clone(s.addons),
		guests:       maps.Clone(s.guests),
		payments:     maps.Clone(s.payments),
		invoices:     maps.Clone(s.invoices),
		clients:      maps.Clone(s.clients),
		parking:      maps.Clone(s.parking),
		queue:        maps.Clone(s.queue),
		queueSeq:     s.queueSeq,
	}
}

// Store holds master data, which never rolls back, and transactional state.
type Store struct {
	rooms        map[int32]*room.Room
	plans        []*rate.Plan
	paymentTypes []reservation.PaymentType
	roomCodes    map[string]int32
	planCodes    map[string]rate.PlanRef

	st state

	// Commits counts successful Within calls.
	Commits int
}

func New() *Store {
	return &Store{
		rooms:     make(map[int32]*room.Room),
		roomCodes: make(map[string]int32),
		planCodes: make(map[string]rate.PlanRef),
		st:        newState(),
	}
}

var (
	_ shared.UnitOfWork   = (*Store)(nil)
	_ shared.MasterData   = (*Store)(nil)
	_ shared.Tx           = (*tx)(nil)
	_ shared.CommandReads = (*reads)(nil)
)

// Master data

func (s *Store) AddRooms(rooms ...*room.Room) *Store {
	for _, r := range rooms {
		s.rooms[r.ID()] = r
	}
	return s
}

func (s *Store) AddPlan(p *rate.Plan) *Store {
	s.plans = append(s.plans, p)
	return s
}

func (s *Store) AddPaymentType(pt reservation.PaymentType) *Store {
	s.paymentTypes = append(s.paymentTypes, pt)
	return s
}

func (s *Store) MapRoomType(code string, roomTypeID int32) *Store {
	s.roomCodes[code] = roomTypeID
	return s
}

func (s *Store) MapPlan(code string, ref rate.PlanRef) *Store {
	s.planCodes[code] = ref
	return s
}

func (s *Store) RoomTypeByOTACode(_ context.Context, hotelID int32, code string) (int32, error) {
	id, ok := s.roomCodes[code]
	if !ok {
		return 0, errs.Kindf(ota.ErrUnmappedRoomType, "OTA room type code %q is not mapped for hotel %d", code, hotelID)
	}
	return id, nil
}

func (s *Store) PlanByOTACode(_ context.Context, hotelID int32, code string) (rate.PlanRef, error) {
	ref, ok := s.planCodes[code]
	if !ok {
		return rate.PlanRef{}, errs.Kindf(ota.ErrUnmappedPlan, "OTA plan code %q is not mapped for hotel %d", code, hotelID)
	}
	return ref, nil
}

// Seeding and inspection

// Seed stores a reservation and its nights outside any transaction.
func (s *Store) Seed(res *reservation.Reservation, details ...reservation.NightDetail) {
	s.st.reservations[res.ID()] = *res
	for _, d := range details {
		s.st.details[d.ID] = d
	}
}

func (s *Store) SeedClient(attrs client.Attributes) uuid.UUID {
	id := uuid.New()
	s.st.clients[id] = attrs.Normalize()
	return id
}

func (s *Store) SeedAddons(detailID uuid.UUID, addons ...reservation.Addon) {
	s.st.addons[detailID] = addons
}

func (s *Store) SeedGuests(detailID uuid.UUID, clientIDs ...uuid.UUID) {
	s.st.guests[detailID] = clientIDs
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	r, ok := s.st.reservations[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (s *Store) ReservationCount() int {
	return len(s.st.reservations)
}

// Nights returns every night of the reservation ordered by date then room.
func (s *Store) Nights(reservationID uuid.UUID) []reservation.NightDetail {
	var out []reservation.NightDetail
	for _, d := range s.st.details {
		if d.ReservationID == reservationID {
			out = append(out, d)
		}
	}
	sortDetails(out)
	return out
}

func (s *Store) ActiveNights(reservationID uuid.UUID) []reservation.NightDetail {
	return reservation.ActiveDetails(s.Nights(reservationID))
}

func (s *Store) NightCount() int {
	return len(s.st.details)
}

func (s *Store) Rates(detailID uuid.UUID) []rate.Line {
	return s.st.rates[detailID]
}

func (s *Store) Addons(detailID uuid.UUID) []reservation.Addon {
	return s.st.addons[detailID]
}

func (s *Store) Guests(detailID uuid.UUID) []uuid.UUID {
	return s.st.guests[detailID]
}

func (s *Store) Client(id uuid.UUID) (client.Attributes, bool) {
	a, ok := s.st.clients[id]
	return a, ok
}

func (s *Store) ClientCount() int {
	return len(s.st.clients)
}

// Payments returns the reservation's payments ordered by room then amount.
func (s *Store) Payments(reservationID uuid.UUID) []reservation.Payment {
	var out []reservation.Payment
	for _, p := range s.st.payments {
		if p.ReservationID == reservationID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := ptr.Deref(out[i].RoomID), ptr.Deref(out[j].RoomID)
		if ri != rj {
			return ri < rj
		}
		return out[i].Amount.LessThan(out[j].Amount)
	})
	return out
}

func (s *Store) InvoiceCount() int {
	return len(s.st.invoices)
}

// AddParking books spotID on an existing night.
func (s *Store) AddParking(detailID uuid.UUID, spotID int32) reservation.Parking {
	d := s.st.details[detailID]
	p := reservation.Parking{ID: uuid.New(), HotelID: d.HotelID, DetailID: detailID, SpotID: spotID, Date: d.Date}
	s.st.parking[p.ID] = p
	return p
}

// ParkingOf returns the reservation's parking ordered by date.
func (s *Store) ParkingOf(reservationID uuid.UUID) []reservation.Parking {
	var out []reservation.Parking
	for _, p := range s.st.parking {
		if s.st.details[p.DetailID].ReservationID == reservationID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ParkingCancelled reports whether the reservation has parking and all of it is cancelled.
func (s *Store) ParkingCancelled(reservationID uuid.UUID) bool {
	parking := s.ParkingOf(reservationID)
	for _, p := range parking {
		if p.Cancelled == nil {
			return false
		}
	}
	return len(parking) > 0
}

// QueueEntries returns the queue ordered by id.
func (s *Store) QueueEntries() []shared.QueueEntry {
	out := slices.Collect(maps.Values(s.st.queue))
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	snapshot := s.st.clone()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.st = snapshot
		return err
	}
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{s: s}
}

type tx struct {
	s *Store
}

func (t *tx) Reservations() shared.ReservationRepository { return reservationRepo{t.s} }
func (t *tx) Details() shared.DetailRepository           { return detailRepo{t.s} }
func (t *tx) Rates() shared.RateRepository               { return rateRepo{t.s} }
func (t *tx) Addons() shared.AddonRepository             { return addonRepo{t.s} }
func (t *tx) Guests() shared.GuestRepository             { return guestRepo{t.s} }
func (t *tx) Payments() shared.PaymentRepository         { return paymentRepo{t.s} }
func (t *tx) Invoices() shared.InvoiceRepository         { return invoiceRepo{t.s} }
func (t *tx) Parking() shared.ParkingRepository          { return parkingRepo{t.s} }
func (t *tx) Clients() shared.ClientRepository           { return clientRepo{t.s} }
func (t *tx) OTAQueue() shared.OTAQueueRepository        { return queueRepo{t.s} }
func (t *tx) Reads() shared.CommandReads                 { return &reads{s: t.s} }
func (t *tx) DB() sqlc.DBTX                              { return nil }

func sortDetails(ds []reservation.NightDetail) {
	sort.Slice(ds, func(i, j int) bool {
		if !ds[i].Date.Equal(ds[j].Date) {
			return ds[i].Date.Before(ds[j].Date)
		}
		return ds[i].RoomID < ds[j].RoomID
	})
}

func (s *Store) dropDetail(id uuid.UUID) {
	delete(s.st.details, id)
	delete(s.st.rates, id)
	delete(s.st.addons, id)
	delete(s.st.guests, id)
	for pid, p := range s.st.parking {
		if p.DetailID == id {
			delete(s.st.parking, pid)
		}
	}
}

// Repositories

type reservationRepo struct{ s *Store }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.st.reservations[res.ID()]; ok {
		return errs.Conflictf("reservation %s already exists", res.ID())
	}
	if ref := res.OTAReservationID(); ref != nil {
		for _, other := range r.s.st.reservations {
			if other.HotelID() == res.HotelID() && ptr.Equal(other.OTAReservationID(), ref) {
				return errs.Conflictf("OTA reservation %s already exists", *ref)
			}
		}
	}
	r.s.st.reservations[res.ID()] = *res
	return nil
}

func (r reservationRepo) Update(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if _, ok := r.s.st.reservations[res.ID()]; !ok {
		return errs.Kindf(reservation.ErrReservationNotFound, "reservation %s not found", res.ID())
	}
	r.s.st.reservations[res.ID()] = *res
	return nil
}

func (r reservationRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	for did, d := range r.s.st.details {
		if d.ReservationID == id {
			r.s.dropDetail(did)
		}
	}
	for pid, p := range r.s.st.payments {
		if p.ReservationID == id {
			delete(r.s.st.payments, pid)
		}
	}
	delete(r.s.st.reservations, id)
	return nil
}

type detailRepo struct{ s *Store }

// checkUnique mirrors UNIQUE (reservation_id, room_id, date).
func (r detailRepo) checkUnique(d reservation.NightDetail) error {
	for _, other := range r.s.st.details {
		if other.ID != d.ID && other.ReservationID == d.ReservationID && other.RoomID == d.RoomID && other.Date.Equal(d.Date) {
			return errs.Conflictf("night %s of room %d already exists", reservation.FormatDate(d.Date), d.RoomID)
		}
	}
	return nil
}

func (r detailRepo) CreateBatch(_ context.Context, _ sqlc.DBTX, details []reservation.NightDetail) error {
	for _, d := range details {
		if err := r.checkUnique(d); err != nil {
			return err
		}
		r.s.st.details[d.ID] = d
	}
	return nil
}

func (r detailRepo) Update(_ context.Context, _ sqlc.DBTX, d reservation.NightDetail) error {
	if _, ok := r.s.st.details[d.ID]; !ok {
		return errs.Kindf(reservation.ErrDetailNotFound, "detail %s not found", d.ID)
	}
	if err := r.checkUnique(d); err != nil {
		return err
	}
	r.s.st.details[d.ID] = d
	return nil
}

func (r detailRepo) CancelActive(_ context.Context, _ sqlc.DBTX, reservationID, token uuid.UUID, billable bool) (int64, error) {
	var n int64
	for id, d := range r.s.st.details {
		if d.ReservationID == reservationID && d.IsActive() {
			d.Cancel(token, billable)
			r.s.st.details[id] = d
			n++
		}
	}
	return n, nil
}

func (r detailRepo) Reinstate(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) error {
	for id, d := range r.s.st.details {
		if d.ReservationID == reservationID {
			d.Reinstate()
			r.s.st.details[id] = d
		}
	}
	return nil
}

func (r detailRepo) SetBillable(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID, billable bool) error {
	for id, d := range r.s.st.details {
		if d.ReservationID == reservationID {
			d.Billable = billable
			r.s.st.details[id] = d
		}
	}
	return nil
}

func (r detailRepo) DeleteByIDs(_ context.Context, _ sqlc.DBTX, ids []uuid.UUID) error {
	for _, id := range ids {
		r.s.dropDetail(id)
	}
	return nil
}

func (r detailRepo) DeleteByReservation(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) error {
	for id, d := range r.s.st.details {
		if d.ReservationID == reservationID {
			r.s.dropDetail(id)
		}
	}
	return nil
}

type rateRepo struct{ s *Store }

func (r rateRepo) ReplaceForDetail(_ context.Context, _ sqlc.DBTX, _ int32, detailID uuid.UUID, lines []rate.Line) error {
	r.s.st.rates[detailID] = slices.Clone(lines)
	return nil
}

type addonRepo struct{ s *Store }

func (r addonRepo) ReplaceForDetail(_ context.Context, _ sqlc.DBTX, detailID uuid.UUID, addons []reservation.Addon) error {
	if len(addons) == 0 {
		delete(r.s.st.addons, detailID)
		return nil
	}
	r.s.st.addons[detailID] = slices.Clone(addons)
	return nil
}

func (r addonRepo) Upsert(_ context.Context, _ sqlc.DBTX, a reservation.Addon) error {
	current := slices.Clone(r.s.st.addons[a.DetailID])
	for i, existing := range current {
		if existing.Key() == a.Key() {
			a.ID = existing.ID
			current[i] = a
			r.s.st.addons[a.DetailID] = current
			return nil
		}
	}
	r.s.st.addons[a.DetailID] = append(current, a)
	return nil
}

type guestRepo struct{ s *Store }

func (r guestRepo) ReplaceForDetail(_ context.Context, _ sqlc.DBTX, _ int32, detailID uuid.UUID, clientIDs []uuid.UUID) error {
	r.s.st.guests[detailID] = slices.Clone(clientIDs)
	return nil
}

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(_ context.Context, _ sqlc.DBTX, p reservation.Payment) error {
	r.s.st.payments[p.ID] = p
	return nil
}

func (r paymentRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	delete(r.s.st.payments, id)
	return nil
}

func (r paymentRepo) DeleteByReservation(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) error {
	for id, p := range r.s.st.payments {
		if p.ReservationID == reservationID {
			delete(r.s.st.payments, id)
		}
	}
	return nil
}

func (r paymentRepo) CountByInvoice(_ context.Context, _ sqlc.DBTX, invoiceID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.s.st.payments {
		if p.InvoiceID != nil && *p.InvoiceID == invoiceID {
			n++
		}
	}
	return n, nil
}

type invoiceRepo struct{ s *Store }

func (r invoiceRepo) FindOrCreate(_ context.Context, _ sqlc.DBTX, inv reservation.Invoice) (uuid.UUID, error) {
	for id, existing := range r.s.st.invoices {
		if existing.HotelID == inv.HotelID && existing.ReservationID == inv.ReservationID {
			return id, nil
		}
	}
	inv.ID = uuid.New()
	r.s.st.invoices[inv.ID] = inv
	return inv.ID, nil
}

func (r invoiceRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	delete(r.s.st.invoices, id)
	return nil
}

func (r invoiceRepo) DeleteByReservation(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) error {
	for id, inv := range r.s.st.invoices {
		if inv.ReservationID == reservationID {
			delete(r.s.st.invoices, id)
		}
	}
	return nil
}

type parkingRepo struct{ s *Store }

func (r parkingRepo) CancelByReservation(_ context.Context, _ sqlc.DBTX, reservationID, token uuid.UUID) error {
	for _, p := range r.s.ParkingOf(reservationID) {
		if p.Cancelled == nil {
			p.Cancelled = &token
			r.s.st.parking[p.ID] = p
		}
	}
	return nil
}

func (r parkingRepo) ReinstateByReservation(_ context.Context, _ sqlc.DBTX, reservationID uuid.UUID) error {
	for _, p := range r.s.ParkingOf(reservationID) {
		p.Cancelled = nil
		r.s.st.parking[p.ID] = p
	}
	return nil
}

func (r parkingRepo) ListByDetails(_ context.Context, _ sqlc.DBTX, detailIDs []uuid.UUID) ([]reservation.Parking, error) {
	var out []reservation.Parking
	for _, p := range r.s.st.parking {
		if slices.Contains(detailIDs, p.DetailID) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r parkingRepo) CreateBatch(_ context.Context, _ sqlc.DBTX, parking []reservation.Parking) error {
	for _, p := range parking {
		if _, ok := r.s.st.details[p.DetailID]; !ok {
			return errs.Conflictf("parking %s references a missing night", p.ID)
		}
		r.s.st.parking[p.ID] = p
	}
	return nil
}

type clientRepo struct{ s *Store }

func (r clientRepo) FindOrCreate(_ context.Context, _ sqlc.DBTX, attrs client.Attributes) (uuid.UUID, error) {
	attrs = attrs.Normalize()
	for id, existing := range r.s.st.clients {
		if cmp.Equal(existing, attrs) {
			return id, nil
		}
	}
	id := uuid.New()
	r.s.st.clients[id] = attrs
	return id, nil
}

func (r clientRepo) Update(_ context.Context, _ sqlc.DBTX, id uuid.UUID, attrs client.Attributes) error {
	if _, ok := r.s.st.clients[id]; !ok {
		return errs.Kindf(client.ErrClientMissing, "client %s not found", id)
	}
	r.s.st.clients[id] = attrs.Normalize()
	return nil
}

type queueRepo struct{ s *Store }

func (r queueRepo) Enqueue(_ context.Context, _ sqlc.DBTX, e shared.QueueEntry) (int64, bool, error) {
	for id, existing := range r.s.st.queue {
		if existing.HotelID == e.HotelID && existing.PayloadHash == e.PayloadHash {
			return id, false, nil
		}
	}
	r.s.st.queueSeq++
	e.ID = r.s.st.queueSeq
	e.CreatedAt = time.Unix(e.ID, 0).UTC()
	e.UpdatedAt = e.CreatedAt
	r.s.st.queue[e.ID] = e
	return e.ID, true, nil
}

func (r queueRepo) ClaimPending(_ context.Context, _ sqlc.DBTX, limit int) ([]shared.QueueEntry, error) {
	var out []shared.QueueEntry
	for _, e := range r.s.QueueEntries() {
		if len(out) == limit {
			break
		}
		if e.Status == shared.QueuePending {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r queueRepo) setStatus(id int64, status shared.QueueStatus, reason *string) error {
	e, ok := r.s.st.queue[id]
	if !ok {
		return errs.NotFoundf("OTA queue entry %d not found", id)
	}
	e.Status = status
	if status == shared.QueueFailed {
		e.Attempts++
		e.LastError = reason
	}
	r.s.st.queue[id] = e
	return nil
}

func (r queueRepo) MarkSucceeded(_ context.Context, _ sqlc.DBTX, id int64) error {
	return r.setStatus(id, shared.QueueSucceeded, nil)
}

func (r queueRepo) MarkFailed(_ context.Context, _ sqlc.DBTX, id int64, reason string) error {
	return r.setStatus(id, shared.QueueFailed, &reason)
}

func (r queueRepo) Requeue(_ context.Context, _ sqlc.DBTX, id int64) error {
	return r.setStatus(id, shared.QueuePending, nil)
}

// Reads

type reads struct {
	s *Store
}

func (r *reads) ReservationByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.s.Reservation(id)
	if !ok {
		return nil, errs.Kindf(reservation.ErrReservationNotFound, "reservation %s not found", id)
	}
	return res, nil
}

func (r *reads) ReservationByOTARef(_ context.Context, hotelID int32, ref string) (*reservation.Reservation, error) {
	for _, res := range r.s.st.reservations {
		if res.HotelID() == hotelID && ptr.Deref(res.OTAReservationID()) == ref {
			return &res, nil
		}
	}
	return nil, errs.Kindf(reservation.ErrReservationNotFound, "no reservation for OTA booking %s", ref)
}

func (r *reads) DetailByID(_ context.Context, id uuid.UUID) (*reservation.NightDetail, error) {
	d, ok := r.s.st.details[id]
	if !ok {
		return nil, errs.Kindf(reservation.ErrDetailNotFound, "detail %s not found", id)
	}
	return &d, nil
}

func (r *reads) DetailsByReservation(_ context.Context, reservationID uuid.UUID) ([]reservation.NightDetail, error) {
	return r.s.Nights(reservationID), nil
}

func (r *reads) AddonsByDetail(_ context.Context, detailID uuid.UUID) ([]reservation.Addon, error) {
	return slices.Clone(r.s.st.addons[detailID]), nil
}

func (r *reads) GuestsByDetail(_ context.Context, detailID uuid.UUID) ([]uuid.UUID, error) {
	return slices.Clone(r.s.st.guests[detailID]), nil
}

func (r *reads) AvailableRooms(_ context.Context, hotelID int32, stay reservation.Stay, filter room.Filter) ([]*room.Room, error) {
	busy := make(map[int32]bool)
	for _, d := range r.s.st.details {
		if d.HotelID == hotelID && d.IsActive() && stay.Contains(d.Date) {
			busy[d.RoomID] = true
		}
	}
	var out []*room.Room
	for _, rm := range r.s.rooms {
		if rm.HotelID() == hotelID && !busy[rm.ID()] && filter.Match(rm) {
			out = append(out, rm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *reads) RoomConflicts(_ context.Context, hotelID, roomID int32, dates []time.Time, exclude []uuid.UUID) ([]time.Time, error) {
	var out []time.Time
	for _, d := range r.s.st.details {
		if d.HotelID != hotelID || d.RoomID != roomID || !d.IsActive() || slices.Contains(exclude, d.ID) {
			continue
		}
		for _, date := range dates {
			if d.Date.Equal(reservation.Day(date)) {
				out = append(out, d.Date)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (r *reads) RoomByID(_ context.Context, hotelID, roomID int32) (*room.Room, error) {
	rm, ok := r.s.rooms[roomID]
	if !ok || rm.HotelID() != hotelID {
		return nil, errs.Kindf(room.ErrRoomNotFound, "room %d not found in hotel %d", roomID, hotelID)
	}
	return rm, nil
}

func (r *reads) Plan(_ context.Context, _ int32, ref rate.PlanRef) (*rate.Plan, error) {
	for _, p := range r.s.plans {
		if ptr.Equal(p.Ref.GlobalID, ref.GlobalID) && ptr.Equal(p.Ref.HotelID, ref.HotelID) {
			return p, nil
		}
	}
	return nil, errs.Kindf(rate.ErrPlanNotFound, "%s not found", ref)
}

func (r *reads) PaymentByID(_ context.Context, id uuid.UUID) (*reservation.Payment, error) {
	p, ok := r.s.st.payments[id]
	if !ok {
		return nil, errs.Kindf(reservation.ErrPaymentNotFound, "payment %s not found", id)
	}
	return &p, nil
}

func (r *reads) PaymentType(_ context.Context, hotelID, id int32) (*reservation.PaymentType, error) {
	for _, pt := range r.s.paymentTypes {
		if pt.HotelID == hotelID && pt.ID == id {
			return &pt, nil
		}
	}
	return nil, errs.NotFoundf("payment type %d not found", id)
}

func (r *reads) PaymentTypeByKind(_ context.Context, hotelID int32, kind reservation.PaymentKind) (*reservation.PaymentType, error) {
	for _, pt := range r.s.paymentTypes {
		if pt.HotelID == hotelID && pt.Kind == kind {
			return &pt, nil
		}
	}
	return nil, errs.NotFoundf("payment type not configured for kind %s", kind)
}

func (r *reads) QueueEntry(_ context.Context, id int64) (*shared.QueueEntry, error) {
	e, ok := r.s.st.queue[id]
	if !ok {
		return nil, errs.NotFoundf("OTA queue entry %d not found", id)
	}
	return &e, nil
}
