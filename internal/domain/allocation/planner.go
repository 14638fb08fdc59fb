// Package allocation turns a set of free rooms and a party into a concrete
// room-to-occupants assignment. It is pure: the caller supplies the
// candidate rooms (already filtered for availability) and persists the
// result.
package allocation

import (
	"fmt"
	"sort"
	"strings"

	"hotel-pms/internal/domain/room"
	"hotel-pms/internal/pkg/errs"
)

var (
	ErrNoPeople      = errs.NewKind("number of people must be positive", errs.ErrValidation)
	ErrNoRequests    = errs.NewKind("at least one room type request is required", errs.ErrValidation)
	ErrNotEnoughRoom = errs.NewKind("not enough capacity for the party", errs.ErrInsufficientCapacity)
)

type Mode string

const (
	ModeBestFitSingle Mode = "best-fit-single"
	ModeComboByType   Mode = "combo-by-type"
	ModeSpecificRoom  Mode = "specific-room"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeBestFitSingle, ModeComboByType, ModeSpecificRoom:
		return true
	default:
		return false
	}
}

// Assignment is one room of a plan and the occupants placed in it.
type Assignment struct {
	RoomID     int32
	RoomTypeID int32
	Capacity   int
	Occupants  int
}

type Plan []Assignment

func (p Plan) People() int {
	total := 0
	for _, a := range p {
		total += a.Occupants
	}
	return total
}

func (p Plan) RoomIDs() []int32 {
	ids := make([]int32, len(p))
	for i, a := range p {
		ids[i] = a.RoomID
	}
	return ids
}

// TypeRequest asks for a number of rooms of one type holding a number of people.
type TypeRequest struct {
	RoomTypeID int32
	Rooms      int
	People     int
}

// TypeFailure explains why one requested room type could not be satisfied.
type TypeFailure struct {
	RoomTypeID int32
	Reason     string
}

// ComboError collects every unsatisfiable room type of a combo request.
type ComboError struct {
	Failures []TypeFailure
}

func (e *ComboError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = fmt.Sprintf("room type %d: %s", f.RoomTypeID, f.Reason)
	}
	return "room type combination cannot be satisfied: " + strings.Join(parts, "; ")
}

type candidate struct {
	id         int32
	roomTypeID int32
	capacity   int
}

// sortedCandidates orders rooms by capacity, then id, so every plan is deterministic.
func sortedCandidates(rooms []*room.Room) []candidate {
	out := make([]candidate, 0, len(rooms))
	for _, r := range rooms {
		if r.Capacity() <= 0 {
			continue
		}
		out = append(out, candidate{id: r.ID(), roomTypeID: r.RoomTypeID(), capacity: r.Capacity()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].capacity != out[j].capacity {
			return out[i].capacity < out[j].capacity
		}
		return out[i].id < out[j].id
	})
	return out
}

// BestFitSingle places people greedily: an exact-capacity room if one exists,
// else the smallest room larger than what remains, else the largest room,
// repeating until everyone is placed. It fails only when the total free
// capacity is below the party size.
func BestFitSingle(rooms []*room.Room, people int) (Plan, error) {
	if people <= 0 {
		return nil, ErrNoPeople
	}

	pool := sortedCandidates(rooms)
	remaining := people
	var plan Plan

	for remaining > 0 {
		if len(pool) == 0 {
			return nil, errs.Kindf(ErrNotEnoughRoom, "%d of %d people could not be placed", remaining, people)
		}

		idx := pickBestFit(pool, remaining)
		c := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		occupants := min(c.capacity, remaining)
		plan = append(plan, Assignment{
			RoomID:     c.id,
			RoomTypeID: c.roomTypeID,
			Capacity:   c.capacity,
			Occupants:  occupants,
		})
		remaining -= occupants
	}

	return plan, nil
}

// pickBestFit expects pool sorted by ascending capacity.
func pickBestFit(pool []candidate, remaining int) int {
	for i, c := range pool {
		if c.capacity == remaining {
			return i
		}
	}
	for i, c := range pool {
		if c.capacity > remaining {
			return i
		}
	}
	return len(pool) - 1
}

// ComboByType fills each requested room type independently: the N smallest
// rooms of the type each get one occupant, leftover people fill spare
// capacity smallest-first, and rooms are upgraded to the next larger free
// room of the same type while people remain. All failing types are
// reported together.
func ComboByType(rooms []*room.Room, requests []TypeRequest) (Plan, error) {
	if len(requests) == 0 {
		return nil, ErrNoRequests
	}

	byType := make(map[int32][]candidate)
	for _, c := range sortedCandidates(rooms) {
		byType[c.roomTypeID] = append(byType[c.roomTypeID], c)
	}

	ordered := mergeRequests(requests)

	var (
		plan     Plan
		failures []TypeFailure
	)
	for _, req := range ordered {
		assigned, reason := fillType(byType[req.RoomTypeID], req)
		if reason != "" {
			failures = append(failures, TypeFailure{RoomTypeID: req.RoomTypeID, Reason: reason})
			continue
		}
		plan = append(plan, assigned...)
	}

	if len(failures) > 0 {
		return nil, errs.WithKind(&ComboError{Failures: failures}, ErrNotEnoughRoom)
	}
	return plan, nil
}

// mergeRequests folds duplicate room types and orders by type id.
func mergeRequests(requests []TypeRequest) []TypeRequest {
	merged := make(map[int32]TypeRequest)
	for _, r := range requests {
		m := merged[r.RoomTypeID]
		m.RoomTypeID = r.RoomTypeID
		m.Rooms += r.Rooms
		m.People += r.People
		merged[r.RoomTypeID] = m
	}
	out := make([]TypeRequest, 0, len(merged))
	for _, r := range merged {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomTypeID < out[j].RoomTypeID })
	return out
}

func fillType(pool []candidate, req TypeRequest) (Plan, string) {
	switch {
	case req.Rooms <= 0:
		return nil, "requested room count must be positive"
	case req.People < req.Rooms:
		return nil, fmt.Sprintf("%d people cannot occupy %d rooms", req.People, req.Rooms)
	case len(pool) < req.Rooms:
		return nil, fmt.Sprintf("only %d free rooms, %d requested", len(pool), req.Rooms)
	}

	selected := make([]Assignment, req.Rooms)
	for i := 0; i < req.Rooms; i++ {
		c := pool[i]
		selected[i] = Assignment{RoomID: c.id, RoomTypeID: c.roomTypeID, Capacity: c.capacity, Occupants: 1}
	}
	spare := append([]candidate(nil), pool[req.Rooms:]...)
	remaining := req.People - req.Rooms

	for i := range selected {
		if remaining == 0 {
			break
		}
		add := min(selected[i].Capacity-selected[i].Occupants, remaining)
		selected[i].Occupants += add
		remaining -= add
	}

	for remaining > 0 {
		upgraded := false
		for i := range selected {
			if remaining == 0 {
				break
			}
			j := nextLarger(spare, selected[i].Capacity)
			if j < 0 {
				continue
			}
			bigger := spare[j]
			released := candidate{id: selected[i].RoomID, roomTypeID: selected[i].RoomTypeID, capacity: selected[i].Capacity}
			spare = append(spare[:j], spare[j+1:]...)
			spare = insertSorted(spare, released)

			add := min(bigger.capacity-selected[i].Occupants, remaining)
			selected[i] = Assignment{
				RoomID:     bigger.id,
				RoomTypeID: bigger.roomTypeID,
				Capacity:   bigger.capacity,
				Occupants:  selected[i].Occupants + add,
			}
			remaining -= add
			upgraded = true
		}
		if !upgraded {
			break
		}
	}

	if remaining > 0 {
		return nil, fmt.Sprintf("%d people exceed the capacity of the free rooms", remaining)
	}
	return selected, ""
}

func nextLarger(pool []candidate, capacity int) int {
	for i, c := range pool {
		if c.capacity > capacity {
			return i
		}
	}
	return -1
}

func insertSorted(pool []candidate, c candidate) []candidate {
	i := sort.Search(len(pool), func(i int) bool {
		if pool[i].capacity != c.capacity {
			return pool[i].capacity > c.capacity
		}
		return pool[i].id > c.id
	})
	pool = append(pool, candidate{})
	copy(pool[i+1:], pool[i:])
	pool[i] = c
	return pool
}

// Specific books exactly one named room for the whole party.
func Specific(rooms []*room.Room, roomID int32, people int) (Plan, error) {
	if people <= 0 {
		return nil, ErrNoPeople
	}
	for _, r := range rooms {
		if r.ID() != roomID {
			continue
		}
		if !r.Fits(people) {
			return nil, errs.Kindf(ErrNotEnoughRoom, "room %s holds %d, party is %d", r.Number(), r.Capacity(), people)
		}
		return Plan{{RoomID: r.ID(), RoomTypeID: r.RoomTypeID(), Capacity: r.Capacity(), Occupants: people}}, nil
	}
	return nil, errs.Kindf(ErrNotEnoughRoom, "room %d is not available for the stay", roomID)
}

// PickForType chooses the smallest free room of a type that holds people.
// taken rooms are skipped. ok is false when no free room of the type is
// large enough.
func PickForType(rooms []*room.Room, roomTypeID int32, people int, taken map[int32]bool) (Assignment, bool) {
	for _, c := range sortedCandidates(rooms) {
		if c.roomTypeID != roomTypeID || taken[c.id] || c.capacity < people {
			continue
		}
		return Assignment{RoomID: c.id, RoomTypeID: c.roomTypeID, Capacity: c.capacity, Occupants: people}, true
	}
	return Assignment{}, false
}
