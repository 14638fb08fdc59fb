package room

// Filter narrows the candidate rooms of an availability lookup.
type Filter struct {
	RoomTypeID  *int32
	MinCapacity int
	Smoking     *bool
}

func (f Filter) Match(r *Room) bool {
	if !r.forSale {
		return false
	}
	if f.RoomTypeID != nil && *f.RoomTypeID != r.roomTypeID {
		return false
	}
	if f.MinCapacity > 0 && r.capacity < f.MinCapacity {
		return false
	}
	if f.Smoking != nil && *f.Smoking != r.smoking {
		return false
	}
	return true
}
