package reservation

type Status string

const (
	StatusHold      Status = "hold"
	StatusProvisory Status = "provisory"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	// StatusRecovered is a transition target only: it brings a cancelled
	// reservation back as confirmed.
	StatusRecovered Status = "recovered"
)

func (s Status) String() string {
	return string(s)
}

// IsValid reports whether s may be stored on a reservation.
func (s Status) IsValid() bool {
	switch s {
	case StatusHold, StatusProvisory, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTarget reports whether s may be requested as a new status.
func (s Status) IsTarget() bool {
	return s == StatusRecovered || (s.IsValid() && s != StatusHold)
}

var transitions = map[Status][]Status{
	StatusHold:      {StatusProvisory, StatusConfirmed, StatusCancelled},
	StatusProvisory: {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {StatusRecovered},
}

// CanTransition reports whether from may move to target. Transitions only
// move forward, except the explicit recovery of a cancelled reservation.
func CanTransition(from, target Status) bool {
	for _, s := range transitions[from] {
		if s == target {
			return true
		}
	}
	return false
}

type Type string

const (
	TypeDirect   Type = "direct"
	TypeOTA      Type = "ota"
	TypeWeb      Type = "web"
	TypeEmployee Type = "employee"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeDirect, TypeOTA, TypeWeb, TypeEmployee:
		return true
	default:
		return false
	}
}
