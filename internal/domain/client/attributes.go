package client

import (
	"regexp"
	"strings"
	"time"

	"hotel-pms/internal/pkg/errs"
)

var (
	ErrEmptyName     = errs.NewKind("client name cannot be empty", errs.ErrValidation)
	ErrInvalidEmail  = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidPerson = errs.NewKind("invalid legal/natural person flag", errs.ErrValidation)
	ErrInvalidGender = errs.NewKind("invalid gender", errs.ErrValidation)
	ErrClientMissing = errs.NewKind("client not found", errs.ErrNotFound)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type PersonKind string

const (
	PersonNatural PersonKind = "natural"
	PersonLegal   PersonKind = "legal"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Attributes identify a guest or booker. Two attribute sets with the same
// normalized values designate the same client record.
type Attributes struct {
	Name        string
	NameKana    *string
	NameKanji   *string
	DateOfBirth *time.Time
	Person      PersonKind
	Gender      Gender
	Email       *string
	Phone       *string
}

// Normalize trims text fields, drops empty optionals and fills defaults.
func (a Attributes) Normalize() Attributes {
	a.Name = collapseSpaces(a.Name)
	a.NameKana = trimmedOrNil(a.NameKana)
	a.NameKanji = trimmedOrNil(a.NameKanji)
	a.Email = trimmedOrNil(a.Email)
	if a.Email != nil {
		lower := strings.ToLower(*a.Email)
		a.Email = &lower
	}
	a.Phone = normalizePhone(a.Phone)
	if a.DateOfBirth != nil {
		d := time.Date(a.DateOfBirth.Year(), a.DateOfBirth.Month(), a.DateOfBirth.Day(), 0, 0, 0, 0, time.UTC)
		a.DateOfBirth = &d
	}
	if a.Person == "" {
		a.Person = PersonNatural
	}
	if a.Gender == "" {
		a.Gender = GenderOther
	}
	return a
}

func (a Attributes) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if a.Email != nil && *a.Email != "" && !emailRegex.MatchString(strings.TrimSpace(*a.Email)) {
		return ErrInvalidEmail
	}
	switch a.Person {
	case "", PersonNatural, PersonLegal:
	default:
		return ErrInvalidPerson
	}
	switch a.Gender {
	case "", GenderMale, GenderFemale, GenderOther:
	default:
		return ErrInvalidGender
	}
	return nil
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "　", " ")), " ")
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := collapseSpaces(*s)
	if t == "" {
		return nil
	}
	return &t
}

func normalizePhone(s *string) *string {
	if s == nil {
		return nil
	}
	var b strings.Builder
	for _, r := range *s {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	out := b.String()
	return &out
}
