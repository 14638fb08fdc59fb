package errs

import "errors"

// Categories every failure surfaced by a use case is marked with.
var (
	ErrValidation           = errors.New("validation error")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrExternalData         = errors.New("external data error")
	ErrDatabase             = errors.New("Database error")
)

var categories = []error{
	ErrValidation,
	ErrInsufficientCapacity,
	ErrNotFound,
	ErrConflict,
	ErrExternalData,
	ErrDatabase,
}

// kindError is a sentinel that also matches its category.
type kindError struct {
	msg      string
	category error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.category }

// NewKind creates a sentinel belonging to category.
func NewKind(msg string, category error) error {
	return &kindError{msg: msg, category: category}
}

// WithKind marks err with sentinel and with the sentinel's category.
func WithKind(err error, sentinel error) error {
	err = Mark(err, sentinel)
	var k *kindError
	if errors.As(sentinel, &k) {
		err = Mark(err, k.category)
	}
	return err
}

// Kindf builds a descriptive error matching sentinel and its category.
func Kindf(sentinel error, format string, args ...any) error {
	return WithKind(Newf(format, args...), sentinel)
}

func Validationf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

func NotFoundf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

func Conflictf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrConflict)
}

func ExternalDataf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrExternalData)
}

func Capacityf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInsufficientCapacity)
}

// Category returns the category carried by err, or nil.
func Category(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if Is(err, c) {
			return c
		}
	}
	return nil
}

// Normalize marks uncategorized errors as database failures.
func Normalize(err error) error {
	if err == nil || Category(err) != nil {
		return err
	}
	return Mark(err, ErrDatabase)
}
