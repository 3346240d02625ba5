package layout

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID   = errors.New("duplicate hotspot id")
	ErrOutOfRange    = errors.New("value out of range")
	ErrEmptyLabel    = errors.New("label is empty")
	ErrNoHotspots    = errors.New("no hotspots defined")
	ErrNoSecondary   = errors.New("navigation hotspot without a secondary menu")
	ErrMisplacedNav  = errors.New("navigation hotspot outside the main screen")
	ErrMediaMissing  = errors.New("media not found")
	ErrUnsupportedV  = errors.New("unsupported layout version")
	ErrNoMediaAction = errors.New("secondary menu has no actions")
)

// ValidationError reports a single problem in a layout table.
type ValidationError struct {
	Field string
	ID    int
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("hotspot %d: %s: %v", e.ID, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, id int, err error) error {
	return &ValidationError{Field: field, ID: id, Err: err}
}
