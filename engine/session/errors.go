package session

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrFieldLocked  = errors.New("field is set by the party quotation and cannot be edited")
	ErrUnknownField = errors.New("unknown field")
	ErrNoSuchRow    = errors.New("no such row")
	ErrRowLocked    = errors.New("row cannot be deleted")
	ErrNotEditing   = errors.New("no row is being edited")
)

// MonotonicityError rejects a non-admin edit that would lower a field below
// its persisted floor. The field keeps its previous value.
type MonotonicityError struct {
	Field string
	Floor decimal.Decimal
}

func (e *MonotonicityError) Error() string {
	return fmt.Sprintf("%s cannot be lowered below %s", e.Field, e.Floor.String())
}
