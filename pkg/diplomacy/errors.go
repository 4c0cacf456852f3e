package diplomacy

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownToken           = errors.New("unknown token")
	ErrMissingContext         = errors.New("missing country context")
	ErrMalformedAssistedOrder = errors.New("malformed assisted order")
)

// Lookup table names reported by UnknownTokenError.
const (
	TableUnitType  = "unit type"
	TableLocation  = "location"
	TableOrderType = "order type"
)

// UnknownTokenError reports raw notation text missing from a lookup table.
type UnknownTokenError struct {
	Table string
	Raw   string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Raw)
}

func (e *UnknownTokenError) Unwrap() error { return ErrUnknownToken }

// MissingContextError reports an order whose power cannot be determined:
// either the order precedes every country header, or it is an assisted order
// naming a location no ordered unit occupies.
type MissingContextError struct {
	RawLocation string // set for assisted orders only
}

func (e *MissingContextError) Error() string {
	if e.RawLocation != "" {
		return fmt.Sprintf("no ordered unit at %q to infer country from", e.RawLocation)
	}
	return "order before any country header"
}

func (e *MissingContextError) Unwrap() error { return ErrMissingContext }

// MalformedAssistedOrderError reports a supported or convoyed order that is
// not a hold or an attack, or that is missing altogether.
type MalformedAssistedOrderError struct {
	Kind  OrderKind
	Empty bool
}

func (e *MalformedAssistedOrderError) Error() string {
	if e.Empty {
		return "support or convoy names no order"
	}
	return fmt.Sprintf("assisted order cannot be a %s", e.Kind)
}

func (e *MalformedAssistedOrderError) Unwrap() error { return ErrMalformedAssistedOrder }

// LineError decorates a parse error with the 1-based input line it came from.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("notation: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
