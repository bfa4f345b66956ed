package domain

import (
	"fmt"
	"strings"
)

// Placement violation codes reported by the layout engine.
const (
	ViolationOutOfBounds    = "out_of_bounds"
	ViolationTooCloseToEdge = "too_close_to_edge"
)

// ViolationOverlapsTable builds the overlap code for a specific table.
func ViolationOverlapsTable(tableID int) string {
	return fmt.Sprintf("overlaps_table:%d", tableID)
}

// ValidationError reports malformed input, e.g. an empty order or a
// non-positive quantity.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// ConflictError reports a business-rule conflict, e.g. a second non-terminal
// order on an occupied table.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// InvalidTransitionError identifies the rejected (from, to) status pair.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition: %s -> %s", e.From, e.To)
}

// PositionError carries the layout rules a placement, move or resize would
// violate. The stored placement is left unchanged.
type PositionError struct {
	Violations []string
}

func (e *PositionError) Error() string {
	return "placement rejected: " + strings.Join(e.Violations, ", ")
}

// InvariantViolationError reports a data integrity contradiction detected at
// read time. It indicates upstream corruption and is never silently
// recovered.
type InvariantViolationError struct {
	Msg string
}

func (e *InvariantViolationError) Error() string {
	return e.Msg
}
