package errors

// PreconditionError is a specialized error type for engine-level
// precondition and invariant violations. It embeds baseError and adds
// which invariant failed plus structured detail about the offending state.
type PreconditionError struct {
	*baseError
	invariant string // Name of the invariant that was violated (e.g. "occupancy").
}

// NewPreconditionError creates a new precondition-specific error.
func NewPreconditionError(code ErrorCode, invariant, msg string) *PreconditionError {
	pe := &PreconditionError{baseError: NewBaseError(nil, code, msg)}
	pe.invariant = invariant
	return pe
}

// WithDetail adds contextual information while preserving the PreconditionError type.
func (pe *PreconditionError) WithDetail(key string, value any) *PreconditionError {
	pe.baseError.WithDetail(key, value)
	return pe
}

// Invariant returns the name of the violated invariant.
func (pe *PreconditionError) Invariant() string {
	return pe.invariant
}

// NewOccupancyViolationError reports a non-first segment below the minimum
// occupancy limit L.
func NewOccupancyViolationError(segmentIndex, size, limit int) *PreconditionError {
	return NewPreconditionError(
		ErrorCodeOccupancyViolation, "occupancy",
		"segment size fell below the minimum occupancy limit",
	).WithDetail("segmentIndex", segmentIndex).
		WithDetail("size", size).
		WithDetail("limit", limit)
}

// NewBoundsViolationError reports a segment whose first/last indices are out
// of range for its area.
func NewBoundsViolationError(segmentIndex, first, last, capacity int) *PreconditionError {
	return NewPreconditionError(
		ErrorCodeBoundsViolation, "bounds",
		"segment indices are out of range for its area",
	).WithDetail("segmentIndex", segmentIndex).
		WithDetail("first", first).
		WithDetail("last", last).
		WithDetail("capacity", capacity)
}

// NewOrderingViolationError reports that the concatenated element sequence is
// not non-decreasing under the configured comparator.
func NewOrderingViolationError(segmentIndex, elementIndex int) *PreconditionError {
	return NewPreconditionError(
		ErrorCodeOrderingViolation, "ordering",
		"element sequence is not non-decreasing under the comparator",
	).WithDetail("segmentIndex", segmentIndex).WithDetail("elementIndex", elementIndex)
}

// NewStaleCoordinateError reports use of a coordinate after the mutation that
// invalidated it, or one produced by a different container.
func NewStaleCoordinateError() *PreconditionError {
	return NewPreconditionError(
		ErrorCodeStaleCoordinate, "coordinate_validity",
		"coordinate is stale or belongs to a different container",
	)
}

// NewUnorderedRangeError reports an erase range whose endpoints are not in
// non-decreasing coordinate order.
func NewUnorderedRangeError() *PreconditionError {
	return NewPreconditionError(
		ErrorCodeUnorderedRange, "range_order",
		"erase range endpoints are not in non-decreasing order",
	)
}
