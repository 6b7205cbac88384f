// Package errors provides a small hierarchy of domain-specific error types
// for the segmented container engine, all embedding a common baseError.
//
// The engine fails in three fundamentally different ways, and each needs
// different context to diagnose: an AllocationError needs to know which
// chunk and what capacity was in play; a PreconditionError needs to know
// which invariant was violated and the offending segment/coordinate; a
// ConfigurationError needs to know which options field was rejected and
// why. Capturing this domain-specific context at the point of failure lets
// callers make programmatic decisions (retry with a smaller batch, abort
// and surface a bug report, reject bad configuration at construction time)
// instead of pattern-matching on error strings.
package errors

import (
	stdErrors "errors"
)

// IsAllocationError reports whether err is an AllocationError or wraps one.
func IsAllocationError(err error) bool {
	var ae *AllocationError
	return stdErrors.As(err, &ae)
}

// IsPreconditionError reports whether err is a PreconditionError or wraps one.
func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return stdErrors.As(err, &pe)
}

// IsConfigurationError reports whether err is a ConfigurationError or wraps one.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return stdErrors.As(err, &ce)
}

// AsAllocationError extracts an AllocationError from an error chain.
func AsAllocationError(err error) (*AllocationError, bool) {
	var ae *AllocationError
	if stdErrors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// AsPreconditionError extracts a PreconditionError from an error chain.
func AsPreconditionError(err error) (*PreconditionError, bool) {
	var pe *PreconditionError
	if stdErrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsConfigurationError extracts a ConfigurationError from an error chain.
func AsConfigurationError(err error) (*ConfigurationError, bool) {
	var ce *ConfigurationError
	if stdErrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from any error that supports it, or
// returns ErrorCodeInternal for errors that don't have a specific code.
func GetErrorCode(err error) ErrorCode {
	if ae, ok := AsAllocationError(err); ok {
		return ae.Code()
	}
	if pe, ok := AsPreconditionError(err); ok {
		return pe.Code()
	}
	if ce, ok := AsConfigurationError(err); ok {
		return ce.Code()
	}
	return ErrorCodeInternal
}

// GetErrorDetails extracts structured details from any error that supports
// them, returning an empty map for errors without details.
func GetErrorDetails(err error) map[string]any {
	if ae, ok := AsAllocationError(err); ok {
		if details := ae.Details(); details != nil {
			return details
		}
	}
	if pe, ok := AsPreconditionError(err); ok {
		if details := pe.Details(); details != nil {
			return details
		}
	}
	if ce, ok := AsConfigurationError(err); ok {
		if details := ce.Details(); details != nil {
			return details
		}
	}
	return make(map[string]any)
}
