package errors

// ConfigurationError is a specialized error type for invalid options.Options
// values. It embeds baseError and adds which field was rejected plus what was
// provided versus what is expected.
type ConfigurationError struct {
	*baseError
	field    string
	provided any
	expected any
}

// NewConfigurationError creates a new configuration-specific error.
func NewConfigurationError(code ErrorCode, msg string) *ConfigurationError {
	return &ConfigurationError{baseError: NewBaseError(nil, code, msg)}
}

// WithField sets which configuration field failed validation.
func (ce *ConfigurationError) WithField(field string) *ConfigurationError {
	ce.field = field
	return ce
}

// WithProvided captures the rejected value.
func (ce *ConfigurationError) WithProvided(value any) *ConfigurationError {
	ce.provided = value
	return ce
}

// WithExpected describes what would have been a valid value.
func (ce *ConfigurationError) WithExpected(value any) *ConfigurationError {
	ce.expected = value
	return ce
}

// Field returns the field name that failed validation.
func (ce *ConfigurationError) Field() string {
	return ce.field
}

// Provided returns the value that was rejected.
func (ce *ConfigurationError) Provided() any {
	return ce.provided
}

// Expected returns what would have been a valid value.
func (ce *ConfigurationError) Expected() any {
	return ce.expected
}

// NewInvalidCapacityError reports a segment capacity below the minimum of 2.
func NewInvalidCapacityError(provided int) *ConfigurationError {
	return NewConfigurationError(
		ErrorCodeInvalidCapacity, "segment capacity must be at least 2",
	).WithField("capacity").WithProvided(provided).WithExpected(">= 2")
}

// NewInvalidChunkSizeError reports a non-positive allocator chunk size.
func NewInvalidChunkSizeError(provided int) *ConfigurationError {
	return NewConfigurationError(
		ErrorCodeInvalidChunkSize, "chunk size must be positive",
	).WithField("chunkSegments").WithProvided(provided).WithExpected("> 0")
}
