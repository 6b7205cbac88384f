package options

import "github.com/iamNilotpal/segtree/pkg/errors"

// Validate checks that Options describes a constructible container,
// returning a *errors.ConfigurationError describing the first problem found.
func (o *Options) Validate() error {
	if o.Capacity < MinCapacity {
		return errors.NewInvalidCapacityError(o.Capacity)
	}
	if o.HeaderLayout != HeaderLayoutBig && o.HeaderLayout != HeaderLayoutSmall {
		return errors.NewConfigurationError(
			errors.ErrorCodeInvalidHeaderLayout, "unrecognized header layout",
		).WithField("headerLayout").WithProvided(o.HeaderLayout)
	}
	if o.SearchStrategy != SearchStrategyLinear && o.SearchStrategy != SearchStrategyBinary {
		return errors.NewConfigurationError(
			errors.ErrorCodeInvalidSearchStrategy, "unrecognized search strategy",
		).WithField("searchStrategy").WithProvided(o.SearchStrategy)
	}
	if o.AllocatorOptions == nil || o.AllocatorOptions.ChunkSegments <= 0 {
		chunk := 0
		if o.AllocatorOptions != nil {
			chunk = o.AllocatorOptions.ChunkSegments
		}
		return errors.NewInvalidChunkSizeError(chunk)
	}
	return nil
}
