// Package errs holds the error kinds shared by the simulator packages.
// Every kind is fatal for a run; callers wrap them with fmt.Errorf("%w")
// and match with errors.Is.
package errs

import "errors"

var (
	// ErrMalformedInput is returned when parameter or distribution text fails to parse.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnsupportedDistribution is returned when an unsupported variant is sampled.
	ErrUnsupportedDistribution = errors.New("distribution not supported")
	// ErrInvalidArgument covers bad run arguments and unusable file paths.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAllocation is returned when the cycle buffer cannot be obtained.
	ErrAllocation = errors.New("unable to allocate cycle buffer")
)
