package analysis

import "errors"

// Failure kinds of the reporting pipeline. Per-record malformed fields and
// external lookup failures are recovered locally by skipping the record;
// invalid input fails the whole call with an empty result.
var (
	// ErrInvalidInput marks a call argument that cannot be used at all, such
	// as a malformed search pattern or report date.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedField marks a record field that fails its type or format
	// expectation, such as an unparseable operation date.
	ErrMalformedField = errors.New("malformed field")

	// ErrLookupFailed marks a failed call to an external rate or price service.
	ErrLookupFailed = errors.New("lookup failed")
)
