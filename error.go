package reply

import "errors"

// Sentinel errors shared across reply packages.
// Wrap these with fmt.Errorf and %w so callers can match with errors.Is.
var (
	// ErrBadAny indicates a caller handed over an `any` that cannot be worked with,
	// e.g., a non-pointer where a pointer is required.
	ErrBadAny = errors.New("bad any")

	// ErrBadConfig indicates a component was constructed with unusable configuration.
	ErrBadConfig = errors.New("bad config")

	// ErrBadFormat indicates data could not be decoded from its expected encoding.
	ErrBadFormat = errors.New("bad format")

	// ErrMissingData indicates a required value was absent.
	ErrMissingData = errors.New("missing data")

	// ErrNotExist indicates the requested entity could not be found.
	ErrNotExist = errors.New("not exist")

	// ErrNotImplemented indicates a code path that is not (yet) supported.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNotValid indicates data failed validation rules.
	ErrNotValid = errors.New("invalid")

	// ErrUnexpected indicates a failure that calling code cannot reasonably handle.
	ErrUnexpected = errors.New("unexpected")
)
