package shared

import "errors"

// ErrTrailingData is returned by DecodeJSON when the body holds more than one JSON value.
var ErrTrailingData = errors.New("trailing characters after JSON value")
