package adminconfig

import "errors"

var (
	ErrValueOutOfRange = errors.New("admin hour value must be an integer between 0 and 10")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
