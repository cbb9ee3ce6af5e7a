package roster

import "errors"

var (
	// Grid Errors
	ErrMalformedGrid        = errors.New("grid does not match the expected roster layout")
	ErrEmptyDateRow         = errors.New("date row contains no usable date tokens")
	ErrUnparseableDateToken = errors.New("unparseable date token")

	// Session Errors
	ErrNoRosterLoaded = errors.New("no roster has been uploaded in this session")

	// Source Errors
	ErrUnsupportedFileType = errors.New("unsupported roster file type, use .xlsx or .csv")

	// Request Data Errors
	ErrInvalidRequestData = errors.New("invalid request data")
)
