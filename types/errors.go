package types

import "errors"

var (
	// ErrMalformedToken is returned when a filter token cannot be decoded into a selector
	ErrMalformedToken = errors.New("malformed filter token")
	// ErrUnparseableDate is returned when a value is not a recognised timestamp
	ErrUnparseableDate = errors.New("unparseable date")
	// ErrUnknownColumnType is logged when a column falls back to the generic template
	ErrUnknownColumnType = errors.New("unknown column type")
)
