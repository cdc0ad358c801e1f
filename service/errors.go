package service

import "errors"

var (
	ErrInvalidTerm  = errors.New("mortgage term must be greater than zero")
	ErrTermTooLong  = errors.New("mortgage term exceeds 50 years")
	ErrInvalidSweep = errors.New("invalid sensitivity sweep")
	ErrUnknownField = errors.New("unknown input field")
)
