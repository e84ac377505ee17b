package reporting

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrLoadEntries   = errors.New("error loading entries")
	ErrLoadCosts     = errors.New("error loading product costs")
)
