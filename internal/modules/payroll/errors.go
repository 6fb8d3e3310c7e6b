package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("period end must not precede period start")
	ErrBadDate       = errors.New("dates must be YYYY-MM-DD")
)
