package instructor

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid instructor status")
)
