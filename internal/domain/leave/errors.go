package leave

import "errors"

var (
	ErrLeaveNotFound     = errors.New("leave request not found")
	ErrOverlappingLeave  = errors.New("leave request overlaps with existing approved or pending leave")
	ErrNotPresentToday   = errors.New("only present employees can request leaves")
	ErrInvalidTransition = errors.New("leave request already processed")
)
