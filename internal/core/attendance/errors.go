package attendance

import "errors"

var (
	ErrInvalidStatus      = errors.New("attendance: invalid status")
	ErrInvalidTimeRange   = errors.New("attendance: check-out precedes check-in")
	ErrMissingClockTimes  = errors.New("attendance: check-in and check-out are required for worked days")
	ErrAttendanceNotFound = errors.New("attendance: not found")
	ErrEmployeeNotFound   = errors.New("attendance: employee not found")
	ErrInvalidEmployeeID  = errors.New("attendance: employee id is required")
	ErrAlreadyCheckedOut  = errors.New("attendance: already checked out today")
)
