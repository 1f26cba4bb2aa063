package position

import "errors"

var (
	ErrPositionNotFound   = errors.New("position: not found")
	ErrDepartmentNotFound = errors.New("position: department not found")
	ErrInvalidTitle       = errors.New("position: invalid title")
	ErrInvalidSalaryRange = errors.New("position: min salary exceeds max salary")
)
