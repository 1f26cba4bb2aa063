package performance

import "errors"

var (
	ErrInvalidScore        = errors.New("performance: score must be between 1.0 and 5.0")
	ErrInvalidRating       = errors.New("performance: rating must be between 1.0 and 5.0")
	ErrSelfReview          = errors.New("performance: reviewer must differ from employee")
	ErrInvalidGoalDates    = errors.New("performance: target date precedes start date")
	ErrInvalidGoalProgress = errors.New("performance: progress must be between 0 and 100")
	ErrInconsistentGoal    = errors.New("performance: completion fields disagree with goal status")
	ErrPerformanceNotFound = errors.New("performance: not found")
	ErrEmployeeNotFound    = errors.New("performance: employee not found")
)
