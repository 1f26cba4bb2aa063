package handler

import (
	"errors"

	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, department.ErrInvalidName),
		errors.Is(err, department.ErrInvalidID),
		errors.Is(err, department.ErrInvalidPageSize),
		errors.Is(err, department.ErrInvalidPageToken),
		errors.Is(err, employee.ErrInvalidID),
		errors.Is(err, employee.ErrInvalidPageSize),
		errors.Is(err, employee.ErrInvalidPageToken),
		errors.Is(err, seed.ErrInvalidEmployeeCount),
		errors.Is(err, attendance.ErrInvalidEmployeeID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, employee.ErrIdentityConflict), errors.Is(err, seed.ErrIdentityExhausted):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, department.ErrDepartmentNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrAttendanceNotFound),
		errors.Is(err, attendance.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut), errors.Is(err, attendance.ErrInvalidTimeRange):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
