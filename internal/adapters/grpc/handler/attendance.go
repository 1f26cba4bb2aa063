package handler

import (
	"context"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// AttendanceGrpcHandler は AttendanceService の gRPC 実装です。
type AttendanceGrpcHandler struct {
	uc attendance.UseCase
}

// NewAttendanceGrpcHandler は AttendanceGrpcHandler を生成します。
func NewAttendanceGrpcHandler(uc attendance.UseCase) *AttendanceGrpcHandler {
	return &AttendanceGrpcHandler{uc: uc}
}

// CheckIn は employee_id の社員を今日の出勤として打刻します。
func (h *AttendanceGrpcHandler) CheckIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	employeeID, err := employeeIDField(req)
	if err != nil {
		return nil, err
	}

	record, err := h.uc.CheckIn(ctx, attendance.CheckInInput{EmployeeID: employeeID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]any{"attendance": attendanceFields(record)})
}

// CheckOut は今日の勤怠記録に退勤を打刻します。
func (h *AttendanceGrpcHandler) CheckOut(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	employeeID, err := employeeIDField(req)
	if err != nil {
		return nil, err
	}

	record, err := h.uc.CheckOut(ctx, attendance.CheckOutInput{EmployeeID: employeeID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return newResponse(map[string]any{"attendance": attendanceFields(record)})
}

func employeeIDField(req *structpb.Struct) (string, error) {
	if req == nil {
		return "", status.Error(codes.InvalidArgument, "request is required")
	}
	return stringField(req, "employee_id")
}

func attendanceFields(a *attendance.Attendance) map[string]any {
	return map[string]any{
		"id":             a.ID,
		"employee_id":    a.EmployeeID,
		"date":           a.Date.Format(dateLayout),
		"check_in":       optionalTimestamp(a.CheckIn),
		"check_out":      optionalTimestamp(a.CheckOut),
		"status":         string(a.Status),
		"hours_worked":   a.HoursWorked.StringFixed(2),
		"overtime_hours": a.OvertimeHours.StringFixed(2),
		"notes":          optionalString(a.Notes),
	}
}

func optionalTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
