package handler

import (
	"context"

	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
type DirectoryGrpcHandler struct {
	departments department.UseCase
	employees   employee.UseCase
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(departments department.UseCase, employees employee.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{departments: departments, employees: employees}
}

// ListDepartments は部署一覧を返します。
func (h *DirectoryGrpcHandler) ListDepartments(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	pageSize, _, err := intField(req, "page_size")
	if err != nil {
		return nil, err
	}
	pageToken, err := stringField(req, "page_token")
	if err != nil {
		return nil, err
	}

	result, err := h.departments.ListDepartments(ctx, department.ListDepartmentsInput{
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	items := make([]any, 0, len(result.Departments))
	for _, d := range result.Departments {
		items = append(items, departmentFields(d))
	}

	return newResponse(map[string]any{
		"departments":     items,
		"next_page_token": result.NextPageToken,
	})
}

// GetDepartment は部署を 1 件返します。
func (h *DirectoryGrpcHandler) GetDepartment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := stringField(req, "id")
	if err != nil {
		return nil, err
	}

	found, err := h.departments.GetDepartment(ctx, department.GetDepartmentInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}

	return newResponse(map[string]any{"department": departmentFields(found)})
}

// ListEmployees は社員一覧を返します。department_id と is_active で絞り込めます。
func (h *DirectoryGrpcHandler) ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	departmentID, err := stringField(req, "department_id")
	if err != nil {
		return nil, err
	}
	isActive, err := boolField(req, "is_active")
	if err != nil {
		return nil, err
	}
	pageSize, _, err := intField(req, "page_size")
	if err != nil {
		return nil, err
	}
	pageToken, err := stringField(req, "page_token")
	if err != nil {
		return nil, err
	}

	result, err := h.employees.ListEmployees(ctx, employee.ListEmployeesInput{
		DepartmentID: departmentID,
		IsActive:     isActive,
		PageSize:     pageSize,
		PageToken:    pageToken,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	items := make([]any, 0, len(result.Employees))
	for _, e := range result.Employees {
		items = append(items, employeeFields(e))
	}

	return newResponse(map[string]any{
		"employees":       items,
		"next_page_token": result.NextPageToken,
	})
}

// GetEmployee は社員を 1 件返します。
func (h *DirectoryGrpcHandler) GetEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	id, err := stringField(req, "id")
	if err != nil {
		return nil, err
	}

	found, err := h.employees.GetEmployee(ctx, employee.GetEmployeeInput{ID: id})
	if err != nil {
		return nil, toStatusError(err)
	}

	return newResponse(map[string]any{"employee": employeeFields(found)})
}

func departmentFields(d *department.Department) map[string]any {
	return map[string]any{
		"id":          d.ID,
		"name":        d.Name,
		"description": optionalString(d.Description),
	}
}

func employeeFields(e *employee.Employee) map[string]any {
	var gender any
	if e.Gender != nil {
		gender = string(*e.Gender)
	}

	return map[string]any{
		"id":            e.ID,
		"employee_id":   e.EmployeeID,
		"user_id":       optionalString(e.UserID),
		"first_name":    e.FirstName,
		"last_name":     e.LastName,
		"full_name":     e.FullName(),
		"gender":        gender,
		"email":         e.Email,
		"phone":         e.Phone,
		"department_id": optionalString(e.DepartmentID),
		"position_id":   optionalString(e.PositionID),
		"manager_id":    optionalString(e.ManagerID),
		"hire_date":     e.HireDate.Format(dateLayout),
		"salary":        e.Salary.StringFixed(2),
		"is_active":     e.IsActive,
	}
}
