package handler

import (
	"context"
	"sync"

	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// SeedGrpcHandler は SeedService の gRPC 実装です。
// Generator は同時実行を想定しないため、呼び出しを直列化します。
type SeedGrpcHandler struct {
	gen          seed.UseCase
	defaultCount int
	mu           sync.Mutex
}

// NewSeedGrpcHandler は SeedGrpcHandler を生成します。
// employee_count が省略されたリクエストには defaultCount を使います。
func NewSeedGrpcHandler(gen seed.UseCase, defaultCount int) *SeedGrpcHandler {
	return &SeedGrpcHandler{gen: gen, defaultCount: defaultCount}
}

// Generate はダミーデータを生成し、新規作成件数を返します。
func (h *SeedGrpcHandler) Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	count, ok, err := intField(req, "employee_count")
	if err != nil {
		return nil, err
	}
	if !ok {
		count = h.defaultCount
	}

	h.mu.Lock()
	summary, err := h.gen.Generate(ctx, seed.GenerateInput{EmployeeCount: count})
	h.mu.Unlock()
	if err != nil {
		return nil, toStatusError(err)
	}

	return newResponse(summaryFields(summary))
}

func summaryFields(s *seed.Summary) map[string]any {
	return map[string]any{
		"departments_created":  s.DepartmentsCreated,
		"positions_created":    s.PositionsCreated,
		"employees_created":    s.EmployeesCreated,
		"attendances_created":  s.AttendancesCreated,
		"time_logs_created":    s.TimeLogsCreated,
		"performances_created": s.PerformancesCreated,
		"reviews_created":      s.ReviewsCreated,
		"goals_created":        s.GoalsCreated,
	}
}
