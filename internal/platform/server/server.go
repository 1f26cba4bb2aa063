package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/ogurasousui/employee-analytics/internal/adapters/grpc/handler"
	"github.com/ogurasousui/employee-analytics/internal/core/attendance"
	"github.com/ogurasousui/employee-analytics/internal/core/department"
	"github.com/ogurasousui/employee-analytics/internal/core/employee"
	"github.com/ogurasousui/employee-analytics/internal/core/seed"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Services はサーバーが公開するユースケースの集合です。
type Services struct {
	Seed             seed.UseCase
	DefaultSeedCount int
	Departments      department.UseCase
	Employees        employee.UseCase
	Attendance       attendance.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// logger が nil の場合はアクセスログを出力しません。
func New(listenAddr string, svcs Services, logger *log.Logger, opts ...grpc.ServerOption) *Server {
	if logger != nil {
		opts = append(opts, grpc.ChainUnaryInterceptor(loggingInterceptor(logger)))
	}
	srv := grpc.NewServer(opts...)

	handler.RegisterSeedServiceServer(srv, handler.NewSeedGrpcHandler(svcs.Seed, svcs.DefaultSeedCount))
	handler.RegisterDirectoryServiceServer(srv, handler.NewDirectoryGrpcHandler(svcs.Departments, svcs.Employees))
	handler.RegisterAttendanceServiceServer(srv, handler.NewAttendanceGrpcHandler(svcs.Attendance))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	for _, name := range []string{"", handler.SeedServiceName, handler.DirectoryServiceName, handler.AttendanceServiceName} {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthSrv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は既存のリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		s.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING に切り替えてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

func loggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logger.Printf("grpc %s code=%s elapsed=%s", info.FullMethod, status.Code(err), time.Since(start).Round(time.Microsecond))
		return resp, err
	}
}
