package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	SeedServiceName       = "hr.v1.SeedService"
	DirectoryServiceName  = "hr.v1.DirectoryService"
	AttendanceServiceName = "hr.v1.AttendanceService"
)

// SeedServiceServer は hr.v1.SeedService のサーバー実装です。
type SeedServiceServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// DirectoryServiceServer は hr.v1.DirectoryService のサーバー実装です。
type DirectoryServiceServer interface {
	ListDepartments(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetDepartment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListEmployees(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetEmployee(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// AttendanceServiceServer は hr.v1.AttendanceService のサーバー実装です。
type AttendanceServiceServer interface {
	CheckIn(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CheckOut(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

var seedServiceDesc = grpc.ServiceDesc{
	ServiceName: SeedServiceName,
	HandlerType: (*SeedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: unaryHandler(SeedServiceName, "Generate", SeedServiceServer.Generate)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hr/v1/seed.proto",
}

var directoryServiceDesc = grpc.ServiceDesc{
	ServiceName: DirectoryServiceName,
	HandlerType: (*DirectoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListDepartments", Handler: unaryHandler(DirectoryServiceName, "ListDepartments", DirectoryServiceServer.ListDepartments)},
		{MethodName: "GetDepartment", Handler: unaryHandler(DirectoryServiceName, "GetDepartment", DirectoryServiceServer.GetDepartment)},
		{MethodName: "ListEmployees", Handler: unaryHandler(DirectoryServiceName, "ListEmployees", DirectoryServiceServer.ListEmployees)},
		{MethodName: "GetEmployee", Handler: unaryHandler(DirectoryServiceName, "GetEmployee", DirectoryServiceServer.GetEmployee)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hr/v1/directory.proto",
}

var attendanceServiceDesc = grpc.ServiceDesc{
	ServiceName: AttendanceServiceName,
	HandlerType: (*AttendanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CheckIn", Handler: unaryHandler(AttendanceServiceName, "CheckIn", AttendanceServiceServer.CheckIn)},
		{MethodName: "CheckOut", Handler: unaryHandler(AttendanceServiceName, "CheckOut", AttendanceServiceServer.CheckOut)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hr/v1/attendance.proto",
}

// RegisterSeedServiceServer は SeedService をサーバーへ登録します。
func RegisterSeedServiceServer(s grpc.ServiceRegistrar, srv SeedServiceServer) {
	s.RegisterService(&seedServiceDesc, srv)
}

// RegisterDirectoryServiceServer は DirectoryService をサーバーへ登録します。
func RegisterDirectoryServiceServer(s grpc.ServiceRegistrar, srv DirectoryServiceServer) {
	s.RegisterService(&directoryServiceDesc, srv)
}

// RegisterAttendanceServiceServer は AttendanceService をサーバーへ登録します。
func RegisterAttendanceServiceServer(s grpc.ServiceRegistrar, srv AttendanceServiceServer) {
	s.RegisterService(&attendanceServiceDesc, srv)
}

// FullMethod は "/service/method" 形式のメソッド名を返します。クライアントの Invoke に渡します。
func FullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unaryHandler はリクエストを structpb.Struct としてデコードし、インターセプタ経由で call を呼び出します。
func unaryHandler[S any](service, method string, call func(S, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	fullMethod := FullMethod(service, method)
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}
