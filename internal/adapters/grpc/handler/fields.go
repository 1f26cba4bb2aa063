package handler

import (
	"fmt"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const dateLayout = "2006-01-02"

// lookupField は値が null または未指定の場合に ok=false を返します。
func lookupField(req *structpb.Struct, key string) (*structpb.Value, bool) {
	v, ok := req.GetFields()[key]
	if !ok || v == nil {
		return nil, false
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return v, true
}

func stringField(req *structpb.Struct, key string) (string, error) {
	v, ok := lookupField(req, key)
	if !ok {
		return "", nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a string", key))
	}
	return s.StringValue, nil
}

// intField は JSON 数値を整数として取り出します。小数部を持つ値は拒否します。
func intField(req *structpb.Struct, key string) (int, bool, error) {
	v, ok := lookupField(req, key)
	if !ok {
		return 0, false, nil
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber {
		return 0, false, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a number", key))
	}
	f := n.NumberValue
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be an integer", key))
	}
	return int(f), true, nil
}

func boolField(req *structpb.Struct, key string) (*bool, error) {
	v, ok := lookupField(req, key)
	if !ok {
		return nil, nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("%s must be a boolean", key))
	}
	value := b.BoolValue
	return &value, nil
}

func optionalString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func newResponse(fields map[string]any) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return resp, nil
}
