package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata rides along
// as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)
		if details := metaToStruct(customErr.Code, customErr.Meta); details != nil {
			if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
				st = withDetails
			}
		}
		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC status error back to an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if details, ok := detail.(*structpb.Struct); ok {
			if meta, ok := details.AsMap()["meta"].(map[string]any); ok {
				customErr.Meta = meta
			}
			break
		}
	}

	return customErr
}

func metaToStruct(code Code, meta map[string]any) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	fields := make(map[string]any, len(meta))
	for k, v := range meta {
		fields[k] = toStructValue(v)
	}

	details, err := structpb.NewStruct(map[string]any{
		"code": string(code),
		"meta": fields,
	})
	if err != nil {
		return nil
	}
	return details
}

// toStructValue flattens values structpb cannot represent into strings.
func toStructValue(v any) any {
	switch val := v.(type) {
	case nil, bool, string, float64, float32, int, int32, int64, uint, uint32, uint64:
		return val
	case []string:
		out := make([]any, len(val))
		for i, s := range val {
			out[i] = s
		}
		return out
	case map[string][]string:
		out := make(map[string]any, len(val))
		for k, list := range val {
			out[k] = toStructValue(list)
		}
		return out
	default:
		return fmt.Sprint(val)
	}
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodePermissionDenied:
		return codes.PermissionDenied
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	case CodeUnauthenticated:
		return codes.Unauthenticated
	default:
		return codes.Unknown
	}
}

func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument, codes.OutOfRange:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	case codes.Unauthenticated:
		return CodeUnauthenticated
	default:
		return CodeInternal
	}
}
