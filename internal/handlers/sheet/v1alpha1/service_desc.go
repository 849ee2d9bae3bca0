// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// Method names of the sheet service
const (
	MethodCreateDraft         = "CreateDraft"
	MethodGetDraft            = "GetDraft"
	MethodGetPlayerDraft      = "GetPlayerDraft"
	MethodSaveDraft           = "SaveDraft"
	MethodDeleteDraft         = "DeleteDraft"
	MethodUpdateName          = "UpdateName"
	MethodUpdateLevel         = "UpdateLevel"
	MethodUpdateRace          = "UpdateRace"
	MethodUpdateClass         = "UpdateClass"
	MethodUpdateBackground    = "UpdateBackground"
	MethodUpdateAbilityScores = "UpdateAbilityScores"
	MethodRollAbilityScores   = "RollAbilityScores"
	MethodUpdateSkills        = "UpdateSkills"
	MethodGetSheet            = "GetSheet"
	MethodRenderSheet         = "RenderSheet"
	MethodListRaces           = "ListRaces"
	MethodListClasses         = "ListClasses"
	MethodListBackgrounds     = "ListBackgrounds"
	MethodListLanguages       = "ListLanguages"
	MethodListFeats           = "ListFeats"
	MethodListFightingStyles  = "ListFightingStyles"
)

// FullMethod returns the gRPC path of a method, e.g. /rpgsheet.v1alpha1.SheetService/GetDraft
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// SheetServiceServer is the server API of the sheet service. Every message is
// a google.protobuf.Struct carrying the snake_case JSON shape of the request
// or response.
type SheetServiceServer interface {
	CreateDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetPlayerDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateName(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateLevel(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateRace(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateClass(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateBackground(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAbilityScores(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRaces(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListClasses(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBackgrounds(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListLanguages(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListFeats(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListFightingStyles(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv any,
			ctx context.Context,
			dec func(any) error,
			interceptor grpc.UnaryServerInterceptor,
		) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SheetServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SheetService_ServiceDesc is the grpc.ServiceDesc for the sheet service
//
//nolint:revive,stylecheck // matches generated naming
var SheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodCreateDraft, SheetServiceServer.CreateDraft),
		unaryMethod(MethodGetDraft, SheetServiceServer.GetDraft),
		unaryMethod(MethodGetPlayerDraft, SheetServiceServer.GetPlayerDraft),
		unaryMethod(MethodSaveDraft, SheetServiceServer.SaveDraft),
		unaryMethod(MethodDeleteDraft, SheetServiceServer.DeleteDraft),
		unaryMethod(MethodUpdateName, SheetServiceServer.UpdateName),
		unaryMethod(MethodUpdateLevel, SheetServiceServer.UpdateLevel),
		unaryMethod(MethodUpdateRace, SheetServiceServer.UpdateRace),
		unaryMethod(MethodUpdateClass, SheetServiceServer.UpdateClass),
		unaryMethod(MethodUpdateBackground, SheetServiceServer.UpdateBackground),
		unaryMethod(MethodUpdateAbilityScores, SheetServiceServer.UpdateAbilityScores),
		unaryMethod(MethodRollAbilityScores, SheetServiceServer.RollAbilityScores),
		unaryMethod(MethodUpdateSkills, SheetServiceServer.UpdateSkills),
		unaryMethod(MethodGetSheet, SheetServiceServer.GetSheet),
		unaryMethod(MethodRenderSheet, SheetServiceServer.RenderSheet),
		unaryMethod(MethodListRaces, SheetServiceServer.ListRaces),
		unaryMethod(MethodListClasses, SheetServiceServer.ListClasses),
		unaryMethod(MethodListBackgrounds, SheetServiceServer.ListBackgrounds),
		unaryMethod(MethodListLanguages, SheetServiceServer.ListLanguages),
		unaryMethod(MethodListFeats, SheetServiceServer.ListFeats),
		unaryMethod(MethodListFightingStyles, SheetServiceServer.ListFightingStyles),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/v1alpha1/sheet.proto",
}

// RegisterSheetServiceServer registers srv on the given registrar
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetService_ServiceDesc, srv)
}

// SheetServiceClient calls the sheet service over a client connection
type SheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client on the given connection
func NewSheetServiceClient(cc grpc.ClientConnInterface) *SheetServiceClient {
	return &SheetServiceClient{cc: cc}
}

// Call invokes a unary method by name
func (c *SheetServiceClient) Call(
	ctx context.Context,
	method string,
	in *structpb.Struct,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
