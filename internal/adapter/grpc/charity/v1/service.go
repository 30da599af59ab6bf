package charityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/dynamicpb"
)

const CharityService_ServiceName = "charity.v1.CharityService"

const (
	CharityService_CreateProject_FullMethodName       = "/charity.v1.CharityService/CreateProject"
	CharityService_GetProject_FullMethodName          = "/charity.v1.CharityService/GetProject"
	CharityService_ListProjects_FullMethodName        = "/charity.v1.CharityService/ListProjects"
	CharityService_UpdateProject_FullMethodName       = "/charity.v1.CharityService/UpdateProject"
	CharityService_DeleteProject_FullMethodName       = "/charity.v1.CharityService/DeleteProject"
	CharityService_CreateDonation_FullMethodName      = "/charity.v1.CharityService/CreateDonation"
	CharityService_ListDonations_FullMethodName       = "/charity.v1.CharityService/ListDonations"
	CharityService_ListMyDonations_FullMethodName     = "/charity.v1.CharityService/ListMyDonations"
	CharityService_GetCompletionReport_FullMethodName = "/charity.v1.CharityService/GetCompletionReport"
)

// CharityServiceServer is the server API for CharityService.
// Implementations must embed UnimplementedCharityServiceServer.
type CharityServiceServer interface {
	CreateProject(context.Context, *CreateProjectRequest) (*Project, error)
	GetProject(context.Context, *GetProjectRequest) (*Project, error)
	ListProjects(context.Context, *ListProjectsRequest) (*ListProjectsResponse, error)
	UpdateProject(context.Context, *UpdateProjectRequest) (*Project, error)
	DeleteProject(context.Context, *DeleteProjectRequest) (*Project, error)
	CreateDonation(context.Context, *CreateDonationRequest) (*Donation, error)
	ListDonations(context.Context, *ListDonationsRequest) (*ListDonationsResponse, error)
	ListMyDonations(context.Context, *ListMyDonationsRequest) (*ListDonationsResponse, error)
	GetCompletionReport(context.Context, *CompletionReportRequest) (*CompletionReportResponse, error)
	mustEmbedUnimplementedCharityServiceServer()
}

// UnimplementedCharityServiceServer answers every RPC with codes.Unimplemented
type UnimplementedCharityServiceServer struct{}

func (UnimplementedCharityServiceServer) CreateProject(context.Context, *CreateProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateProject not implemented")
}
func (UnimplementedCharityServiceServer) GetProject(context.Context, *GetProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProject not implemented")
}
func (UnimplementedCharityServiceServer) ListProjects(context.Context, *ListProjectsRequest) (*ListProjectsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProjects not implemented")
}
func (UnimplementedCharityServiceServer) UpdateProject(context.Context, *UpdateProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateProject not implemented")
}
func (UnimplementedCharityServiceServer) DeleteProject(context.Context, *DeleteProjectRequest) (*Project, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteProject not implemented")
}
func (UnimplementedCharityServiceServer) CreateDonation(context.Context, *CreateDonationRequest) (*Donation, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateDonation not implemented")
}
func (UnimplementedCharityServiceServer) ListDonations(context.Context, *ListDonationsRequest) (*ListDonationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDonations not implemented")
}
func (UnimplementedCharityServiceServer) ListMyDonations(context.Context, *ListMyDonationsRequest) (*ListDonationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMyDonations not implemented")
}
func (UnimplementedCharityServiceServer) GetCompletionReport(context.Context, *CompletionReportRequest) (*CompletionReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCompletionReport not implemented")
}
func (UnimplementedCharityServiceServer) mustEmbedUnimplementedCharityServiceServer() {}

func RegisterCharityServiceServer(s grpc.ServiceRegistrar, srv CharityServiceServer) {
	s.RegisterService(&CharityService_ServiceDesc, srv)
}

// unary decodes the protobuf request into its typed message, runs the
// interceptor chain and encodes the typed reply back to protobuf
func unary[Req any, PReq interface {
	*Req
	wireMessage
}, Resp wireMessage](fullMethod string, call func(CharityServiceServer, context.Context, *Req) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		wire := dynamicpb.NewMessage(PReq(in).descriptor())
		if err := dec(wire); err != nil {
			return nil, err
		}
		PReq(in).unmarshalFrom(wire)

		handler := func(ctx context.Context, req any) (any, error) {
			resp, err := call(srv.(CharityServiceServer), ctx, req.(*Req))
			if err != nil {
				return nil, err
			}
			return toProto(resp), nil
		}
		if interceptor == nil {
			return handler(ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, in, info, handler)
	}
}

// CharityService_ServiceDesc is the grpc.ServiceDesc for CharityService
var CharityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CharityService_ServiceName,
	HandlerType: (*CharityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateProject", Handler: unary(CharityService_CreateProject_FullMethodName, CharityServiceServer.CreateProject)},
		{MethodName: "GetProject", Handler: unary(CharityService_GetProject_FullMethodName, CharityServiceServer.GetProject)},
		{MethodName: "ListProjects", Handler: unary(CharityService_ListProjects_FullMethodName, CharityServiceServer.ListProjects)},
		{MethodName: "UpdateProject", Handler: unary(CharityService_UpdateProject_FullMethodName, CharityServiceServer.UpdateProject)},
		{MethodName: "DeleteProject", Handler: unary(CharityService_DeleteProject_FullMethodName, CharityServiceServer.DeleteProject)},
		{MethodName: "CreateDonation", Handler: unary(CharityService_CreateDonation_FullMethodName, CharityServiceServer.CreateDonation)},
		{MethodName: "ListDonations", Handler: unary(CharityService_ListDonations_FullMethodName, CharityServiceServer.ListDonations)},
		{MethodName: "ListMyDonations", Handler: unary(CharityService_ListMyDonations_FullMethodName, CharityServiceServer.ListMyDonations)},
		{MethodName: "GetCompletionReport", Handler: unary(CharityService_GetCompletionReport_FullMethodName, CharityServiceServer.GetCompletionReport)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: fileName,
}
