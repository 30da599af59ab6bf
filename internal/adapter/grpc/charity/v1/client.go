package charityv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/dynamicpb"
)

// CharityServiceClient is the client API for CharityService
type CharityServiceClient interface {
	CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*Project, error)
	GetProject(ctx context.Context, in *GetProjectRequest, opts ...grpc.CallOption) (*Project, error)
	ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error)
	UpdateProject(ctx context.Context, in *UpdateProjectRequest, opts ...grpc.CallOption) (*Project, error)
	DeleteProject(ctx context.Context, in *DeleteProjectRequest, opts ...grpc.CallOption) (*Project, error)
	CreateDonation(ctx context.Context, in *CreateDonationRequest, opts ...grpc.CallOption) (*Donation, error)
	ListDonations(ctx context.Context, in *ListDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error)
	ListMyDonations(ctx context.Context, in *ListMyDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error)
	GetCompletionReport(ctx context.Context, in *CompletionReportRequest, opts ...grpc.CallOption) (*CompletionReportResponse, error)
}

type charityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCharityServiceClient(cc grpc.ClientConnInterface) CharityServiceClient {
	return &charityServiceClient{cc}
}

// WithToken attaches a bearer token to outgoing calls made with ctx
func WithToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func invoke[Resp any, PResp interface {
	*Resp
	wireMessage
}](ctx context.Context, cc grpc.ClientConnInterface, method string, in wireMessage, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	reply := dynamicpb.NewMessage(PResp(out).descriptor())
	if err := cc.Invoke(ctx, method, toProto(in), reply, opts...); err != nil {
		return nil, err
	}
	PResp(out).unmarshalFrom(reply)
	return out, nil
}

func (c *charityServiceClient) CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, CharityService_CreateProject_FullMethodName, in, opts)
}

func (c *charityServiceClient) GetProject(ctx context.Context, in *GetProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, CharityService_GetProject_FullMethodName, in, opts)
}

func (c *charityServiceClient) ListProjects(ctx context.Context, in *ListProjectsRequest, opts ...grpc.CallOption) (*ListProjectsResponse, error) {
	return invoke[ListProjectsResponse](ctx, c.cc, CharityService_ListProjects_FullMethodName, in, opts)
}

func (c *charityServiceClient) UpdateProject(ctx context.Context, in *UpdateProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, CharityService_UpdateProject_FullMethodName, in, opts)
}

func (c *charityServiceClient) DeleteProject(ctx context.Context, in *DeleteProjectRequest, opts ...grpc.CallOption) (*Project, error) {
	return invoke[Project](ctx, c.cc, CharityService_DeleteProject_FullMethodName, in, opts)
}

func (c *charityServiceClient) CreateDonation(ctx context.Context, in *CreateDonationRequest, opts ...grpc.CallOption) (*Donation, error) {
	return invoke[Donation](ctx, c.cc, CharityService_CreateDonation_FullMethodName, in, opts)
}

func (c *charityServiceClient) ListDonations(ctx context.Context, in *ListDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error) {
	return invoke[ListDonationsResponse](ctx, c.cc, CharityService_ListDonations_FullMethodName, in, opts)
}

func (c *charityServiceClient) ListMyDonations(ctx context.Context, in *ListMyDonationsRequest, opts ...grpc.CallOption) (*ListDonationsResponse, error) {
	return invoke[ListDonationsResponse](ctx, c.cc, CharityService_ListMyDonations_FullMethodName, in, opts)
}

func (c *charityServiceClient) GetCompletionReport(ctx context.Context, in *CompletionReportRequest, opts ...grpc.CallOption) (*CompletionReportResponse, error) {
	return invoke[CompletionReportResponse](ctx, c.cc, CharityService_GetCompletionReport_FullMethodName, in, opts)
}
