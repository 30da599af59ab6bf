package charityv1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// roundTrip encodes msg to protobuf bytes and decodes them into out
func roundTrip(t *testing.T, msg, out wireMessage) {
	t.Helper()
	data, err := proto.Marshal(toProto(msg))
	require.NoError(t, err)

	wire := dynamicpb.NewMessage(out.descriptor())
	require.NoError(t, proto.Unmarshal(data, wire))
	out.unmarshalFrom(wire)
}

func TestFile_IsRegistered(t *testing.T) {
	fd, err := protoregistry.GlobalFiles.FindFileByPath("charity/v1/charity.proto")
	require.NoError(t, err)
	assert.Equal(t, File, fd)

	desc, err := protoregistry.GlobalFiles.FindDescriptorByName(CharityService_ServiceName)
	require.NoError(t, err)
	service, ok := desc.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, len(CharityService_ServiceDesc.Methods), service.Methods().Len())
	for _, m := range CharityService_ServiceDesc.Methods {
		assert.NotNil(t, service.Methods().ByName(protoreflect.Name(m.MethodName)), m.MethodName)
	}

	mt, err := protoregistry.GlobalTypes.FindMessageByName("charity.v1.Project")
	require.NoError(t, err)
	assert.Equal(t, "google.protobuf.Timestamp", string(mt.Descriptor().Fields().ByName("close_date").Message().FullName()))
}

func TestProject_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	closed := created.Add(36 * time.Hour)

	tests := []struct {
		name string
		in   *Project
	}{
		{
			name: "Open",
			in: &Project{
				Id: 7, Name: "Shelter", Description: "roof",
				FullAmount: "100", InvestedAmount: "40",
				CreateDate: timestamppb.New(created),
			},
		},
		{
			name: "Closed",
			in: &Project{
				Id: 8, Name: "Well", Description: "water",
				FullAmount: "50", InvestedAmount: "50", FullyInvested: true,
				CreateDate: timestamppb.New(created),
				CloseDate:  timestamppb.New(closed),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(Project)
			roundTrip(t, tt.in, out)

			assert.Equal(t, tt.in.Id, out.Id)
			assert.Equal(t, tt.in.Name, out.Name)
			assert.Equal(t, tt.in.InvestedAmount, out.InvestedAmount)
			assert.Equal(t, tt.in.FullyInvested, out.FullyInvested)
			assert.True(t, out.CreateDate.AsTime().Equal(created))
			if tt.in.CloseDate == nil {
				assert.Nil(t, out.CloseDate)
			} else {
				require.NotNil(t, out.CloseDate)
				assert.True(t, out.CloseDate.AsTime().Equal(closed))
			}
		})
	}
}

func TestUpdateProjectRequest_UnsetWrappersStayNil(t *testing.T) {
	out := new(UpdateProjectRequest)
	roundTrip(t, &UpdateProjectRequest{
		Id:          3,
		Description: wrapperspb.String(""),
		FullAmount:  wrapperspb.String("80"),
	}, out)

	assert.Equal(t, int64(3), out.Id)
	assert.Nil(t, out.Name)
	require.NotNil(t, out.Description)
	assert.Equal(t, "", out.Description.GetValue())
	assert.Equal(t, "80", out.FullAmount.GetValue())
}

func TestDonation_OwnerViewOmitsInternals(t *testing.T) {
	out := new(Donation)
	roundTrip(t, &Donation{Id: 1, FullAmount: "60", Comment: "roof", CreateDate: timestamppb.Now()}, out)

	assert.Empty(t, out.UserId)
	assert.Nil(t, out.FullyInvested)
	assert.Nil(t, out.CloseDate)

	admin := new(Donation)
	roundTrip(t, &Donation{Id: 1, FullAmount: "60", UserId: "u", InvestedAmount: "0", FullyInvested: wrapperspb.Bool(false)}, admin)
	require.NotNil(t, admin.FullyInvested)
	assert.False(t, admin.FullyInvested.GetValue())
}

func TestCompletionReportResponse_NestedProjects(t *testing.T) {
	out := new(CompletionReportResponse)
	roundTrip(t, &CompletionReportResponse{
		Projects: []*ProjectCompletion{
			{Project: &Project{Id: 1, Name: "fast"}, DurationSeconds: 60},
			{Project: &Project{Id: 2, Name: "slow"}, DurationSeconds: 3600.5},
		},
		TotalRaised: "250",
	}, out)

	require.Len(t, out.Projects, 2)
	assert.Equal(t, "fast", out.Projects[0].Project.Name)
	assert.Equal(t, 3600.5, out.Projects[1].DurationSeconds)
	assert.Equal(t, "250", out.TotalRaised)
}
