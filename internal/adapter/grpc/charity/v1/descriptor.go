// Package charityv1 holds the charity.v1 protobuf schema and the typed
// messages, server and client of CharityService.
//
// The schema is declared as a FileDescriptorProto and registered in the
// global registry, so it is visible to gRPC reflection like a generated file.
package charityv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	protoPackage = "charity.v1"
	fileName     = "charity/v1/charity.proto"
	goPackage    = "github.com/simaogato/charityflow-backend/internal/adapter/grpc/charity/v1;charityv1"

	timestampType   = ".google.protobuf.Timestamp"
	stringValueType = ".google.protobuf.StringValue"
	boolValueType   = ".google.protobuf.BoolValue"
)

// File is the registered descriptor of charity/v1/charity.proto
var File = registerFile()

func registerFile() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("charityv1: invalid descriptor: %v", err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("charityv1: register file: %v", err))
	}
	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		if err := protoregistry.GlobalTypes.RegisterMessage(dynamicpb.NewMessageType(msgs.Get(i))); err != nil {
			panic(fmt.Sprintf("charityv1: register %s: %v", msgs.Get(i).FullName(), err))
		}
	}
	return fd
}

func messageDescriptor(name protoreflect.Name) protoreflect.MessageDescriptor {
	md := File.Messages().ByName(name)
	if md == nil {
		panic(fmt.Sprintf("charityv1: unknown message %s", name))
	}
	return md
}

func scalar(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func message(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalar(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = proto.String(typeName)
	return f
}

func repeated(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := message(name, number, typeName)
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func local(name string) string {
	return "." + protoPackage + "." + name
}

func messageType(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

func rpc(name, input, output string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(local(input)),
		OutputType: proto.String(local(output)),
	}
}

// Amounts travel as decimal strings.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	const (
		str    = descriptorpb.FieldDescriptorProto_TYPE_STRING
		int64T = descriptorpb.FieldDescriptorProto_TYPE_INT64
		boolT  = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		double = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	)

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(fileName),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		Dependency: []string{
			timestamppb.File_google_protobuf_timestamp_proto.Path(),
			wrapperspb.File_google_protobuf_wrappers_proto.Path(),
		},
		Options: &descriptorpb.FileOptions{GoPackage: proto.String(goPackage)},
		MessageType: []*descriptorpb.DescriptorProto{
			messageType("Project",
				scalar("id", 1, int64T),
				scalar("name", 2, str),
				scalar("description", 3, str),
				scalar("full_amount", 4, str),
				scalar("invested_amount", 5, str),
				scalar("fully_invested", 6, boolT),
				message("create_date", 7, timestampType),
				message("close_date", 8, timestampType),
			),
			messageType("CreateProjectRequest",
				scalar("name", 1, str),
				scalar("description", 2, str),
				scalar("full_amount", 3, str),
			),
			messageType("GetProjectRequest", scalar("id", 1, int64T)),
			messageType("ListProjectsRequest"),
			messageType("ListProjectsResponse", repeated("projects", 1, local("Project"))),
			messageType("UpdateProjectRequest",
				scalar("id", 1, int64T),
				message("name", 2, stringValueType),
				message("description", 3, stringValueType),
				message("full_amount", 4, stringValueType),
			),
			messageType("DeleteProjectRequest", scalar("id", 1, int64T)),
			messageType("Donation",
				scalar("id", 1, int64T),
				scalar("full_amount", 2, str),
				scalar("comment", 3, str),
				message("create_date", 4, timestampType),
				scalar("user_id", 5, str),
				scalar("invested_amount", 6, str),
				message("fully_invested", 7, boolValueType),
				message("close_date", 8, timestampType),
			),
			messageType("CreateDonationRequest",
				scalar("full_amount", 1, str),
				scalar("comment", 2, str),
			),
			messageType("ListDonationsRequest"),
			messageType("ListMyDonationsRequest"),
			messageType("ListDonationsResponse", repeated("donations", 1, local("Donation"))),
			messageType("CompletionReportRequest"),
			messageType("ProjectCompletion",
				message("project", 1, local("Project")),
				scalar("duration_seconds", 2, double),
			),
			messageType("CompletionReportResponse",
				repeated("projects", 1, local("ProjectCompletion")),
				scalar("total_raised", 2, str),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name: proto.String("CharityService"),
			Method: []*descriptorpb.MethodDescriptorProto{
				rpc("CreateProject", "CreateProjectRequest", "Project"),
				rpc("GetProject", "GetProjectRequest", "Project"),
				rpc("ListProjects", "ListProjectsRequest", "ListProjectsResponse"),
				rpc("UpdateProject", "UpdateProjectRequest", "Project"),
				rpc("DeleteProject", "DeleteProjectRequest", "Project"),
				rpc("CreateDonation", "CreateDonationRequest", "Donation"),
				rpc("ListDonations", "ListDonationsRequest", "ListDonationsResponse"),
				rpc("ListMyDonations", "ListMyDonationsRequest", "ListDonationsResponse"),
				rpc("GetCompletionReport", "CompletionReportRequest", "CompletionReportResponse"),
			},
		}},
	}
}
