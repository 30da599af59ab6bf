package charityv1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// wireMessage is implemented by every charity.v1 message
type wireMessage interface {
	descriptor() protoreflect.MessageDescriptor
	marshalTo(m protoreflect.Message)
	unmarshalFrom(m protoreflect.Message)
}

// toProto returns the protobuf form of a charity.v1 message
func toProto(w wireMessage) proto.Message {
	m := dynamicpb.NewMessage(w.descriptor())
	w.marshalTo(m)
	return m
}

// fieldSet reads and writes the fields of a message by name
type fieldSet struct {
	m protoreflect.Message
}

func (f fieldSet) field(name protoreflect.Name) protoreflect.FieldDescriptor {
	fd := f.m.Descriptor().Fields().ByName(name)
	if fd == nil {
		panic("charityv1: " + string(f.m.Descriptor().FullName()) + " has no field " + string(name))
	}
	return fd
}

func (f fieldSet) setString(name protoreflect.Name, v string) {
	f.m.Set(f.field(name), protoreflect.ValueOfString(v))
}

func (f fieldSet) setInt64(name protoreflect.Name, v int64) {
	f.m.Set(f.field(name), protoreflect.ValueOfInt64(v))
}

func (f fieldSet) setBool(name protoreflect.Name, v bool) {
	f.m.Set(f.field(name), protoreflect.ValueOfBool(v))
}

func (f fieldSet) setDouble(name protoreflect.Name, v float64) {
	f.m.Set(f.field(name), protoreflect.ValueOfFloat64(v))
}

// setMessage leaves the field unset when v is nil
func (f fieldSet) setMessage(name protoreflect.Name, v proto.Message, isNil bool) {
	if isNil {
		return
	}
	f.m.Set(f.field(name), protoreflect.ValueOfMessage(v.ProtoReflect()))
}

func (f fieldSet) setTimestamp(name protoreflect.Name, v *timestamppb.Timestamp) {
	f.setMessage(name, v, v == nil)
}

func (f fieldSet) setStringValue(name protoreflect.Name, v *wrapperspb.StringValue) {
	f.setMessage(name, v, v == nil)
}

func (f fieldSet) setBoolValue(name protoreflect.Name, v *wrapperspb.BoolValue) {
	f.setMessage(name, v, v == nil)
}

func (f fieldSet) setNested(name protoreflect.Name, v wireMessage, isNil bool) {
	if isNil {
		return
	}
	fd := f.field(name)
	nested := f.m.NewField(fd)
	v.marshalTo(nested.Message())
	f.m.Set(fd, nested)
}

func (f fieldSet) appendNested(name protoreflect.Name, v wireMessage) {
	list := f.m.Mutable(f.field(name)).List()
	elem := list.NewElement()
	v.marshalTo(elem.Message())
	list.Append(elem)
}

func (f fieldSet) getString(name protoreflect.Name) string {
	return f.m.Get(f.field(name)).String()
}

func (f fieldSet) getInt64(name protoreflect.Name) int64 {
	return f.m.Get(f.field(name)).Int()
}

func (f fieldSet) getBool(name protoreflect.Name) bool {
	return f.m.Get(f.field(name)).Bool()
}

func (f fieldSet) getDouble(name protoreflect.Name) float64 {
	return f.m.Get(f.field(name)).Float()
}

// mergeInto copies a set message field into dst and reports whether it was set
func (f fieldSet) mergeInto(name protoreflect.Name, dst proto.Message) bool {
	fd := f.field(name)
	if !f.m.Has(fd) {
		return false
	}
	proto.Merge(dst, f.m.Get(fd).Message().Interface())
	return true
}

func (f fieldSet) getTimestamp(name protoreflect.Name) *timestamppb.Timestamp {
	ts := new(timestamppb.Timestamp)
	if !f.mergeInto(name, ts) {
		return nil
	}
	return ts
}

func (f fieldSet) getStringValue(name protoreflect.Name) *wrapperspb.StringValue {
	v := new(wrapperspb.StringValue)
	if !f.mergeInto(name, v) {
		return nil
	}
	return v
}

func (f fieldSet) getBoolValue(name protoreflect.Name) *wrapperspb.BoolValue {
	v := new(wrapperspb.BoolValue)
	if !f.mergeInto(name, v) {
		return nil
	}
	return v
}

func (f fieldSet) getNested(name protoreflect.Name, dst wireMessage) bool {
	fd := f.field(name)
	if !f.m.Has(fd) {
		return false
	}
	dst.unmarshalFrom(f.m.Get(fd).Message())
	return true
}

func (f fieldSet) each(name protoreflect.Name, fn func(protoreflect.Message)) {
	list := f.m.Get(f.field(name)).List()
	for i := 0; i < list.Len(); i++ {
		fn(list.Get(i).Message())
	}
}

var (
	projectDescriptor                  = messageDescriptor("Project")
	createProjectRequestDescriptor     = messageDescriptor("CreateProjectRequest")
	getProjectRequestDescriptor        = messageDescriptor("GetProjectRequest")
	listProjectsRequestDescriptor      = messageDescriptor("ListProjectsRequest")
	listProjectsResponseDescriptor     = messageDescriptor("ListProjectsResponse")
	updateProjectRequestDescriptor     = messageDescriptor("UpdateProjectRequest")
	deleteProjectRequestDescriptor     = messageDescriptor("DeleteProjectRequest")
	donationDescriptor                 = messageDescriptor("Donation")
	createDonationRequestDescriptor    = messageDescriptor("CreateDonationRequest")
	listDonationsRequestDescriptor     = messageDescriptor("ListDonationsRequest")
	listMyDonationsRequestDescriptor   = messageDescriptor("ListMyDonationsRequest")
	listDonationsResponseDescriptor    = messageDescriptor("ListDonationsResponse")
	completionReportRequestDescriptor  = messageDescriptor("CompletionReportRequest")
	projectCompletionDescriptor        = messageDescriptor("ProjectCompletion")
	completionReportResponseDescriptor = messageDescriptor("CompletionReportResponse")
)

type Project struct {
	Id             int64
	Name           string
	Description    string
	FullAmount     string
	InvestedAmount string
	FullyInvested  bool
	CreateDate     *timestamppb.Timestamp
	// CloseDate is nil while the project is still open
	CloseDate *timestamppb.Timestamp
}

func (*Project) descriptor() protoreflect.MessageDescriptor { return projectDescriptor }

func (x *Project) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setInt64("id", x.Id)
	f.setString("name", x.Name)
	f.setString("description", x.Description)
	f.setString("full_amount", x.FullAmount)
	f.setString("invested_amount", x.InvestedAmount)
	f.setBool("fully_invested", x.FullyInvested)
	f.setTimestamp("create_date", x.CreateDate)
	f.setTimestamp("close_date", x.CloseDate)
}

func (x *Project) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	x.Id = f.getInt64("id")
	x.Name = f.getString("name")
	x.Description = f.getString("description")
	x.FullAmount = f.getString("full_amount")
	x.InvestedAmount = f.getString("invested_amount")
	x.FullyInvested = f.getBool("fully_invested")
	x.CreateDate = f.getTimestamp("create_date")
	x.CloseDate = f.getTimestamp("close_date")
}

type CreateProjectRequest struct {
	Name        string
	Description string
	FullAmount  string
}

func (*CreateProjectRequest) descriptor() protoreflect.MessageDescriptor {
	return createProjectRequestDescriptor
}

func (x *CreateProjectRequest) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setString("name", x.Name)
	f.setString("description", x.Description)
	f.setString("full_amount", x.FullAmount)
}

func (x *CreateProjectRequest) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	x.Name = f.getString("name")
	x.Description = f.getString("description")
	x.FullAmount = f.getString("full_amount")
}

type GetProjectRequest struct {
	Id int64
}

func (*GetProjectRequest) descriptor() protoreflect.MessageDescriptor {
	return getProjectRequestDescriptor
}

func (x *GetProjectRequest) marshalTo(m protoreflect.Message) {
	fieldSet{m}.setInt64("id", x.Id)
}

func (x *GetProjectRequest) unmarshalFrom(m protoreflect.Message) {
	x.Id = fieldSet{m}.getInt64("id")
}

type ListProjectsRequest struct{}

func (*ListProjectsRequest) descriptor() protoreflect.MessageDescriptor {
	return listProjectsRequestDescriptor
}

func (*ListProjectsRequest) marshalTo(protoreflect.Message)    {}
func (*ListProjectsRequest) unmarshalFrom(protoreflect.Message) {}

type ListProjectsResponse struct {
	Projects []*Project
}

func (*ListProjectsResponse) descriptor() protoreflect.MessageDescriptor {
	return listProjectsResponseDescriptor
}

func (x *ListProjectsResponse) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	for _, p := range x.Projects {
		f.appendNested("projects", p)
	}
}

func (x *ListProjectsResponse) unmarshalFrom(m protoreflect.Message) {
	fieldSet{m}.each("projects", func(pm protoreflect.Message) {
		p := new(Project)
		p.unmarshalFrom(pm)
		x.Projects = append(x.Projects, p)
	})
}

// UpdateProjectRequest leaves unset fields unchanged
type UpdateProjectRequest struct {
	Id          int64
	Name        *wrapperspb.StringValue
	Description *wrapperspb.StringValue
	FullAmount  *wrapperspb.StringValue
}

func (*UpdateProjectRequest) descriptor() protoreflect.MessageDescriptor {
	return updateProjectRequestDescriptor
}

func (x *UpdateProjectRequest) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setInt64("id", x.Id)
	f.setStringValue("name", x.Name)
	f.setStringValue("description", x.Description)
	f.setStringValue("full_amount", x.FullAmount)
}

func (x *UpdateProjectRequest) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	x.Id = f.getInt64("id")
	x.Name = f.getStringValue("name")
	x.Description = f.getStringValue("description")
	x.FullAmount = f.getStringValue("full_amount")
}

type DeleteProjectRequest struct {
	Id int64
}

func (*DeleteProjectRequest) descriptor() protoreflect.MessageDescriptor {
	return deleteProjectRequestDescriptor
}

func (x *DeleteProjectRequest) marshalTo(m protoreflect.Message) {
	fieldSet{m}.setInt64("id", x.Id)
}

func (x *DeleteProjectRequest) unmarshalFrom(m protoreflect.Message) {
	x.Id = fieldSet{m}.getInt64("id")
}

// Donation leaves the owner and the financial internals unset in the donor's own view
type Donation struct {
	Id             int64
	FullAmount     string
	Comment        string
	CreateDate     *timestamppb.Timestamp
	UserId         string
	InvestedAmount string
	FullyInvested  *wrapperspb.BoolValue
	CloseDate      *timestamppb.Timestamp
}

func (*Donation) descriptor() protoreflect.MessageDescriptor { return donationDescriptor }

func (x *Donation) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setInt64("id", x.Id)
	f.setString("full_amount", x.FullAmount)
	f.setString("comment", x.Comment)
	f.setTimestamp("create_date", x.CreateDate)
	f.setString("user_id", x.UserId)
	f.setString("invested_amount", x.InvestedAmount)
	f.setBoolValue("fully_invested", x.FullyInvested)
	f.setTimestamp("close_date", x.CloseDate)
}

func (x *Donation) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	x.Id = f.getInt64("id")
	x.FullAmount = f.getString("full_amount")
	x.Comment = f.getString("comment")
	x.CreateDate = f.getTimestamp("create_date")
	x.UserId = f.getString("user_id")
	x.InvestedAmount = f.getString("invested_amount")
	x.FullyInvested = f.getBoolValue("fully_invested")
	x.CloseDate = f.getTimestamp("close_date")
}

type CreateDonationRequest struct {
	FullAmount string
	Comment    string
}

func (*CreateDonationRequest) descriptor() protoreflect.MessageDescriptor {
	return createDonationRequestDescriptor
}

func (x *CreateDonationRequest) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setString("full_amount", x.FullAmount)
	f.setString("comment", x.Comment)
}

func (x *CreateDonationRequest) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	x.FullAmount = f.getString("full_amount")
	x.Comment = f.getString("comment")
}

type ListDonationsRequest struct{}

func (*ListDonationsRequest) descriptor() protoreflect.MessageDescriptor {
	return listDonationsRequestDescriptor
}

func (*ListDonationsRequest) marshalTo(protoreflect.Message)    {}
func (*ListDonationsRequest) unmarshalFrom(protoreflect.Message) {}

type ListMyDonationsRequest struct{}

func (*ListMyDonationsRequest) descriptor() protoreflect.MessageDescriptor {
	return listMyDonationsRequestDescriptor
}

func (*ListMyDonationsRequest) marshalTo(protoreflect.Message)    {}
func (*ListMyDonationsRequest) unmarshalFrom(protoreflect.Message) {}

type ListDonationsResponse struct {
	Donations []*Donation
}

func (*ListDonationsResponse) descriptor() protoreflect.MessageDescriptor {
	return listDonationsResponseDescriptor
}

func (x *ListDonationsResponse) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	for _, d := range x.Donations {
		f.appendNested("donations", d)
	}
}

func (x *ListDonationsResponse) unmarshalFrom(m protoreflect.Message) {
	fieldSet{m}.each("donations", func(dm protoreflect.Message) {
		d := new(Donation)
		d.unmarshalFrom(dm)
		x.Donations = append(x.Donations, d)
	})
}

type CompletionReportRequest struct{}

func (*CompletionReportRequest) descriptor() protoreflect.MessageDescriptor {
	return completionReportRequestDescriptor
}

func (*CompletionReportRequest) marshalTo(protoreflect.Message)    {}
func (*CompletionReportRequest) unmarshalFrom(protoreflect.Message) {}

type ProjectCompletion struct {
	Project         *Project
	DurationSeconds float64
}

func (*ProjectCompletion) descriptor() protoreflect.MessageDescriptor {
	return projectCompletionDescriptor
}

func (x *ProjectCompletion) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	f.setNested("project", x.Project, x.Project == nil)
	f.setDouble("duration_seconds", x.DurationSeconds)
}

func (x *ProjectCompletion) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	p := new(Project)
	if f.getNested("project", p) {
		x.Project = p
	}
	x.DurationSeconds = f.getDouble("duration_seconds")
}

type CompletionReportResponse struct {
	Projects    []*ProjectCompletion
	TotalRaised string
}

func (*CompletionReportResponse) descriptor() protoreflect.MessageDescriptor {
	return completionReportResponseDescriptor
}

func (x *CompletionReportResponse) marshalTo(m protoreflect.Message) {
	f := fieldSet{m}
	for _, c := range x.Projects {
		f.appendNested("projects", c)
	}
	f.setString("total_raised", x.TotalRaised)
}

func (x *CompletionReportResponse) unmarshalFrom(m protoreflect.Message) {
	f := fieldSet{m}
	f.each("projects", func(cm protoreflect.Message) {
		c := new(ProjectCompletion)
		c.unmarshalFrom(cm)
		x.Projects = append(x.Projects, c)
	})
	x.TotalRaised = f.getString("total_raised")
}
