package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/chime"
	chimetypes "github.com/aws/aws-sdk-go-v2/service/chime/types"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
	meetingtypes "github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings/types"
	"github.com/aws/smithy-go"

	"github.com/vietdv277/chimectl/internal/invoke"
	"github.com/vietdv277/chimectl/internal/operation"
)

func TestRegistryAcceptsCatalog(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}
	if got, want := len(reg.List()), len(Descriptors()); got != want {
		t.Fatalf("registered %d operations, want %d", got, want)
	}
	if got := reg.Services(); len(got) != 2 || got[0] != ServiceChime || got[1] != ServiceMeetings {
		t.Fatalf("Services() = %v", got)
	}
}

func TestCatalogCoversOperations(t *testing.T) {
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}

	want := map[string][]string{
		ServiceChime: {
			"CreateAccount", "GetAccount", "ListAccounts", "UpdateAccount", "DeleteAccount",
			"GetAccountSettings", "UpdateAccountSettings",
			"CreateUser", "GetUser", "ListUsers", "UpdateUser", "InviteUsers", "ResetPersonalPIN",
			"LogoutUser", "BatchSuspendUser", "BatchUnsuspendUser",
			"CreateBot", "GetBot", "ListBots", "UpdateBot", "RegenerateSecurityToken",
			"GetEventsConfiguration", "PutEventsConfiguration", "DeleteEventsConfiguration",
			"CreateRoom", "GetRoom", "ListRooms", "UpdateRoom", "DeleteRoom",
			"CreateRoomMembership", "ListRoomMemberships", "DeleteRoomMembership",
			"GetPhoneNumber", "ListPhoneNumbers", "UpdatePhoneNumber", "DeletePhoneNumber",
			"RestorePhoneNumber", "SearchAvailablePhoneNumbers", "GetPhoneNumberSettings",
			"UpdatePhoneNumberSettings", "ListSupportedPhoneNumberCountries",
			"GetGlobalSettings", "GetRetentionSettings",
		},
		ServiceMeetings: {
			"CreateMeeting", "GetMeeting", "DeleteMeeting",
			"CreateAttendee", "GetAttendee", "DeleteAttendee", "ListAttendees",
			"StartMeetingTranscription", "StopMeetingTranscription",
		},
	}
	for service, names := range want {
		for _, name := range names {
			if _, err := reg.Lookup(service, name); err != nil {
				t.Errorf("Lookup(%s, %s): %v", service, name, err)
			}
		}
	}
}

func TestDefaultSelectsMatchResponses(t *testing.T) {
	for _, d := range Descriptors() {
		sel, err := invoke.ParseSelect("", d)
		if err != nil {
			t.Errorf("%s: ParseSelect: %v", d.Name, err)
			continue
		}
		if err := sel.Check(d.ResponseType()); err != nil {
			t.Errorf("%s: default select %q: %v", d.Name, d.SelectOrDefault(), err)
		}
	}
}

func TestDestructiveOperationsConfirm(t *testing.T) {
	for _, d := range Descriptors() {
		if d.Method == "DELETE" && d.Impact != operation.ImpactHigh {
			t.Errorf("%s: DELETE binding with impact %s", d.Name, d.Impact)
		}
		if d.Impact != operation.ImpactNone && d.Target == "" {
			t.Errorf("%s: impact %s without confirmation target", d.Name, d.Impact)
		}
	}
}

type fakeChime struct {
	ChimeAPI
	getAccount  []*chime.GetAccountInput
	deleteCalls int
	err         error
}

func (f *fakeChime) GetAccount(ctx context.Context, in *chime.GetAccountInput, _ ...func(*chime.Options)) (*chime.GetAccountOutput, error) {
	f.getAccount = append(f.getAccount, in)
	if f.err != nil {
		return nil, f.err
	}
	return &chime.GetAccountOutput{Account: &chimetypes.Account{
		AccountId: in.AccountId,
		Name:      aws.String("acme"),
	}}, nil
}

func (f *fakeChime) DeleteAccount(ctx context.Context, in *chime.DeleteAccountInput, _ ...func(*chime.Options)) (*chime.DeleteAccountOutput, error) {
	f.deleteCalls++
	return &chime.DeleteAccountOutput{}, nil
}

type fakeMeetings struct {
	MeetingsAPI
	created *chimesdkmeetings.CreateAttendeeInput
}

func (f *fakeMeetings) CreateAttendee(ctx context.Context, in *chimesdkmeetings.CreateAttendeeInput, _ ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error) {
	f.created = in
	return &chimesdkmeetings.CreateAttendeeOutput{Attendee: &meetingtypes.Attendee{
		AttendeeId:     aws.String("att-1"),
		ExternalUserId: in.ExternalUserId,
		JoinToken:      aws.String("token"),
	}}, nil
}

type answer bool

func (a answer) Confirm(string, string) (bool, error) { return bool(a), nil }

func lookup(t *testing.T, service, name string) *operation.Descriptor {
	t.Helper()
	reg, err := Registry()
	if err != nil {
		t.Fatalf("Registry() error = %v", err)
	}
	d, err := reg.Lookup(service, name)
	if err != nil {
		t.Fatalf("Lookup(%s, %s) error = %v", service, name, err)
	}
	return d
}

func TestGetAccountThroughExecutor(t *testing.T) {
	fake := &fakeChime{}
	exec := &invoke.Executor{Clients: map[string]any{ServiceChime: fake}}

	res := exec.Invoke(context.Background(), invoke.Invocation{
		Descriptor: lookup(t, ServiceChime, "get-account"),
		Bound:      map[string]any{"AccountId": "acct-1"},
		Select:     "Account.Name",
	})
	if res.State != invoke.StateSucceeded {
		t.Fatalf("state = %s, err = %v", res.State, res.Err)
	}
	if len(fake.getAccount) != 1 {
		t.Fatalf("GetAccount called %d times, want 1", len(fake.getAccount))
	}
	if got := aws.ToString(fake.getAccount[0].AccountId); got != "acct-1" {
		t.Errorf("AccountId = %q", got)
	}
	if name, _ := res.Output.(*string); aws.ToString(name) != "acme" {
		t.Errorf("Output = %v, want acme", res.Output)
	}
}

func TestServiceErrorIsClassified(t *testing.T) {
	fake := &fakeChime{err: &smithy.GenericAPIError{Code: "NotFoundException", Message: "account not found"}}
	exec := &invoke.Executor{Clients: map[string]any{ServiceChime: fake}}

	res := exec.Invoke(context.Background(), invoke.Invocation{
		Descriptor: lookup(t, ServiceChime, "GetAccount"),
		Bound:      map[string]any{"AccountId": "missing"},
	})
	if res.State != invoke.StateFailed {
		t.Fatalf("state = %s, want failed", res.State)
	}
	if res.Err.Kind != invoke.KindService || res.Err.Code != "NotFoundException" {
		t.Errorf("err = %+v", res.Err)
	}
	if !errors.Is(res.Err, fake.err) {
		t.Errorf("error chain lost the service error")
	}
}

func TestDeleteAccountDeclined(t *testing.T) {
	fake := &fakeChime{}
	exec := &invoke.Executor{
		Clients:   map[string]any{ServiceChime: fake},
		Confirmer: answer(false),
		Threshold: operation.ImpactHigh,
	}

	res := exec.Invoke(context.Background(), invoke.Invocation{
		Descriptor: lookup(t, ServiceChime, "DeleteAccount"),
		Bound:      map[string]any{"AccountId": "acct-1"},
	})
	if res.State != invoke.StateDeclined {
		t.Fatalf("state = %s, want declined", res.State)
	}
	if fake.deleteCalls != 0 {
		t.Errorf("DeleteAccount called %d times after decline", fake.deleteCalls)
	}
}

func TestCreateAttendeeBindsCapabilities(t *testing.T) {
	fake := &fakeMeetings{}
	exec := &invoke.Executor{Clients: map[string]any{ServiceMeetings: fake}}

	res := exec.Invoke(context.Background(), invoke.Invocation{
		Descriptor: lookup(t, ServiceMeetings, "CreateAttendee"),
		Bound: map[string]any{
			"MeetingId":      "m-1",
			"ExternalUserId": "alice",
			"Capabilities":   `{"Audio":"SendReceive","Video":"Receive","Content":"None"}`,
		},
		Select: "Attendee.AttendeeId",
	})
	if res.State != invoke.StateSucceeded {
		t.Fatalf("state = %s, err = %v", res.State, res.Err)
	}
	caps := fake.created.Capabilities
	if caps == nil || caps.Audio != meetingtypes.MediaCapabilitiesSendReceive || caps.Video != meetingtypes.MediaCapabilitiesReceive {
		t.Errorf("Capabilities = %+v", caps)
	}
	if id, _ := res.Output.(*string); aws.ToString(id) != "att-1" {
		t.Errorf("Output = %v, want att-1", res.Output)
	}
}
