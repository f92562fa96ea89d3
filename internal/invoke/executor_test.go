package invoke

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aws/smithy-go"

	"github.com/vietdv277/chimectl/internal/operation"
)

type roomOptions struct{}

type roomRole string

type roomSettings struct {
	Muted bool `json:"muted"`
}

type updateRoomInput struct {
	AccountId *string
	RoomId    *string
	Name      *string
	Capacity  *int32
	Archived  *bool
	Members   []string
	Role      roomRole
	OpensAt   *time.Time
	Settings  *roomSettings
}

type room struct {
	RoomId *string
	Name   *string
}

type updateRoomOutput struct {
	Room      *room
	Members   []room
	Labels    map[string]string
	NextToken *string
}

type roomAPI interface {
	UpdateRoom(ctx context.Context, in *updateRoomInput, optFns ...func(*roomOptions)) (*updateRoomOutput, error)
}

type fakeRooms struct {
	calls int
	last  *updateRoomInput
	err   error
}

func (f *fakeRooms) UpdateRoom(ctx context.Context, in *updateRoomInput, optFns ...func(*roomOptions)) (*updateRoomOutput, error) {
	f.calls++
	f.last = in
	if f.err != nil {
		return nil, f.err
	}
	id := "room-1"
	if in.RoomId != nil {
		id = *in.RoomId
	}
	return &updateRoomOutput{Room: &room{RoomId: &id, Name: in.Name}}, nil
}

type scriptedConfirmer struct {
	answer  bool
	targets []string
}

func (c *scriptedConfirmer) Confirm(op, target string) (bool, error) {
	c.targets = append(c.targets, target)
	return c.answer, nil
}

func roomDescriptor() *operation.Descriptor {
	return operation.New("rooms", "UpdateRoom", roomAPI.UpdateRoom).
		With(
			operation.Str("AccountId", operation.Required, operation.At(1)),
			operation.Str("RoomId", operation.Required, operation.At(2), operation.Piped),
			operation.Str("Name"),
			operation.Int("Capacity"),
			operation.Bool("Archived"),
			operation.List("Members"),
			operation.Enum("Role", []string{"Administrator", "Member"}),
			operation.Time("OpensAt"),
			operation.JSON("Settings"),
		).
		Select("Room").
		Confirm(operation.ImpactMedium, "RoomId")
}

func newExecutor(client any) *Executor {
	return &Executor{
		Clients:   map[string]any{"rooms": client},
		Region:    "us-east-1",
		Threshold: operation.ImpactHigh,
	}
}

func TestInvoke_RequestHoldsExactlyBoundFields(t *testing.T) {
	fake := &fakeRooms{}
	res := newExecutor(fake).Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound: map[string]any{
			"AccountId": "acct",
			"RoomId":    "r-9",
			"Capacity":  int32(12),
			"Members":   []string{"a", "b"},
			"Role":      "member",
			"OpensAt":   "2026-01-02T03:04:05Z",
			"Settings":  `{"muted": true}`,
		},
	})

	if res.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s (%v)", res.State, res.Err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected one remote call, got %d", fake.calls)
	}

	req := fake.last
	if *req.AccountId != "acct" || *req.RoomId != "r-9" || *req.Capacity != 12 {
		t.Fatalf("scalar fields not bound: %+v", req)
	}
	if !reflect.DeepEqual(req.Members, []string{"a", "b"}) {
		t.Fatalf("members not bound: %v", req.Members)
	}
	if req.Role != "Member" {
		t.Fatalf("enum value not canonicalised: %q", req.Role)
	}
	if !req.OpensAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)) {
		t.Fatalf("timestamp not bound: %v", req.OpensAt)
	}
	if req.Settings == nil || !req.Settings.Muted {
		t.Fatalf("json field not bound: %+v", req.Settings)
	}
	if req.Name != nil || req.Archived != nil {
		t.Fatalf("unbound fields must stay nil: name=%v archived=%v", req.Name, req.Archived)
	}
	if res.Request != any(req) {
		t.Fatalf("result must carry the request that was sent")
	}
}

func TestInvoke_RequiredUnboundWarnsAndProceeds(t *testing.T) {
	fake := &fakeRooms{}
	res := newExecutor(fake).Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound:      map[string]any{"Name": "standup"},
	})

	if res.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s (%v)", res.State, res.Err)
	}
	if fake.calls != 1 {
		t.Fatalf("expected the call to go ahead, got %d calls", fake.calls)
	}
	want := []string{RequiredWarning("AccountId"), RequiredWarning("RoomId")}
	if !reflect.DeepEqual(res.Warnings, want) {
		t.Fatalf("got warnings %q, want %q", res.Warnings, want)
	}
	if fake.last.AccountId != nil || fake.last.RoomId != nil {
		t.Fatalf("unbound required fields must not be initialised")
	}
}

func TestInvoke_Select(t *testing.T) {
	bound := map[string]any{"AccountId": "acct", "RoomId": "r-9", "Name": "standup"}

	cases := []struct {
		sel   string
		check func(t *testing.T, out any)
	}{
		{"*", func(t *testing.T, out any) {
			if _, ok := out.(*updateRoomOutput); !ok {
				t.Fatalf("expected full response, got %T", out)
			}
		}},
		{"", func(t *testing.T, out any) {
			r, ok := out.(*room)
			if !ok || *r.RoomId != "r-9" {
				t.Fatalf("default select should return Room, got %#v", out)
			}
		}},
		{"room.name", func(t *testing.T, out any) {
			s, ok := out.(*string)
			if !ok || *s != "standup" {
				t.Fatalf("expected nested field, got %#v", out)
			}
		}},
		{"NextToken", func(t *testing.T, out any) {
			if s, ok := out.(*string); !ok || s != nil {
				t.Fatalf("expected nil *string, got %#v", out)
			}
		}},
		{"^RoomId", func(t *testing.T, out any) {
			if out != "r-9" {
				t.Fatalf("expected echoed input, got %#v", out)
			}
		}},
		{"^capacity", func(t *testing.T, out any) {
			if out != nil {
				t.Fatalf("echo of unbound param should be nil, got %#v", out)
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.sel, func(t *testing.T) {
			fake := &fakeRooms{}
			res := newExecutor(fake).Invoke(context.Background(), Invocation{
				Descriptor: roomDescriptor(),
				Bound:      bound,
				Select:     tc.sel,
			})
			if res.State != StateSucceeded {
				t.Fatalf("expected succeeded, got %s (%v)", res.State, res.Err)
			}
			if fake.calls != 1 {
				t.Fatalf("expected exactly one call, got %d", fake.calls)
			}
			tc.check(t, res.Output)
		})
	}
}

func TestInvoke_SelectEchoByFlagName(t *testing.T) {
	fake := &fakeRooms{}
	res := newExecutor(fake).Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound:      map[string]any{"account-id": "acct", "room-id": "r-9"},
		Select:     "^RoomId",
		Force:      true,
	})
	if res.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s (%v)", res.State, res.Err)
	}
	if fake.last == nil || fake.last.RoomId == nil || *fake.last.RoomId != "r-9" {
		t.Fatalf("room id not bound: %+v", fake.last)
	}
	if res.Output != "r-9" {
		t.Fatalf("expected echoed input, got %#v", res.Output)
	}
}

func TestSelectorCheckStopsAtMaps(t *testing.T) {
	sel, err := ParseSelect("Labels.team", roomDescriptor())
	if err != nil {
		t.Fatal(err)
	}
	if err := sel.Check(reflect.TypeOf(&updateRoomOutput{})); err != nil {
		t.Fatalf("map path rejected: %v", err)
	}
}

func TestInvoke_InvalidSelectFailsBeforeCall(t *testing.T) {
	for _, sel := range []string{"Missing", "^Nope", "Room..Name", "^",
		"Room.RoomId.Foo", "Members.RoomId", "NextToken.Len"} {
		fake := &fakeRooms{}
		res := newExecutor(fake).Invoke(context.Background(), Invocation{
			Descriptor: roomDescriptor(),
			Bound:      map[string]any{"RoomId": "r"},
			Select:     sel,
		})
		if res.State != StateFailed || res.Err.Kind != KindValidation {
			t.Fatalf("%q: expected validation failure, got %s %v", sel, res.State, res.Err)
		}
		if !errors.Is(res.Err, ErrInvalidSelect) {
			t.Fatalf("%q: expected ErrInvalidSelect, got %v", sel, res.Err)
		}
		if fake.calls != 0 {
			t.Fatalf("%q: no call expected, got %d", sel, fake.calls)
		}
	}
}

func TestInvoke_BindingErrors(t *testing.T) {
	cases := map[string]map[string]any{
		"unknown parameter": {"Bogus": "x"},
		"bad int":           {"Capacity": "lots"},
		"int overflow":      {"Capacity": int64(1) << 40},
		"bad bool":          {"Archived": "maybe"},
		"bad timestamp":     {"OpensAt": "yesterday"},
		"bad json":          {"Settings": "{"},
	}
	for name, bound := range cases {
		t.Run(name, func(t *testing.T) {
			fake := &fakeRooms{}
			res := newExecutor(fake).Invoke(context.Background(), Invocation{
				Descriptor: roomDescriptor(),
				Bound:      bound,
			})
			if res.State != StateFailed || res.Err == nil || res.Err.Kind != KindValidation {
				t.Fatalf("expected validation failure, got %s %v", res.State, res.Err)
			}
			if fake.calls != 0 {
				t.Fatalf("no call expected, got %d", fake.calls)
			}
		})
	}
}

func TestInvoke_NameResolutionRewritten(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "chime.nowhere-1.amazonaws.com", IsNotFound: true}
	transport := &smithy.OperationError{
		ServiceID:     "Chime",
		OperationName: "UpdateRoom",
		Err:           &url.Error{Op: "Post", URL: "https://chime.nowhere-1.amazonaws.com/", Err: &net.OpError{Op: "dial", Net: "tcp", Err: dnsErr}},
	}
	fake := &fakeRooms{err: transport}

	exec := newExecutor(fake)
	exec.Region = "nowhere-1"
	res := exec.Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound:      map[string]any{"AccountId": "a", "RoomId": "r"},
	})

	if res.State != StateFailed {
		t.Fatalf("expected failed, got %s", res.State)
	}
	if res.Err.Kind != KindNameResolution {
		t.Fatalf("expected name-resolution kind, got %s", res.Err.Kind)
	}
	if res.Err.Message != NameResolutionMessage("chime.nowhere-1.amazonaws.com", "nowhere-1") {
		t.Fatalf("message not rewritten: %q", res.Err.Message)
	}
	if !errors.Is(res.Err, ErrNameResolution) {
		t.Fatalf("expected errors.Is ErrNameResolution")
	}
	var got *net.DNSError
	if !errors.As(res.Err, &got) {
		t.Fatalf("original DNS error must stay reachable")
	}
	if fake.calls != 1 {
		t.Fatalf("expected one call, got %d", fake.calls)
	}
}

func TestClassify(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "NotFoundException", Message: "room not found"}
	wrapped := &smithy.OperationError{ServiceID: "Chime", OperationName: "GetRoom", Err: apiErr}

	ie := Classify("GetRoom", "us-east-1", wrapped)
	if ie.Kind != KindService || ie.Code != "NotFoundException" || ie.Message != "room not found" {
		t.Fatalf("unexpected classification: %+v", ie)
	}
	if !strings.Contains(ie.Error(), "NotFoundException") {
		t.Fatalf("error text should carry the code: %s", ie.Error())
	}

	ie = Classify("GetRoom", "us-east-1", fmt.Errorf("send: %w", context.Canceled))
	if ie.Kind != KindCanceled || !errors.Is(ie, context.Canceled) {
		t.Fatalf("expected canceled, got %+v", ie)
	}

	ie = Classify("GetRoom", "us-east-1", errors.New("connection reset"))
	if ie.Kind != KindTransport {
		t.Fatalf("expected transport, got %+v", ie)
	}

	if Classify("GetRoom", "", nil) != nil {
		t.Fatalf("nil error must classify to nil")
	}
}

func TestInvoke_Confirmation(t *testing.T) {
	d := roomDescriptor().Confirm(operation.ImpactHigh, "RoomId")
	bound := map[string]any{"AccountId": "a", "RoomId": "r-7"}

	t.Run("declined makes no call", func(t *testing.T) {
		fake := &fakeRooms{}
		conf := &scriptedConfirmer{answer: false}
		exec := newExecutor(fake)
		exec.Confirmer = conf

		res := exec.Invoke(context.Background(), Invocation{Descriptor: d, Bound: bound})
		if res.State != StateDeclined || res.Err != nil {
			t.Fatalf("expected declined, got %s %v", res.State, res.Err)
		}
		if fake.calls != 0 {
			t.Fatalf("no call expected, got %d", fake.calls)
		}
		if len(conf.targets) != 1 || conf.targets[0] != "r-7" {
			t.Fatalf("unexpected confirm targets %v", conf.targets)
		}
	})

	t.Run("force skips prompt", func(t *testing.T) {
		fake := &fakeRooms{}
		conf := &scriptedConfirmer{answer: false}
		exec := newExecutor(fake)
		exec.Confirmer = conf

		res := exec.Invoke(context.Background(), Invocation{Descriptor: d, Bound: bound, Force: true})
		if res.State != StateSucceeded || fake.calls != 1 || len(conf.targets) != 0 {
			t.Fatalf("force should bypass confirmation: %s calls=%d prompts=%d", res.State, fake.calls, len(conf.targets))
		}
	})

	t.Run("below threshold skips prompt", func(t *testing.T) {
		fake := &fakeRooms{}
		conf := &scriptedConfirmer{answer: false}
		exec := newExecutor(fake)
		exec.Confirmer = conf

		res := exec.Invoke(context.Background(), Invocation{Descriptor: roomDescriptor(), Bound: bound})
		if res.State != StateSucceeded || len(conf.targets) != 0 {
			t.Fatalf("medium impact under high threshold should not prompt: %s %v", res.State, conf.targets)
		}
	})
}

type mapResolver map[string]string

func (m mapResolver) Resolve(ctx context.Context, scheme, key string) (string, error) {
	v, ok := m[scheme+":"+key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func TestInvoke_ResolvesReferences(t *testing.T) {
	fake := &fakeRooms{}
	exec := newExecutor(fake)
	exec.Resolver = mapResolver{"ssm:/rooms/name": "secret-room", "secretsmanager:members": "x"}

	res := exec.Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound: map[string]any{
			"RoomId":  "r",
			"Name":    "{{resolve:ssm:/rooms/name}}",
			"Members": []string{"plain", "{{resolve:secretsmanager:members}}"},
		},
		Select: "^Name",
	})
	if res.State != StateSucceeded {
		t.Fatalf("expected succeeded, got %s %v", res.State, res.Err)
	}
	if *fake.last.Name != "secret-room" {
		t.Fatalf("reference not resolved: %q", *fake.last.Name)
	}
	if !reflect.DeepEqual(fake.last.Members, []string{"plain", "x"}) {
		t.Fatalf("list reference not resolved: %v", fake.last.Members)
	}
	if res.Output != "{{resolve:ssm:/rooms/name}}" {
		t.Fatalf("echo must return the value as supplied, got %#v", res.Output)
	}

	fake = &fakeRooms{}
	exec = newExecutor(fake)
	exec.Resolver = mapResolver{}
	res = exec.Invoke(context.Background(), Invocation{
		Descriptor: roomDescriptor(),
		Bound:      map[string]any{"Name": "{{resolve:ssm:/missing}}"},
	})
	if res.State != StateFailed || !errors.Is(res.Err, ErrUnresolvedRef) {
		t.Fatalf("expected unresolved reference failure, got %s %v", res.State, res.Err)
	}
	if fake.calls != 0 {
		t.Fatalf("no call expected, got %d", fake.calls)
	}
}

func TestInvoke_MissingClient(t *testing.T) {
	exec := &Executor{Clients: map[string]any{}}
	res := exec.Invoke(context.Background(), Invocation{Descriptor: roomDescriptor()})
	if res.State != StateFailed || !errors.Is(res.Err, ErrNoClient) {
		t.Fatalf("expected ErrNoClient, got %s %v", res.State, res.Err)
	}
}

func TestParseReference(t *testing.T) {
	scheme, key, ok := ParseReference("{{resolve:secretsmanager:prod/bot-token}}")
	if !ok || scheme != "secretsmanager" || key != "prod/bot-token" {
		t.Fatalf("got %q %q %v", scheme, key, ok)
	}
	for _, s := range []string{"plain", "{{resolve:ssm}}", "prefix {{resolve:ssm:/x}}"} {
		if _, _, ok := ParseReference(s); ok {
			t.Fatalf("%q should not parse as a reference", s)
		}
	}
}
