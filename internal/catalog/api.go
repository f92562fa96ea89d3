// Package catalog declares the Amazon Chime and Chime SDK Meetings operations
// the CLI exposes, one descriptor per operation.
package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/chime"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"
)

// Service keys the executor resolves clients by.
const (
	ServiceChime    = "chime"
	ServiceMeetings = "meetings"
)

// ChimeAPI is the subset of the Amazon Chime client the catalog calls.
type ChimeAPI interface {
	CreateAccount(ctx context.Context, params *chime.CreateAccountInput, optFns ...func(*chime.Options)) (*chime.CreateAccountOutput, error)
	GetAccount(ctx context.Context, params *chime.GetAccountInput, optFns ...func(*chime.Options)) (*chime.GetAccountOutput, error)
	ListAccounts(ctx context.Context, params *chime.ListAccountsInput, optFns ...func(*chime.Options)) (*chime.ListAccountsOutput, error)
	UpdateAccount(ctx context.Context, params *chime.UpdateAccountInput, optFns ...func(*chime.Options)) (*chime.UpdateAccountOutput, error)
	DeleteAccount(ctx context.Context, params *chime.DeleteAccountInput, optFns ...func(*chime.Options)) (*chime.DeleteAccountOutput, error)
	GetAccountSettings(ctx context.Context, params *chime.GetAccountSettingsInput, optFns ...func(*chime.Options)) (*chime.GetAccountSettingsOutput, error)
	UpdateAccountSettings(ctx context.Context, params *chime.UpdateAccountSettingsInput, optFns ...func(*chime.Options)) (*chime.UpdateAccountSettingsOutput, error)

	CreateUser(ctx context.Context, params *chime.CreateUserInput, optFns ...func(*chime.Options)) (*chime.CreateUserOutput, error)
	GetUser(ctx context.Context, params *chime.GetUserInput, optFns ...func(*chime.Options)) (*chime.GetUserOutput, error)
	ListUsers(ctx context.Context, params *chime.ListUsersInput, optFns ...func(*chime.Options)) (*chime.ListUsersOutput, error)
	UpdateUser(ctx context.Context, params *chime.UpdateUserInput, optFns ...func(*chime.Options)) (*chime.UpdateUserOutput, error)
	InviteUsers(ctx context.Context, params *chime.InviteUsersInput, optFns ...func(*chime.Options)) (*chime.InviteUsersOutput, error)
	ResetPersonalPIN(ctx context.Context, params *chime.ResetPersonalPINInput, optFns ...func(*chime.Options)) (*chime.ResetPersonalPINOutput, error)
	LogoutUser(ctx context.Context, params *chime.LogoutUserInput, optFns ...func(*chime.Options)) (*chime.LogoutUserOutput, error)
	BatchSuspendUser(ctx context.Context, params *chime.BatchSuspendUserInput, optFns ...func(*chime.Options)) (*chime.BatchSuspendUserOutput, error)
	BatchUnsuspendUser(ctx context.Context, params *chime.BatchUnsuspendUserInput, optFns ...func(*chime.Options)) (*chime.BatchUnsuspendUserOutput, error)

	CreateBot(ctx context.Context, params *chime.CreateBotInput, optFns ...func(*chime.Options)) (*chime.CreateBotOutput, error)
	GetBot(ctx context.Context, params *chime.GetBotInput, optFns ...func(*chime.Options)) (*chime.GetBotOutput, error)
	ListBots(ctx context.Context, params *chime.ListBotsInput, optFns ...func(*chime.Options)) (*chime.ListBotsOutput, error)
	UpdateBot(ctx context.Context, params *chime.UpdateBotInput, optFns ...func(*chime.Options)) (*chime.UpdateBotOutput, error)
	RegenerateSecurityToken(ctx context.Context, params *chime.RegenerateSecurityTokenInput, optFns ...func(*chime.Options)) (*chime.RegenerateSecurityTokenOutput, error)
	GetEventsConfiguration(ctx context.Context, params *chime.GetEventsConfigurationInput, optFns ...func(*chime.Options)) (*chime.GetEventsConfigurationOutput, error)
	PutEventsConfiguration(ctx context.Context, params *chime.PutEventsConfigurationInput, optFns ...func(*chime.Options)) (*chime.PutEventsConfigurationOutput, error)
	DeleteEventsConfiguration(ctx context.Context, params *chime.DeleteEventsConfigurationInput, optFns ...func(*chime.Options)) (*chime.DeleteEventsConfigurationOutput, error)

	CreateRoom(ctx context.Context, params *chime.CreateRoomInput, optFns ...func(*chime.Options)) (*chime.CreateRoomOutput, error)
	GetRoom(ctx context.Context, params *chime.GetRoomInput, optFns ...func(*chime.Options)) (*chime.GetRoomOutput, error)
	ListRooms(ctx context.Context, params *chime.ListRoomsInput, optFns ...func(*chime.Options)) (*chime.ListRoomsOutput, error)
	UpdateRoom(ctx context.Context, params *chime.UpdateRoomInput, optFns ...func(*chime.Options)) (*chime.UpdateRoomOutput, error)
	DeleteRoom(ctx context.Context, params *chime.DeleteRoomInput, optFns ...func(*chime.Options)) (*chime.DeleteRoomOutput, error)
	CreateRoomMembership(ctx context.Context, params *chime.CreateRoomMembershipInput, optFns ...func(*chime.Options)) (*chime.CreateRoomMembershipOutput, error)
	ListRoomMemberships(ctx context.Context, params *chime.ListRoomMembershipsInput, optFns ...func(*chime.Options)) (*chime.ListRoomMembershipsOutput, error)
	DeleteRoomMembership(ctx context.Context, params *chime.DeleteRoomMembershipInput, optFns ...func(*chime.Options)) (*chime.DeleteRoomMembershipOutput, error)

	GetPhoneNumber(ctx context.Context, params *chime.GetPhoneNumberInput, optFns ...func(*chime.Options)) (*chime.GetPhoneNumberOutput, error)
	ListPhoneNumbers(ctx context.Context, params *chime.ListPhoneNumbersInput, optFns ...func(*chime.Options)) (*chime.ListPhoneNumbersOutput, error)
	UpdatePhoneNumber(ctx context.Context, params *chime.UpdatePhoneNumberInput, optFns ...func(*chime.Options)) (*chime.UpdatePhoneNumberOutput, error)
	DeletePhoneNumber(ctx context.Context, params *chime.DeletePhoneNumberInput, optFns ...func(*chime.Options)) (*chime.DeletePhoneNumberOutput, error)
	RestorePhoneNumber(ctx context.Context, params *chime.RestorePhoneNumberInput, optFns ...func(*chime.Options)) (*chime.RestorePhoneNumberOutput, error)
	SearchAvailablePhoneNumbers(ctx context.Context, params *chime.SearchAvailablePhoneNumbersInput, optFns ...func(*chime.Options)) (*chime.SearchAvailablePhoneNumbersOutput, error)
	GetPhoneNumberSettings(ctx context.Context, params *chime.GetPhoneNumberSettingsInput, optFns ...func(*chime.Options)) (*chime.GetPhoneNumberSettingsOutput, error)
	UpdatePhoneNumberSettings(ctx context.Context, params *chime.UpdatePhoneNumberSettingsInput, optFns ...func(*chime.Options)) (*chime.UpdatePhoneNumberSettingsOutput, error)
	ListSupportedPhoneNumberCountries(ctx context.Context, params *chime.ListSupportedPhoneNumberCountriesInput, optFns ...func(*chime.Options)) (*chime.ListSupportedPhoneNumberCountriesOutput, error)

	GetGlobalSettings(ctx context.Context, params *chime.GetGlobalSettingsInput, optFns ...func(*chime.Options)) (*chime.GetGlobalSettingsOutput, error)
	GetRetentionSettings(ctx context.Context, params *chime.GetRetentionSettingsInput, optFns ...func(*chime.Options)) (*chime.GetRetentionSettingsOutput, error)
}

// MeetingsAPI is the subset of the Chime SDK Meetings client the catalog calls.
type MeetingsAPI interface {
	CreateMeeting(ctx context.Context, params *chimesdkmeetings.CreateMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateMeetingOutput, error)
	GetMeeting(ctx context.Context, params *chimesdkmeetings.GetMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetMeetingOutput, error)
	DeleteMeeting(ctx context.Context, params *chimesdkmeetings.DeleteMeetingInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteMeetingOutput, error)
	CreateAttendee(ctx context.Context, params *chimesdkmeetings.CreateAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.CreateAttendeeOutput, error)
	GetAttendee(ctx context.Context, params *chimesdkmeetings.GetAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.GetAttendeeOutput, error)
	DeleteAttendee(ctx context.Context, params *chimesdkmeetings.DeleteAttendeeInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.DeleteAttendeeOutput, error)
	ListAttendees(ctx context.Context, params *chimesdkmeetings.ListAttendeesInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.ListAttendeesOutput, error)
	StartMeetingTranscription(ctx context.Context, params *chimesdkmeetings.StartMeetingTranscriptionInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.StartMeetingTranscriptionOutput, error)
	StopMeetingTranscription(ctx context.Context, params *chimesdkmeetings.StopMeetingTranscriptionInput, optFns ...func(*chimesdkmeetings.Options)) (*chimesdkmeetings.StopMeetingTranscriptionOutput, error)
}

// Compile-time checks that the SDK clients satisfy the interfaces
var (
	_ ChimeAPI    = (*chime.Client)(nil)
	_ MeetingsAPI = (*chimesdkmeetings.Client)(nil)
)
