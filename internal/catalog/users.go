package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/chime/types"

	op "github.com/vietdv277/chimectl/internal/operation"
)

func userID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("user ID")}, opts...)
	return op.Str("UserId", opts...)
}

func userOps() []*op.Descriptor {
	licenses := op.EnumValues(types.License("").Values())
	userTypes := op.EnumValues(types.UserType("").Values())

	return []*op.Descriptor{
		chimeOp("CreateUser", ChimeAPI.CreateUser).
			Binding("POST", "/accounts/{accountId}/users?operation=create").
			Describe("Create a user in an account").
			With(
				accountID(op.At(1)),
				op.Str("Email", op.Piped, op.Help("user email address")),
				op.Str("Username", op.Help("user name")),
				op.Enum("UserType", userTypes, op.Help("user type")),
			).
			Select("User"),

		chimeOp("GetUser", ChimeAPI.GetUser).
			Binding("GET", "/accounts/{accountId}/users/{userId}").
			Describe("Show user details").
			With(accountID(op.At(1)), userID(op.At(2), op.Piped)).
			Select("User"),

		chimeOp("ListUsers", ChimeAPI.ListUsers).
			Binding("GET", "/accounts/{accountId}/users").
			Describe("List the users of an account").
			With(
				accountID(op.At(1), op.Piped),
				op.Str("UserEmail", op.Help("filter by email address")),
				op.Enum("UserType", userTypes, op.Help("filter by user type")),
			).
			With(paging()...).
			Select("Users"),

		chimeOp("UpdateUser", ChimeAPI.UpdateUser).
			Binding("POST", "/accounts/{accountId}/users/{userId}").
			Describe("Change a user's license or type").
			With(
				accountID(op.At(1)),
				userID(op.At(2), op.Piped),
				op.Enum("LicenseType", licenses, op.Help("license type")),
				op.Enum("UserType", userTypes, op.Help("user type")),
				op.JSON("AlexaForBusinessMetadata", op.Help(`e.g. {"IsAlexaForBusinessEnabled":true}`)),
			).
			Select("User").
			Confirm(op.ImpactMedium, "UserId"),

		chimeOp("InviteUsers", ChimeAPI.InviteUsers).
			Binding("POST", "/accounts/{accountId}/users?operation=add").
			Describe("Send email invitations to join a Team account").
			With(
				accountID(op.At(1)),
				op.List("UserEmailList", op.Required, op.At(2), op.Help("comma-separated email addresses, at most 50")),
				op.Enum("UserType", userTypes, op.Help("user type")),
			).
			Select("Invites").
			Confirm(op.ImpactMedium, "AccountId"),

		chimeOp("ResetPersonalPIN", ChimeAPI.ResetPersonalPIN).
			Binding("POST", "/accounts/{accountId}/users/{userId}?operation=reset-personal-pin").
			Describe("Generate a new personal meeting PIN for a user").
			With(accountID(op.At(1)), userID(op.At(2), op.Piped)).
			Select("User").
			Confirm(op.ImpactHigh, "UserId"),

		chimeOp("LogoutUser", ChimeAPI.LogoutUser).
			Binding("POST", "/accounts/{accountId}/users/{userId}?operation=logout").
			Describe("Log a user out of all active sessions").
			With(accountID(op.At(1)), userID(op.At(2), op.Piped)).
			Confirm(op.ImpactMedium, "UserId"),

		chimeOp("BatchSuspendUser", ChimeAPI.BatchSuspendUser).
			Binding("POST", "/accounts/{accountId}/users?operation=suspend").
			Describe("Suspend up to 50 users of a Team or Enterprise account").
			With(
				accountID(op.At(1)),
				op.List("UserIdList", op.Required, op.At(2), op.Help("comma-separated user IDs")),
			).
			Select("UserErrors").
			Confirm(op.ImpactHigh, "AccountId"),

		chimeOp("BatchUnsuspendUser", ChimeAPI.BatchUnsuspendUser).
			Binding("POST", "/accounts/{accountId}/users?operation=unsuspend").
			Describe("Remove the suspension from up to 50 users").
			With(
				accountID(op.At(1)),
				op.List("UserIdList", op.Required, op.At(2), op.Help("comma-separated user IDs")),
			).
			Select("UserErrors").
			Confirm(op.ImpactMedium, "AccountId"),
	}
}
