package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/chime/types"

	op "github.com/vietdv277/chimectl/internal/operation"
)

func accountOps() []*op.Descriptor {
	licenses := op.EnumValues(types.License("").Values())

	return []*op.Descriptor{
		chimeOp("CreateAccount", ChimeAPI.CreateAccount).
			Binding("POST", "/accounts").
			Describe("Create an Amazon Chime account under the caller's AWS account").
			With(op.Str("Name", op.Required, op.At(1), op.Piped, op.Help("account name"))).
			Select("Account").
			Confirm(op.ImpactLow, "Name"),

		chimeOp("GetAccount", ChimeAPI.GetAccount).
			Binding("GET", "/accounts/{accountId}").
			Describe("Show account details").
			With(accountID(op.At(1), op.Piped)).
			Select("Account"),

		chimeOp("ListAccounts", ChimeAPI.ListAccounts).
			Binding("GET", "/accounts").
			Describe("List Amazon Chime accounts").
			With(
				op.Str("Name", op.Help("filter by account name")),
				op.Str("UserEmail", op.Help("filter by a user's email address")),
			).
			With(paging()...).
			Select("Accounts"),

		chimeOp("UpdateAccount", ChimeAPI.UpdateAccount).
			Binding("POST", "/accounts/{accountId}").
			Describe("Rename an account or change its default license").
			With(
				accountID(op.At(1), op.Piped),
				op.Str("Name", op.Help("new account name")),
				op.Enum("DefaultLicense", licenses, op.Help("default license for new users")),
			).
			Select("Account").
			Confirm(op.ImpactMedium, "AccountId"),

		chimeOp("DeleteAccount", ChimeAPI.DeleteAccount).
			Binding("DELETE", "/accounts/{accountId}").
			Describe("Delete an account; Team accounts are removed, Enterprise accounts suspended").
			With(accountID(op.At(1), op.Piped)).
			Confirm(op.ImpactHigh, "AccountId"),

		chimeOp("GetAccountSettings", ChimeAPI.GetAccountSettings).
			Binding("GET", "/accounts/{accountId}/settings").
			Describe("Show remote control and dial-out settings of an account").
			With(accountID(op.At(1), op.Piped)).
			Select("AccountSettings"),

		chimeOp("UpdateAccountSettings", ChimeAPI.UpdateAccountSettings).
			Binding("PUT", "/accounts/{accountId}/settings").
			Describe("Update remote control and dial-out settings of an account").
			With(
				accountID(op.At(1), op.Piped),
				op.JSON("AccountSettings", op.Required, op.Help(`e.g. {"DisableRemoteControl":true,"EnableDialOut":false}`)),
			).
			Confirm(op.ImpactMedium, "AccountId"),
	}
}
