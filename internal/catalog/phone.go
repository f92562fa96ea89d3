package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/chime/types"

	op "github.com/vietdv277/chimectl/internal/operation"
)

func phoneNumberID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("phone number ID (E.164)")}, opts...)
	return op.Str("PhoneNumberId", opts...)
}

func phoneNumberOps() []*op.Descriptor {
	products := op.EnumValues(types.PhoneNumberProductType("").Values())

	return []*op.Descriptor{
		chimeOp("GetPhoneNumber", ChimeAPI.GetPhoneNumber).
			Binding("GET", "/phone-numbers/{phoneNumberId}").
			Describe("Show a phone number's details and associations").
			With(phoneNumberID(op.At(1), op.Piped)).
			Select("PhoneNumber"),

		chimeOp("ListPhoneNumbers", ChimeAPI.ListPhoneNumbers).
			Binding("GET", "/phone-numbers").
			Describe("List the phone numbers of the AWS account").
			With(
				op.Enum("Status", op.EnumValues(types.PhoneNumberStatus("").Values()), op.Help("filter by status")),
				op.Enum("ProductType", products, op.Help("filter by product type")),
				op.Enum("FilterName", op.EnumValues(types.PhoneNumberAssociationName("").Values()), op.Help("association to filter by")),
				op.Str("FilterValue", op.Help("value of the association filter")),
			).
			With(paging()...).
			Select("PhoneNumbers"),

		chimeOp("UpdatePhoneNumber", ChimeAPI.UpdatePhoneNumber).
			Binding("POST", "/phone-numbers/{phoneNumberId}").
			Describe("Change a phone number's product type or outbound calling name").
			With(
				phoneNumberID(op.At(1), op.Piped),
				op.Enum("ProductType", products, op.Help("product type")),
				op.Str("CallingName", op.Help("outbound calling name")),
			).
			Select("PhoneNumber").
			Confirm(op.ImpactMedium, "PhoneNumberId"),

		chimeOp("DeletePhoneNumber", ChimeAPI.DeletePhoneNumber).
			Binding("DELETE", "/phone-numbers/{phoneNumberId}").
			Describe("Move a phone number to the deletion queue").
			With(phoneNumberID(op.At(1), op.Piped)).
			Confirm(op.ImpactHigh, "PhoneNumberId"),

		chimeOp("RestorePhoneNumber", ChimeAPI.RestorePhoneNumber).
			Binding("POST", "/phone-numbers/{phoneNumberId}?operation=restore").
			Describe("Take a deleted phone number out of the deletion queue").
			With(phoneNumberID(op.At(1), op.Piped)).
			Select("PhoneNumber").
			Confirm(op.ImpactMedium, "PhoneNumberId"),

		chimeOp("SearchAvailablePhoneNumbers", ChimeAPI.SearchAvailablePhoneNumbers).
			Binding("GET", "/search?type=phone-numbers").
			Describe("Search phone numbers available for ordering").
			With(
				op.Str("AreaCode", op.Help("area code")),
				op.Str("City", op.Help("city")),
				op.Str("Country", op.Help("ISO country code")),
				op.Str("State", op.Help("state")),
				op.Str("TollFreePrefix", op.Help("toll-free prefix")),
				op.Enum("PhoneNumberType", op.EnumValues(types.PhoneNumberType("").Values()), op.Help("local or toll-free")),
			).
			With(paging()...).
			Select("E164PhoneNumbers"),

		chimeOp("GetPhoneNumberSettings", ChimeAPI.GetPhoneNumberSettings).
			Binding("GET", "/settings/phone-number").
			Describe("Show the default outbound calling name"),

		chimeOp("UpdatePhoneNumberSettings", ChimeAPI.UpdatePhoneNumberSettings).
			Binding("PUT", "/settings/phone-number").
			Describe("Set the default outbound calling name").
			With(op.Str("CallingName", op.Required, op.At(1), op.Help("default outbound calling name"))).
			Confirm(op.ImpactMedium, "CallingName"),

		chimeOp("ListSupportedPhoneNumberCountries", ChimeAPI.ListSupportedPhoneNumberCountries).
			Binding("GET", "/phone-number-countries").
			Describe("List the countries phone numbers can be ordered from").
			With(op.Enum("ProductType", products, op.Required, op.At(1), op.Help("product type"))).
			Select("PhoneNumberCountries"),
	}
}

func settingsOps() []*op.Descriptor {
	return []*op.Descriptor{
		chimeOp("GetGlobalSettings", ChimeAPI.GetGlobalSettings).
			Binding("GET", "/settings").
			Describe("Show Business Calling and Voice Connector settings"),

		chimeOp("GetRetentionSettings", ChimeAPI.GetRetentionSettings).
			Binding("GET", "/accounts/{accountId}/retention-settings").
			Describe("Show chat retention settings of an account").
			With(accountID(op.At(1), op.Piped)).
			Select("RetentionSettings"),
	}
}
