package catalog

import (
	op "github.com/vietdv277/chimectl/internal/operation"
)

func botID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("bot ID")}, opts...)
	return op.Str("BotId", opts...)
}

func botOps() []*op.Descriptor {
	return []*op.Descriptor{
		chimeOp("CreateBot", ChimeAPI.CreateBot).
			Binding("POST", "/accounts/{accountId}/bots").
			Describe("Create a bot for an Enterprise account").
			With(
				accountID(op.At(1)),
				op.Str("DisplayName", op.Required, op.At(2), op.Piped, op.Help("bot display name")),
				op.Str("Domain", op.Help("domain of the Enterprise account")),
			).
			Select("Bot"),

		chimeOp("GetBot", ChimeAPI.GetBot).
			Binding("GET", "/accounts/{accountId}/bots/{botId}").
			Describe("Show bot details").
			With(accountID(op.At(1)), botID(op.At(2), op.Piped)).
			Select("Bot"),

		chimeOp("ListBots", ChimeAPI.ListBots).
			Binding("GET", "/accounts/{accountId}/bots").
			Describe("List the bots of an account").
			With(accountID(op.At(1), op.Piped)).
			With(paging()...).
			Select("Bots"),

		chimeOp("UpdateBot", ChimeAPI.UpdateBot).
			Binding("POST", "/accounts/{accountId}/bots/{botId}").
			Describe("Enable or disable a bot").
			With(
				accountID(op.At(1)),
				botID(op.At(2), op.Piped),
				op.Bool("Disabled", op.Help("stop the bot from running in the account")),
			).
			Select("Bot").
			Confirm(op.ImpactMedium, "BotId"),

		chimeOp("RegenerateSecurityToken", ChimeAPI.RegenerateSecurityToken).
			Binding("POST", "/accounts/{accountId}/bots/{botId}?operation=regenerate-security-token").
			Describe("Replace a bot's security token").
			With(accountID(op.At(1)), botID(op.At(2), op.Piped)).
			Select("Bot").
			Confirm(op.ImpactHigh, "BotId"),

		chimeOp("GetEventsConfiguration", ChimeAPI.GetEventsConfiguration).
			Binding("GET", "/accounts/{accountId}/bots/{botId}/events-configuration").
			Describe("Show where a bot's outgoing events are delivered").
			With(accountID(op.At(1)), botID(op.At(2), op.Piped)).
			Select("EventsConfiguration"),

		chimeOp("PutEventsConfiguration", ChimeAPI.PutEventsConfiguration).
			Binding("PUT", "/accounts/{accountId}/bots/{botId}/events-configuration").
			Describe("Deliver a bot's outgoing events to an HTTPS endpoint or Lambda function").
			With(
				accountID(op.At(1)),
				botID(op.At(2), op.Piped),
				op.Str("OutboundEventsHTTPSEndpoint", op.Help("HTTPS endpoint receiving events")),
				op.Str("LambdaFunctionArn", op.Help("Lambda function receiving events")),
			).
			Select("EventsConfiguration").
			Confirm(op.ImpactMedium, "BotId"),

		chimeOp("DeleteEventsConfiguration", ChimeAPI.DeleteEventsConfiguration).
			Binding("DELETE", "/accounts/{accountId}/bots/{botId}/events-configuration").
			Describe("Stop delivering a bot's outgoing events").
			With(accountID(op.At(1)), botID(op.At(2), op.Piped)).
			Confirm(op.ImpactHigh, "BotId"),
	}
}
