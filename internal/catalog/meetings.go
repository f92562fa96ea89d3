package catalog

import (
	op "github.com/vietdv277/chimectl/internal/operation"
)

func meetingID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("meeting ID")}, opts...)
	return op.Str("MeetingId", opts...)
}

func attendeeID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("attendee ID")}, opts...)
	return op.Str("AttendeeId", opts...)
}

func meetingOps() []*op.Descriptor {
	return []*op.Descriptor{
		meetingsOp("CreateMeeting", MeetingsAPI.CreateMeeting).
			Binding("POST", "/meetings").
			Describe("Create a Chime SDK meeting").
			With(
				op.Str("ExternalMeetingId", op.Required, op.At(1), op.Piped, op.Help("your identifier for the meeting")),
				op.Str("MediaRegion", op.Required, op.Help("region hosting the media, e.g. us-east-1")),
				op.Str("ClientRequestToken", op.Help("idempotency token, generated when omitted")),
				op.Str("MeetingHostId", op.Help("reserved")),
				op.Str("PrimaryMeetingId", op.Help("ID of the meeting this one replicates")),
				op.List("TenantIds", op.Help("comma-separated tenant IDs")),
				op.JSON("MeetingFeatures", op.Help(`e.g. {"Audio":{"EchoReduction":"AVAILABLE"}}`)),
				op.JSON("NotificationsConfiguration", op.Help(`e.g. {"SnsTopicArn":"arn:aws:sns:..."}`)),
				op.JSON("Tags", op.Help(`e.g. [{"Key":"team","Value":"ops"}]`)),
			).
			Select("Meeting"),

		meetingsOp("GetMeeting", MeetingsAPI.GetMeeting).
			Binding("GET", "/meetings/{MeetingId}").
			Describe("Show meeting details").
			With(meetingID(op.At(1), op.Piped)).
			Select("Meeting"),

		meetingsOp("DeleteMeeting", MeetingsAPI.DeleteMeeting).
			Binding("DELETE", "/meetings/{MeetingId}").
			Describe("End a meeting and disconnect every attendee").
			With(meetingID(op.At(1), op.Piped)).
			Confirm(op.ImpactHigh, "MeetingId"),

		meetingsOp("CreateAttendee", MeetingsAPI.CreateAttendee).
			Binding("POST", "/meetings/{MeetingId}/attendees").
			Describe("Add an attendee to a meeting").
			With(
				meetingID(op.At(1)),
				op.Str("ExternalUserId", op.Required, op.At(2), op.Piped, op.Help("your identifier for the attendee")),
				op.JSON("Capabilities", op.Help(`e.g. {"Audio":"SendReceive","Video":"Receive","Content":"None"}`)),
			).
			Select("Attendee"),

		meetingsOp("GetAttendee", MeetingsAPI.GetAttendee).
			Binding("GET", "/meetings/{MeetingId}/attendees/{AttendeeId}").
			Describe("Show attendee details").
			With(meetingID(op.At(1)), attendeeID(op.At(2), op.Piped)).
			Select("Attendee"),

		meetingsOp("DeleteAttendee", MeetingsAPI.DeleteAttendee).
			Binding("DELETE", "/meetings/{MeetingId}/attendees/{AttendeeId}").
			Describe("Remove an attendee and revoke its join token").
			With(meetingID(op.At(1)), attendeeID(op.At(2), op.Piped)).
			Confirm(op.ImpactHigh, "AttendeeId"),

		meetingsOp("ListAttendees", MeetingsAPI.ListAttendees).
			Binding("GET", "/meetings/{MeetingId}/attendees").
			Describe("List the attendees of a meeting").
			With(meetingID(op.At(1), op.Piped)).
			With(paging()...).
			Select("Attendees"),

		meetingsOp("StartMeetingTranscription", MeetingsAPI.StartMeetingTranscription).
			Binding("POST", "/meetings/{MeetingId}/transcription?operation=start").
			Describe("Start live transcription of a meeting").
			With(
				meetingID(op.At(1), op.Piped),
				op.JSON("TranscriptionConfiguration", op.Required, op.Help(`e.g. {"EngineTranscribeSettings":{"LanguageCode":"en-US"}}`)),
			).
			Confirm(op.ImpactLow, "MeetingId"),

		meetingsOp("StopMeetingTranscription", MeetingsAPI.StopMeetingTranscription).
			Binding("POST", "/meetings/{MeetingId}/transcription?operation=stop").
			Describe("Stop live transcription of a meeting").
			With(meetingID(op.At(1), op.Piped)).
			Confirm(op.ImpactLow, "MeetingId"),
	}
}
