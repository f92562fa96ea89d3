package catalog

import (
	"github.com/aws/aws-sdk-go-v2/service/chime/types"

	op "github.com/vietdv277/chimectl/internal/operation"
)

func roomID(opts ...op.ParamOption) op.Param {
	opts = append([]op.ParamOption{op.Required, op.Help("chat room ID")}, opts...)
	return op.Str("RoomId", opts...)
}

func roomOps() []*op.Descriptor {
	roles := op.EnumValues(types.RoomMembershipRole("").Values())

	return []*op.Descriptor{
		chimeOp("CreateRoom", ChimeAPI.CreateRoom).
			Binding("POST", "/accounts/{accountId}/rooms").
			Describe("Create a chat room").
			With(
				accountID(op.At(1)),
				op.Str("Name", op.Required, op.At(2), op.Piped, op.Help("room name")),
				op.Str("ClientRequestToken", op.Help("idempotency token")),
			).
			Select("Room"),

		chimeOp("GetRoom", ChimeAPI.GetRoom).
			Binding("GET", "/accounts/{accountId}/rooms/{roomId}").
			Describe("Show room details").
			With(accountID(op.At(1)), roomID(op.At(2), op.Piped)).
			Select("Room"),

		chimeOp("ListRooms", ChimeAPI.ListRooms).
			Binding("GET", "/accounts/{accountId}/rooms").
			Describe("List the chat rooms of an account").
			With(
				accountID(op.At(1), op.Piped),
				op.Str("MemberId", op.Help("only rooms this member belongs to")),
			).
			With(paging()...).
			Select("Rooms"),

		chimeOp("UpdateRoom", ChimeAPI.UpdateRoom).
			Binding("POST", "/accounts/{accountId}/rooms/{roomId}").
			Describe("Rename a chat room").
			With(
				accountID(op.At(1)),
				roomID(op.At(2), op.Piped),
				op.Str("Name", op.Help("new room name")),
			).
			Select("Room").
			Confirm(op.ImpactMedium, "RoomId"),

		chimeOp("DeleteRoom", ChimeAPI.DeleteRoom).
			Binding("DELETE", "/accounts/{accountId}/rooms/{roomId}").
			Describe("Delete a chat room").
			With(accountID(op.At(1)), roomID(op.At(2), op.Piped)).
			Confirm(op.ImpactHigh, "RoomId"),

		chimeOp("CreateRoomMembership", ChimeAPI.CreateRoomMembership).
			Binding("POST", "/accounts/{accountId}/rooms/{roomId}/memberships").
			Describe("Add a member to a chat room").
			With(
				accountID(op.At(1)),
				roomID(op.At(2)),
				op.Str("MemberId", op.Required, op.At(3), op.Piped, op.Help("user or bot ID")),
				op.Enum("Role", roles, op.Help("membership role")),
			).
			Select("RoomMembership"),

		chimeOp("ListRoomMemberships", ChimeAPI.ListRoomMemberships).
			Binding("GET", "/accounts/{accountId}/rooms/{roomId}/memberships").
			Describe("List the members of a chat room").
			With(accountID(op.At(1)), roomID(op.At(2), op.Piped)).
			With(paging()...).
			Select("RoomMemberships"),

		chimeOp("DeleteRoomMembership", ChimeAPI.DeleteRoomMembership).
			Binding("DELETE", "/accounts/{accountId}/rooms/{roomId}/memberships/{memberId}").
			Describe("Remove a member from a chat room").
			With(
				accountID(op.At(1)),
				roomID(op.At(2)),
				op.Str("MemberId", op.Required, op.At(3), op.Piped, op.Help("user or bot ID")),
			).
			Confirm(op.ImpactHigh, "MemberId"),
	}
}
