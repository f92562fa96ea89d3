package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/chime"
	"github.com/aws/aws-sdk-go-v2/service/chimesdkmeetings"

	"github.com/vietdv277/chimectl/internal/operation"
)

// Descriptors returns every operation in the catalog.
func Descriptors() []*operation.Descriptor {
	var all []*operation.Descriptor
	all = append(all, accountOps()...)
	all = append(all, userOps()...)
	all = append(all, botOps()...)
	all = append(all, roomOps()...)
	all = append(all, phoneNumberOps()...)
	all = append(all, settingsOps()...)
	all = append(all, meetingOps()...)
	return all
}

// Registry builds a registry holding the whole catalog.
func Registry() (*operation.Registry, error) {
	reg := operation.NewRegistry()
	if err := reg.Register(Descriptors()...); err != nil {
		return nil, err
	}
	return reg, nil
}

func chimeOp[In, Out any](name string, fn func(ChimeAPI, context.Context, *In, ...func(*chime.Options)) (*Out, error)) *operation.Descriptor {
	return operation.New(ServiceChime, name, fn)
}

func meetingsOp[In, Out any](name string, fn func(MeetingsAPI, context.Context, *In, ...func(*chimesdkmeetings.Options)) (*Out, error)) *operation.Descriptor {
	return operation.New(ServiceMeetings, name, fn)
}

// accountID declares the AccountId path parameter shared by most Chime
// operations.
func accountID(opts ...operation.ParamOption) operation.Param {
	opts = append([]operation.ParamOption{operation.Required, operation.Help("Amazon Chime account ID")}, opts...)
	return operation.Str("AccountId", opts...)
}

func paging() []operation.Param {
	return []operation.Param{
		operation.Int("MaxResults", operation.Help("maximum results in one page")),
		operation.Str("NextToken", operation.Help("token from a previous page")),
	}
}
