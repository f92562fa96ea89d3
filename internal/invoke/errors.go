package invoke

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/aws/smithy-go"
)

// ErrorKind classifies invocation failures.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindService        ErrorKind = "service"
	KindTransport      ErrorKind = "transport"
	KindNameResolution ErrorKind = "name-resolution"
	KindCanceled       ErrorKind = "canceled"
)

var (
	ErrNameResolution   = errors.New("name resolution failure")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrInvalidValue     = errors.New("invalid parameter value")
	ErrInvalidSelect    = errors.New("invalid select expression")
	ErrUnresolvedRef    = errors.New("unresolved value reference")
	ErrNoClient         = errors.New("no client configured for service")
)

// InvocationError is the error result of a failed invocation.
type InvocationError struct {
	Operation string    `json:"operation"`
	Kind      ErrorKind `json:"kind"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message"`
	Err       error     `json:"-"`
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

func (e *InvocationError) Unwrap() error { return e.Err }

func validationError(op string, err error) *InvocationError {
	return &InvocationError{Operation: op, Kind: KindValidation, Message: err.Error(), Err: err}
}

// Classify wraps a remote call failure. A DNS lookup failure anywhere in the
// chain is rewritten into a message naming the endpoint host and region.
func Classify(op, region string, err error) *InvocationError {
	if err == nil {
		return nil
	}
	var ie *InvocationError
	if errors.As(err, &ie) {
		return ie
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &InvocationError{
			Operation: op,
			Kind:      KindNameResolution,
			Message:   NameResolutionMessage(dnsErr.Name, region),
			Err:       fmt.Errorf("%w: %w", ErrNameResolution, err),
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &InvocationError{Operation: op, Kind: KindCanceled, Message: err.Error(), Err: err}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.ErrorMessage()
		if msg == "" {
			msg = err.Error()
		}
		return &InvocationError{
			Operation: op,
			Kind:      KindService,
			Code:      apiErr.ErrorCode(),
			Message:   msg,
			Err:       err,
		}
	}

	return &InvocationError{Operation: op, Kind: KindTransport, Message: err.Error(), Err: err}
}

// NameResolutionMessage is the diagnostic shown when the service endpoint
// host cannot be resolved.
func NameResolutionMessage(host, region string) string {
	if region == "" {
		region = "(none)"
	}
	if host == "" {
		host = "(unknown host)"
	}
	return fmt.Sprintf("name resolution failure attempting to reach service endpoint %s in region %s; "+
		"check the region given by --region or the active context, and your network connectivity",
		host, region)
}
