package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/status"
)

// ErrorDump is a structured snapshot of an error chain for log output.
// Firestore and Pub/Sub surface failures as gRPC status errors, so the
// gRPC code/message are extracted when present.
type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	GRPCCode    string `json:"grpc_code,omitempty"`
	GRPCMessage string `json:"grpc_message,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	if st, ok := statusFromChain(err); ok {
		d.GRPCCode = st.Code().String()
		d.GRPCMessage = st.Message()
	}

	return d
}

func statusFromChain(err error) (*status.Status, bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if st, ok := status.FromError(e); ok && st.Code() != 0 {
			return st, true
		}
	}
	return nil, false
}
