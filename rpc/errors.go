package rpc

import (
	"errors"

	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/batch"
	"github.com/Taraxa-project/taraxa-certs/certs"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	kind error
	code codes.Code
}{
	{certs.ErrAlreadyExists, codes.AlreadyExists},
	{certs.ErrNotFound, codes.NotFound},
	{certs.ErrAlreadyRevoked, codes.FailedPrecondition},
	{auth.ErrUnauthorized, codes.PermissionDenied},
	{batch.ErrTooLarge, codes.ResourceExhausted},
}

func toStatus(err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.kind) {
			return status.Error(e.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// remoteError keeps the server's message and unwraps to the local sentinel.
type remoteError struct {
	kind error
	msg  string
}

func (this *remoteError) Error() string { return this.msg }
func (this *remoteError) Unwrap() error { return this.kind }

func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	for _, e := range errorCodes {
		if st.Code() == e.code {
			return &remoteError{kind: e.kind, msg: st.Message()}
		}
	}
	return err
}
