package certs

import (
	"github.com/Taraxa-project/taraxa-certs/auth"
	"github.com/Taraxa-project/taraxa-certs/batch"
	"github.com/Taraxa-project/taraxa-certs/util"
)

const (
	ErrAlreadyExists  = util.ErrorString("certificate already exists")
	ErrNotFound       = util.ErrorString("certificate not found")
	ErrAlreadyRevoked = util.ErrorString("certificate already revoked")

	ErrUnauthorized  = auth.ErrUnauthorized
	ErrBatchTooLarge = batch.ErrTooLarge
)
