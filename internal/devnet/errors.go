// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devnet

import (
	"errors"

	"github.com/MKhiriev/go-pet-locator/internal/app"
)

// Revert reasons and lookup failures. Their messages are written verbatim
// into response bodies and receipts.
var (
	ErrInvalidData            = errors.New(app.MsgInvalidDataProvided)
	ErrRecordNotFound         = errors.New(app.MsgRecordNotFound)
	ErrRecordAlreadyExists    = errors.New(app.MsgRecordAlreadyExists)
	ErrAlreadyVerified        = errors.New(app.MsgAlreadyVerified)
	ErrInvalidInputProof      = errors.New(app.MsgInvalidInputProof)
	ErrInvalidDecryptionProof = errors.New(app.MsgInvalidDecryptionProof)
	ErrUnknownHandle          = errors.New(app.MsgUnknownHandle)
	ErrHandleNotDecryptable   = errors.New(app.MsgHandleNotDecryptable)
	ErrUnknownTransaction     = errors.New(app.MsgUnknownTransaction)
	ErrInvalidSession         = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrValueOutOfRange        = errors.New("abi word does not fit int64")
	ErrMalformedABI           = errors.New("abi payload is not a sequence of 32-byte words")
)
