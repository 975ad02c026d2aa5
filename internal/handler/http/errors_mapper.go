package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/devnet"
)

var errorStatusMap = map[error]int{
	devnet.ErrInvalidData:            http.StatusBadRequest,
	devnet.ErrMalformedABI:           http.StatusBadRequest,
	devnet.ErrValueOutOfRange:        http.StatusBadRequest,
	devnet.ErrInvalidInputProof:      http.StatusBadRequest,
	devnet.ErrInvalidDecryptionProof: http.StatusBadRequest,
	devnet.ErrUnknownHandle:          http.StatusBadRequest,
	devnet.ErrHandleNotDecryptable:   http.StatusForbidden,
	devnet.ErrInvalidSession:         http.StatusUnauthorized,

	devnet.ErrRecordNotFound:      http.StatusNotFound,
	devnet.ErrUnknownTransaction:  http.StatusNotFound,
	devnet.ErrRecordAlreadyExists: http.StatusConflict,
	devnet.ErrAlreadyVerified:     http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// writeError writes err as a plain-text body. Internal errors are not
// disclosed.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		http.Error(w, app.MsgInternalServerError, status)
		return
	}

	http.Error(w, err.Error(), status)
}
