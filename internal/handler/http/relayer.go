package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	input, err := h.devnet.Relayer.Encrypt(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.encrypt").Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, input, http.StatusOK)
}

func (h *Handler) publicDecrypt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PublicDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.publicDecrypt").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.devnet.Relayer.PublicDecrypt(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.publicDecrypt").Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
