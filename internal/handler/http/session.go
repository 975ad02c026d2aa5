package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
)

type sessionRequest struct {
	Address string `json:"address"`
}

type sessionResponse struct {
	Address string `json:"address"`
	Token   string `json:"token"`
}

// issueSession plays the wallet bridge: it signs a session for the posted
// address, which is then accepted as signer by the transaction endpoints.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.issueSession").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	token, err := h.devnet.Sessions.IssueSession(req.Address, DefaultSessionTTL)
	if err != nil {
		log.Err(err).Str("func", "*Handler.issueSession").Msg("session not issued")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	log.Info().Str("address", utils.ShortAddress(token.Address)).Msg("session issued")
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, sessionResponse{Address: token.Address, Token: token.SignedString}, http.StatusOK)
}
