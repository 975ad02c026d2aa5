package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
	"github.com/MKhiriev/go-pet-locator/models"
)

func (h *Handler) getContract(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ContractResponse{Address: h.devnet.Ledger.Address()}, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ids := h.devnet.Ledger.ListRecordIDs(r.Context())
	utils.WriteJSON(w, models.RecordIDsResponse{IDs: ids}, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.devnet.Ledger.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRecord").Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) getHandle(w http.ResponseWriter, r *http.Request) {
	handle, err := h.devnet.Ledger.GetCiphertextHandle(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getHandle").Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.HandleResponse{Handle: handle}, http.StatusOK)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.devnet.Ledger.Receipt(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getReceipt").Send()
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	signer, ok := utils.GetSignerFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	hash, err := h.devnet.Ledger.CreateRecord(r.Context(), signer, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Str("record_id", req.ID).Msg("create rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TxResponse{TxHash: hash}, http.StatusOK)
}

func (h *Handler) submitVerification(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	signer, ok := utils.GetSignerFromContext(r.Context())
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitVerification").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	hash, err := h.devnet.Ledger.SubmitVerification(r.Context(), signer, id, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitVerification").Str("record_id", id).Msg("verification rejected")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TxResponse{TxHash: hash}, http.StatusOK)
}
