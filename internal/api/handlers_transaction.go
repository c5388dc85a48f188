package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tonearm/tonearm/internal/api/respond"
	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/view"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	crit, err := criteriaFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	var all []*model.Transaction
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		all, err = h.svc.ListByUser(r.Context(), userID)
	} else {
		all, err = h.svc.ListTransactions(r.Context())
	}
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view.Transactions(all, crit))
}

func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	t, err := h.svc.GetTransaction(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if t == nil {
		respond.WriteNotFound(w, "transaction not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, t)
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in services.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreateTransaction(r.Context(), in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in services.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.UpdateTransaction(r.Context(), id, in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// SetTransactionStatus handles PATCH on the status sub-resource.
func (h *TransactionHandler) SetTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	status := model.ParseTransactionStatus(in.Status)
	if status == model.TxUnknown {
		respond.WriteBadRequest(w, "unrecognized status: "+in.Status)
		return
	}
	out, err := h.svc.SetStatus(r.Context(), id, status)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	removed, err := h.svc.DeleteTransaction(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if !removed {
		respond.WriteNotFound(w, "transaction not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TransactionHandler) TransactionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}

// UserBalance reports the completed-transaction balance for one user.
func (h *TransactionHandler) UserBalance(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]
	bal, err := h.svc.UserBalance(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, bal)
}
