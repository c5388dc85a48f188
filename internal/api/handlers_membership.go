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

type MembershipHandler struct {
	svc *services.MembershipService
}

func NewMembershipHandler(svc *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func (h *MembershipHandler) ListMemberships(w http.ResponseWriter, r *http.Request) {
	crit, err := criteriaFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		all, err := h.svc.ListByUser(r.Context(), userID)
		if err != nil {
			respond.WriteDomainError(w, err)
			return
		}
		respond.WriteJSON(w, http.StatusOK, view.Memberships(all, crit))
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		all, err := h.svc.ListByStatus(r.Context(), model.ParseMembershipStatus(status))
		if err != nil {
			respond.WriteDomainError(w, err)
			return
		}
		respond.WriteJSON(w, http.StatusOK, view.Memberships(all, crit))
		return
	}
	all, err := h.svc.ListMemberships(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view.Memberships(all, crit))
}

func (h *MembershipHandler) GetMembership(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	m, err := h.svc.GetMembership(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if m == nil {
		respond.WriteNotFound(w, "membership not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}

func (h *MembershipHandler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	var in services.MembershipInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreateMembership(r.Context(), in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *MembershipHandler) UpdateMembership(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in services.MembershipInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.UpdateMembership(r.Context(), id, in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *MembershipHandler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	removed, err := h.svc.DeleteMembership(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if !removed {
		respond.WriteNotFound(w, "membership not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MembershipHandler) MembershipStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}
