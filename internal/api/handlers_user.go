package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tonearm/tonearm/internal/api/respond"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/view"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	crit, err := criteriaFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view.Users(users, crit))
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	u, err := h.svc.GetUser(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if u == nil {
		respond.WriteNotFound(w, "user not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in services.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreateUser(r.Context(), in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in services.UserInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.UpdateUser(r.Context(), id, in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	removed, err := h.svc.DeleteUser(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if !removed {
		respond.WriteNotFound(w, "user not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
