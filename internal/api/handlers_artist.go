package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tonearm/tonearm/internal/api/respond"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/view"
)

type ArtistHandler struct {
	svc *services.ArtistService
}

func NewArtistHandler(svc *services.ArtistService) *ArtistHandler { return &ArtistHandler{svc: svc} }

func (h *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	crit, err := criteriaFromQuery(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	artists, err := h.svc.ListArtists(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view.Artists(artists, crit))
}

func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := h.svc.GetArtist(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if a == nil {
		respond.WriteNotFound(w, "artist not found: "+id)
		return
	}
	respond.WriteJSON(w, http.StatusOK, a)
}

func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in services.ArtistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreateArtist(r.Context(), in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

func (h *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var in services.ArtistInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.UpdateArtist(r.Context(), id, in)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

func (h *ArtistHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	removed, err := h.svc.DeleteArtist(r.Context(), id)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if !removed {
		respond.WriteNotFound(w, "artist not found: "+id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ArtistHandler) ArtistStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, stats)
}
