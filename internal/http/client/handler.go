package client

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type SnapshotSource interface {
	Snapshot() *record.Snapshot
}

type Handler struct {
	src SnapshotSource
}

func NewHandler(src SnapshotSource) *Handler {
	return &Handler{src: src}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type listResponse struct {
	Clients []render.ClientResponse `json:"clients"`
	Tiers   map[record.Tier]int     `json:"tiers"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	clients := h.src.Snapshot().Clients

	if s := r.URL.Query().Get("tier"); s != "" {
		tier := record.Tier(s)
		if !tier.Valid() {
			http.Error(w, "unknown tier "+s, http.StatusBadRequest)
			return
		}

		filtered := make([]record.Client, 0, len(clients))
		for _, c := range clients {
			if c.Tier == tier {
				filtered = append(filtered, c)
			}
		}

		clients = filtered
	}

	render.JSON(w, http.StatusOK, listResponse{
		Clients: render.Clients(clients),
		Tiers:   dashboard.CountByTier(clients),
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	c, ok := dashboard.ResolveClient(h.src.Snapshot().Clients, id)
	if !ok {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}

	render.JSON(w, http.StatusOK, render.Client(c))
}
