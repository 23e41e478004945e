package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type Reloader interface {
	Reload(ctx context.Context) (*record.Snapshot, error)
}

type Handler struct {
	svc Reloader
}

func NewHandler(svc Reloader) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/reload", h.reload)
}

type reloadResponse struct {
	LoadedAt     time.Time `json:"loaded_at"`
	Clients      int       `json:"clients"`
	Appointments int       `json:"appointments"`
	Tasks        int       `json:"tasks"`
	Transactions int       `json:"transactions"`
}

func (h *Handler) reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Reload(r.Context())
	if err != nil {
		slog.Error("snapshot reload failed", "error", err)

		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrInvalidSnapshot) {
			status = http.StatusUnprocessableEntity
		}

		http.Error(w, err.Error(), status)

		return
	}

	render.JSON(w, http.StatusOK, reloadResponse{
		LoadedAt:     snap.LoadedAt,
		Clients:      len(snap.Clients),
		Appointments: len(snap.Appointments),
		Tasks:        len(snap.Tasks),
		Transactions: len(snap.Transactions),
	})
}
