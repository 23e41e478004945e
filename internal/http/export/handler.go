package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/arboretum/internal/dashboard"
	"github.com/MrJamesThe3rd/arboretum/internal/export"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type SnapshotSource interface {
	Snapshot() *record.Snapshot
}

type Handler struct {
	src SnapshotSource
	svc *export.Service
	loc *time.Location
	now func() time.Time
}

func NewHandler(src SnapshotSource, svc *export.Service, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.Local
	}

	return &Handler{src: src, svc: svc, loc: loc, now: time.Now}
}

// WithClock overrides the handler's notion of "now".
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.metadata)
	r.Get("/download", h.download)
}

type exportMetadataResponse struct {
	Period       string                       `json:"period"`
	Transactions []render.TransactionResponse `json:"transactions"`
	Statement    string                       `json:"statement"`
}

// period reads ?month=YYYY-MM (or "all"), defaulting to the current month.
func (h *Handler) period(r *http.Request) (dashboard.Period, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return dashboard.MonthContaining(h.now().In(h.loc)), nil
	}

	return dashboard.ParseMonth(s, h.loc)
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	period, err := h.period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := h.svc.Items(h.src.Snapshot(), period)

	txs := make([]record.Transaction, len(items))
	for i, item := range items {
		txs[i] = item.Transaction
	}

	render.JSON(w, http.StatusOK, exportMetadataResponse{
		Period:       period.Label(),
		Transactions: render.Transactions(txs),
		Statement:    h.svc.Statement(items, period),
	})
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	period, err := h.period(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items := h.svc.Items(h.src.Snapshot(), period)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(period)))

	if err := h.svc.WriteArchive(w, items, period); err != nil {
		slog.Error("failed to write export archive", "period", period.Label(), "error", err)
	}
}
