package importcsv

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/arboretum/internal/dataset"
	"github.com/MrJamesThe3rd/arboretum/internal/http/render"
	"github.com/MrJamesThe3rd/arboretum/internal/importer"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type Parser interface {
	Import(format importer.Format, r io.Reader) ([]record.Transaction, error)
}

// Categorizer fills in categories the ledger left blank.
type Categorizer interface {
	Categorize(ctx context.Context, txs []record.Transaction) ([]record.Transaction, error)
}

type Publisher interface {
	ImportTransactions(ctx context.Context, txs []record.Transaction) (*dataset.ImportResult, error)
}

type Handler struct {
	importSvc   Parser
	categorizer Categorizer
	dataSvc     Publisher
}

func NewHandler(importSvc Parser, categorizer Categorizer, dataSvc Publisher) *Handler {
	return &Handler{
		importSvc:   importSvc,
		categorizer: categorizer,
		dataSvc:     dataSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importSuccessResponse struct {
	Imported     int                          `json:"imported"`
	Transactions []render.TransactionResponse `json:"transactions"`
	Conflicts    []conflictDTO                `json:"conflicts,omitempty"`
}

type conflictDTO struct {
	Incoming render.TransactionResponse `json:"incoming"`
	Existing render.TransactionResponse `json:"existing"`
}

type importConflictResponse struct {
	Conflicts []conflictDTO `json:"conflicts"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLedger
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	txs, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err = h.categorizer.Categorize(r.Context(), txs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result, err := h.dataSvc.ImportTransactions(r.Context(), txs)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrInvalidSnapshot) {
			status = http.StatusUnprocessableEntity
		}

		http.Error(w, err.Error(), status)

		return
	}

	conflicts := toConflicts(result.Conflicts)

	if len(result.Imported) == 0 && len(conflicts) > 0 {
		render.JSON(w, http.StatusConflict, importConflictResponse{Conflicts: conflicts})
		return
	}

	render.JSON(w, http.StatusCreated, importSuccessResponse{
		Imported:     len(result.Imported),
		Transactions: render.Transactions(result.Imported),
		Conflicts:    conflicts,
	})
}

func toConflicts(cs []dataset.Conflict) []conflictDTO {
	resp := make([]conflictDTO, 0, len(cs))
	for _, c := range cs {
		resp = append(resp, conflictDTO{
			Incoming: render.Transaction(c.Incoming),
			Existing: render.Transaction(c.Existing),
		})
	}

	return resp
}
