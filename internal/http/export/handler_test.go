package export_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/export"
	exportHandler "github.com/MrJamesThe3rd/arboretum/internal/http/export"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type staticSource struct {
	snap *record.Snapshot
}

func (s staticSource) Snapshot() *record.Snapshot { return s.snap }

func newRouter() http.Handler {
	snap := &record.Snapshot{
		Transactions: []record.Transaction{
			{
				ID: uuid.New(), Type: record.TypeIncome, Amount: 500000, Status: record.StatusCleared,
				Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Description: "Retainer",
			},
			{
				ID: uuid.New(), Type: record.TypeExpense, Amount: 4500, Status: record.StatusCleared,
				Date: time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC), Description: "Fuel",
			},
		},
	}

	h := exportHandler.NewHandler(staticSource{snap: snap}, export.NewService(), time.UTC).
		WithClock(func() time.Time { return time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC) })

	r := chi.NewRouter()
	r.Route("/export", h.Routes)

	return r
}

func TestHandler_Metadata(t *testing.T) {
	type testCase struct {
		name      string
		query     string
		wantCode  int
		wantCount int
	}

	tests := []testCase{
		{name: "DefaultMonth", wantCode: http.StatusOK, wantCount: 1},
		{name: "ExplicitMonth", query: "?month=2025-10", wantCode: http.StatusOK, wantCount: 1},
		{name: "AllTime", query: "?month=all", wantCode: http.StatusOK, wantCount: 2},
		{name: "BadMonth", query: "?month=Nov", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export"+tt.query, nil))

			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				Transactions []json.RawMessage `json:"transactions"`
				Statement    string            `json:"statement"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Len(t, resp.Transactions, tt.wantCount)
			assert.Contains(t, resp.Statement, "Statement:")
		})
	}
}

func TestHandler_Download(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export/download?month=2025-11", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ledger_2025-11.zip")

	body := rec.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 2)
}
