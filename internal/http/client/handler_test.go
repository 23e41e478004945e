package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/arboretum/internal/http/client"
	"github.com/MrJamesThe3rd/arboretum/internal/record"
)

type staticSource struct {
	snap *record.Snapshot
}

func (s staticSource) Snapshot() *record.Snapshot { return s.snap }

var whitmore = uuid.MustParse("c1000000-0000-4000-8000-000000000001")

func newRouter() http.Handler {
	snap := &record.Snapshot{Clients: []record.Client{
		{
			ID: whitmore, Name: "Eleanor Whitmore", EstateName: "Whitmore Hall", Tier: record.TierLegacy,
			Acreage: decimal.RequireFromString("45.5"), RetainerValue: 4800000,
		},
		{ID: uuid.New(), Name: "Robert Hale", Tier: record.TierFoundation},
		{ID: uuid.New(), Name: "Thomas Reed", Tier: record.TierFoundation},
	}}

	r := chi.NewRouter()
	r.Route("/clients", client.NewHandler(staticSource{snap: snap}).Routes)

	return r
}

func TestHandler_List(t *testing.T) {
	type testCase struct {
		name      string
		target    string
		wantCode  int
		wantLen   int
		wantTiers map[string]int
	}

	tests := []testCase{
		{
			name:      "All",
			target:    "/clients",
			wantCode:  http.StatusOK,
			wantLen:   3,
			wantTiers: map[string]int{"Foundation": 2, "Stewardship": 0, "Legacy": 1},
		},
		{
			name:      "ByTier",
			target:    "/clients?tier=Foundation",
			wantCode:  http.StatusOK,
			wantLen:   2,
			wantTiers: map[string]int{"Foundation": 2, "Stewardship": 0, "Legacy": 0},
		},
		{
			name:     "UnknownTier",
			target:   "/clients?tier=Platinum",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				Clients []json.RawMessage `json:"clients"`
				Tiers   map[string]int    `json:"tiers"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			assert.Len(t, resp.Clients, tt.wantLen)
			assert.Equal(t, tt.wantTiers, resp.Tiers)
		})
	}
}

func TestHandler_Get(t *testing.T) {
	type testCase struct {
		name     string
		id       string
		wantCode int
	}

	tests := []testCase{
		{name: "Found", id: whitmore.String(), wantCode: http.StatusOK},
		{name: "NotFound", id: uuid.New().String(), wantCode: http.StatusNotFound},
		{name: "InvalidID", id: "whitmore", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients/"+tt.id, nil))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var resp struct {
				Name          string `json:"name"`
				Acreage       string `json:"acreage"`
				RetainerValue int64  `json:"retainer_value"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			assert.Equal(t, "Eleanor Whitmore", resp.Name)
			assert.Equal(t, "45.5", resp.Acreage)
			assert.Equal(t, int64(4800000), resp.RetainerValue)
		})
	}
}
