package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/common/utils"
)

const testSecret = "test-secret"

func token(t *testing.T, coupleID string) string {
	t.Helper()
	tok, err := utils.GenerateJWT(&utils.JWTClaims{CoupleID: coupleID, PartnerID: "p1", Type: "access"}, testSecret)
	require.NoError(t, err)
	return tok
}

func newRouter(store Store) *mux.Router {
	router := mux.NewRouter()
	RegisterRoutes(router, NewHandler(store, 3), auth.NewMiddleware(testSecret))
	return router
}

func TestRecordAndListHistory(t *testing.T) {
	store := NewMemoryStore(DefaultLookback)
	router := newRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/history/dates", strings.NewReader(`{"item_id":"cook-together"}`))
	req.Header.Set("Authorization", "Bearer "+token(t, "c1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	ids, err := store.Recent(context.Background(), "c1", KindDate, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"cook-together"}, ids)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/history/date", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, "c1"))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"cook-together"}, resp.Data)
}

func TestRecordHistoryValidation(t *testing.T) {
	router := newRouter(NewMemoryStore(DefaultLookback))

	tests := []struct {
		name string
		path string
		body string
		auth bool
		want int
	}{
		{"missing token", "/api/v1/history/dates", `{"item_id":"x"}`, false, http.StatusUnauthorized},
		{"unknown kind", "/api/v1/history/pets", `{"item_id":"x"}`, true, http.StatusBadRequest},
		{"missing item", "/api/v1/history/gifts", `{}`, true, http.StatusBadRequest},
		{"bad json", "/api/v1/history/gifts", `{`, true, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			if tt.auth {
				req.Header.Set("Authorization", "Bearer "+token(t, "c1"))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
