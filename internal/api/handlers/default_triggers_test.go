package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/testutil/fakes"
	"github.com/dhima/auto-run-ac/internal/triggers"
	"github.com/dhima/auto-run-ac/pkg/idgen"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const morningBody = `{"time":{"hour":7,"minute":30},"temp":26,"ac":{"mode":"cool","temp":24}}`

func defaultTriggerRouter(ids idgen.Generator) (*gin.Engine, *fakes.FakeTriggerStore) {
	gin.SetMode(gin.TestMode)
	store := fakes.NewFakeTriggerStore()
	svc := triggers.NewService(store, ids, nil, logging.NewNoOpLogger())
	h := NewDefaultTriggerHandler(logging.NewNoOpLogger(), svc)

	r := gin.New()
	g := r.Group("/api/v1/defaultTriggers")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id/time", h.UpdateTime)
	g.PUT("/:id/temp", h.UpdateTemp)
	g.PUT("/:id/acMode", h.UpdateACMode)
	g.PUT("/:id/acTemp", h.UpdateACTemp)
	g.DELETE("/:id", h.Delete)
	return r, store
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Host = "example.com"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDefaultTrigger_Returns201WithLocation(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.Sequence("trg-1"))

	w := do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/api/v1/defaultTriggers/trg-1", w.Header().Get("Location"))
	assert.JSONEq(t,
		`{"trigger":{"id":"trg-1","time":{"hour":7,"minute":30},"temp":26,"ac":{"mode":"cool","temp":24}}}`,
		w.Body.String())
}

func TestCreateDefaultTrigger_InvalidBodyIs400WithMessages(t *testing.T) {
	r, store := defaultTriggerRouter(idgen.UUIDGenerator{})

	cases := map[string]string{
		"bad json":      `{`,
		"hour too big":  `{"time":{"hour":24,"minute":0},"temp":26,"ac":{"mode":"cool","temp":24}}`,
		"unknown mode":  `{"time":{"hour":7,"minute":0},"temp":26,"ac":{"mode":"turbo","temp":24}}`,
		"missing temp":  `{"time":{"hour":7,"minute":0},"ac":{"mode":"cool","temp":24}}`,
		"empty payload": ``,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/defaultTriggers", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var got struct {
				Error   string   `json:"error"`
				Details []string `json:"details"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, "validation failed", got.Error)
			assert.NotEmpty(t, got.Details)
		})
	}
	assert.Zero(t, store.CallCount())
}

func TestCreateDefaultTrigger_IDCollisionIs409WithEmptyBody(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.Sequence("dup"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody).Code)

	w := do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestListDefaultTriggers_EmptyIsEmptyArray(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.UUIDGenerator{})

	w := do(r, http.MethodGet, "/api/v1/defaultTriggers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"triggers":[]}`, w.Body.String())
}

func TestGetDefaultTrigger_MissingIs404WithEmptyBody(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.UUIDGenerator{})

	w := do(r, http.MethodGet, "/api/v1/defaultTriggers/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDefaultTrigger_UpdateEndpoints(t *testing.T) {
	r, store := defaultTriggerRouter(idgen.Sequence("trg-1"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody).Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/time", `{"time":{"hour":21,"minute":45}}`).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/temp", `{"temp":30}`).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/acMode", `{"mode":"dry"}`).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/acTemp", `{"temp":25}`).Code)

	got, err := store.GetDefaultTrigger(context.Background(), "trg-1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTrigger{
		ID:   "trg-1",
		Time: models.TimeOfDay{Hour: 21, Minute: 45},
		Temp: 30,
		AC:   models.ACSettings{Mode: models.OperationModeDry, Temp: 25},
	}, got)
}

func TestDefaultTrigger_UpdateRejectsBadBodiesAndMissingIDs(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.Sequence("trg-1"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody).Code)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/time", `{"time":{"hour":7,"minute":60}}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/acMode", `{"mode":"warm"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPut, "/api/v1/defaultTriggers/trg-1/temp", `{"temp":"hot"}`).Code)

	w := do(r, http.MethodPut, "/api/v1/defaultTriggers/missing/temp", `{"temp":30}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteDefaultTrigger_Then404(t *testing.T) {
	r, _ := defaultTriggerRouter(idgen.Sequence("trg-1"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/defaultTriggers", morningBody).Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/v1/defaultTriggers/trg-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/v1/defaultTriggers/trg-1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/defaultTriggers/trg-1", "").Code)
}

func TestListDefaultTriggers_BackendFailureIs500(t *testing.T) {
	r, store := defaultTriggerRouter(idgen.UUIDGenerator{})
	store.Err = fakes.ErrStoreDown

	w := do(r, http.MethodGet, "/api/v1/defaultTriggers", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestResourceURL_HonoursForwardedHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/defaultTriggers/", nil)
	c.Request.Header.Set("X-Forwarded-Proto", "https")
	c.Request.Header.Set("X-Forwarded-Host", "ac.example.org")

	assert.Equal(t, "https://ac.example.org/api/v1/defaultTriggers/abc", resourceURL(c, "abc"))
}
