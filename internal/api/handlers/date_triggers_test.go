package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/testutil/fakes"
	"github.com/dhima/auto-run-ac/internal/triggers"
	"github.com/dhima/auto-run-ac/pkg/idgen"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const summerBody = `{"dateTime":"2025-07-01T16:30:00+09:00","temp":28,"ac":{"mode":"cool","temp":24}}`

func dateTriggerRouter(ids idgen.Generator) (*gin.Engine, *fakes.FakeTriggerStore) {
	gin.SetMode(gin.TestMode)
	store := fakes.NewFakeTriggerStore()
	svc := triggers.NewService(store, ids, nil, logging.NewNoOpLogger())
	h := NewDateTriggerHandler(logging.NewNoOpLogger(), svc)

	r := gin.New()
	g := r.Group("/api/v1/dateTriggers")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id/dateTime", h.UpdateDateTime)
	g.PUT("/:id/temp", h.UpdateTemp)
	g.PUT("/:id/acMode", h.UpdateACMode)
	g.PUT("/:id/acTemp", h.UpdateACTemp)
	g.DELETE("/:id", h.Delete)
	return r, store
}

func TestCreateDateTrigger_Returns201InUTC(t *testing.T) {
	r, _ := dateTriggerRouter(idgen.Sequence("d-1"))

	w := do(r, http.MethodPost, "/api/v1/dateTriggers", summerBody)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "http://example.com/api/v1/dateTriggers/d-1", w.Header().Get("Location"))
	assert.JSONEq(t,
		`{"trigger":{"id":"d-1","dateTime":"2025-07-01T07:30:00Z","temp":28,"ac":{"mode":"cool","temp":24}}}`,
		w.Body.String())
}

func TestCreateDateTrigger_RejectsNonRFC3339(t *testing.T) {
	r, store := dateTriggerRouter(idgen.UUIDGenerator{})

	w := do(r, http.MethodPost, "/api/v1/dateTriggers", `{"dateTime":"01/07/2025","temp":28,"ac":{"mode":"cool","temp":24}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.CallCount())
}

func TestDateTrigger_UpdateDateTimeAndOtherGroups(t *testing.T) {
	r, store := dateTriggerRouter(idgen.Sequence("d-1"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/dateTriggers", summerBody).Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/dateTriggers/d-1/dateTime", `{"dateTime":"2025-08-01T06:00:00Z"}`).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPut, "/api/v1/dateTriggers/d-1/acMode", `{"mode":"fan"}`).Code)

	got, err := store.GetDateTrigger(context.Background(), "d-1")
	require.NoError(t, err)
	assert.True(t, time.Date(2025, 8, 1, 6, 0, 0, 0, time.UTC).Equal(got.DateTime))
	assert.Equal(t, "fan", string(got.AC.Mode))
	assert.Equal(t, 28.0, got.Temp)
}

func TestDateTrigger_MissingIDIs404Everywhere(t *testing.T) {
	r, _ := dateTriggerRouter(idgen.UUIDGenerator{})

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/v1/dateTriggers/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/v1/dateTriggers/nope/dateTime", `{"dateTime":"2025-08-01T06:00:00Z"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/v1/dateTriggers/nope/temp", `{"temp":1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/api/v1/dateTriggers/nope/acTemp", `{"temp":1}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/v1/dateTriggers/nope", "").Code)
}

func TestListDateTriggers_ReturnsCreated(t *testing.T) {
	r, _ := dateTriggerRouter(idgen.Sequence("d-1", "d-2"))
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/dateTriggers", summerBody).Code)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/v1/dateTriggers", summerBody).Code)

	w := do(r, http.MethodGet, "/api/v1/dateTriggers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"d-1"`)
	assert.Contains(t, w.Body.String(), `"id":"d-2"`)
}
