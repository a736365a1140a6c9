package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/snapshot"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotBody = `{"triggers":[{"id":"a","time":{"hour":7,"minute":30},"temp":26,"ac":{"mode":"cool","temp":24}}]}`

func snapshotRouter(t *testing.T) (*gin.Engine, *snapshot.Sync, *snapshot.MemoryKV) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	kv := snapshot.NewMemoryKV()
	sync := snapshot.NewSync(kv, nil, nil, snapshot.Options{})
	sync.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = sync.Close(ctx)
	})

	h := NewSnapshotHandler(logging.NewNoOpLogger(), sync)
	r := gin.New()
	r.GET("/api/v1/cache/defaultTriggers", h.Get)
	r.PUT("/api/v1/cache/defaultTriggers", h.Put)
	return r, sync, kv
}

func putSnapshot(r http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cache/defaultTriggers", bytes.NewReader([]byte(body)))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func flush(t *testing.T, s *snapshot.Sync) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Flush(ctx))
}

func TestSnapshotGet_EmptyCacheReadsAsZeroTriggers(t *testing.T) {
	r, _, _ := snapshotRouter(t)

	w := do(r, http.MethodGet, "/api/v1/cache/defaultTriggers", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"counts":0,"triggers":[]}}`, w.Body.String())
}

func TestSnapshotPut_ThenGetReturnsTriggers(t *testing.T) {
	r, sync, _ := snapshotRouter(t)

	w := putSnapshot(r, "application/json", snapshotBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{}}`, w.Body.String())
	flush(t, sync)

	w = do(r, http.MethodGet, "/api/v1/cache/defaultTriggers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"counts":1,"triggers":[{"id":"a","time":{"hour":7,"minute":30},"temp":26,"ac":{"mode":"cool","temp":24}}]}}`,
		w.Body.String())
}

func TestSnapshotPut_WrongContentTypeIsRejected(t *testing.T) {
	r, sync, kv := snapshotRouter(t)

	for _, ct := range []string{"", "text/plain", "application/xml"} {
		w := putSnapshot(r, ct, snapshotBody)

		assert.Equal(t, http.StatusBadRequest, w.Code, ct)
		assert.JSONEq(t, `{"success":false,"messages":["Content-Type must be \"application/json\""]}`, w.Body.String())
	}
	flush(t, sync)
	_, found, err := kv.Get(context.Background(), snapshot.Key)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSnapshotPut_CharsetParameterIsAccepted(t *testing.T) {
	r, _, _ := snapshotRouter(t)

	w := putSnapshot(r, "application/json; charset=utf-8", snapshotBody)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSnapshotPut_InvalidBodyLeavesCacheUntouched(t *testing.T) {
	r, sync, _ := snapshotRouter(t)
	require.Equal(t, http.StatusOK, putSnapshot(r, "application/json", snapshotBody).Code)
	flush(t, sync)

	for name, body := range map[string]string{
		"not json":         `[`,
		"missing triggers": `{}`,
		"bad mode":         `{"triggers":[{"id":"b","time":{"hour":7,"minute":0},"temp":20,"ac":{"mode":"boost","temp":24}}]}`,
	} {
		w := putSnapshot(r, "application/json", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
		assert.Contains(t, w.Body.String(), `"success":false`, name)
	}
	flush(t, sync)

	w := do(r, http.MethodGet, "/api/v1/cache/defaultTriggers", "")
	assert.Contains(t, w.Body.String(), `"id":"a"`)
	assert.Contains(t, w.Body.String(), `"counts":1`)
}

func TestSnapshotGet_CorruptValueIs500(t *testing.T) {
	r, _, kv := snapshotRouter(t)
	require.NoError(t, kv.Set(context.Background(), snapshot.Key, []byte(`{"triggers":"oops"}`)))

	w := do(r, http.MethodGet, "/api/v1/cache/defaultTriggers", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestSnapshotPut_AfterCloseIs503(t *testing.T) {
	r, sync, _ := snapshotRouter(t)
	require.NoError(t, sync.Close(context.Background()))

	w := putSnapshot(r, "application/json", snapshotBody)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
