package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskwell/tasks-api/internal/api/shared"
)

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// No Origin header: the permissive headers must still be present.
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORSPreflight(t *testing.T) {
	nextCalled := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	// OPTIONS on any path short-circuits with an empty 200.
	for _, target := range []string{"/", "/tasks", "/tasks/1", "/nowhere"} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "target %s", target)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	}
	assert.False(t, nextCalled)
}

func TestRecovererConvertsPanicToJSON500(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, http.StatusInternalServerError, body.Status)
}

func TestRecovererPassesThroughCleanRequests(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTraceMiddlewareAttachesTraceID(t *testing.T) {
	var seenTraceID string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, seenTraceID)

	// A second request gets a different trace id.
	var secondTraceID string
	handler = TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secondTraceID = shared.GetTraceID(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tasks", nil))
	assert.NotEqual(t, seenTraceID, secondTraceID)
}

// chunkedReader yields its payload a few bytes at a time to exercise
// multi-chunk accumulation the way a slow client would.
type chunkedReader struct {
	payload []byte
	pos     int
	size    int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.pos >= len(c.payload) {
		return 0, io.EOF
	}
	end := c.pos + c.size
	if end > len(c.payload) {
		end = len(c.payload)
	}
	n := copy(p, c.payload[c.pos:end])
	c.pos += n
	return n, nil
}

func TestBodyAssemblerReassemblesChunkedBody(t *testing.T) {
	payload := `{"title":"assembled from many small chunks"}`

	var seenBody []byte
	handler := BodyAssembler(0, 4096)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		seenBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/tasks",
		io.NopCloser(&chunkedReader{payload: []byte(payload), size: 3}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, payload, string(seenBody))
}

func TestBodyAssemblerSmallChunkSize(t *testing.T) {
	payload := strings.Repeat("x", 100)

	var seenBody []byte
	handler := BodyAssembler(0, 7)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenBody, _ = io.ReadAll(r.Body)
	}))

	req := httptest.NewRequest(http.MethodPut, "/tasks/1", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, payload, string(seenBody))
}

func TestBodyAssemblerRejectsOversizedBody(t *testing.T) {
	nextCalled := false
	handler := BodyAssembler(16, 8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(strings.Repeat("y", 64)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, nextCalled)

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Request body too large", body.Error)
}

func TestBodyAssemblerSkipsBodylessMethods(t *testing.T) {
	handler := BodyAssembler(0, 4096)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		req := httptest.NewRequest(method, "/tasks/1", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, "method %s", method)
	}
}
