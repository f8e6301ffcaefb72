package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glossary/internal/counter"
	"glossary/internal/db/dbtest"
	"glossary/internal/glossary"
	"glossary/internal/logger"
	"glossary/internal/models"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func (m *memoryStore) PutBytes(_ context.Context, objectPath string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[objectPath] = data
	return nil
}

func newTestServer(t *testing.T, store ObjectStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb := dbtest.Open(t)
	srv := &Server{
		Terms:   glossary.NewRepository(gdb),
		Counter: counter.New(gdb),
		Store:   store,
		Log:     logger.NewNop(),
	}
	return NewRouter(srv)
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeTerm(t *testing.T, rec *httptest.ResponseRecorder) models.Term {
	t.Helper()
	var term models.Term
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &term))
	return term
}

func TestCreateTermAppliesDefaults(t *testing.T) {
	r := newTestServer(t, nil)

	rec := do(t, r, http.MethodPost, "/terms", `{"term":"foo","definition":"bar","priority":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"term":"foo","definition":"bar","priority":1,"relation":null,"author":"Vityaooooo"}`, rec.Body.String())
}

func TestCreateTermValidation(t *testing.T) {
	r := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing term", body: `{"definition":"bar","priority":1}`},
		{name: "missing priority", body: `{"term":"foo","definition":"bar"}`},
		{name: "malformed", body: `{"term":`},
		{name: "dangling relation", body: `{"term":"foo","definition":"bar","priority":1,"relation":77}`},
		{name: "priority overflow", body: `{"term":"foo","definition":"bar","priority":3000000000}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPost, "/terms", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), "detail")
		})
	}
}

func TestTermLifecycle(t *testing.T) {
	r := newTestServer(t, nil)

	rec := do(t, r, http.MethodPost, "/terms", `{"term":"gRPC","definition":"RPC framework","priority":2,"author":"kate"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeTerm(t, rec)

	rec = do(t, r, http.MethodGet, "/terms/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeTerm(t, rec))

	rec = do(t, r, http.MethodPut, "/terms/1", `{"priority":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeTerm(t, rec)
	assert.Equal(t, int32(5), updated.Priority)
	assert.Equal(t, "gRPC", updated.Term)
	assert.Equal(t, "RPC framework", updated.Definition)
	assert.Equal(t, "kate", updated.Author)

	rec = do(t, r, http.MethodGet, "/terms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Term
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []models.Term{updated}, list)

	rec = do(t, r, http.MethodDelete, "/terms/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Term with ID 1 deleted successfully"}`, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/terms/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTermsEmptyIsArray(t *testing.T) {
	r := newTestServer(t, nil)

	rec := do(t, r, http.MethodGet, "/terms", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMissingTermIs404(t *testing.T) {
	r := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodGet, path: "/terms/999"},
		{method: http.MethodPut, path: "/terms/999", body: `{"term":"x"}`},
		{method: http.MethodDelete, path: "/terms/999"},
		{method: http.MethodGet, path: "/terms/999/related"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"detail":"Term not found"}`, rec.Body.String())
		})
	}
}

func TestInvalidTermID(t *testing.T) {
	r := newTestServer(t, nil)

	rec := do(t, r, http.MethodGet, "/terms/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateRelationNullClears(t *testing.T) {
	r := newTestServer(t, nil)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/terms", `{"term":"a","definition":"a","priority":1}`).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/terms", `{"term":"b","definition":"b","priority":1,"relation":1}`).Code)

	rec := do(t, r, http.MethodGet, "/terms/1/related", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var related []models.Term
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &related))
	require.Len(t, related, 1)
	assert.Equal(t, "b", related[0].Term)

	rec = do(t, r, http.MethodPut, "/terms/2", `{"definition":"bee"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	term := decodeTerm(t, rec)
	require.NotNil(t, term.Relation)
	assert.Equal(t, int64(1), *term.Relation)

	rec = do(t, r, http.MethodPut, "/terms/2", `{"relation":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeTerm(t, rec).Relation)

	rec = do(t, r, http.MethodPut, "/terms/2", `{"relation":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestZeroRelationAndEmptyAuthor(t *testing.T) {
	r := newTestServer(t, nil)

	rec := do(t, r, http.MethodPost, "/terms", `{"term":"a","definition":"a","priority":1,"relation":0,"author":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"term":"a","definition":"a","priority":1,"relation":null,"author":"Vityaooooo"}`, rec.Body.String())

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/terms", `{"term":"b","definition":"b","priority":1,"relation":1,"author":"kate"}`).Code)

	rec = do(t, r, http.MethodPut, "/terms/2", `{"relation":0,"author":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	term := decodeTerm(t, rec)
	assert.Nil(t, term.Relation)
	assert.Equal(t, models.DefaultAuthor, term.Author)

	rec = do(t, r, http.MethodPut, "/terms/2", `{"priority":3000000000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHitCounter(t *testing.T) {
	r := newTestServer(t, nil)

	var rec *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("User-Agent", "test-agent")
		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, "Hello World! I have been seen 3 times.\n", rec.Body.String())

	rec = do(t, r, http.MethodGet, "/table_counter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var visits []visitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &visits))
	require.Len(t, visits, 3)
	assert.Equal(t, "test-agent", visits[2].ClientInfo)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, visits[0].Datetime)
}

func TestExportRoute(t *testing.T) {
	t.Run("not registered without store", func(t *testing.T) {
		r := newTestServer(t, nil)
		rec := do(t, r, http.MethodPost, "/terms/export", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("writes snapshot", func(t *testing.T) {
		store := &memoryStore{}
		r := newTestServer(t, store)
		require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/terms", `{"term":"a","definition":"a","priority":1}`).Code)

		rec := do(t, r, http.MethodPost, "/terms/export", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Object string `json:"object"`
			Count  int    `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.True(t, strings.HasPrefix(resp.Object, "exports/terms-"))

		var snap termSnapshot
		require.NoError(t, json.Unmarshal(store.objects[resp.Object], &snap))
		assert.Equal(t, 1, snap.Count)
		require.Len(t, snap.Terms, 1)
		assert.Equal(t, "a", snap.Terms[0].Term)
	})

	t.Run("store failure is 500", func(t *testing.T) {
		r := newTestServer(t, &memoryStore{err: errors.New("bucket gone")})
		rec := do(t, r, http.MethodPost, "/terms/export", "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"internal server error"}`, rec.Body.String())
	})
}
