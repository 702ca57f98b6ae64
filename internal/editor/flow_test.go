// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package editor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-record-vault/internal/adapter"
	"github.com/MKhiriev/go-record-vault/internal/config"
	"github.com/MKhiriev/go-record-vault/internal/editor"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/models"
)

// fakeRecordService stores bodies as given and "decrypts" through a fixed
// table.
type fakeRecordService struct {
	mu        sync.Mutex
	records   map[int64]string
	nextID    int64
	plaintext map[string]string
	reject    string
}

func newFakeRecordService(t *testing.T, seed ...models.Record) (*fakeRecordService, *httptest.Server) {
	t.Helper()
	f := &fakeRecordService{records: map[int64]string{}, plaintext: map[string]string{}}
	for _, r := range seed {
		f.records[r.ID] = r.Data
		f.nextID = max(f.nextID, r.ID)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /data", f.list)
	mux.HandleFunc("POST /data", f.create)
	mux.HandleFunc("PUT /data/{id}", f.update)
	mux.HandleFunc("GET /data/{id}/decrypted", f.decrypted)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeRecordService) list(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Record, 0, len(f.records))
	for id, data := range f.records {
		out = append(out, models.Record{ID: id, Data: data})
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *fakeRecordService) create(w http.ResponseWriter, r *http.Request) {
	var body models.NewRecord
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reject != "" {
		writeJSON(w, http.StatusBadRequest, models.ServiceStatus{
			Status: http.StatusBadRequest,
			Errors: []models.FieldError{{DefaultMessage: f.reject}},
		})
		return
	}

	f.nextID++
	f.records[f.nextID] = body.Data
	writeJSON(w, http.StatusCreated, models.Record{ID: f.nextID, Data: body.Data})
}

func (f *fakeRecordService) update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
	var body models.NewRecord
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.reject != "" {
		writeJSON(w, http.StatusBadRequest, models.ServiceStatus{
			Status: http.StatusBadRequest,
			Errors: []models.FieldError{{DefaultMessage: f.reject}},
		})
		return
	}

	f.records[id] = body.Data
	writeJSON(w, http.StatusOK, models.Record{ID: id, Data: body.Data})
}

func (f *fakeRecordService) decrypted(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, models.Record{ID: id, Data: f.plaintext[f.records[id]]})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type client struct {
	manager service.RecordManager
	state   service.ManagerState
}

func newClient(t *testing.T, srv *httptest.Server) *client {
	t.Helper()
	recordAdapter, err := adapter.NewHTTPRecordAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	c := &client{manager: service.NewRecordManager(recordAdapter, logger.Nop()), state: service.NewManagerState()}
	c.reload(t)
	return c
}

func (c *client) reload(t *testing.T) {
	t.Helper()
	records, err := c.manager.Load(context.Background())
	c.state = c.state.Loaded(records, err)
}

// open resolves an editor path segment the way the router does.
func (c *client) open(t *testing.T, id string) (editor.Editor, error) {
	t.Helper()
	rec, err := c.state.SelectForEdit(id)
	if err != nil {
		return editor.Editor{}, err
	}
	if rec.IsNew() {
		return editor.New(nil), nil
	}
	return editor.New(&rec), nil
}

func (c *client) decrypt(t *testing.T, e editor.Editor) editor.Editor {
	t.Helper()
	e, gen, err := e.BeginDecrypt()
	require.NoError(t, err)
	plaintext, err := c.manager.Decrypt(context.Background(), e.WorkingCopy())
	return e.CompleteDecrypt(gen, plaintext, err)
}

func (c *client) submit(t *testing.T, e editor.Editor, allowPlaintext bool) editor.Editor {
	t.Helper()
	e, rec, gen, err := e.BeginSubmit(allowPlaintext)
	require.NoError(t, err)
	_, err = c.manager.Save(context.Background(), rec)
	e = e.CompleteSubmit(gen, service.ErrorMessage(err))
	if e.Closed() {
		c.reload(t)
	}
	return e
}

func TestFlow_ListOrdering(t *testing.T) {
	_, srv := newFakeRecordService(t,
		models.Record{ID: 3, Data: "c"},
		models.Record{ID: 1, Data: "a"},
		models.Record{ID: 2, Data: "b"},
	)

	c := newClient(t, srv)

	ids := make([]int64, 0, 3)
	for _, r := range c.state.Sorted() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestFlow_CreateRoundTrip(t *testing.T) {
	_, srv := newFakeRecordService(t)
	c := newClient(t, srv)
	require.True(t, c.state.Empty())

	e, err := c.open(t, "new")
	require.NoError(t, err)
	e, err = e.ChangeBody("hello")
	require.NoError(t, err)

	e = c.submit(t, e, false)

	assert.True(t, e.Closed())
	require.Len(t, c.state.Records, 1)
	assert.Equal(t, "hello", c.state.Records[0].Data)
}

func TestFlow_EditRoundTrip(t *testing.T) {
	_, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	c := newClient(t, srv)

	e, err := c.open(t, "1")
	require.NoError(t, err)
	e, err = e.ChangeBody("cipher2")
	require.NoError(t, err)

	e = c.submit(t, e, false)

	assert.True(t, e.Closed())
	assert.Equal(t, []models.Record{{ID: 1, Data: "cipher2"}}, c.state.Sorted())
}

func TestFlow_DecryptDoesNotPersistImplicitly(t *testing.T) {
	fake, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	fake.plaintext["cipher1"] = "secret"
	c := newClient(t, srv)

	e, err := c.open(t, "1")
	require.NoError(t, err)
	e = c.decrypt(t, e)
	require.Equal(t, "secret", e.WorkingCopy().Data)

	e = e.Cancel()
	c.reload(t)

	assert.True(t, e.Closed())
	assert.Equal(t, []models.Record{{ID: 1, Data: "cipher1"}}, c.state.Sorted())
}

func TestFlow_DecryptThenSavePersistsPlaintext(t *testing.T) {
	fake, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	fake.plaintext["cipher1"] = "secret"
	c := newClient(t, srv)

	e, err := c.open(t, "1")
	require.NoError(t, err)
	e = c.decrypt(t, e)

	_, _, _, err = e.BeginSubmit(false)
	require.ErrorIs(t, err, editor.ErrPlaintextNotConfirmed)

	e = c.submit(t, e, true)

	assert.True(t, e.Closed())
	assert.Equal(t, []models.Record{{ID: 1, Data: "secret"}}, c.state.Sorted())
}

func TestFlow_NotFoundRedirects(t *testing.T) {
	_, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	c := newClient(t, srv)

	_, err := c.open(t, "42")

	require.ErrorIs(t, err, service.ErrRecordNotFound)
}

func TestFlow_ValidationErrorSurfaced(t *testing.T) {
	fake, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	c := newClient(t, srv)
	fake.reject = "too long"

	e, err := c.open(t, "1")
	require.NoError(t, err)
	e, err = e.ChangeBody("a very long body")
	require.NoError(t, err)

	e = c.submit(t, e, false)

	assert.False(t, e.Closed())
	assert.Equal(t, editor.PhaseEditing, e.Phase())
	assert.Equal(t, "too long", e.ErrorMessage())
}

func TestFlow_TransportErrorOnSave(t *testing.T) {
	_, srv := newFakeRecordService(t, models.Record{ID: 1, Data: "cipher1"})
	c := newClient(t, srv)
	srv.Close()

	e, err := c.open(t, "1")
	require.NoError(t, err)

	e = c.submit(t, e, false)

	assert.Equal(t, adapter.InternalServerErrorMessage, e.ErrorMessage())
}
