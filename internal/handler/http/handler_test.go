// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/mock"
	"github.com/MKhiriev/go-record-vault/internal/service"
	"github.com/MKhiriev/go-record-vault/internal/utils"
	"github.com/MKhiriev/go-record-vault/internal/validators"
	"github.com/MKhiriev/go-record-vault/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

type testEnv struct {
	handler *Handler
	records *mock.MockRecordService
	appInfo *mock.MockAppInfoService
	metrics *metrics.Metrics
	logs    *bytes.Buffer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		records: mock.NewMockRecordService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		metrics: metrics.New(nil),
		logs:    &bytes.Buffer{},
	}
	env.handler = NewHandler(
		&service.Services{RecordService: env.records, AppInfoService: env.appInfo},
		env.metrics,
		logger.NewWriterLogger(env.logs, "test"),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.handler.Init().ServeHTTP(rec, req)
	return rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) models.ServiceStatus {
	t.Helper()
	var status models.ServiceStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	return status
}

// ─────────────────────────────────────────────
// records
// ─────────────────────────────────────────────

func TestListRecords(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).Return([]models.Record{{ID: 1, Data: "c1"}, {ID: 2, Data: "c2"}}, nil)

	rec := env.do(t, http.MethodGet, "/data", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id":1,"data":"c1"},{"id":2,"data":"c2"}]`, rec.Body.String())
}

func TestListRecords_EmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/data", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateRecord(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().
		Create(gomock.Any(), models.NewRecord{Data: "hello"}).
		Return(models.Record{ID: 7, Data: "cipher"}, nil)

	// a client supplied id is ignored on create
	rec := env.do(t, http.MethodPost, "/data", `{"id":99,"data":"hello"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7,"data":"cipher"}`, rec.Body.String())
}

func TestCreateRecord_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)
	fieldErrs := &validators.FieldErrors{Errors: []models.FieldError{
		{Field: validators.FieldData, DefaultMessage: validators.MsgMustNotBeBlank},
	}}
	env.records.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Record{}, fmt.Errorf("error during record validation before saving: %w", fieldErrs))

	rec := env.do(t, http.MethodPost, "/data", `{"data":""}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	status := decodeStatus(t, rec)
	assert.Equal(t, http.StatusBadRequest, status.Status)
	assert.Equal(t, "Bad Request", status.Error)
	assert.Equal(t, validators.MsgMustNotBeBlank, status.FirstMessage())
	require.Len(t, status.Errors, 1)
	assert.Equal(t, validators.FieldData, status.Errors[0].Field)
}

func TestCreateRecord_CryptoFailure(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(models.Record{}, fmt.Errorf("%w: boom", crypto.ErrEncrypt))

	rec := env.do(t, http.MethodPost, "/data", `{"data":"x"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	status := decodeStatus(t, rec)
	assert.Equal(t, http.StatusInternalServerError, status.Status)
	assert.True(t, strings.HasPrefix(status.Message, msgApplicationError), status.Message)
}

func TestCreateRecord_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/data", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidJSON, decodeStatus(t, rec).Message)
}

func TestUpdateRecord(t *testing.T) {
	env := newTestEnv(t)
	// the path id wins over the body id
	env.records.EXPECT().
		Update(gomock.Any(), models.NewRecord{ID: 3, Data: "new"}).
		Return(models.Record{ID: 3, Data: "cipher"}, nil)

	rec := env.do(t, http.MethodPut, "/data/3", `{"id":4,"data":"new"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"data":"cipher"}`, rec.Body.String())
}

func TestUpdateRecord_NotFound(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(models.Record{}, fmt.Errorf("%w: id 3", service.ErrRecordNotFound))

	rec := env.do(t, http.MethodPut, "/data/3", `{"data":"new"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	status := decodeStatus(t, rec)
	assert.Equal(t, http.StatusNotFound, status.Status)
	assert.Equal(t, msgRecordNotFound, status.Message)
}

func TestUpdateRecord_BadID(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/data/abc", "/data/0", "/data/-1"} {
		rec := env.do(t, http.MethodPut, path, `{"data":"new"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestGetDecryptedRecord(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().GetDecrypted(gomock.Any(), int64(5)).Return(models.Record{ID: 5, Data: "plain"}, nil)

	rec := env.do(t, http.MethodGet, "/data/5/decrypted", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":5,"data":"plain"}`, rec.Body.String())
}

func TestGetDecryptedRecord_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "missing", err: service.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "decrypt failure", err: crypto.ErrDecrypt, wantStatus: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.records.EXPECT().GetDecrypted(gomock.Any(), int64(5)).Return(models.Record{}, tc.err)

			rec := env.do(t, http.MethodGet, "/data/5/decrypted", "")

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantStatus, decodeStatus(t, rec).Status)
		})
	}
}

// ─────────────────────────────────────────────
// routing
// ─────────────────────────────────────────────

func TestRoutes_UnsupportedMethodsAreNotFound(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/data"},
		{http.MethodDelete, "/data/1"},
		{http.MethodGet, "/data/1"},
		{http.MethodPost, "/data/1/decrypted"},
		{http.MethodGet, "/nowhere"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			env := newTestEnv(t)

			rec := env.do(t, tc.method, tc.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, http.StatusNotFound, decodeStatus(t, rec).Status)
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t)
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := env.do(t, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).Return(nil, nil)

	env.do(t, http.MethodGet, "/data", "")
	rec := env.do(t, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "record_vault_http_requests_total")
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.RequestsTotal.WithLabelValues("/data", http.MethodGet, "200")))
}

// ─────────────────────────────────────────────
// middleware
// ─────────────────────────────────────────────

func TestWithTraceID_EchoesOrGenerates(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)
	router := env.handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "trace-1", rec.Header().Get(utils.TraceIDHeader))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/data", nil))
	assert.NotEmpty(t, rec.Header().Get(utils.TraceIDHeader))
}

func TestWithLogging_LogsRoutePatternAndTraceID(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().GetDecrypted(gomock.Any(), int64(9)).Return(models.Record{ID: 9, Data: "p"}, nil)
	router := env.handler.Init()

	req := httptest.NewRequest(http.MethodGet, "/data/9/decrypted", nil)
	req.Header.Set(utils.TraceIDHeader, "trace-9")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	lines := strings.Split(strings.TrimSpace(env.logs.String()), "\n")
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	assert.Equal(t, decryptedRoute, entry["route"])
	assert.Equal(t, "trace-9", entry["trace_id"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).Return([]models.Record{{ID: 1, Data: "c1"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"data":"c1"}]`, string(body))
}

func TestWithGZip_InflatesRequest(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().
		Create(gomock.Any(), models.NewRecord{Data: "zipped"}).
		Return(models.Record{ID: 1, Data: "c"}, nil)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, _ = zw.Write([]byte(`{"data":"zipped"}`))
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/data", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.handler.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWithGZip_InvalidRequestBody(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/data", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	env.handler.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgInvalidGzip, decodeStatus(t, rec).Message)
}

func TestRecoverer(t *testing.T) {
	env := newTestEnv(t)
	env.records.EXPECT().List(gomock.Any()).DoAndReturn(func(any) ([]models.Record, error) {
		panic("boom")
	})

	rec := env.do(t, http.MethodGet, "/data", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{validators.ErrInvalidRecord, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", service.ErrRecordNotFound), http.StatusNotFound},
		{crypto.ErrPlaintextTooLong, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFromError(tc.err), tc.err.Error())
	}
}
