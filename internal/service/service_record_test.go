// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-record-vault/internal/crypto"
	"github.com/MKhiriev/go-record-vault/internal/logger"
	"github.com/MKhiriev/go-record-vault/internal/metrics"
	"github.com/MKhiriev/go-record-vault/internal/mock"
	"github.com/MKhiriev/go-record-vault/internal/store"
	"github.com/MKhiriev/go-record-vault/internal/validators"
	"github.com/MKhiriev/go-record-vault/models"
)

type recordServiceDeps struct {
	repo    *mock.MockRecordRepository
	cipher  *mock.MockCipher
	metrics *metrics.Metrics
}

func newTestRecordService(t *testing.T) (RecordService, recordServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := recordServiceDeps{
		repo:    mock.NewMockRecordRepository(ctrl),
		cipher:  mock.NewMockCipher(ctrl),
		metrics: metrics.New(nil),
	}

	svc, err := NewRecordService(deps.repo, deps.cipher, deps.metrics, logger.Nop())
	require.NoError(t, err)
	return svc, deps
}

func TestNewRecordService_NilCipher(t *testing.T) {
	svc, err := NewRecordService(nil, nil, nil, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrNilCipher)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestRecordService_List(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	stored := []models.Record{{ID: 1, Data: "c1"}}
	deps.repo.EXPECT().List(ctx).Return(stored, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestRecordService_Create_EncryptsBeforeInsert(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.cipher.EXPECT().Encrypt("hello").Return("c-hello", nil),
		deps.repo.EXPECT().Create(ctx, "c-hello").Return(models.Record{ID: 1, Data: "c-hello"}, nil),
	)

	got, err := svc.Create(ctx, models.NewRecord{Data: "hello"})

	require.NoError(t, err)
	assert.Equal(t, models.Record{ID: 1, Data: "c-hello"}, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.CryptoOperations.WithLabelValues(metrics.OpEncrypt, metrics.ResultOK)))
}

func TestRecordService_Create_EncryptFailure(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.cipher.EXPECT().Encrypt("hello").Return("", crypto.ErrEncrypt)

	_, err := svc.Create(ctx, models.NewRecord{Data: "hello"})

	require.ErrorIs(t, err, crypto.ErrEncrypt)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.CryptoOperations.WithLabelValues(metrics.OpEncrypt, metrics.ResultError)))
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestRecordService_Update(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	gomock.InOrder(
		deps.repo.EXPECT().Exists(ctx, int64(4)).Return(true, nil),
		deps.cipher.EXPECT().Encrypt("new body").Return("c-new", nil),
		deps.repo.EXPECT().Update(ctx, int64(4), "c-new").Return(models.Record{ID: 4, Data: "c-new"}, nil),
	)

	got, err := svc.Update(ctx, models.NewRecord{ID: 4, Data: "new body"})

	require.NoError(t, err)
	assert.Equal(t, models.Record{ID: 4, Data: "c-new"}, got)
}

func TestRecordService_Update_MissingRecordSkipsEncryption(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Exists(ctx, int64(4)).Return(false, nil)

	_, err := svc.Update(ctx, models.NewRecord{ID: 4, Data: "x"})

	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordService_Update_RemovedBetweenCheckAndWrite(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Exists(ctx, int64(4)).Return(true, nil)
	deps.cipher.EXPECT().Encrypt("x").Return("c-x", nil)
	deps.repo.EXPECT().Update(ctx, int64(4), "c-x").Return(models.Record{}, store.ErrRecordNotFound)

	_, err := svc.Update(ctx, models.NewRecord{ID: 4, Data: "x"})

	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordService_Update_ExistsError(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Exists(ctx, int64(4)).Return(false, store.ErrExecutingQuery)

	_, err := svc.Update(ctx, models.NewRecord{ID: 4, Data: "x"})

	require.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// GetDecrypted
// ─────────────────────────────────────────────

func TestRecordService_GetDecrypted(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Get(ctx, int64(2)).Return(models.Record{ID: 2, Data: "c-secret"}, nil)
	deps.cipher.EXPECT().Decrypt("c-secret").Return("secret", nil)

	got, err := svc.GetDecrypted(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, models.Record{ID: 2, Data: "secret"}, got)
}

func TestRecordService_GetDecrypted_NotFound(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Get(ctx, int64(2)).Return(models.Record{}, store.ErrRecordNotFound)

	_, err := svc.GetDecrypted(ctx, 2)

	require.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRecordService_GetDecrypted_DecryptFailure(t *testing.T) {
	svc, deps := newTestRecordService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Get(ctx, int64(2)).Return(models.Record{ID: 2, Data: "garbage"}, nil)
	deps.cipher.EXPECT().Decrypt("garbage").Return("", crypto.ErrDecrypt)

	_, err := svc.GetDecrypted(ctx, 2)

	require.ErrorIs(t, err, crypto.ErrDecrypt)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.CryptoOperations.WithLabelValues(metrics.OpDecrypt, metrics.ResultError)))
}

// ─────────────────────────────────────────────
// Validation wrapper
// ─────────────────────────────────────────────

func TestRecordValidationService(t *testing.T) {
	tests := []struct {
		name     string
		record   models.NewRecord
		call     func(RecordService, models.NewRecord) error
		inner    func(*mock.MockRecordService)
		wantMsg  string
		wantPass bool
	}{
		{
			name:   "create blank body",
			record: models.NewRecord{Data: "   "},
			call: func(s RecordService, r models.NewRecord) error {
				_, err := s.Create(context.Background(), r)
				return err
			},
			wantMsg: validators.MsgMustNotBeBlank,
		},
		{
			name:   "update too long body",
			record: models.NewRecord{ID: 1, Data: "0123456789A"},
			call: func(s RecordService, r models.NewRecord) error {
				_, err := s.Update(context.Background(), r)
				return err
			},
			wantMsg: "size must be between 1 and 10",
		},
		{
			name:   "create valid body reaches inner",
			record: models.NewRecord{Data: "ok"},
			call: func(s RecordService, r models.NewRecord) error {
				_, err := s.Create(context.Background(), r)
				return err
			},
			inner: func(m *mock.MockRecordService) {
				m.EXPECT().Create(gomock.Any(), models.NewRecord{Data: "ok"}).Return(models.Record{ID: 1, Data: "c"}, nil)
			},
			wantPass: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockRecordService(ctrl)
			if tc.inner != nil {
				tc.inner(inner)
			}
			m := metrics.New(nil)
			svc := NewRecordValidationService(10, m).Wrap(inner)

			err := tc.call(svc, tc.record)

			if tc.wantPass {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, validators.ErrInvalidRecord)
			var fieldErrs *validators.FieldErrors
			require.True(t, errors.As(err, &fieldErrs))
			require.NotEmpty(t, fieldErrs.Errors)
			assert.Equal(t, tc.wantMsg, fieldErrs.Errors[0].DefaultMessage)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
		})
	}
}

func TestRecordValidationService_PassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRecordService(ctrl)
	svc := NewRecordValidationService(10, nil).Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().List(ctx).Return([]models.Record{}, nil)
	inner.EXPECT().GetDecrypted(ctx, int64(3)).Return(models.Record{ID: 3, Data: "p"}, nil)

	_, err := svc.List(ctx)
	require.NoError(t, err)
	got, err := svc.GetDecrypted(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "p", got.Data)
}
