// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_IDString(t *testing.T) {
	assert.Equal(t, NewRecordToken, Record{}.IDString())
	assert.Equal(t, "42", Record{ID: 42}.IDString())
	assert.True(t, Record{}.IsNew())
	assert.False(t, Record{ID: 1}.IsNew())
}

func TestRecord_MarshalOmitsZeroID(t *testing.T) {
	b, err := json.Marshal(Record{Data: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":"x"}`, string(b))
}

func TestSaveResponse_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFailed bool
		wantMsg    string
		wantRecord Record
	}{
		{
			name:       "record reply",
			body:       `{"id":7,"data":"c2VjcmV0"}`,
			wantRecord: Record{ID: 7, Data: "c2VjcmV0"},
		},
		{
			name:       "validation reply",
			body:       `{"status":400,"error":"Bad Request","errors":[{"defaultMessage":"too long","field":"data"}]}`,
			wantFailed: true,
			wantMsg:    "too long",
		},
		{
			name:       "first validation error wins",
			body:       `{"status":400,"errors":[{"defaultMessage":""},{"defaultMessage":"too long"}],"message":"Validation failed"}`,
			wantFailed: true,
			wantMsg:    "",
		},
		{
			name:       "status 200 is success",
			body:       `{"status":200}`,
			wantFailed: false,
		},
		{
			name:       "message only",
			body:       `{"status":500,"message":"An application error occurred: boom"}`,
			wantFailed: true,
			wantMsg:    "An application error occurred: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp SaveResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))
			assert.Equal(t, tt.wantFailed, resp.Failed())
			assert.Equal(t, tt.wantMsg, resp.FirstMessage())
			assert.Equal(t, tt.wantRecord, resp.Record)
		})
	}
}

func TestBodyKind_String(t *testing.T) {
	assert.Equal(t, "ciphertext", BodyCiphertext.String())
	assert.Equal(t, "plaintext", BodyPlaintext.String())
	assert.Equal(t, "user input", BodyUserInput.String())
	assert.True(t, Body{Kind: BodyPlaintext}.IsPlaintext())
}

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t, "version 1.0.0, built N/A, commit abc", NewAppBuildInfo("1.0.0", "", "abc").String())
}
