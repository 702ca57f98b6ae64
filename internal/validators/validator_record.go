// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-record-vault/models"
)

const FieldData = "data"

const (
	MsgMustNotBeBlank = "must not be blank"
	msgSizeFormat     = "size must be between 1 and %d"
)

// RecordValidator checks create and update payloads. The body must not be
// blank and must fit in maxLen bytes, the most the cipher can encrypt.
type RecordValidator struct {
	maxLen int
}

func NewRecordValidator(maxLen int) Validator {
	return &RecordValidator{maxLen: maxLen}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewRecord:
		return v.validateNewRecord(ctx, value, fields...)
	case *models.NewRecord:
		return v.validateNewRecord(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateNewRecord(_ context.Context, record models.NewRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldData}
	}

	errs := &FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldData:
			switch {
			case strings.TrimSpace(record.Data) == "":
				errs.add(FieldData, MsgMustNotBeBlank)
			case len(record.Data) > v.maxLen:
				errs.add(FieldData, fmt.Sprintf(msgSizeFormat, v.maxLen))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
