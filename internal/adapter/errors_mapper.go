// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// parseBody returns the trimmed response body when it is valid JSON. The
// status code is only used for the error text; a rejected request with a
// JSON body is still a successful transport.
func parseBody(resp *resty.Response) (json.RawMessage, error) {
	raw := bytes.TrimSpace(resp.Body())
	if len(raw) == 0 {
		return nil, newTransportError(fmt.Errorf("%w: empty body with status %d", ErrMalformedBody, resp.StatusCode()))
	}
	if !json.Valid(raw) {
		return nil, newTransportError(fmt.Errorf("%w: status %d", ErrMalformedBody, resp.StatusCode()))
	}

	return json.RawMessage(raw), nil
}

// decodeInto unmarshals a parsed body, reporting shape mismatches as
// transport failures.
func decodeInto(raw json.RawMessage, v any) error {
	if err := json.Unmarshal(raw, v); err != nil {
		return newTransportError(fmt.Errorf("%w: %w", ErrMalformedBody, err))
	}
	return nil
}
