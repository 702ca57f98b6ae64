// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps *resty.Client so application-specific behaviour can be
// attached without touching call sites.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with a default resty configuration and no
// retries. Each call returns an independent instance.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}

// WithTraceIDs makes every request carry a fresh [TraceIDHeader] unless the
// caller already set one.
func (c *HTTPClient) WithTraceIDs(gen *UUIDGenerator) *HTTPClient {
	c.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) == "" {
			r.SetHeader(TraceIDHeader, gen.Generate())
		}
		return nil
	})
	return c
}
