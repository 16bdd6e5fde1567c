// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anton Velram

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
