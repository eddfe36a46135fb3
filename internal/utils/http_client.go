// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so adapters can add behavior on top of it.
//
//	client := utils.NewHTTPClient("http://localhost:81", 5*time.Second)
//	resp, err := client.R().Get("/_app/tests/test/_admin/_users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own pool, bound to baseURL. A zero
// timeout keeps resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
