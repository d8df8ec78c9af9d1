// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError is the error body GitHub returns on failures.
type apiError struct {
	Message string `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusForbidden:
		if strings.Contains(strings.ToLower(message), "bad credentials") {
			return fmt.Errorf("%w: %s", ErrUnauthorized, message)
		}
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemote, resp.StatusCode(), message)
	}
}

func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var apiErr apiError
	if err := json.Unmarshal(resp.Body(), &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
