package zammad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
)

// Zammad reports name collisions with this exact message; it is rewritten
// to something an end user can act on.
const (
	objectExistsMessage = "Object already exists!"
	objectExistsRewrite = "An entity with this name already exists."
)

// newRequest creates a new HTTP request for the given endpoint path with
// credentials attached. An empty body or query is omitted entirely.
func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	params url.Values,
	body any,
) (*http.Request, error) {
	var reqBody io.Reader
	if !emptyBody(body) {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	switch c.creds.AuthType {
	case AuthTypeBasic:
		req.SetBasicAuth(c.creds.Username, c.creds.Password)
	case AuthTypeToken:
		req.Header.Set("Authorization", "Token token="+c.creds.AccessToken)
	}

	return req, nil
}

// emptyBody reports whether body is nil or an empty map.
func emptyBody(body any) bool {
	if body == nil {
		return true
	}

	if rv := reflect.ValueOf(body); rv.Kind() == reflect.Map {
		return rv.Len() == 0
	}

	return false
}

// doJSON executes the request and decodes the JSON response into v.
func (c *Client) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// do executes the request. Failures propagate immediately; there is no
// retry.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}

	return resp, nil
}

// apiError builds an [APIError] from a non-2xx response, preferring the
// human-readable message from the Zammad error payload.
func apiError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var payload struct {
		Error      string `json:"error"`
		ErrorHuman string `json:"error_human"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		switch {
		case payload.ErrorHuman != "":
			apiErr.Message = payload.ErrorHuman
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
	}

	if apiErr.Message == objectExistsMessage {
		apiErr.Message = objectExistsRewrite
	}

	return apiErr
}
