// Package ledger is a client for the ledgerbook REST API.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

func init() {
	// the API speaks raw JSON numbers for monetary values
	decimal.MarshalJSONWithoutQuotes = true
}

// Client holds our base configuration for the ledgerbook API.
type Client struct {
	// HTTP is exported so callers can swap the transport,
	// e.g. to install request logging.
	HTTP *http.Client

	base *url.URL
}

// NewClient creates a new client for the API rooted at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base URL is required")
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	return &Client{
		HTTP: &http.Client{},
		base: u,
	}, nil
}

// get performs a GET request against path and decodes the response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// do builds the request, performs it, and hands the response to decodeResponse.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var buf *bytes.Buffer
	if body != nil {
		buf = new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if buf != nil {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), buf)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
	}
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// decodeResponse implements the response contract shared by every operation:
// 2xx with a body decodes into out, 204 leaves out at its zero value,
// 4xx becomes a *ValidationError, anything else a *RequestError.
func decodeResponse(resp *http.Response, out any) error {
	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
		return nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var ve ValidationError
		if err := json.NewDecoder(resp.Body).Decode(&ve); err != nil {
			// a 4xx without the documented shape still surfaces as validation
			return &ValidationError{}
		}
		return &ve

	default:
		return &RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
}
