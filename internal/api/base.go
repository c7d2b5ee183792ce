// Package api builds requests for the individual YouVersion resources and
// decodes their payloads. Authentication headers are attached by the
// client's transport wrapper; this layer only adds content negotiation.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	clienterrors "github.com/youversion-community/go-youversion/internal/errors"
)

// Doer is the subset of *http.Client the api layer depends on.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4096

// getJSON issues a GET for url and decodes the JSON payload into out.
// Non-200 responses and network failures come back classified for the
// retry layer.
func getJSON(ctx context.Context, httpClient Doer, url, lang, resource string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(resource, "error").Inc()
		return clienterrors.NewNetworkError(resource, err)
	}
	defer func() { _ = resp.Body.Close() }()

	requestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return clienterrors.NewHTTPError(resp.StatusCode, string(body), resource)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
