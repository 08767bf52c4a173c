// Package provenance talks to the external token provenance trust service.
package provenance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/burnsentry/burnsentry-backend/internal/model"
	"go.uber.org/ratelimit"
)

// ErrUnavailable reports that the trust service answered but could not
// render a verdict. Distinct from transport failures so callers can tell
// "service down" from "network broken".
var ErrUnavailable = errors.New("provenance service unavailable")

type (
	// Metrics records metrics for trust service calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client is an HTTP client for the provenance trust service. Outbound
// request rate is capped so a burst of validations cannot overload the
// oracle. The client performs no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	rl         ratelimit.Limiter
	metrics    Metrics
}

// NewClient constructs a trust service client.
func NewClient(baseURL string, timeout time.Duration, rps int, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse trust service url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("trust service url scheme %q not supported", parsed.Scheme)
	}
	if rps <= 0 {
		rps = 10
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		rl:         ratelimit.New(rps),
		metrics:    metrics,
	}, nil
}

type verdictResponse struct {
	Valid bool `json:"valid"`
}

// VerdictFor asks the trust service whether the transaction identified by
// txid is a validly-chained token operation.
func (c *Client) VerdictFor(ctx context.Context, txid string, reversedByteOrder bool) (verdict model.ProvenanceVerdict, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("verdict_for", err, started)
	}()

	c.rl.Take()

	endpoint := fmt.Sprintf("%s/v1/provenance/%s?reversed=%s",
		c.baseURL, url.PathEscape(txid), strconv.FormatBool(reversedByteOrder))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.ProvenanceVerdict{}, fmt.Errorf("build verdict request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProvenanceVerdict{}, fmt.Errorf("request verdict for %s: %w", txid, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return model.ProvenanceVerdict{}, fmt.Errorf("verdict for %s: status %d: %w", txid, resp.StatusCode, ErrUnavailable)
	}

	var decoded verdictResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return model.ProvenanceVerdict{}, fmt.Errorf("decode verdict for %s: %w", txid, err)
	}

	return model.ProvenanceVerdict{Valid: decoded.Valid}, nil
}
