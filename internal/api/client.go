package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lubu-ai/soletrack/internal/model"
)

// Remote is the interface the store programs against. It is implemented by
// *Client and can be swapped for a fake in tests.
type Remote interface {
	Configured() bool
	ListInsoles(ctx context.Context) ([]model.Asset, error)
	FetchHistory(ctx context.Context, insoleID string) ([]model.HistoryEntry, error)
	AddInsole(ctx context.Context, asset model.Asset) (*model.Asset, error)
	UpdateInsole(ctx context.Context, payload map[string]any) error
	DeleteInsole(ctx context.Context, id string) error
}

// Ensure Client implements Remote at compile time.
var _ Remote = (*Client)(nil)

// Client talks to the single remote spreadsheet endpoint using its
// action-dispatch protocol. A zero endpoint leaves the client unconfigured:
// every operation fails fast with ErrNotConfigured.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "soletrack/0.1"
	requestTimeout   = 15 * time.Second
)

// NewClient builds a Client for the given endpoint URL. An empty endpoint
// yields an unconfigured client, not an error.
func NewClient(endpoint string) (*Client, error) {
	c := &Client{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return c, nil
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	c.endpoint = u
	return c, nil
}

// Configured reports whether an endpoint URL is set.
func (c *Client) Configured() bool {
	return c != nil && c.endpoint != nil
}

// ListInsoles fetches the full asset collection.
func (c *Client) ListInsoles(ctx context.Context) ([]model.Asset, error) {
	data, err := c.get(ctx, "getInsoles", nil)
	if err != nil {
		return nil, err
	}
	var assets []model.Asset
	if len(data) > 0 {
		if err := json.Unmarshal(data, &assets); err != nil {
			return nil, &TransportError{Op: "getInsoles", Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return assets, nil
}

// FetchHistory fetches the change log for one asset.
func (c *Client) FetchHistory(ctx context.Context, insoleID string) ([]model.HistoryEntry, error) {
	params := url.Values{}
	params.Set("insoleId", insoleID)
	data, err := c.get(ctx, "getHistory", params)
	if err != nil {
		return nil, err
	}
	var entries []model.HistoryEntry
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, &TransportError{Op: "getHistory", Err: fmt.Errorf("decode data: %w", err)}
		}
	}
	return entries, nil
}

// AddInsole creates a record remotely. When the endpoint echoes the stored
// record back it is returned so the caller can adopt the authoritative id;
// otherwise the result is nil.
func (c *Client) AddInsole(ctx context.Context, asset model.Asset) (*model.Asset, error) {
	data, err := c.post(ctx, "addInsole", asset, asset.ID)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var stored model.Asset
	if err := json.Unmarshal(data, &stored); err != nil {
		// The write succeeded; a malformed echo only costs id adoption.
		logrus.WithError(err).Warn("addInsole: cannot decode echoed record")
		return nil, nil
	}
	return &stored, nil
}

// UpdateInsole applies a partial update. The payload carries the asset id,
// the changed fields, and optionally the field-change records for the
// endpoint's history log.
func (c *Client) UpdateInsole(ctx context.Context, payload map[string]any) error {
	id, _ := payload["id"].(string)
	_, err := c.post(ctx, "updateInsole", payload, id)
	return err
}

// DeleteInsole removes a record remotely.
func (c *Client) DeleteInsole(ctx context.Context, id string) error {
	_, err := c.post(ctx, "deleteInsole", map[string]any{"id": id}, id)
	return err
}

// envelope is the endpoint's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// get issues a read: GET ?action=<name>&<params>.
func (c *Client) get(ctx context.Context, action string, params url.Values) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	reqURL := c.actionURL(action, params, nil, "")
	resp, err := c.send(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, transportErr(action, err)
	}
	return c.decode(action, resp)
}

// post issues a write. The primary mode is a POST with a text/plain body
// (the content type avoids a CORS preflight on the original deployment).
// If the POST itself fails to transmit, the same logical write is retried
// once as a GET with the payload encoded in the query string. The endpoint
// treats both encodings identically, so the fallback is safe even if the
// POST partially went through.
func (c *Client) post(ctx context.Context, action string, payload any, id string) (json.RawMessage, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(struct {
		Action string `json:"action"`
		Data   any    `json:"data"`
		ID     string `json:"id,omitempty"`
	}{Action: action, Data: payload, ID: id})
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", action, err)
	}

	resp, postErr := c.send(ctx, http.MethodPost, c.endpoint.String(), body)
	if postErr == nil {
		return c.decode(action, resp)
	}
	var se *statusError
	if errors.As(postErr, &se) {
		// The POST reached the endpoint and was answered; no fallback.
		return nil, transportErr(action, postErr)
	}
	logrus.WithError(postErr).WithField("action", action).Debug("POST failed to transmit, retrying as GET")

	dataJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", action, err)
	}
	reqURL := c.actionURL(action, nil, dataJSON, id)
	resp, getErr := c.send(ctx, http.MethodGet, reqURL, nil)
	if getErr != nil {
		return nil, transportErr(action, getErr)
	}
	return c.decode(action, resp)
}

// actionURL builds ?action=<name> plus optional params, data and id.
func (c *Client) actionURL(action string, params url.Values, data []byte, id string) string {
	u := *c.endpoint
	values := u.Query()
	values.Set("action", action)
	for k, vs := range params {
		for _, v := range vs {
			values.Set(k, v)
		}
	}
	if data != nil {
		values.Set("data", string(data))
	}
	if id != "" {
		values.Set("id", id)
	}
	u.RawQuery = values.Encode()
	return u.String()
}

// send performs one HTTP exchange and returns the raw body. Transport
// failures and non-2xx statuses are errors.
func (c *Client) send(ctx context.Context, method, reqURL string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "text/plain")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode}
	}
	return raw, nil
}

// statusError marks a completed exchange with a non-2xx answer, as opposed
// to a transmission failure. Writes must not fall back on it.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d", e.code)
}

func transportErr(op string, err error) *TransportError {
	var se *statusError
	if errors.As(err, &se) {
		return &TransportError{Op: op, Status: se.code, Err: err}
	}
	return &TransportError{Op: op, Err: err}
}

// decode parses the response envelope and surfaces success=false as an
// APIError.
func (c *Client) decode(action string, raw []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &TransportError{Op: action, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.Success {
		return nil, &APIError{Message: env.Error}
	}
	return env.Data, nil
}
