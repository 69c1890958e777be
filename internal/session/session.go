// Package session owns the authenticated HTTP sessions against the MEATER
// cloud and the persisted token/device-identity state they share.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Zahlii/meater-api/internal/logger"
)

// userAgent mimics the vendor iOS app; the API rejects unknown clients.
const userAgent = "MEATER/12305 CFNetwork/1568.300.101 Darwin/24.2.0"

// StatusError is returned for any non-2xx response. The body is retained so
// callers and logs can surface the vendor's error payload.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

// Session is one authenticated HTTP session against a single API base URL.
// Once a bearer token is set, every outbound request carries it. Sessions do
// not retry and do not refresh expired tokens.
type Session struct {
	name  string
	base  string
	token string
	http  *http.Client
	log   *logger.Logger
}

// New returns a session for the given base URL. The name only labels log
// lines ("v2", "v1"). No request timeout is configured beyond the transport
// defaults.
func New(name, base string, log *logger.Logger) *Session {
	return &Session{
		name: name,
		base: base,
		http: &http.Client{},
		log:  log,
	}
}

// SetToken attaches a bearer token to all subsequent requests.
func (s *Session) SetToken(token string) {
	s.token = token
}

// Token returns the current bearer token, empty until login succeeds.
func (s *Session) Token() string {
	return s.token
}

// GetJSON issues a GET and decodes the response body into out.
func (s *Session) GetJSON(ctx context.Context, path string, out any) error {
	return s.roundTrip(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
func (s *Session) PostJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}
	return s.roundTrip(ctx, http.MethodPost, path, raw, out)
}

func (s *Session) roundTrip(ctx context.Context, method, path string, body []byte, out any) error {
	url := s.base + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	res, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer res.Body.Close()

	s.log.Infow("api response", "session", s.name, "method", method, "url", url, "status", res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, url, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		s.log.Errorw("api request failed",
			"session", s.name, "method", method, "url", url,
			"status", res.StatusCode, "body", string(raw))
		return &StatusError{Method: method, URL: url, StatusCode: res.StatusCode, Body: raw}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, url, err)
	}
	return nil
}
