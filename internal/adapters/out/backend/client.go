// Package backend contains HTTP clients for the upstream back-office API:
// the two order intake channels, the driver registry, and the financial
// record store. Every client attaches the bearer token from the session
// store; there is no automatic retry.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/session"
)

const defaultRequestTimeout = 15 * time.Second

// errorBodyLimit caps how much of an upstream error body ends up in the
// returned error message.
const errorBodyLimit = 4096

// restClient is the shared transport under the concrete upstream clients.
type restClient struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

func newRESTClient(baseURL string, sess *session.Store) restClient {
	return restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		session: sess,
	}
}

// do performs one JSON request against the upstream API. A non-nil body is
// marshaled as the request payload; a non-nil out receives the decoded
// response. 401/403 map to errs.ErrUnauthorized and 404 to
// errs.ErrObjectNotFound so callers can classify with errors.Is.
func (c restClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.session.Token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.NewUnauthorizedError(method + " " + path)
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError("resource", path)
	case resp.StatusCode >= http.StatusBadRequest:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return fmt.Errorf("backend: %s %s returned %d: %s",
			method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// upstreamTimeLayouts are the timestamp formats observed across the two
// intake channels.
var upstreamTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseUpstreamTime tries the known upstream layouts in order. A nil result
// means the value was absent or unparseable; the normalizer decides what
// that implies for the record.
func parseUpstreamTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range upstreamTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
