package store

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (s *Store) newRequest(ctx context.Context, method, u string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}

	if s.http.UserAgent != "" {
		req.Header.Set("User-Agent", s.http.UserAgent)
	}
	if s.http.Authorization != "" {
		req.Header.Set("Authorization", s.http.Authorization)
		req.Header.Set("X-Tada-Authorization", s.http.Authorization)
	}
	if s.http.From != "" {
		req.Header.Set("From", s.http.From)
	}

	return req, nil
}

func (s *Store) get(ctx context.Context, u string) (io.ReadCloser, error) {
	req, err := s.newRequest(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, u)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_ = resp.Body.Close()
		return nil, &HTTPError{Method: http.MethodGet, URL: u, Status: resp.Status}
	}

	return resp.Body, nil
}

func (s *Store) put(ctx context.Context, u, body string) error {
	req, err := s.newRequest(ctx, http.MethodPut, u, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Method: http.MethodPut, URL: u, Status: resp.Status}
	}
	return nil
}
