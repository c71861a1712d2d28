// Package client is a Go consumer of the Whisperboard API. It mirrors what
// the browser pages do: call the endpoints over HTTP and normalize whatever
// shape comes back. The decoder tolerates bare arrays, bare objects and
// data-wrapped envelopes, camelCase and snake_case field names, and a missing
// status field, so it keeps working against older deployments of the backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Doubt is the client-side canonical record. ID is a string because older
// deployments used opaque document ids; numeric ids are stringified.
type Doubt struct {
	ID         string
	Subject    string
	CourseCode string
	Teacher    string
	Question   string
	Answer     string
	Status     string
	CreatedAt  time.Time
	AnsweredAt time.Time
}

type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Answered int64 `json:"answered"`
}

type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

type SubmitDoubtInput struct {
	Subject    string `json:"subject"`
	CourseCode string `json:"courseCode"`
	Teacher    string `json:"teacher"`
	Question   string `json:"question"`
}

// APIError is a non-2xx response, decoded from the error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:8080".
// A nil httpClient falls back to a default with a 30s timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

func (c *Client) SubmitDoubt(ctx context.Context, in SubmitDoubtInput) (*Doubt, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/doubts", in)
	if err != nil {
		return nil, err
	}
	return decodeDoubt(body)
}

// ListDoubts fetches every doubt, optionally filtered by teacher on the
// server. Pass an empty teacher for the unfiltered list.
func (c *Client) ListDoubts(ctx context.Context, teacher string) ([]Doubt, error) {
	path := "/api/doubts"
	if teacher != "" {
		path += "?teacher=" + url.QueryEscape(teacher)
	}
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeDoubts(body)
}

func (c *Client) GetDoubt(ctx context.Context, id string) (*Doubt, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/doubts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeDoubt(body)
}

func (c *Client) SubmitAnswer(ctx context.Context, id, answer string) (*Doubt, error) {
	payload := map[string]string{"answer": answer}
	body, err := c.do(ctx, http.MethodPost, "/api/doubts/"+url.PathEscape(id)+"/answer", payload)
	if err != nil {
		return nil, err
	}
	return decodeDoubt(body)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/doubts/stats/summary", nil)
	if err != nil {
		return nil, err
	}
	var stats Stats
	if err := json.Unmarshal(unwrapData(body), &stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}
	return &stats, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	payload := map[string]string{"username": username, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/api/teacher/login", payload)
	if err != nil {
		return nil, err
	}
	var session Session
	if err := json.Unmarshal(unwrapData(body), &session); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &session, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/teacher/profile", nil)
	if err != nil {
		return nil, err
	}
	var profile Profile
	if err := json.Unmarshal(unwrapData(body), &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func decodeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}
	var envelope struct {
		Error   string   `json:"error"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	}
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != "" {
			apiErr.Message = envelope.Error
		} else if envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		apiErr.Details = envelope.Details
	}
	return apiErr
}
