// Package client talks to a running todo server over its JSON API.
package client

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

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/ops"
)

const (
	todosPath      = "/api/todos"
	defaultTimeout = 10 * time.Second
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Method  string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, todosPath, e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

// UpdateRequest is the body of a PUT. Nil fields are omitted and keep their
// current value on the server.
type UpdateRequest struct {
	ID        string  `json:"id"`
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Client is a todo API client.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:3000".
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}, nil
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns all tasks.
func (c *Client) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(ctx, http.MethodGet, todosPath, nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// Create adds a task.
func (c *Client) Create(ctx context.Context, text string) (*model.Task, error) {
	var task model.Task
	body := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, todosPath, body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update changes the fields set in req.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (*model.Task, error) {
	var task model.Task
	if err := c.do(ctx, http.MethodPut, todosPath, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the task with the given ID. Deleting an unknown ID succeeds.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := model.ValidateID(id); err != nil {
		return &ops.ValidationError{Field: "id", Message: "must be a non-empty string"}
	}
	path := todosPath + "?" + url.Values{"id": {id}}.Encode()
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do sends a request and decodes a 2xx JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// newAPIError builds an APIError from a failed response and wraps it in the
// matching ops error type so callers can use ops.IsValidation / ops.IsNotFound.
func newAPIError(method string, status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	apiErr := &APIError{Method: method, Status: status, Message: payload.Message}
	switch status {
	case http.StatusBadRequest:
		return &wrapped{api: apiErr, kind: &ops.ValidationError{Message: apiErr.Error()}}
	case http.StatusNotFound:
		return &wrapped{api: apiErr, kind: &ops.NotFoundError{Type: "task", ID: ""}}
	default:
		return apiErr
	}
}

// wrapped carries an APIError together with the ops error it maps to.
// Its message is the server's message.
type wrapped struct {
	api  *APIError
	kind error
}

func (w *wrapped) Error() string { return w.api.Error() }

func (w *wrapped) Unwrap() []error { return []error{w.api, w.kind} }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
