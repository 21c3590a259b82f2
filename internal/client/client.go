// Package client provides a typed Go client for the Noteloft API and a
// persistent session cache for its callers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/noteloft/noteloft/internal/domain/note"
	"github.com/noteloft/noteloft/internal/domain/tenant"
	"github.com/noteloft/noteloft/internal/domain/user"
)

// APIError is a non-2xx response from the server, decoded from the
// response envelope.
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// Client talks to the Noteloft HTTP API. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New creates a client against baseURL using the given session. The
// session supplies the bearer token for authenticated calls; a
// logged-out session is valid for Login and Health only.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		session: session,
	}
}

// Login authenticates and fills the session with the returned token and
// user/tenant snapshots. The caller decides whether to persist it.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(user.LoginRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("marshal login: %w", err)
	}

	data, err := c.doRequest(ctx, http.MethodPost, "/api/auth", body)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	var resp user.LoginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return fmt.Errorf("unmarshal login response: %w", err)
	}

	c.session.Token = resp.Token
	c.session.User = resp.User
	c.session.Tenant = resp.Tenant
	return nil
}

// Health checks the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.doRequest(ctx, http.MethodGet, "/api/health", nil)
	return err
}

// ListNotes returns the tenant's notes, newest first.
func (c *Client) ListNotes(ctx context.Context) ([]note.Note, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	var notes []note.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}
	return notes, nil
}

// CreateNote creates a note owned by the session user.
func (c *Client) CreateNote(ctx context.Context, req note.CreateRequest) (*note.Note, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal note: %w", err)
	}

	data, err := c.doRequest(ctx, http.MethodPost, "/api/notes", body)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	var n note.Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("unmarshal note: %w", err)
	}
	return &n, nil
}

// GetNote fetches a single note by ID.
func (c *Client) GetNote(ctx context.Context, id string) (*note.Note, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/notes/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	var n note.Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("unmarshal note: %w", err)
	}
	return &n, nil
}

// UpdateNote modifies a note's title and/or content.
func (c *Client) UpdateNote(ctx context.Context, id string, req note.UpdateRequest) (*note.Note, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal update: %w", err)
	}

	data, err := c.doRequest(ctx, http.MethodPut, "/api/notes/"+id, body)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	var n note.Note
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("unmarshal note: %w", err)
	}
	return &n, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, "/api/notes/"+id, nil); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// UpgradeTenant upgrades the session tenant to the pro plan and refreshes
// the cached tenant snapshot.
func (c *Client) UpgradeTenant(ctx context.Context) (*tenant.Tenant, error) {
	data, err := c.doRequest(ctx, http.MethodPost, "/api/tenants/"+c.session.Tenant.Slug+"/upgrade", nil)
	if err != nil {
		return nil, fmt.Errorf("upgrade tenant: %w", err)
	}

	var t tenant.Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tenant: %w", err)
	}
	c.session.Tenant = t
	return &t, nil
}

// ListUsers returns the tenant's users (admin sessions only).
func (c *Client) ListUsers(ctx context.Context) ([]user.ListItem, error) {
	data, err := c.doRequest(ctx, http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var users []user.ListItem
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("unmarshal users: %w", err)
	}
	return users, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.session != nil && c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error, Code: env.Code}
	}

	return env.Data, nil
}
