// Package apiclient is a typed client for the bizdesk HTTP API. Its record
// sources plug straight into the viewstate controllers.
package apiclient

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

	"bizdesk_backend/internal/models"
	"bizdesk_backend/internal/services"
	"bizdesk_backend/internal/validation"
	"bizdesk_backend/pkg/utils"
)

const defaultTimeout = 15 * time.Second

// Client talks to one API base URL, e.g. http://localhost:8080/api/v1.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client. An empty token makes anonymous calls; a nil
// httpClient gets a default one.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

// WithToken returns a copy authenticated with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// do sends body as JSON and decodes a 2xx answer into out. Error answers
// come back as *utils.APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeError(res.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", res.StatusCode, err)
	}
	return nil
}

func decodeError(status int, raw []byte) error {
	var envelope struct {
		Error *utils.APIError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == nil {
		return utils.NewAPIError(status, "", http.StatusText(status), strings.TrimSpace(string(raw)))
	}
	envelope.Error.StatusCode = status
	return envelope.Error
}

// AsFieldErrors turns a VALIDATION_FAILED answer back into field errors so
// controllers can show them per field.
func AsFieldErrors(err error) (validation.FieldErrors, bool) {
	var apiErr *utils.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != utils.ErrCodeValidationFailed || len(apiErr.Fields) == 0 {
		return nil, false
	}
	return validation.FieldErrors(apiErr.Fields), true
}

type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Login exchanges credentials for tokens.
func (c *Client) Login(ctx context.Context, email, password string) (*services.AuthResponse, error) {
	var resp services.AuthResponse
	form := validation.LoginForm{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the profile of the token's user.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Calendar fetches the appointment groups, selecting day when non-empty.
func (c *Client) Calendar(ctx context.Context, day string) (*models.CalendarView, error) {
	path := "/calendar"
	if day != "" {
		path += "?date=" + url.QueryEscape(day)
	}
	var view models.CalendarView
	if err := c.do(ctx, http.MethodGet, path, nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// Summary fetches the dashboard card.
func (c *Client) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := c.do(ctx, http.MethodGet, "/dashboard/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

var errClientNotesReadOnly = errors.New("client notes cannot be edited")
