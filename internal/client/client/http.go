package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/olilab/internal/client/models"
)

const maxResponseSize = 8 << 20

// HTTPClient talks to the OliLab REST backend.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns a client for baseURL (e.g. "http://localhost:5000").
// Each request is bounded by timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type dataResponse struct {
	Users []models.User `json:"users"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (c *HTTPClient) Login(ctx context.Context, identifier string, password []byte) (*models.SecureUser, error) {
	body, err := json.Marshal(loginRequest{Identifier: identifier, Password: string(password)})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	var u models.User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &u); err != nil {
		return nil, err
	}
	su := u.Secure()
	return &su, nil
}

func (c *HTTPClient) FetchUsers(ctx context.Context) ([]models.User, error) {
	var resp dataResponse
	if err := c.do(ctx, http.MethodGet, "/api/data", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Message == "" {
		er.Message = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: er.Message}
}
