package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"talky/backend/internal/model"
)

// DefaultBaseURL is where the relay listens out of the box.
const DefaultBaseURL = "http://localhost:5000"

// NetworkError means the relay could not be reached at all.
type NetworkError struct {
	BaseURL string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach relay at %s: %v", e.BaseURL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError carries the relay's {error} text for a non-2xx response.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }

// RelayClient is the HTTP transport to the relay backend.
type RelayClient struct {
	baseURL string
	client  *http.Client
}

// NewRelayClient returns a client for baseURL, or DefaultBaseURL when empty.
// A nil httpClient uses a client without a timeout.
func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &RelayClient{baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

// BaseURL returns the relay address this client talks to.
func (c *RelayClient) BaseURL() string { return c.baseURL }

// Chat posts the full history to /api/chat. An empty modelID lets the relay
// pick its default provider.
func (c *RelayClient) Chat(ctx context.Context, history []model.ChatTurn, modelID string) (*model.ChatResponse, error) {
	body, err := json.Marshal(model.ChatRequest{Messages: history, Model: modelID})
	if err != nil {
		return nil, fmt.Errorf("could not marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out model.ChatResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls the relay's liveness probe.
func (c *RelayClient) Health(ctx context.Context) (*model.HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}

	var out model.HealthResponse
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RelayClient) do(req *http.Request, out interface{}) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{BaseURL: c.baseURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		msg := "Server error"
		if jsonErr := json.Unmarshal(data, &errBody); jsonErr == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("could not decode relay response: %w", err)
	}
	return nil
}
