package adminclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type Operation string

const (
	OpPopulate Operation = "populate"
	OpClear    Operation = "clear"
	OpReset    Operation = "reset"
)

var ErrUnknownOperation = errors.New("unknown admin operation")

var operationPaths = map[Operation]string{
	OpPopulate: "/api/admin/populate-skills",
	OpClear:    "/api/admin/clear-skills",
	OpReset:    "/api/admin/reset-and-populate",
}

func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := operationPaths[op]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	return op, nil
}

// Client triggers the bulk-load endpoints of a running server.
type Client interface {
	Trigger(ctx context.Context, op Operation) (json.RawMessage, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

func New(baseURL string, timeout time.Duration, logger *log.Logger) (Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("empty base url")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// Trigger calls the endpoint for op and returns the data payload of a
// successful envelope.
func (c *httpClient) Trigger(ctx context.Context, op Operation) (json.RawMessage, error) {
	path, ok := operationPaths[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("calling admin endpoint", "op", op, "url", endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(rb, &env); err != nil {
		return nil, fmt.Errorf("admin %s failed: status=%d body=%s", op, resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		c.logger.Error("admin endpoint failed", "op", op, "status", resp.StatusCode, "error", env.Error, "details", env.Details)
		return nil, fmt.Errorf("admin %s failed: status=%d error=%s details=%s", op, resp.StatusCode, env.Error, env.Details)
	}
	return env.Data, nil
}

var _ Client = (*httpClient)(nil)
