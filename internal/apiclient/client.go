package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking-web/internal/logging"
	"github.com/BruksfildServices01/barber-booking-web/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// Client fala com a API REST da barbearia. Não guarda token: cada chamada
// autenticada recebe o token da sessão do usuário.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	metrics    *metrics.APIMetrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithMetrics(m *metrics.APIMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func New(baseURL string, logger *logging.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request descreve uma chamada; fallback é a mensagem usada quando a API não explica o erro.
type request struct {
	op       string
	method   string
	path     string
	query    url.Values
	token    string
	auth     bool
	body     any
	form     *formBody
	fallback string
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	if r.auth && strings.TrimSpace(r.token) == "" {
		return ErrMissingToken
	}

	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	switch {
	case r.form != nil:
		payload, ct, err := r.form.encode()
		if err != nil {
			return fmt.Errorf("%s: build form: %w", r.op, err)
		}
		bodyReader = bytes.NewReader(payload)
		contentType = ct
	case r.body != nil:
		payload, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", r.op, err)
		}
		bodyReader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", r.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.auth {
		req.Header.Set("Authorization", "Token "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe(r.op, 0, time.Since(start))
		return fmt.Errorf("%s: http request: %w", r.op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.Observe(r.op, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, respBody, r.fallback)
		c.logger.Warn("barbershop API non-2xx response",
			"operation", r.op,
			"status", resp.StatusCode,
			"path", r.path,
			"message", apiErr.Message,
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.op, err)
	}
	return nil
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}
