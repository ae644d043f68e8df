package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/client/models"
	"github.com/dmitrijs2005/jwtconsole/internal/common"
	"github.com/dmitrijs2005/jwtconsole/internal/logging"
	"github.com/google/uuid"
)

const (
	authPath  = "/api/auth"
	usersPath = "/api/users"

	// error bodies larger than this are not worth decoding
	maxErrorBody = 64 << 10
)

// HTTPClient talks JSON over HTTP to the API at baseURL.
type HTTPClient struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    TokenSource
	logger    logging.Logger
	requestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithRequestID overrides the X-Request-Id generator.
func WithRequestID(fn func() string) Option {
	return func(c *HTTPClient) { c.requestID = fn }
}

// NewHTTPClient returns a client for the API rooted at baseURL. tokens may be
// nil, in which case no Authorization header is ever sent.
func NewHTTPClient(baseURL string, tokens TokenSource, logger logging.Logger, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL:   u,
		http:      &http.Client{},
		tokens:    tokens,
		logger:    logger,
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	var sess models.Session
	if err := c.do(ctx, http.MethodPost, authPath+"/login", creds, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, authPath+"/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := c.do(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, userPath(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPut, userPath(id), upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id int64) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodDelete, userPath(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func userPath(id int64) string {
	return usersPath + "/" + strconv.FormatInt(id, 10)
}

// do performs one round trip. in, when non-nil, is sent as the JSON body; a
// 2xx body is decoded into out. An empty 2xx body leaves out untouched.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newRequest(ctx, method, path, in)
	if err != nil {
		return err
	}

	log := c.logger.With("method", method, "path", path, "request_id", req.Header.Get(common.RequestIDHeaderName))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapStatus(resp.StatusCode, readMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, in any) (*http.Request, error) {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, c.requestID())

	if c.tokens != nil {
		token, tokenType, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			if tokenType == "" {
				tokenType = common.DefaultTokenType
			}
			req.Header.Set(common.AuthorizationHeaderName, tokenType+" "+token)
		}
	}
	return req, nil
}

// readMessage extracts the "message" field of an error body, if there is one.
func readMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(body) == 0 {
		return ""
	}
	var m models.MessageResponse
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	return m.Message
}

var _ Client = (*HTTPClient)(nil)

