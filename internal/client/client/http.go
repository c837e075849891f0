package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/common"
	"github.com/google/uuid"
)

const maxErrorBody = 4 << 10

// HTTPClient talks to the story API over HTTP+JSON.
type HTTPClient struct {
	baseURL      *url.URL
	http         *http.Client
	newRequestID func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithRequestIDFunc overrides how X-Request-ID values are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *HTTPClient) { c.newRequestID = fn }
}

func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:      u,
		http:         &http.Client{Timeout: timeout},
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type credentialsBody struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name,omitempty"`
	} `json:"user"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type userResponse struct {
	User models.User `json:"user"`
}

type storiesResponse struct {
	Stories []models.Story `json:"stories"`
}

type errorResponse struct {
	Error struct {
		Status  int    `json:"status"`
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	var body credentialsBody
	body.User.Username = username
	body.User.Password = string(password)

	var resp authResponse
	if err := c.do(ctx, "login", http.MethodPost, "/login", nil, body, &resp); err != nil {
		return nil, err
	}
	u := resp.User
	u.LoginToken = resp.Token
	return &u, nil
}

func (c *HTTPClient) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	var body credentialsBody
	body.User.Username = username
	body.User.Password = string(password)
	body.User.Name = name

	var resp authResponse
	if err := c.do(ctx, "signup", http.MethodPost, "/signup", nil, body, &resp); err != nil {
		return nil, err
	}
	u := resp.User
	u.LoginToken = resp.Token
	return &u, nil
}

func (c *HTTPClient) LoginViaStoredCredentials(ctx context.Context, token, username string) (*models.User, error) {
	q := url.Values{}
	q.Set("token", token)

	var resp userResponse
	if err := c.do(ctx, "restore", http.MethodGet, "/users/"+url.PathEscape(username), q, nil, &resp); err != nil {
		return nil, err
	}
	u := resp.User
	u.LoginToken = token
	return &u, nil
}

func (c *HTTPClient) GetStories(ctx context.Context) ([]models.Story, error) {
	var resp storiesResponse
	if err := c.do(ctx, "stories", http.MethodGet, "/stories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stories, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Reason: ReasonUnknown, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return &Error{Op: op, Reason: ReasonUnknown, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(common.RequestIDHeaderName, c.newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(op, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Reason: ReasonUnknown, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func statusError(op string, resp *http.Response) *Error {
	e := &Error{Op: op, Reason: reasonForStatus(resp.StatusCode), Status: resp.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var er errorResponse
	if json.Unmarshal(raw, &er) == nil && er.Error.Message != "" {
		e.Message = er.Error.Message
	} else {
		e.Message = strings.TrimSpace(string(raw))
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}

func (c *HTTPClient) mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return &Error{Op: op, Reason: ReasonUnknown, Err: err}
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return &Error{Op: op, Reason: ReasonUnavailable, Err: err}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &Error{Op: op, Reason: ReasonUnavailable, Err: err}
	}
	return &Error{Op: op, Reason: ReasonUnknown, Err: err}
}
