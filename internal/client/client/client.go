package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/tutorias/internal/client/session"
	"github.com/dmitrijs2005/tutorias/internal/common"
	"github.com/dmitrijs2005/tutorias/internal/logging"
	"github.com/google/uuid"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://localhost:8000"

// loginMarkers identify login-class requests, which never trigger expiry
// handling.
var loginMarkers = []string{"/login", "/set-password"}

// SessionStore is the part of the session context the client needs.
// *session.Store satisfies it.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Role(ctx context.Context) (session.Role, error)
	Clear(ctx context.Context) error
}

// Navigator moves the front-end to route after the session expired.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route string)

func (f NavigatorFunc) Navigate(ctx context.Context, route string) { f(ctx, route) }

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    SessionStore
	navigator  Navigator
	log        logging.Logger
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on a copy of the HTTP client, so
// a shared client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// New builds a Client for baseURL. store is consulted on every request;
// nav may be nil, in which case expiry only clears the session.
func New(baseURL string, store SessionStore, nav Navigator, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		session:    store,
		navigator:  nav,
		log:        logging.Nop{},
		userAgent:  "tutorias-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req and decodes a JSON answer into out. out may be nil to
// discard the body.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, normalizePath(req.Path), err)
	}
	return nil
}

// Download sends req expecting a binary document.
func (c *Client) Download(ctx context.Context, req *Request) (*Document, error) {
	req.ResponseType = ResponseBlob
	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		return nil, err
	}

	doc := &Document{Data: resp.body, ContentType: resp.header.Get("Content-Type")}
	if cd := resp.header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			doc.Filename = params["filename"]
		}
	}
	return doc, nil
}

func (c *Client) Get(ctx context.Context, path string, query Query, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body Body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body Body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path}, nil)
}

type response struct {
	header http.Header
	body   []byte
}

func (c *Client) roundTrip(ctx context.Context, req *Request) (*response, error) {
	path := normalizePath(req.Path)
	httpReq, payload, err := c.newHTTPRequest(ctx, req, path)
	if err != nil {
		return nil, &Failure{Method: req.Method, RequestPath: path, RequestBody: payload, Err: err, stage: stageBuild}
	}

	c.authorize(ctx, httpReq)

	requestID := httpReq.Header.Get(common.RequestIDHeader)
	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn(ctx, "request failed", "request_id", requestID, "method", req.Method, "path", path, "error", err)
		return nil, c.handleFailure(ctx, &Failure{
			Method: req.Method, RequestPath: path, RequestBody: payload, Err: err, stage: stageSend,
		})
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	c.log.Debug(ctx, "request done",
		"request_id", requestID, "method", req.Method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(started))
	if err != nil {
		return nil, c.handleFailure(ctx, &Failure{
			Method: req.Method, RequestPath: path, RequestBody: payload, Err: err, stage: stageSend,
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.handleFailure(ctx, &Failure{
			StatusCode:  resp.StatusCode,
			Method:      req.Method,
			RequestPath: path,
			RequestBody: payload,
			Detail:      parseDetail(body),
			stage:       stageResponse,
		})
	}

	return &response{header: resp.Header, body: body}, nil
}

func (c *Client) newHTTPRequest(ctx context.Context, req *Request, path string) (*http.Request, []byte, error) {
	target := c.baseURL + path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var (
		payload     []byte
		contentType = "application/json"
		err         error
	)
	if req.Body != nil {
		payload, contentType, err = req.Body.encode()
		if err != nil {
			return nil, nil, err
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, payload, err
	}

	httpReq.Header.Set("Content-Type", contentType)
	if req.ResponseType == ResponseBlob {
		httpReq.Header.Set("Accept", "*/*")
	} else {
		httpReq.Header.Set("Accept", "application/json")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set(common.RequestIDHeader, uuid.NewString())
	return httpReq, payload, nil
}

// authorize attaches the stored credential. A store that cannot be read
// does not fail the request; it goes out unauthenticated.
func (c *Client) authorize(ctx context.Context, httpReq *http.Request) {
	token, err := c.session.Token(ctx)
	if err != nil {
		c.log.Warn(ctx, "session store unavailable, sending without credential", "error", err)
		return
	}
	if token == "" {
		return
	}
	httpReq.Header.Set(common.AuthorizationHeader, common.BearerScheme+" "+token)
}

// handleFailure runs the expiry handler when f qualifies and returns f.
func (c *Client) handleFailure(ctx context.Context, f *Failure) error {
	if !f.Unauthorized() || isLoginRequest(f.RequestPath) {
		return f
	}

	token, err := c.session.Token(ctx)
	if err != nil || token == "" {
		return f
	}

	c.expireSession(ctx)
	return f
}

func (c *Client) expireSession(ctx context.Context) {
	role, err := c.session.Role(ctx)
	if err != nil {
		c.log.Warn(ctx, "could not read role of expired session", "error", err)
	}

	if err := c.session.Clear(ctx); err != nil {
		c.log.Error(ctx, "could not clear expired session", "error", err)
	}

	route := role.LoginRoute()
	c.log.Info(ctx, "session expired, redirecting to login", "role", string(role), "route", route)

	if c.navigator != nil {
		c.navigator.Navigate(ctx, route)
	}
}

func isLoginRequest(path string) bool {
	for _, marker := range loginMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
