package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	otelx "github.com/JC2405/medicitas-client/otel"
	"github.com/JC2405/medicitas-client/storage"
	"github.com/JC2405/medicitas-client/utils/logger"
)

// DefaultBaseURL is the compiled-in backend address the mobile app ships
// with. Host applications override it through Config.
const DefaultBaseURL = "http://10.2.232.70:8000/api"

// publicRoutes are request-path substrings that never require a bearer
// token.
var publicRoutes = []string{"/login", "/crearUsuarioPaciente"}

// Config holds the API client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Store   storage.SessionStore
}

// Client wraps resty with the credential handling the backend contract
// requires: a bearer token on every non-public request, and a single
// refresh-and-retry on credential rejection.
type Client struct {
	http           *resty.Client
	store          storage.SessionStore
	onUnauthorized func()
}

func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpc.SetTimeout(cfg.Timeout)
	}

	c := &Client{http: httpc, store: cfg.Store}
	httpc.OnBeforeRequest(c.attachBearer)
	httpc.OnBeforeRequest(otelx.WithTraceHeaders)
	return c
}

// OnUnauthorized registers the hook invoked when a credential rejection
// sticks (the refresh attempt failed or was unavailable). The app layer uses
// it to clear the session context.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// IsPublicRoute reports whether the path matches the public allow-list.
func IsPublicRoute(path string) bool {
	for _, route := range publicRoutes {
		if strings.Contains(path, route) {
			return true
		}
	}
	return false
}

func (c *Client) attachBearer(_ *resty.Client, req *resty.Request) error {
	if IsPublicRoute(req.URL) {
		return nil
	}
	token, err := c.store.Token(req.Context())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.LogWarn("token read failed, sending request unauthenticated", zap.Error(err))
		}
		return nil
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

// Execute sends one request. A 401 on a non-public path triggers the
// one-shot recovery: the stored session is dropped, a single POST /refresh is
// attempted, and on success the original request is re-issued exactly once
// with the new token. Any other outcome propagates unchanged.
func (c *Client) Execute(ctx context.Context, method, path string, body interface{}) (*resty.Response, error) {
	ctx, finish := otelx.StartHTTPSpan(ctx, method, c.http.BaseURL, path)
	resp, err := c.execute(ctx, method, path, body)
	if err != nil {
		finish(0, err)
	} else {
		finish(resp.StatusCode(), nil)
	}
	return resp, err
}

func (c *Client) execute(ctx context.Context, method, path string, body interface{}) (*resty.Response, error) {
	resp, err := c.send(ctx, method, path, body, "")
	if err != nil {
		return nil, NetworkError(err)
	}
	if resp.StatusCode() != http.StatusUnauthorized || IsPublicRoute(path) {
		return resp, nil
	}

	logger.LogInfo("token rejected, clearing stored session",
		zap.String("method", method), zap.String("path", path))
	if clearErr := c.store.Clear(ctx); clearErr != nil {
		logger.LogWarn("stored session clear failed", zap.Error(clearErr))
	}

	newToken, ok := c.refresh(ctx)
	if !ok {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return resp, nil
	}

	retry, retryErr := c.send(ctx, method, path, body, newToken)
	if retryErr != nil {
		return resp, nil
	}
	return retry, nil
}

// refresh performs the single token-refresh call. The stored token was
// already dropped, so the call goes out unauthenticated, mirroring the
// backend's refresh contract.
func (c *Client) refresh(ctx context.Context) (string, bool) {
	resp, err := c.send(ctx, http.MethodPost, "/refresh", nil, "")
	if err != nil || resp.IsError() {
		logger.LogWarn("token refresh failed", zap.Error(err))
		return "", false
	}

	token := gjson.GetBytes(resp.Body(), "token").String()
	if token == "" {
		token = gjson.GetBytes(resp.Body(), "access_token").String()
	}
	if token == "" {
		return "", false
	}

	if saveErr := c.store.SaveToken(ctx, token); saveErr != nil {
		logger.LogWarn("refreshed token persist failed", zap.Error(saveErr))
	}
	logger.LogInfo("token refreshed")
	return token, true
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}, overrideToken string) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if overrideToken != "" {
		req.SetHeader("Authorization", "Bearer "+overrideToken)
	}
	return req.Execute(method, path)
}

// Convenience wrappers for the verbs the services use.

func (c *Client) Get(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPost, path, body)
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPut, path, body)
}

func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodPatch, path, body)
}

func (c *Client) Delete(ctx context.Context, path string) (*resty.Response, error) {
	return c.Execute(ctx, http.MethodDelete, path, nil)
}

// Decode converts a response into either the parsed body or an *Error whose
// message is fit for an alert. A nil out discards the body.
func Decode(resp *resty.Response, fallback string, out interface{}) error {
	if resp.IsError() {
		return errorFromResponse(resp, fallback)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Kind: KindServer, StatusCode: resp.StatusCode(), Message: MsgServidor, err: err}
	}
	return nil
}
