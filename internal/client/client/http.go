package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Under67/stellar-burgers/internal/client/models"
	"github.com/Under67/stellar-burgers/internal/common"
	"github.com/Under67/stellar-burgers/internal/logging"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"github.com/tidwall/gjson"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultBreakerTimeout   = 10 * time.Second
	defaultBreakerThreshold = 5
)

// errServerStatus marks a 5xx answer so the breaker counts it as a failure
// while the body is still decoded for the caller.
var errServerStatus = errors.New("server error status")

// Options configures an HTTPClient.
type Options struct {
	BaseURL string
	Timeout time.Duration

	// BreakerThreshold is the number of consecutive failures that opens the
	// circuit; BreakerTimeout is how long it stays open.
	BreakerThreshold uint32
	BreakerTimeout   time.Duration

	Tokens     TokenStore
	Logger     logging.Logger
	HTTPClient *http.Client
}

type rawResponse struct {
	status int
	body   []byte
}

// HTTPClient implements Client over the backend's JSON REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger
	breaker *gobreaker.CircuitBreaker[*rawResponse]
}

func NewHTTPClient(opts Options) *HTTPClient {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	threshold := opts.BreakerThreshold
	if threshold == 0 {
		threshold = defaultBreakerThreshold
	}
	openFor := opts.BreakerTimeout
	if openFor == 0 {
		openFor = defaultBreakerTimeout
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    hc,
		tokens:  opts.Tokens,
		log:     log,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:        "stellar-api",
		MaxRequests: 1,
		Timeout:     openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(context.Background(), "circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return c
}

var _ Client = (*HTTPClient)(nil)

type ingredientsResponse struct {
	Data []models.Ingredient `json:"data"`
}

type ordersResponse struct {
	Orders []models.Order `json:"orders"`
}

type createOrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

type createOrderResponse struct {
	Name  string                `json:"name"`
	Order models.SubmittedOrder `json:"order"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type userResponse struct {
	User models.User `json:"user"`
}

func (c *HTTPClient) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var resp ingredientsResponse
	if err := c.do(ctx, http.MethodGet, "/ingredients", nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *HTTPClient) GetFeed(ctx context.Context) (*models.Feed, error) {
	var feed models.Feed
	if err := c.do(ctx, http.MethodGet, "/orders/all", nil, false, &feed); err != nil {
		return nil, err
	}
	return &feed, nil
}

func (c *HTTPClient) GetUserOrders(ctx context.Context) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *HTTPClient) GetOrderByNumber(ctx context.Context, number int) ([]models.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.Itoa(number), nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, ingredientIDs []string) (*models.SubmittedOrder, error) {
	var resp createOrderResponse
	req := createOrderRequest{Ingredients: ingredientIDs}
	if err := c.do(ctx, http.MethodPost, "/orders", req, true, &resp); err != nil {
		return nil, err
	}
	order := resp.Order
	if order.Name == "" {
		order.Name = resp.Name
	}
	return &order, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", data, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, data models.LoginData) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", data, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/token", tokenRequest{Token: refreshToken}, false, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", tokenRequest{Token: refreshToken}, false, nil)
}

func (c *HTTPClient) GetUser(ctx context.Context) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodPatch, "/auth/user", update, true, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// do performs a call. Authorized calls refresh the session first when the
// access token is gone, and refresh once and replay when the backend rejects
// the token as expired.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any, authorized bool, out any) error {
	refreshed := false
	if authorized && c.tokens != nil && c.tokens.AccessToken() == "" {
		switch err := c.refresh(ctx); {
		case err == nil:
			refreshed = true
		case errors.Is(err, common.ErrNoRefreshToken):
		default:
			return fmt.Errorf("refresh session: %w", err)
		}
	}

	err := c.send(ctx, method, path, in, authorized, out)
	if !authorized || refreshed || !isTokenExpired(err) {
		return err
	}

	c.log.Debug(ctx, "access token expired, refreshing", "path", path)
	if rerr := c.refresh(ctx); rerr != nil {
		return fmt.Errorf("refresh session: %w", rerr)
	}

	return c.send(ctx, method, path, in, authorized, out)
}

func (c *HTTPClient) refresh(ctx context.Context) error {
	if c.tokens == nil {
		return common.ErrNoRefreshToken
	}

	refresh, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return err
	}
	if refresh == "" {
		return common.ErrNoRefreshToken
	}

	res, err := c.RefreshToken(ctx, refresh)
	if err != nil {
		return err
	}
	return c.tokens.Save(ctx, res.AccessToken, res.RefreshToken, "")
}

func (c *HTTPClient) send(ctx context.Context, method, path string, in any, authorized bool, out any) error {
	var payload []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		payload = b
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json;charset=utf-8")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if authorized && c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, token)
		}
	}

	start := time.Now()
	raw, err := c.breaker.Execute(func() (*rawResponse, error) {
		return c.roundTrip(req)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, errServerStatus):
	case err != nil:
		return err
	}

	c.log.Debug(ctx, "api call",
		"method", method,
		"path", path,
		"status", raw.status,
		"request_id", req.Header.Get(common.RequestIDHeaderName),
		"took", time.Since(start).String(),
	)

	return decode(raw, out)
}

func (c *HTTPClient) roundTrip(req *http.Request) (*rawResponse, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	raw := &rawResponse{status: resp.StatusCode, body: body}
	if resp.StatusCode >= http.StatusInternalServerError {
		return raw, errServerStatus
	}
	return raw, nil
}

// decode checks the "success" envelope and unmarshals the body into out.
func decode(raw *rawResponse, out any) error {
	if !gjson.ValidBytes(raw.body) {
		if raw.status >= http.StatusBadRequest {
			return &APIError{StatusCode: raw.status}
		}
		return fmt.Errorf("decode response: malformed body")
	}

	if raw.status >= http.StatusBadRequest || !gjson.GetBytes(raw.body, "success").Bool() {
		return &APIError{
			StatusCode: raw.status,
			Message:    gjson.GetBytes(raw.body, "message").String(),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw.body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isTokenExpired(err error) bool {
	return errors.Is(err, common.ErrTokenExpired)
}
