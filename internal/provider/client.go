// Package provider is the api-tennis.com client. Every fetch is rate limited,
// guarded by a circuit breaker and cached by its request parameters. Fetches
// never return errors; failures are reported as models.Failed outcomes.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ustadmustafa/TennisBetRecommender/internal/models"
)

// DefaultBaseURL is the api-tennis.com endpoint
const DefaultBaseURL = "https://api.api-tennis.com/tennis/"

// Provider method names
const (
	MethodH2H       = "get_H2H"
	MethodPlayers   = "get_players"
	MethodStandings = "get_standings"
)

var (
	// ErrProviderRejected means the provider answered with success != 1
	ErrProviderRejected = errors.New("provider rejected request")
	// ErrBadStatus means the provider answered with a non-200 status
	ErrBadStatus = errors.New("unexpected provider status")
	// ErrMalformedResponse means the payload could not be decoded
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Config configures the provider client
type Config struct {
	BaseURL   string
	APIKey    string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 disables limiting
	RateBurst int
	CacheTTL  time.Duration

	BreakerMaxRequests  uint32
	BreakerTimeout      time.Duration
	BreakerFailureRatio float64

	Cache      Cache
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client implements logic.DataSource against api-tennis.com
type Client struct {
	baseURL    string
	apiKey     string
	cacheTTL   time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	cache      Cache
	logger     *zap.SugaredLogger
}

// NewClient creates a provider client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 1
	}
	if cfg.BreakerMaxRequests == 0 {
		cfg.BreakerMaxRequests = 3
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	if cfg.BreakerFailureRatio <= 0 {
		cfg.BreakerFailureRatio = 0.6
	}
	if cfg.Cache == nil {
		cfg.Cache = nopCache{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	logger := cfg.Logger.Sugar()
	ratio := cfg.BreakerFailureRatio

	settings := gobreaker.Settings{
		Name:        "api-tennis",
		MaxRequests: cfg.BreakerMaxRequests,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= ratio
		},
		// A rejection is an answer, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProviderRejected)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnw("Circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		cacheTTL:   cfg.CacheTTL,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(limit, cfg.RateBurst),
		breaker:    gobreaker.NewCircuitBreaker(settings),
		cache:      cfg.Cache,
		logger:     logger,
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open", "open")
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// FetchH2H returns the head-to-head payload for a pair
func (c *Client) FetchH2H(ctx context.Context, player1, player2 int64) models.Outcome[models.H2HData] {
	var data models.H2HData
	empty, err := c.call(ctx, MethodH2H, url.Values{
		"first_player_key":  {strconv.FormatInt(player1, 10)},
		"second_player_key": {strconv.FormatInt(player2, 10)},
	}, &data)
	if err != nil {
		return models.Failed[models.H2HData](err)
	}
	if empty || data.IsEmpty() {
		return models.Empty[models.H2HData]()
	}
	return models.Ok(data)
}

// FetchPlayer returns the first player record for a key
func (c *Client) FetchPlayer(ctx context.Context, playerKey int64) models.Outcome[models.PlayerInfo] {
	var players []models.PlayerInfo
	empty, err := c.call(ctx, MethodPlayers, url.Values{
		"player_key": {strconv.FormatInt(playerKey, 10)},
	}, &players)
	if err != nil {
		return models.Failed[models.PlayerInfo](err)
	}
	if empty || len(players) == 0 {
		return models.Empty[models.PlayerInfo]()
	}
	return models.Ok(players[0])
}

// FetchStandings returns a tour's standings. league is "ATP" or "WTA".
func (c *Client) FetchStandings(ctx context.Context, league string) models.Outcome[[]models.Standing] {
	var standings []models.Standing
	empty, err := c.call(ctx, MethodStandings, url.Values{
		"event_type": {league},
	}, &standings)
	if err != nil {
		return models.Failed[[]models.Standing](err)
	}
	if empty || len(standings) == 0 {
		return models.Empty[[]models.Standing]()
	}
	return models.Ok(standings)
}

// envelope is the common api-tennis.com response wrapper
type envelope struct {
	Success json.RawMessage `json:"success"`
	Error   json.RawMessage `json:"error"`
	Result  json.RawMessage `json:"result"`
}

func (e envelope) ok() bool {
	return strings.Trim(string(bytes.TrimSpace(e.Success)), `"`) == "1"
}

// decodeResult decodes a "result" payload into target. Empty payloads
// ("", null, [] or {}) are reported as empty and leave target untouched.
func decodeResult(method string, raw []byte, target interface{}) (bool, error) {
	if isEmptyResult(raw) {
		return true, nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, method, err)
	}
	return false, nil
}

// call fetches the "result" member of a provider response and decodes it
// into target, serving from the cache when present. Only payloads that
// decode are cached. It reports whether the result was empty.
func (c *Client) call(ctx context.Context, method string, params url.Values, target interface{}) (bool, error) {
	key := cacheKey(method, params)

	if raw, err := c.cache.Get(ctx, key); err == nil {
		if empty, err := decodeResult(method, raw, target); err == nil {
			cacheLookups.WithLabelValues(method, "hit").Inc()
			return empty, nil
		}
		c.logger.Warnw("Discarding undecodable cache entry", "method", method, "key", key)
		reflect.ValueOf(target).Elem().SetZero()
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warnw("Cache lookup failed", "method", method, "error", err)
	}
	cacheLookups.WithLabelValues(method, "miss").Inc()

	if err := c.limiter.Wait(ctx); err != nil {
		requestsTotal.WithLabelValues(method, "rate_limited").Inc()
		return false, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, method, params)
	})
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(method, outcomeLabel(err)).Inc()
		c.logger.Warnw("Provider call failed",
			"method", method,
			"breaker", c.breaker.State().String(),
			"error", err,
		)
		return false, fmt.Errorf("%s: %w", method, err)
	}

	raw := res.([]byte)
	empty, err := decodeResult(method, raw, target)
	if err != nil {
		requestsTotal.WithLabelValues(method, outcomeLabel(err)).Inc()
		c.logger.Warnw("Provider payload could not be decoded", "method", method, "error", err)
		return false, err
	}
	requestsTotal.WithLabelValues(method, "ok").Inc()

	if c.cacheTTL > 0 {
		if err := c.cache.Set(ctx, key, raw, c.cacheTTL); err != nil {
			c.logger.Warnw("Cache store failed", "method", method, "error", err)
		}
	}
	return empty, nil
}

func (c *Client) do(ctx context.Context, method string, params url.Values) ([]byte, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("method", method)
	q.Set("APIkey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !env.ok() {
		return nil, fmt.Errorf("%w: %s", ErrProviderRejected, strings.TrimSpace(string(env.Error)))
	}
	return env.Result, nil
}

// cacheKey is the method plus its sorted parameters. The API key is never
// part of a key.
func cacheKey(method string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(method)
	for _, k := range keys {
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strings.Join(params[k], ","))
	}
	return b.String()
}

func isEmptyResult(raw []byte) bool {
	s := bytes.TrimSpace(raw)
	return len(s) == 0 || bytes.Equal(s, []byte("null")) || bytes.Equal(s, []byte("[]")) || bytes.Equal(s, []byte("{}"))
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.Is(err, ErrProviderRejected):
		return "rejected"
	case errors.Is(err, ErrBadStatus):
		return "bad_status"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "error"
	}
}
