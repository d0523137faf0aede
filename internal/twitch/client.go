package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// StreamFetcher is the surface the poller needs. Implemented by *Client and
// by fakes in tests.
type StreamFetcher interface {
	Authenticate(ctx context.Context, clientID, clientSecret string) (string, error)
	FetchStreams(ctx context.Context, token, clientID string, logins []string) ([]Stream, error)
}

var _ StreamFetcher = (*Client)(nil)

// ErrBadCredentials indicates the auth exchange rejected the client id or
// secret. It is fatal and must not be retried.
var ErrBadCredentials = errors.New("twitch rejected the client credentials")

// ErrInvalidPayload indicates a response that decoded but did not have the
// expected shape (an error key, or no data array). It is recoverable: the
// caller skips the cycle instead of crashing.
var ErrInvalidPayload = errors.New("invalid api response shape")

// StatusError reports a non-2xx HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %d", e.Code)
}

// IsTransient reports whether err is worth retrying: transport-level
// failures (connection refused, timeouts) and 5xx responses. Credential
// rejections, 4xx responses, and malformed payloads are not.
func IsTransient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

const (
	defaultAuthURL    = "https://id.twitch.tv/oauth2/token"
	defaultStreamsURL = "https://api.twitch.tv/helix/streams"
	defaultUserAgent  = "lurk/1.0"
	requestTimeout    = 10 * time.Second
)

// Client talks to the Twitch OAuth and Helix APIs.
type Client struct {
	authURL    string
	streamsURL string
	http       *http.Client
	userAgent  string
}

// NewClient builds a Client against the production Twitch endpoints.
func NewClient() *Client {
	return &Client{
		authURL:    defaultAuthURL,
		streamsURL: defaultStreamsURL,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
}

// Authenticate exchanges client credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, clientID, clientSecret string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("client_id", clientID)
	values.Set("client_secret", clientSecret)
	values.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+"?"+values.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("auth exchange: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth exchange: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Credential rejections come back as 4xx with a message body; decode
	// before looking at the status so they surface as ErrBadCredentials.
	var payload authResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if resp.StatusCode >= 400 {
			return "", fmt.Errorf("auth exchange: %w", &StatusError{Code: resp.StatusCode})
		}
		return "", fmt.Errorf("auth exchange: decode response: %w: %v", ErrInvalidPayload, err)
	}

	if payload.AccessToken != "" {
		return payload.AccessToken, nil
	}
	if payload.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrBadCredentials, payload.Message)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("auth exchange: %w", &StatusError{Code: resp.StatusCode})
	}
	return "", fmt.Errorf("auth exchange: %w: neither access_token nor message present", ErrInvalidPayload)
}

// FetchStreams queries live status for the given logins in one request.
// Only channels currently live appear in the result; absence means offline.
func (c *Client) FetchStreams(ctx context.Context, token, clientID string, logins []string) ([]Stream, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	for _, login := range logins {
		values.Add("user_login", login)
	}

	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	headers.Set("Client-Id", clientID)

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, c.streamsURL+"?"+values.Encode(), headers, &envelope); err != nil {
		return nil, fmt.Errorf("fetch streams: %w", err)
	}

	// An error key or a missing data array means the request was not
	// understood (bad logins, revoked token). Report it, don't crash.
	if envelope.Error != nil {
		return nil, fmt.Errorf("fetch streams: %w: error key present", ErrInvalidPayload)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("fetch streams: %w: no data array", ErrInvalidPayload)
	}

	var streams []Stream
	if err := json.Unmarshal(envelope.Data, &streams); err != nil {
		return nil, fmt.Errorf("fetch streams: %w: %v", ErrInvalidPayload, err)
	}
	return streams, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, headers http.Header, dest any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	for key, vals := range headers {
		for _, v := range vals {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w: %v", ErrInvalidPayload, err)
	}
	return nil
}
