package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// tokenExpirySkew renews the cached token this long before it expires.
const tokenExpirySkew = 60 * time.Second

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client provisions meetings through the Zoom API using server-to-server
// OAuth (account_credentials grant).
type Client struct {
	baseURL      string
	oauthURL     string
	accountID    string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Zoom client.
func NewClient(baseURL, oauthURL, accountID, clientID, clientSecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:      baseURL,
		oauthURL:     oauthURL,
		accountID:    accountID,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateMeeting creates a scheduled meeting and returns its join details.
// Authentication and creation failures are hard errors: the caller must
// abort the booking rather than persist an appointment without a link.
func (c *Client) CreateMeeting(ctx context.Context, req *MeetingRequest) (*Meeting, error) {
	if c.accountID == "" || c.clientID == "" || c.clientSecret == "" {
		return nil, ErrNotConfigured
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	body := createMeetingRequest{
		Topic:     req.Topic,
		Type:      2,
		StartTime: req.StartTime.Format("2006-01-02T15:04:05"),
		Duration:  req.DurationMinutes,
		Timezone:  req.Timezone,
		Agenda:    fmt.Sprintf("Consultation with %s (%s)", req.GuestName, req.GuestEmail),
		Settings: meetingSettings{
			JoinBeforeHost: false,
			WaitingRoom:    true,
			Audio:          "both",
			AutoRecording:  "none",
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrCreateFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/users/me/meetings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrCreateFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrCreateFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		var apiErr errorResponse
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)
		c.log.Error("zoom: create meeting failed: status=%d code=%d message=%s",
			resp.StatusCode, apiErr.Code, apiErr.Message)
		return nil, fmt.Errorf("%w: status %d: %s", ErrCreateFailed, resp.StatusCode, apiErr.Message)
	}

	var created createMeetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}
	if created.ID == 0 || created.JoinURL == "" {
		return nil, fmt.Errorf("%w: missing meeting id or join_url", ErrInvalidResponse)
	}

	c.log.Info("zoom: meeting created id=%d for %s", created.ID, req.GuestEmail)

	return &Meeting{
		ID:       strconv.FormatInt(created.ID, 10),
		JoinURL:  created.JoinURL,
		StartURL: created.StartURL,
		Password: created.Password,
	}, nil
}

// token returns a valid bearer token, exchanging client credentials when
// the cached one is absent or close to expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpirySkew)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "account_credentials")
	form.Set("account_id", c.accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.oauthURL+"/oauth/token", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: create token request: %v", ErrAuthFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: execute token request: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("zoom: token exchange failed: status=%d body=%s", resp.StatusCode, string(raw))
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decode token response: %v", ErrAuthFailed, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}

	c.accessToken = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return c.accessToken, nil
}
