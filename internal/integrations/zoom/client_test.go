package zoom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func meetingRequest() *MeetingRequest {
	return &MeetingRequest{
		Topic:           "Consultation",
		StartTime:       time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC),
		DurationMinutes: 30,
		Timezone:        "UTC",
		GuestName:       "Jordan Oduya",
		GuestEmail:      "jordan@example.com",
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	tokenCalls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls++
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "account_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Consultation", body["topic"])
		assert.Equal(t, float64(2), body["type"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":        123456789,
			"join_url":  "https://zoom.us/j/123456789",
			"start_url": "https://zoom.us/s/123456789",
			"password":  "abc123",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokenCalls
}

func TestCreateMeeting(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL, srv.URL, "acct", "client-id", "client-secret", time.Second, nopLogger{})

	meeting, err := c.CreateMeeting(context.Background(), meetingRequest())
	require.NoError(t, err)

	assert.Equal(t, "123456789", meeting.ID)
	assert.Equal(t, "https://zoom.us/j/123456789", meeting.JoinURL)
	assert.Equal(t, "https://zoom.us/s/123456789", meeting.StartURL)
	assert.Equal(t, "abc123", meeting.Password)
}

func TestCreateMeeting_NotConfigured(t *testing.T) {
	c := NewClient("http://unused", "http://unused", "", "", "", time.Second, nopLogger{})

	_, err := c.CreateMeeting(context.Background(), meetingRequest())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateMeeting_ReusesCachedToken(t *testing.T) {
	srv, tokenCalls := newTestServer(t)
	c := NewClient(srv.URL, srv.URL, "acct", "client-id", "client-secret", time.Second, nopLogger{})

	_, err := c.CreateMeeting(context.Background(), meetingRequest())
	require.NoError(t, err)
	_, err = c.CreateMeeting(context.Background(), meetingRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, *tokenCalls)
}

func TestCreateMeeting_AuthFailure(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.URL, srv.URL, "acct", "client-id", "wrong-secret", time.Second, nopLogger{})

	_, err := c.CreateMeeting(context.Background(), meetingRequest())
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestCreateMeeting_APIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/users/me/meetings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    429,
			"message": "rate limited",
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, srv.URL, "acct", "client-id", "client-secret", time.Second, nopLogger{})

	_, err := c.CreateMeeting(context.Background(), meetingRequest())
	assert.ErrorIs(t, err, ErrCreateFailed)
}

func TestCreateMeeting_InvalidResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/v2/users/me/meetings", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": 0})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, srv.URL, "acct", "client-id", "client-secret", time.Second, nopLogger{})

	_, err := c.CreateMeeting(context.Background(), meetingRequest())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
