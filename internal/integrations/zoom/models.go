package zoom

import "time"

// MeetingRequest describes the meeting to create for a booked appointment.
type MeetingRequest struct {
	Topic           string
	StartTime       time.Time // absolute instant
	DurationMinutes int
	Timezone        string // IANA zone of the business
	GuestName       string
	GuestEmail      string
}

// Meeting is the provisioned remote meeting resource.
type Meeting struct {
	ID       string
	JoinURL  string
	StartURL string
	Password string
}

// tokenResponse is the OAuth token-endpoint payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// createMeetingRequest is the meetings-API request body.
type createMeetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"` // 2 = scheduled meeting
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Agenda    string          `json:"agenda,omitempty"`
	Settings  meetingSettings `json:"settings"`
}

type meetingSettings struct {
	JoinBeforeHost bool   `json:"join_before_host"`
	WaitingRoom    bool   `json:"waiting_room"`
	Audio          string `json:"audio"`
	AutoRecording  string `json:"auto_recording"`
}

// createMeetingResponse is the meetings-API response body.
type createMeetingResponse struct {
	ID       int64  `json:"id"`
	JoinURL  string `json:"join_url"`
	StartURL string `json:"start_url"`
	Password string `json:"password"`
}

// errorResponse is the API error payload.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
