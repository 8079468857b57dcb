package models

import (
	"io"
	"time"
)

// PublishOption selects when the backend publishes a post.
type PublishOption string

const (
	PublishNow      PublishOption = "now"
	PublishQueue    PublishOption = "queue"
	PublishSchedule PublishOption = "schedule"
)

func (p PublishOption) Valid() bool {
	switch p {
	case PublishNow, PublishQueue, PublishSchedule:
		return true
	}
	return false
}

// Media is an attachment streamed into the multipart request.
type Media struct {
	Name    string
	Content io.Reader
}

// PostDraft is the compose form.
type PostDraft struct {
	Content      string
	Networks     []Platform
	Publish      PublishOption
	ScheduleDay  Weekday
	ScheduleTime string
	Media        *Media
}

// Post is the created post as echoed back by the API.
type Post struct {
	ID          FlexString `json:"id"`
	Content     string     `json:"content"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}
