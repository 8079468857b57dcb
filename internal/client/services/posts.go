package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// MaxMediaSize is the largest attachment accepted.
const MaxMediaSize = 5 << 20

// ComposeRequest is the compose form as entered by the user. MediaPath is
// a local file.
type ComposeRequest struct {
	Content      string
	Networks     []models.Platform
	Publish      models.PublishOption
	ScheduleDay  *models.Weekday
	ScheduleTime string
	MediaPath    string
}

// ValidateCompose checks the form without touching the filesystem.
func ValidateCompose(r ComposeRequest) error {
	if len(r.Networks) == 0 {
		return invalid("networks", "Please select at least one social network")
	}
	for _, n := range r.Networks {
		if _, ok := models.ParsePlatform(string(n)); !ok {
			return invalid("networks", fmt.Sprintf("Unknown network %q", n))
		}
	}
	if strings.TrimSpace(r.Content) == "" && r.MediaPath == "" {
		return invalid("content", "Please enter content or add media")
	}
	if models.CharCount(r.Content) > models.MaxPostChars {
		return invalid("content", fmt.Sprintf("Content exceeds %d characters", models.MaxPostChars))
	}
	publish := r.Publish
	if publish == "" {
		publish = models.PublishNow
	}
	if !publish.Valid() {
		return invalid("publishOption", fmt.Sprintf("Unknown publish option %q", r.Publish))
	}
	if publish == models.PublishSchedule {
		if r.ScheduleDay == nil || !r.ScheduleDay.Valid() || !models.ValidTimeOfDay(strings.TrimSpace(r.ScheduleTime)) {
			return invalid("schedule", "Please select day and time to schedule")
		}
	}
	return nil
}

type PostService interface {
	Compose(ctx context.Context, r ComposeRequest) (*models.Post, error)
}

type postService struct {
	client client.Client
}

func NewPostService(client client.Client) PostService {
	return &postService{client: client}
}

// Compose validates r, attaches the media file if any and submits the
// post.
func (s *postService) Compose(ctx context.Context, r ComposeRequest) (*models.Post, error) {
	if err := ValidateCompose(r); err != nil {
		return nil, err
	}

	d := models.PostDraft{
		Content:  r.Content,
		Networks: r.Networks,
		Publish:  r.Publish,
	}
	if d.Publish == "" {
		d.Publish = models.PublishNow
	}
	if d.Publish == models.PublishSchedule {
		d.ScheduleDay = *r.ScheduleDay
		d.ScheduleTime = strings.TrimSpace(r.ScheduleTime)
	}

	if r.MediaPath != "" {
		f, err := openMedia(r.MediaPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		d.Media = &models.Media{Name: filepath.Base(r.MediaPath), Content: f}
	}

	post, err := s.client.CreatePost(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// openMedia opens path after checking it is an image of at most
// MaxMediaSize bytes. The returned reader starts at the beginning of the
// file.
func openMedia(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, invalid("media", fmt.Sprintf("Cannot open media file: %v", err))
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat media: %w", err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, invalid("media", "Media path is a directory")
	}
	if fi.Size() > MaxMediaSize {
		f.Close()
		return nil, invalid("media", "File size too large. Maximum size is 5MB.")
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("read media: %w", err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		f.Close()
		return nil, invalid("media", "Only image files are supported.")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("rewind media: %w", err)
	}
	return f, nil
}
