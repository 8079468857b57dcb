package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// CreatePost submits the compose form as multipart/form-data.
func (c *HTTPClient) CreatePost(ctx context.Context, d models.PostDraft) (*models.Post, error) {
	form, err := encodePostForm(d)
	if err != nil {
		return nil, err
	}

	var pb postBody
	env, err := c.call(ctx, request{method: http.MethodPost, path: "/api/posts", body: form, auth: true}, &pb)
	if err != nil {
		return nil, err
	}
	if pb.Post == nil && env.hasData() {
		var p models.Post
		if unmarshalData(env, &p) == nil {
			pb.Post = &p
		}
	}
	if pb.Post == nil {
		return nil, fmt.Errorf("%w: post response without post", ErrMalformedResponse)
	}
	return pb.Post, nil
}

func encodePostForm(d models.PostDraft) (*formBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	networks := d.Networks
	if networks == nil {
		networks = []models.Platform{}
	}
	nets, err := json.Marshal(networks)
	if err != nil {
		return nil, fmt.Errorf("encode networks: %w", err)
	}

	fields := [][2]string{
		{"content", d.Content},
		{"networks", string(nets)},
		{"publishOption", string(d.Publish)},
	}
	if d.Publish == models.PublishSchedule {
		fields = append(fields,
			[2]string{"scheduleDay", strconv.Itoa(int(d.ScheduleDay))},
			[2]string{"scheduleTime", d.ScheduleTime},
		)
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}

	if d.Media != nil && d.Media.Content != nil {
		part, err := w.CreateFormFile("media", d.Media.Name)
		if err != nil {
			return nil, fmt.Errorf("create media part: %w", err)
		}
		if _, err := io.Copy(part, d.Media.Content); err != nil {
			return nil, fmt.Errorf("copy media: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}
	return &formBody{contentType: w.FormDataContentType(), data: buf}, nil
}
