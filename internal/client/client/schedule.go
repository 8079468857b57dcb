package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

func (c *HTTPClient) ListSchedule(ctx context.Context) ([]models.ScheduleSlot, error) {
	env, err := c.call(ctx, request{method: http.MethodGet, path: "/api/schedule", auth: true}, nil)
	if err != nil {
		return nil, err
	}
	slots := []models.ScheduleSlot{}
	if !env.hasData() {
		return slots, nil
	}
	if err := unmarshalData(env, &slots); err != nil {
		return nil, fmt.Errorf("%w: schedule: %v", ErrMalformedResponse, err)
	}
	return slots, nil
}

func (c *HTTPClient) AddScheduleSlot(ctx context.Context, day models.Weekday, timeOfDay string) (*models.ScheduleSlot, error) {
	body := struct {
		DayOfWeek int    `json:"day_of_week"`
		TimeOfDay string `json:"time_of_day"`
	}{int(day), timeOfDay}

	var slot models.ScheduleSlot
	if _, err := c.callData(ctx, request{method: http.MethodPost, path: "/api/schedule", body: body, auth: true}, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (c *HTTPClient) DeleteScheduleSlot(ctx context.Context, id string) error {
	_, err := c.call(ctx, request{method: http.MethodDelete, path: "/api/schedule/" + url.PathEscape(id), auth: true}, nil)
	return err
}

// ScheduleOptions is public and sends no token.
func (c *HTTPClient) ScheduleOptions(ctx context.Context) (*models.ScheduleOptions, error) {
	var opts models.ScheduleOptions
	if _, err := c.callData(ctx, request{method: http.MethodGet, path: "/api/schedule/options"}, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}
