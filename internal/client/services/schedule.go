package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/client"
	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// ScheduleService manages the weekly posting slots.
type ScheduleService interface {
	List(ctx context.Context) (map[models.Weekday][]models.ScheduleSlot, error)
	Add(ctx context.Context, day models.Weekday, timeOfDay string) (*models.ScheduleSlot, error)
	Delete(ctx context.Context, id string) error
	Options(ctx context.Context) (*models.ScheduleOptions, error)
}

type scheduleService struct {
	client client.Client
}

func NewScheduleService(client client.Client) ScheduleService {
	return &scheduleService{client: client}
}

func (s *scheduleService) List(ctx context.Context) (map[models.Weekday][]models.ScheduleSlot, error) {
	slots, err := s.client.ListSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return models.GroupByWeekday(slots), nil
}

func (s *scheduleService) Add(ctx context.Context, day models.Weekday, timeOfDay string) (*models.ScheduleSlot, error) {
	if !day.Valid() {
		return nil, invalid("day", "Please select a valid day")
	}
	timeOfDay = strings.TrimSpace(timeOfDay)
	if !models.ValidTimeOfDay(timeOfDay) {
		return nil, invalid("time", "Please enter a time as HH:MM")
	}
	slot, err := s.client.AddScheduleSlot(ctx, day, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("add schedule slot: %w", err)
	}
	return slot, nil
}

func (s *scheduleService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id", "Slot id is required")
	}
	if err := s.client.DeleteScheduleSlot(ctx, id); err != nil {
		return fmt.Errorf("delete schedule slot: %w", err)
	}
	return nil
}

func (s *scheduleService) Options(ctx context.Context) (*models.ScheduleOptions, error) {
	opts, err := s.client.ScheduleOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule options: %w", err)
	}
	return opts, nil
}
