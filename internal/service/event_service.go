package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound     = fmt.Errorf("%w: event", ErrNotFound)
	ErrEventTitleMissing = fmt.Errorf("%w: event title is required", ErrValidation)
	ErrEventDateMissing  = fmt.Errorf("%w: event date is required", ErrValidation)
)

// EventService handles campaign event CRUD.
type EventService struct {
	db *gorm.DB
}

// EventInput represents fields accepted when creating or updating an event.
type EventInput struct {
	Title         string
	Slug          string
	Summary       string
	Content       string
	Location      string
	StartsAt      time.Time
	FeaturedImage string
	Published     bool
}

// NewEventService creates an EventService instance.
func NewEventService(gdb *gorm.DB) *EventService {
	return &EventService{db: gdb}
}

// List returns every event regardless of publish state, upcoming first.
func (s *EventService) List() ([]db.Event, error) {
	var events []db.Event
	if err := s.db.Order("starts_at desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListPublished returns only events visible on the public site.
func (s *EventService) ListPublished() ([]db.Event, error) {
	var events []db.Event
	if err := s.db.Where("published = ?", true).Order("starts_at desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Get fetches an event by id.
func (s *EventService) Get(id uint) (*db.Event, error) {
	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// GetPublishedBySlug fetches a published event for a public route.
func (s *EventService) GetPublishedBySlug(slug string) (*db.Event, error) {
	var event db.Event
	if err := s.db.Where("slug = ? AND published = ?", slug, true).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event.
func (s *EventService) Create(input EventInput) (*db.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	slug, err := resolveSlug(s.db, &db.Event{}, title, input.Slug, 0)
	if err != nil {
		return nil, err
	}

	event := db.Event{
		Title:         title,
		Slug:          slug,
		Summary:       strings.TrimSpace(input.Summary),
		Content:       input.Content,
		Location:      strings.TrimSpace(input.Location),
		StartsAt:      input.StartsAt,
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		Published:     input.Published,
	}
	if err := s.db.Create(&event).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &event, nil
}

// Update modifies an existing event.
func (s *EventService) Update(id uint, input EventInput) (*db.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	slug, err := resolveSlug(s.db, &db.Event{}, title, input.Slug, event.ID)
	if err != nil {
		return nil, err
	}

	event.Title = title
	event.Slug = slug
	event.Summary = strings.TrimSpace(input.Summary)
	event.Content = input.Content
	event.Location = strings.TrimSpace(input.Location)
	event.StartsAt = input.StartsAt
	event.FeaturedImage = strings.TrimSpace(input.FeaturedImage)
	event.Published = input.Published

	if err := s.db.Save(&event).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &event, nil
}

// Delete removes an event.
func (s *EventService) Delete(id uint) error {
	var event db.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEventNotFound
		}
		return err
	}
	return s.db.Delete(&event).Error
}

func validateEventInput(input EventInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrEventTitleMissing
	}
	if input.StartsAt.IsZero() {
		return ErrEventDateMissing
	}
	return nil
}
