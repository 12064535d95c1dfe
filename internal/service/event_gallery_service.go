package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrGalleryNotFound     = fmt.Errorf("%w: event gallery", ErrNotFound)
	ErrGalleryTitleMissing = fmt.Errorf("%w: gallery title is required", ErrValidation)
)

// EventGalleryService handles event photo album CRUD.
type EventGalleryService struct {
	db *gorm.DB
}

// EventGalleryInput represents fields accepted when creating or updating a gallery.
type EventGalleryInput struct {
	Title       string
	Slug        string
	Description string
	Location    string
	EventDate   time.Time
	Images      []string
	Published   bool
}

// NewEventGalleryService creates an EventGalleryService instance.
func NewEventGalleryService(gdb *gorm.DB) *EventGalleryService {
	return &EventGalleryService{db: gdb}
}

// List returns every gallery regardless of publish state, newest event first.
func (s *EventGalleryService) List() ([]db.EventGallery, error) {
	var galleries []db.EventGallery
	if err := s.db.Order("event_date desc").Order("id desc").Find(&galleries).Error; err != nil {
		return nil, err
	}
	return galleries, nil
}

// ListPublished returns only galleries visible on the public site.
func (s *EventGalleryService) ListPublished() ([]db.EventGallery, error) {
	var galleries []db.EventGallery
	if err := s.db.Where("published = ?", true).
		Order("event_date desc").Order("id desc").
		Find(&galleries).Error; err != nil {
		return nil, err
	}
	return galleries, nil
}

// Get fetches a gallery by id.
func (s *EventGalleryService) Get(id uint) (*db.EventGallery, error) {
	var gallery db.EventGallery
	if err := s.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

// GetPublishedBySlug fetches a published gallery for a public route.
func (s *EventGalleryService) GetPublishedBySlug(slug string) (*db.EventGallery, error) {
	var gallery db.EventGallery
	if err := s.db.Where("slug = ? AND published = ?", slug, true).First(&gallery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}
	return &gallery, nil
}

// Create inserts a new gallery. Image order follows the input slice.
func (s *EventGalleryService) Create(input EventGalleryInput) (*db.EventGallery, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrGalleryTitleMissing
	}

	slug, err := resolveSlug(s.db, &db.EventGallery{}, title, input.Slug, 0)
	if err != nil {
		return nil, err
	}

	gallery := db.EventGallery{
		Title:       title,
		Slug:        slug,
		Description: input.Description,
		Location:    strings.TrimSpace(input.Location),
		EventDate:   input.EventDate,
		Images:      datatypes.NewJSONSlice(cleanImageURLs(input.Images)),
		Published:   input.Published,
	}
	if err := s.db.Create(&gallery).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &gallery, nil
}

// Update modifies an existing gallery, replacing the image list wholesale.
func (s *EventGalleryService) Update(id uint, input EventGalleryInput) (*db.EventGallery, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrGalleryTitleMissing
	}

	var gallery db.EventGallery
	if err := s.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGalleryNotFound
		}
		return nil, err
	}

	slug, err := resolveSlug(s.db, &db.EventGallery{}, title, input.Slug, gallery.ID)
	if err != nil {
		return nil, err
	}

	gallery.Title = title
	gallery.Slug = slug
	gallery.Description = input.Description
	gallery.Location = strings.TrimSpace(input.Location)
	gallery.EventDate = input.EventDate
	gallery.Images = datatypes.NewJSONSlice(cleanImageURLs(input.Images))
	gallery.Published = input.Published

	if err := s.db.Save(&gallery).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &gallery, nil
}

// Delete removes a gallery.
func (s *EventGalleryService) Delete(id uint) error {
	var gallery db.EventGallery
	if err := s.db.First(&gallery, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGalleryNotFound
		}
		return err
	}
	return s.db.Delete(&gallery).Error
}

func cleanImageURLs(urls []string) []string {
	cleaned := make([]string, 0, len(urls))
	for _, raw := range urls {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}
