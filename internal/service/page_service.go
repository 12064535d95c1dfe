package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound      = fmt.Errorf("%w: page", ErrNotFound)
	ErrPageTitleMissing  = fmt.Errorf("%w: page title is required", ErrValidation)
	ErrPageAuthorMissing = fmt.Errorf("%w: page author is required", ErrValidation)
)

// PageService provides access to standalone content pages.
type PageService struct {
	db *gorm.DB
}

// PageInput represents fields accepted when creating or updating a page.
type PageInput struct {
	Title     string
	Slug      string
	Summary   string
	Content   string
	Published bool
	AuthorID  uint
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// List returns every page regardless of publish state, for the admin surface.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("created_at desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// ListPublished returns only pages visible on the public site.
func (s *PageService) ListPublished() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Where("published = ?", true).Order("created_at desc").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Get fetches a page by id.
func (s *PageService) Get(id uint) (*db.Page, error) {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// GetPublishedBySlug fetches a published page for a public route.
func (s *PageService) GetPublishedBySlug(slug string) (*db.Page, error) {
	var page db.Page
	if err := s.db.Where("slug = ? AND published = ?", slug, true).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Create inserts a new page, deriving the slug from the title unless a
// manual slug is supplied.
func (s *PageService) Create(input PageInput) (*db.Page, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPageTitleMissing
	}
	if input.AuthorID == 0 {
		return nil, ErrPageAuthorMissing
	}

	slug, err := resolveSlug(s.db, &db.Page{}, title, input.Slug, 0)
	if err != nil {
		return nil, err
	}

	page := db.Page{
		Title:     title,
		Slug:      slug,
		Summary:   strings.TrimSpace(input.Summary),
		Content:   input.Content,
		Published: input.Published,
		AuthorID:  input.AuthorID,
	}
	if err := s.db.Create(&page).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &page, nil
}

// Update modifies an existing page. The author stamp is never rewritten.
func (s *PageService) Update(id uint, input PageInput) (*db.Page, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPageTitleMissing
	}

	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}

	slug, err := resolveSlug(s.db, &db.Page{}, title, input.Slug, page.ID)
	if err != nil {
		return nil, err
	}

	page.Title = title
	page.Slug = slug
	page.Summary = strings.TrimSpace(input.Summary)
	page.Content = input.Content
	page.Published = input.Published

	if err := s.db.Save(&page).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &page, nil
}

// Delete removes a page.
func (s *PageService) Delete(id uint) error {
	var page db.Page
	if err := s.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPageNotFound
		}
		return err
	}
	return s.db.Delete(&page).Error
}
