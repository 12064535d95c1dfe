package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound      = fmt.Errorf("%w: post", ErrNotFound)
	ErrPostTitleMissing  = fmt.Errorf("%w: post title is required", ErrValidation)
	ErrPostAuthorMissing = fmt.Errorf("%w: post author is required", ErrValidation)
)

// PostService handles news/blog post CRUD.
type PostService struct {
	db *gorm.DB
}

// PostFilter describes filters for the admin post listing.
type PostFilter struct {
	Search    string
	Published *bool
	Page      int
	PerPage   int
}

// PostListResult aggregates paginated post results.
type PostListResult struct {
	Items      []db.Post
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// PostInput represents fields accepted when creating or updating a post.
type PostInput struct {
	Title         string
	Slug          string
	Summary       string
	Content       string
	FeaturedImage string
	Published     bool
	AuthorID      uint
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb}
}

// List returns posts matching the filter, for the admin surface.
func (s *PostService) List(filter PostFilter) (PostListResult, error) {
	result := PostListResult{
		Page:    normalizePage(filter.Page),
		PerPage: normalizePerPage(filter.PerPage, 10),
	}

	query := s.db.Model(&db.Post{})
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR summary LIKE ?", like, like)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}

	result.TotalPages = calculateTotalPages(result.Total, result.PerPage)
	offset := (result.Page - 1) * result.PerPage

	if err := query.Preload("Author").
		Order("created_at desc").
		Limit(result.PerPage).
		Offset(offset).
		Find(&result.Items).Error; err != nil {
		return result, err
	}

	return result, nil
}

// ListPublished returns published posts with pagination for public listing.
func (s *PostService) ListPublished(page, perPage int) (PostListResult, error) {
	published := true
	return s.List(PostFilter{
		Published: &published,
		Page:      page,
		PerPage:   perPage,
	})
}

// Get fetches a post by id.
func (s *PostService) Get(id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// GetPublishedBySlug fetches a published post for a public route.
func (s *PostService) GetPublishedBySlug(slug string) (*db.Post, error) {
	var post db.Post
	if err := s.db.Preload("Author").
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post.
func (s *PostService) Create(input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}
	if input.AuthorID == 0 {
		return nil, ErrPostAuthorMissing
	}

	slug, err := resolveSlug(s.db, &db.Post{}, title, input.Slug, 0)
	if err != nil {
		return nil, err
	}

	post := db.Post{
		Title:         title,
		Slug:          slug,
		Summary:       strings.TrimSpace(input.Summary),
		Content:       input.Content,
		FeaturedImage: strings.TrimSpace(input.FeaturedImage),
		Published:     input.Published,
		AuthorID:      input.AuthorID,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &post, nil
}

// Update modifies an existing post. The author stamp is never rewritten.
func (s *PostService) Update(id uint, input PostInput) (*db.Post, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrPostTitleMissing
	}

	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	slug, err := resolveSlug(s.db, &db.Post{}, title, input.Slug, post.ID)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Slug = slug
	post.Summary = strings.TrimSpace(input.Summary)
	post.Content = input.Content
	post.FeaturedImage = strings.TrimSpace(input.FeaturedImage)
	post.Published = input.Published

	if err := s.db.Save(&post).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &post, nil
}

// Delete removes a post.
func (s *PostService) Delete(id uint) error {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.db.Delete(&post).Error
}
