package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound    = fmt.Errorf("%w: team member", ErrNotFound)
	ErrTeamMemberNameMissing = fmt.Errorf("%w: team member name is required", ErrValidation)
)

// TeamService handles team/structure member CRUD.
type TeamService struct {
	db *gorm.DB
}

// TeamMemberInput represents fields accepted when creating or updating a member.
type TeamMemberInput struct {
	Name      string
	Slug      string
	Role      string
	Bio       string
	PhotoURL  string
	Sort      int
	Published bool
}

// NewTeamService creates a TeamService instance.
func NewTeamService(gdb *gorm.DB) *TeamService {
	return &TeamService{db: gdb}
}

// List returns every member regardless of publish state, for the admin surface.
func (s *TeamService) List() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Order("sort").Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListPublished returns only members visible on the public site.
func (s *TeamService) ListPublished() ([]db.TeamMember, error) {
	var members []db.TeamMember
	if err := s.db.Where("published = ?", true).Order("sort").Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Get fetches a member by id.
func (s *TeamService) Get(id uint) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// GetPublishedBySlug fetches a published member by slug for the public site.
func (s *TeamService) GetPublishedBySlug(slug string) (*db.TeamMember, error) {
	var member db.TeamMember
	if err := s.db.Where("slug = ? AND published = ?", slug, true).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

// Create inserts a new member. Sort defaults to the end of the list.
func (s *TeamService) Create(input TeamMemberInput) (*db.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamMemberNameMissing
	}

	slug, err := resolveSlug(s.db, &db.TeamMember{}, name, input.Slug, 0)
	if err != nil {
		return nil, err
	}

	sort := input.Sort
	if sort == 0 {
		next, err := s.nextSort()
		if err != nil {
			return nil, err
		}
		sort = next
	}

	member := db.TeamMember{
		Name:      name,
		Slug:      slug,
		Role:      strings.TrimSpace(input.Role),
		Bio:       input.Bio,
		PhotoURL:  strings.TrimSpace(input.PhotoURL),
		Sort:      sort,
		Published: input.Published,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &member, nil
}

// Update modifies an existing member.
func (s *TeamService) Update(id uint, input TeamMemberInput) (*db.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamMemberNameMissing
	}

	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamMemberNotFound
		}
		return nil, err
	}

	slug, err := resolveSlug(s.db, &db.TeamMember{}, name, input.Slug, member.ID)
	if err != nil {
		return nil, err
	}

	member.Name = name
	member.Slug = slug
	member.Role = strings.TrimSpace(input.Role)
	member.Bio = input.Bio
	member.PhotoURL = strings.TrimSpace(input.PhotoURL)
	member.Sort = input.Sort
	member.Published = input.Published

	if err := s.db.Save(&member).Error; err != nil {
		return nil, translateSlugConflict(err)
	}
	return &member, nil
}

// Delete removes a member.
func (s *TeamService) Delete(id uint) error {
	var member db.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamMemberNotFound
		}
		return err
	}
	return s.db.Delete(&member).Error
}

func (s *TeamService) nextSort() (int, error) {
	var maxSort int
	if err := s.db.Model(&db.TeamMember{}).
		Select("COALESCE(MAX(sort), 0)").
		Scan(&maxSort).Error; err != nil {
		return 0, err
	}
	return maxSort + 1, nil
}
