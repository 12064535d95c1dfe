package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrSlugEmpty    = fmt.Errorf("%w: slug resolves to an empty value", ErrValidation)
	ErrSlugConflict = fmt.Errorf("%w: slug already in use", ErrConflict)
)

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a URL-safe identifier from a title: lower-case,
// every run of characters outside [a-z0-9] becomes a single hyphen, and
// edge hyphens are trimmed. Titles made only of symbols yield "".
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// resolveSlug picks the manual override when present, otherwise derives a
// slug from the title, then enforces uniqueness within the given model's
// table. excludeID skips the record currently being updated. Collisions are
// never auto-suffixed; the caller surfaces them for the editor to fix.
func resolveSlug(gdb *gorm.DB, model interface{}, title, override string, excludeID uint) (string, error) {
	source := strings.TrimSpace(override)
	if source == "" {
		source = title
	}

	slug := GenerateSlug(source)
	if slug == "" {
		return "", ErrSlugEmpty
	}

	query := gdb.Model(model).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrSlugConflict
	}

	return slug, nil
}

// translateSlugConflict maps the database's unique-constraint failure onto
// ErrSlugConflict. The pre-insert count in resolveSlug races with concurrent
// writers; the unique index is the real arbiter, so the loser of that race
// still surfaces as a conflict instead of a raw driver error.
func translateSlugConflict(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrSlugConflict
	}
	return err
}
