package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"gorm.io/gorm"
)

var (
	ErrMenuItemNotFound      = fmt.Errorf("%w: menu item", ErrNotFound)
	ErrMenuLabelMissing      = fmt.Errorf("%w: menu label is required", ErrValidation)
	ErrMenuURLMissing        = fmt.Errorf("%w: menu url is required", ErrValidation)
	ErrMenuTargetInvalid     = fmt.Errorf("%w: menu target is invalid", ErrValidation)
	ErrMenuParentNotFound    = fmt.Errorf("%w: menu parent does not exist", ErrValidation)
	ErrMenuParentNotTopLevel = fmt.Errorf("%w: menu parent must be a top-level item", ErrValidation)
)

// MenuChild is a second-level navigation entry. The render surface shows at
// most two levels, so children carry no nesting of their own.
type MenuChild struct {
	ID     uint   `json:"id"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Icon   string `json:"icon,omitempty"`
	Target string `json:"target"`
}

// MenuNode is a top-level navigation entry with its ordered children.
type MenuNode struct {
	ID       uint        `json:"id"`
	Label    string      `json:"label"`
	URL      string      `json:"url"`
	Icon     string      `json:"icon,omitempty"`
	Target   string      `json:"target"`
	Children []MenuChild `json:"children"`
}

// MenuItemInput represents fields accepted when creating or updating a menu item.
type MenuItemInput struct {
	Label     string
	URL       string
	Icon      string
	Target    string
	ParentID  *uint
	Published bool
}

// MenuService maintains the navigation tree and its sibling ordering.
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a MenuService instance.
func NewMenuService(gdb *gorm.DB) *MenuService {
	return &MenuService{db: gdb}
}

// Tree builds the published navigation forest: top-level items ordered by
// sort_order with id as tiebreak, each carrying its ordered published
// children. Children of unpublished parents are dropped with their parent,
// and anything nested deeper than two levels is ignored.
func (s *MenuService) Tree() ([]MenuNode, error) {
	var items []db.MenuItem
	if err := s.db.Where("published = ?", true).
		Order("sort_order").Order("id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: load menu items: %v", ErrUpstream, err)
	}

	children := make(map[uint][]MenuChild)
	for _, item := range items {
		if item.ParentID == nil {
			continue
		}
		children[*item.ParentID] = append(children[*item.ParentID], MenuChild{
			ID:     item.ID,
			Label:  item.Label,
			URL:    item.URL,
			Icon:   item.Icon,
			Target: item.Target,
		})
	}

	nodes := make([]MenuNode, 0, len(items))
	for _, item := range items {
		if item.ParentID != nil {
			continue
		}
		node := MenuNode{
			ID:       item.ID,
			Label:    item.Label,
			URL:      item.URL,
			Icon:     item.Icon,
			Target:   item.Target,
			Children: children[item.ID],
		}
		if node.Children == nil {
			node.Children = []MenuChild{}
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// List returns every menu item regardless of publish state, for the admin surface.
func (s *MenuService) List() ([]db.MenuItem, error) {
	var items []db.MenuItem
	if err := s.db.Order("sort_order").Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a menu item by id.
func (s *MenuService) Get(id uint) (*db.MenuItem, error) {
	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new menu item at the end of its sibling group.
func (s *MenuService) Create(input MenuItemInput) (*db.MenuItem, error) {
	target, err := s.validateMenuInput(input, 0)
	if err != nil {
		return nil, err
	}

	sortOrder, err := s.nextSortOrder(input.ParentID)
	if err != nil {
		return nil, err
	}

	item := db.MenuItem{
		Label:     strings.TrimSpace(input.Label),
		URL:       strings.TrimSpace(input.URL),
		Icon:      strings.TrimSpace(input.Icon),
		SortOrder: sortOrder,
		ParentID:  input.ParentID,
		Target:    target,
		Published: input.Published,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Update modifies an existing menu item. Moving it under another parent
// re-appends it at the end of the new sibling group.
func (s *MenuService) Update(id uint, input MenuItemInput) (*db.MenuItem, error) {
	target, err := s.validateMenuInput(input, id)
	if err != nil {
		return nil, err
	}

	var item db.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	if !sameParent(item.ParentID, input.ParentID) {
		sortOrder, err := s.nextSortOrder(input.ParentID)
		if err != nil {
			return nil, err
		}
		item.SortOrder = sortOrder
	}

	item.Label = strings.TrimSpace(input.Label)
	item.URL = strings.TrimSpace(input.URL)
	item.Icon = strings.TrimSpace(input.Icon)
	item.ParentID = input.ParentID
	item.Target = target
	item.Published = input.Published

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes a menu item. Its children are promoted to top level in the
// same transaction so they stay reachable for the editor.
func (s *MenuService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item db.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		if err := tx.Model(&db.MenuItem{}).
			Where("parent_id = ?", item.ID).
			Update("parent_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}

// MoveUp swaps the item's sort_order with the previous sibling. A no-op at
// the top of the sibling group.
func (s *MenuService) MoveUp(id uint) error {
	return s.move(id, true)
}

// MoveDown swaps the item's sort_order with the next sibling. A no-op at
// the bottom of the sibling group.
func (s *MenuService) MoveDown(id uint) error {
	return s.move(id, false)
}

// move performs the swap inside one transaction so a crash can never leave
// only half of it written.
func (s *MenuService) move(id uint, up bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var item db.MenuItem
		if err := tx.First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return err
		}

		query := siblingScope(tx, item.ParentID)
		var neighbor db.MenuItem
		var err error
		if up {
			err = query.
				Where("sort_order < ? OR (sort_order = ? AND id < ?)", item.SortOrder, item.SortOrder, item.ID).
				Order("sort_order desc").Order("id desc").
				First(&neighbor).Error
		} else {
			err = query.
				Where("sort_order > ? OR (sort_order = ? AND id > ?)", item.SortOrder, item.SortOrder, item.ID).
				Order("sort_order").Order("id").
				First(&neighbor).Error
		}
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// already at the edge of the sibling group
				return nil
			}
			return err
		}

		if err := tx.Model(&db.MenuItem{}).
			Where("id = ?", item.ID).
			Update("sort_order", neighbor.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&db.MenuItem{}).
			Where("id = ?", neighbor.ID).
			Update("sort_order", item.SortOrder).Error
	})
}

func (s *MenuService) validateMenuInput(input MenuItemInput, selfID uint) (string, error) {
	if strings.TrimSpace(input.Label) == "" {
		return "", ErrMenuLabelMissing
	}
	if strings.TrimSpace(input.URL) == "" {
		return "", ErrMenuURLMissing
	}

	target := strings.TrimSpace(input.Target)
	if target == "" {
		target = db.MenuTargetSelf
	}
	if !db.IsValidMenuTarget(target) {
		return "", ErrMenuTargetInvalid
	}

	if input.ParentID != nil {
		if selfID != 0 && *input.ParentID == selfID {
			return "", ErrMenuParentNotTopLevel
		}
		var parent db.MenuItem
		if err := s.db.First(&parent, *input.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", ErrMenuParentNotFound
			}
			return "", err
		}
		// only two levels are rendered, so parents must be top-level
		if parent.ParentID != nil {
			return "", ErrMenuParentNotTopLevel
		}
	}

	return target, nil
}

func (s *MenuService) nextSortOrder(parentID *uint) (int, error) {
	var maxOrder int
	if err := siblingScope(s.db, parentID).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&maxOrder).Error; err != nil {
		return 0, err
	}
	return maxOrder + 1, nil
}

func siblingScope(gdb *gorm.DB, parentID *uint) *gorm.DB {
	query := gdb.Model(&db.MenuItem{})
	if parentID == nil {
		return query.Where("parent_id IS NULL")
	}
	return query.Where("parent_id = ?", *parentID)
}

func sameParent(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
