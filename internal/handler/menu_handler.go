package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type menuItemPayload struct {
	Label     string `json:"label"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	Target    string `json:"target"`
	ParentID  *uint  `json:"parentId"`
	Published bool   `json:"published"`
}

// ListMenuItems returns the flat item list for the admin surface, drafts
// included; the admin UI assembles its own tree from parentId.
func (a *API) ListMenuItems(c *gin.Context) {
	items, err := a.menus.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, menuItemJSON(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// CreateMenuItem saves a new navigation entry.
func (a *API) CreateMenuItem(c *gin.Context) {
	var payload menuItemPayload
	if !bindJSON(c, &payload, "invalid menu item payload") {
		return
	}

	item, err := a.menus.Create(service.MenuItemInput{
		Label:     payload.Label,
		URL:       payload.URL,
		Icon:      payload.Icon,
		Target:    payload.Target,
		ParentID:  payload.ParentID,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": menuItemJSON(item)})
}

// UpdateMenuItem modifies an existing navigation entry.
func (a *API) UpdateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload menuItemPayload
	if !bindJSON(c, &payload, "invalid menu item payload") {
		return
	}

	item, err := a.menus.Update(id, service.MenuItemInput{
		Label:     payload.Label,
		URL:       payload.URL,
		Icon:      payload.Icon,
		Target:    payload.Target,
		ParentID:  payload.ParentID,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": menuItemJSON(item)})
}

// DeleteMenuItem removes a navigation entry and promotes its children to
// top level.
func (a *API) DeleteMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.menus.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
}

// MoveMenuItemUp swaps the entry with its previous sibling.
func (a *API) MoveMenuItemUp(c *gin.Context) {
	a.moveMenuItem(c, a.menus.MoveUp)
}

// MoveMenuItemDown swaps the entry with its next sibling.
func (a *API) MoveMenuItemDown(c *gin.Context) {
	a.moveMenuItem(c, a.menus.MoveDown)
}

func (a *API) moveMenuItem(c *gin.Context, move func(uint) error) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := move(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "menu item moved"})
}

func menuItemJSON(item *db.MenuItem) gin.H {
	return gin.H{
		"id":        item.ID,
		"label":     item.Label,
		"url":       item.URL,
		"icon":      item.Icon,
		"sortOrder": item.SortOrder,
		"parentId":  item.ParentID,
		"target":    item.Target,
		"published": item.Published,
		"createdAt": item.CreatedAt,
		"updatedAt": item.UpdatedAt,
	}
}
