package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type galleryPayload struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"eventDate"`
	Images      []string  `json:"images"`
	Published   bool      `json:"published"`
}

// ListGalleries returns every gallery for the admin surface, drafts included.
func (a *API) ListGalleries(c *gin.Context) {
	galleries, err := a.galleries.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(galleries))
	for i := range galleries {
		items = append(items, galleryJSON(&galleries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetGallery returns one gallery by id for the admin editor.
func (a *API) GetGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	gallery, err := a.galleries.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": galleryJSON(gallery)})
}

// CreateGallery saves a new gallery. Saving requires at least one image;
// the store itself does not enforce this.
func (a *API) CreateGallery(c *gin.Context) {
	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid gallery payload") {
		return
	}
	if len(payload.Images) == 0 {
		respondError(c, http.StatusBadRequest, "at least one image is required")
		return
	}

	gallery, err := a.galleries.Create(service.EventGalleryInput{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Description: payload.Description,
		Location:    payload.Location,
		EventDate:   payload.EventDate,
		Images:      payload.Images,
		Published:   payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gallery": galleryJSON(gallery)})
}

// UpdateGallery modifies an existing gallery.
func (a *API) UpdateGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload galleryPayload
	if !bindJSON(c, &payload, "invalid gallery payload") {
		return
	}
	if len(payload.Images) == 0 {
		respondError(c, http.StatusBadRequest, "at least one image is required")
		return
	}

	gallery, err := a.galleries.Update(id, service.EventGalleryInput{
		Title:       payload.Title,
		Slug:        payload.Slug,
		Description: payload.Description,
		Location:    payload.Location,
		EventDate:   payload.EventDate,
		Images:      payload.Images,
		Published:   payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": galleryJSON(gallery)})
}

// DeleteGallery removes a gallery.
func (a *API) DeleteGallery(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.galleries.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "gallery deleted"})
}

func galleryJSON(gallery *db.EventGallery) gin.H {
	return gin.H{
		"id":          gallery.ID,
		"title":       gallery.Title,
		"slug":        gallery.Slug,
		"description": gallery.Description,
		"location":    gallery.Location,
		"eventDate":   gallery.EventDate,
		"images":      []string(gallery.Images),
		"published":   gallery.Published,
		"createdAt":   gallery.CreatedAt,
		"updatedAt":   gallery.UpdatedAt,
	}
}
