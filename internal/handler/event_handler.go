package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type eventPayload struct {
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content"`
	Location      string    `json:"location"`
	StartsAt      time.Time `json:"startsAt"`
	FeaturedImage string    `json:"featuredImage"`
	Published     bool      `json:"published"`
}

// ListEvents returns every event for the admin surface, drafts included.
func (a *API) ListEvents(c *gin.Context) {
	events, err := a.events.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(events))
	for i := range events {
		items = append(items, eventJSON(&events[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetEvent returns one event by id for the admin editor.
func (a *API) GetEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	event, err := a.events.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": eventJSON(event)})
}

// CreateEvent saves a new event.
func (a *API) CreateEvent(c *gin.Context) {
	var payload eventPayload
	if !bindJSON(c, &payload, "invalid event payload") {
		return
	}

	event, err := a.events.Create(service.EventInput{
		Title:         payload.Title,
		Slug:          payload.Slug,
		Summary:       payload.Summary,
		Content:       payload.Content,
		Location:      payload.Location,
		StartsAt:      payload.StartsAt,
		FeaturedImage: payload.FeaturedImage,
		Published:     payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": eventJSON(event)})
}

// UpdateEvent modifies an existing event.
func (a *API) UpdateEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload eventPayload
	if !bindJSON(c, &payload, "invalid event payload") {
		return
	}

	event, err := a.events.Update(id, service.EventInput{
		Title:         payload.Title,
		Slug:          payload.Slug,
		Summary:       payload.Summary,
		Content:       payload.Content,
		Location:      payload.Location,
		StartsAt:      payload.StartsAt,
		FeaturedImage: payload.FeaturedImage,
		Published:     payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": eventJSON(event)})
}

// DeleteEvent removes an event.
func (a *API) DeleteEvent(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.events.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func eventJSON(event *db.Event) gin.H {
	return gin.H{
		"id":            event.ID,
		"title":         event.Title,
		"slug":          event.Slug,
		"summary":       event.Summary,
		"content":       event.Content,
		"location":      event.Location,
		"startsAt":      event.StartsAt,
		"featuredImage": event.FeaturedImage,
		"published":     event.Published,
		"createdAt":     event.CreatedAt,
		"updatedAt":     event.UpdatedAt,
	}
}
