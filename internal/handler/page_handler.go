package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type pagePayload struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// ListPages returns every page for the admin surface, drafts included.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(pages))
	for i := range pages {
		items = append(items, pageJSON(&pages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetPage returns one page by id for the admin editor.
func (a *API) GetPage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := a.pages.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": pageJSON(page)})
}

// CreatePage saves a new page stamped with the session author.
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	page, err := a.pages.Create(service.PageInput{
		Title:     payload.Title,
		Slug:      payload.Slug,
		Summary:   payload.Summary,
		Content:   payload.Content,
		Published: payload.Published,
		AuthorID:  authorID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"page": pageJSON(page)})
}

// UpdatePage modifies an existing page.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	page, err := a.pages.Update(id, service.PageInput{
		Title:     payload.Title,
		Slug:      payload.Slug,
		Summary:   payload.Summary,
		Content:   payload.Content,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": pageJSON(page)})
}

// DeletePage removes a page.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.pages.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}

func pageJSON(page *db.Page) gin.H {
	return gin.H{
		"id":        page.ID,
		"title":     page.Title,
		"slug":      page.Slug,
		"summary":   page.Summary,
		"content":   page.Content,
		"published": page.Published,
		"authorId":  page.AuthorID,
		"createdAt": page.CreatedAt,
		"updatedAt": page.UpdatedAt,
	}
}
