package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type postPayload struct {
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Summary       string `json:"summary"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
	Published     bool   `json:"published"`
}

// ListPosts returns a filtered, paginated post listing for the admin surface.
func (a *API) ListPosts(c *gin.Context) {
	result, err := a.posts.List(service.PostFilter{
		Search:    c.Query("search"),
		Published: parseBoolQuery(c, "published"),
		Page:      parseIntQuery(c, "page", 1),
		PerPage:   parseIntQuery(c, "perPage", 10),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, postJSON(&result.Items[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"page":       result.Page,
		"perPage":    result.PerPage,
	})
}

// GetPost returns one post by id for the admin editor.
func (a *API) GetPost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	post, err := a.posts.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": postJSON(post)})
}

// CreatePost saves a new post stamped with the session author.
func (a *API) CreatePost(c *gin.Context) {
	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:         payload.Title,
		Slug:          payload.Slug,
		Summary:       payload.Summary,
		Content:       payload.Content,
		FeaturedImage: payload.FeaturedImage,
		Published:     payload.Published,
		AuthorID:      authorID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"post": postJSON(post)})
}

// UpdatePost modifies an existing post.
func (a *API) UpdatePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload postPayload
	if !bindJSON(c, &payload, "invalid post payload") {
		return
	}

	post, err := a.posts.Update(id, service.PostInput{
		Title:         payload.Title,
		Slug:          payload.Slug,
		Summary:       payload.Summary,
		Content:       payload.Content,
		FeaturedImage: payload.FeaturedImage,
		Published:     payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": postJSON(post)})
}

// DeletePost removes a post.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.posts.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func postJSON(post *db.Post) gin.H {
	return gin.H{
		"id":            post.ID,
		"title":         post.Title,
		"slug":          post.Slug,
		"summary":       post.Summary,
		"content":       post.Content,
		"featuredImage": post.FeaturedImage,
		"published":     post.Published,
		"authorId":      post.AuthorID,
		"createdAt":     post.CreatedAt,
		"updatedAt":     post.UpdatedAt,
	}
}
