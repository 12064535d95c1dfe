package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

// defaultMenu is the hardcoded navigation served when the menu store is
// unreachable. Availability over correctness: the public site keeps its
// nav even when the database is down.
func defaultMenu() []service.MenuNode {
	entries := []struct {
		label string
		url   string
		icon  string
	}{
		{"Home", "/", "home"},
		{"About", "/about", "info"},
		{"Vision", "/vision", "eye"},
		{"Mission", "/mission", "target"},
		{"Timeline", "/timeline", "clock"},
		{"Structure", "/structure", "users"},
		{"Blog", "/blog", "newspaper"},
		{"Gallery", "/gallery", "camera"},
		{"Contact", "/contact", "mail"},
	}

	nodes := make([]service.MenuNode, 0, len(entries))
	for _, entry := range entries {
		nodes = append(nodes, service.MenuNode{
			Label:    entry.label,
			URL:      entry.url,
			Icon:     entry.icon,
			Target:   db.MenuTargetSelf,
			Children: []service.MenuChild{},
		})
	}
	return nodes
}

// PublicMenu returns the published navigation tree, or the static default
// menu when the fetch fails.
func (a *API) PublicMenu(c *gin.Context) {
	nodes, err := a.menus.Tree()
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, gin.H{"menu": defaultMenu(), "fallback": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": nodes})
}

// PublicListPages lists published pages.
func (a *API) PublicListPages(c *gin.Context) {
	pages, err := a.pages.ListPublished()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(pages))
	for i := range pages {
		items = append(items, publicPageJSON(&pages[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicGetPage fetches one published page by slug, body rendered to HTML.
func (a *API) PublicGetPage(c *gin.Context) {
	page, err := a.pages.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": publicPageJSON(page, true)})
}

// PublicListPosts lists published posts with pagination.
func (a *API) PublicListPosts(c *gin.Context) {
	result, err := a.posts.ListPublished(
		parseIntQuery(c, "page", 1),
		parseIntQuery(c, "perPage", 10),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, publicPostJSON(&result.Items[i], false))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      result.Total,
		"totalPages": result.TotalPages,
		"page":       result.Page,
		"perPage":    result.PerPage,
	})
}

// PublicGetPost fetches one published post by slug, body rendered to HTML.
func (a *API) PublicGetPost(c *gin.Context) {
	post, err := a.posts.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": publicPostJSON(post, true)})
}

// PublicListEvents lists published events.
func (a *API) PublicListEvents(c *gin.Context) {
	events, err := a.events.ListPublished()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(events))
	for i := range events {
		items = append(items, publicEventJSON(&events[i], false))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicGetEvent fetches one published event by slug, body rendered to HTML.
func (a *API) PublicGetEvent(c *gin.Context) {
	event, err := a.events.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": publicEventJSON(event, true)})
}

// PublicListTeam lists published team members ordered for display.
func (a *API) PublicListTeam(c *gin.Context) {
	members, err := a.team.ListPublished()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(members))
	for i := range members {
		items = append(items, publicTeamMemberJSON(&members[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicGetTeamMember fetches one published team member by slug.
func (a *API) PublicGetTeamMember(c *gin.Context) {
	member, err := a.team.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": publicTeamMemberJSON(member)})
}

// PublicListGalleries lists published event galleries.
func (a *API) PublicListGalleries(c *gin.Context) {
	galleries, err := a.galleries.ListPublished()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(galleries))
	for i := range galleries {
		items = append(items, publicGalleryJSON(&galleries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PublicGetGallery fetches one published gallery by slug.
func (a *API) PublicGetGallery(c *gin.Context) {
	gallery, err := a.galleries.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": publicGalleryJSON(gallery)})
}

// PublicSettings exposes the settings registry to the rendering layer,
// along with the resolved maintenance flag.
func (a *API) PublicSettings(c *gin.Context) {
	settings, err := a.settings.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	maintenance, err := a.settings.MaintenanceMode()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(settings))
	for i := range settings {
		items = append(items, settingJSON(&settings[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":           items,
		"maintenanceMode": maintenance,
	})
}

// PublicGetSetting fetches a single setting by key.
func (a *API) PublicGetSetting(c *gin.Context) {
	setting, err := a.settings.Get(c.Param("key"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": settingJSON(setting)})
}

func publicPageJSON(page *db.Page, withBody bool) gin.H {
	out := gin.H{
		"title":     page.Title,
		"slug":      page.Slug,
		"summary":   page.Summary,
		"updatedAt": page.UpdatedAt,
	}
	if withBody {
		out["contentHtml"] = service.RenderContent(page.Content)
	}
	return out
}

func publicPostJSON(post *db.Post, withBody bool) gin.H {
	out := gin.H{
		"title":         post.Title,
		"slug":          post.Slug,
		"summary":       post.Summary,
		"featuredImage": post.FeaturedImage,
		"createdAt":     post.CreatedAt,
	}
	if post.Author.Username != "" {
		out["author"] = post.Author.Username
	}
	if withBody {
		out["contentHtml"] = service.RenderContent(post.Content)
	}
	return out
}

func publicEventJSON(event *db.Event, withBody bool) gin.H {
	out := gin.H{
		"title":         event.Title,
		"slug":          event.Slug,
		"summary":       event.Summary,
		"location":      event.Location,
		"startsAt":      event.StartsAt,
		"featuredImage": event.FeaturedImage,
	}
	if withBody {
		out["contentHtml"] = service.RenderContent(event.Content)
	}
	return out
}

func publicTeamMemberJSON(member *db.TeamMember) gin.H {
	return gin.H{
		"name":     member.Name,
		"slug":     member.Slug,
		"role":     member.Role,
		"bio":      member.Bio,
		"photoUrl": member.PhotoURL,
	}
}

func publicGalleryJSON(gallery *db.EventGallery) gin.H {
	return gin.H{
		"title":       gallery.Title,
		"slug":        gallery.Slug,
		"description": gallery.Description,
		"location":    gallery.Location,
		"eventDate":   gallery.EventDate,
		"images":      []string(gallery.Images),
	}
}
