package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type teamMemberPayload struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	PhotoURL  string `json:"photoUrl"`
	Sort      int    `json:"sort"`
	Published bool   `json:"published"`
}

// ListTeamMembers returns every member for the admin surface, drafts included.
func (a *API) ListTeamMembers(c *gin.Context) {
	members, err := a.team.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(members))
	for i := range members {
		items = append(items, teamMemberJSON(&members[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetTeamMember returns one member by id for the admin editor.
func (a *API) GetTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	member, err := a.team.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": teamMemberJSON(member)})
}

// CreateTeamMember saves a new member.
func (a *API) CreateTeamMember(c *gin.Context) {
	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	member, err := a.team.Create(service.TeamMemberInput{
		Name:      payload.Name,
		Slug:      payload.Slug,
		Role:      payload.Role,
		Bio:       payload.Bio,
		PhotoURL:  payload.PhotoURL,
		Sort:      payload.Sort,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": teamMemberJSON(member)})
}

// UpdateTeamMember modifies an existing member.
func (a *API) UpdateTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload teamMemberPayload
	if !bindJSON(c, &payload, "invalid team member payload") {
		return
	}

	member, err := a.team.Update(id, service.TeamMemberInput{
		Name:      payload.Name,
		Slug:      payload.Slug,
		Role:      payload.Role,
		Bio:       payload.Bio,
		PhotoURL:  payload.PhotoURL,
		Sort:      payload.Sort,
		Published: payload.Published,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": teamMemberJSON(member)})
}

// DeleteTeamMember removes a member.
func (a *API) DeleteTeamMember(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.team.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "team member deleted"})
}

func teamMemberJSON(member *db.TeamMember) gin.H {
	return gin.H{
		"id":        member.ID,
		"name":      member.Name,
		"slug":      member.Slug,
		"role":      member.Role,
		"bio":       member.Bio,
		"photoUrl":  member.PhotoURL,
		"sort":      member.Sort,
		"published": member.Published,
		"createdAt": member.CreatedAt,
		"updatedAt": member.UpdatedAt,
	}
}
