package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
)

type settingPayload struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type settingsUpdatePayload struct {
	Settings []settingPayload `json:"settings"`
}

// ListSettings returns every setting for the admin form.
func (a *API) ListSettings(c *gin.Context) {
	settings, err := a.settings.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(settings))
	for i := range settings {
		items = append(items, settingJSON(&settings[i]))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// UpdateSettings replaces the admin-editable settings in one batch. The
// whole batch fails together; nothing is left half-written.
func (a *API) UpdateSettings(c *gin.Context) {
	var payload settingsUpdatePayload
	if !bindJSON(c, &payload, "invalid settings payload") {
		return
	}
	if len(payload.Settings) == 0 {
		respondError(c, http.StatusBadRequest, "no settings provided")
		return
	}

	inputs := make([]service.SettingInput, 0, len(payload.Settings))
	for _, item := range payload.Settings {
		inputs = append(inputs, service.SettingInput{
			Key:         item.Key,
			Value:       item.Value,
			Type:        item.Type,
			Description: item.Description,
		})
	}

	if err := a.settings.BulkUpsert(inputs); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
}

func settingJSON(setting *db.Setting) gin.H {
	return gin.H{
		"key":         setting.Key,
		"value":       setting.Value,
		"type":        setting.Type,
		"description": setting.Description,
		"updatedAt":   setting.UpdatedAt,
	}
}
