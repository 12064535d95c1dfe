package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/db"
	"github.com/youngtj20/transportersfortinubu-sub000/internal/service"
	"golang.org/x/crypto/bcrypt"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理后台登录请求，成功后在会话中记录账号信息
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	var user db.User
	if err := a.db.Where("username = ?", payload.Username).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to persist session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "logged in",
		"username": user.Username,
	})
}

// Logout 处理后台登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Dashboard 返回后台首页需要的内容统计
func (a *API) Dashboard(c *gin.Context) {
	session := sessions.Default(c)
	username := session.Get("username")

	counts := gin.H{}
	models := map[string]interface{}{
		"pages":     &db.Page{},
		"posts":     &db.Post{},
		"events":    &db.Event{},
		"team":      &db.TeamMember{},
		"galleries": &db.EventGallery{},
		"menuItems": &db.MenuItem{},
	}
	for key, model := range models {
		var count int64
		if err := a.db.Model(model).Count(&count).Error; err != nil {
			respondServiceError(c, fmt.Errorf("%w: count %s: %v", service.ErrUpstream, key, err))
			return
		}
		counts[key] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"counts":   counts,
	})
}

// AuthRequired 是一个简单的认证中间件
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")
		if userID == nil {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUserID resolves the authenticated account for author stamping.
func currentUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	raw := session.Get("user_id")
	if raw == nil {
		return 0, false
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
