package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/config"
	"github.com/gogumaworld/goguma/middleware"
	"github.com/gogumaworld/goguma/models"
	"github.com/gogumaworld/goguma/services"
	"github.com/gogumaworld/goguma/utils"
)

// SessionController handles login-by-name, the current-user view, and
// logout. Both session-establishing endpoints run inactivity decay before
// returning the goguma list.
type SessionController struct {
	db    *gorm.DB
	decay *services.DecayService
}

// NewSessionController creates a new controller instance.
func NewSessionController(db *gorm.DB, decay *services.DecayService) *SessionController {
	return &SessionController{db: db, decay: decay}
}

// Start logs a user in by display name, creating the user on first visit,
// and sets the session cookie.
func (s *SessionController) Start(ctx *gin.Context) {
	var req struct {
		UserName string `json:"userName"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	name := strings.TrimSpace(utils.Sanitize(req.UserName))
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, "name is required")
		return
	}

	var user models.User
	if err := s.db.Where(models.User{Name: name}).FirstOrCreate(&user).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to start session")
		return
	}

	cfg := config.Get()
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	token, err := utils.GenerateSessionToken(user.ID, user.Name, ttl)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to start session")
		return
	}
	ctx.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)

	applied, err := s.decay.Apply(user.ID, services.Today())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to start session")
		return
	}
	if applied {
		utils.CacheDel(rankingCacheKey)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":    gin.H{"id": user.ID, "name": user.Name},
		"gogumas": listGogumas(s.db, user.ID),
	})
}

// Me returns the current user and their gogumas, or a null user when no
// valid session is present.
func (s *SessionController) Me(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"user": nil, "gogumas": []gogumaView{}})
		return
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		// Session refers to a user that no longer exists; drop the cookie.
		ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		ctx.JSON(http.StatusOK, gin.H{"user": nil, "gogumas": []gogumaView{}})
		return
	}

	applied, err := s.decay.Apply(user.ID, services.Today())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load user")
		return
	}
	if applied {
		utils.CacheDel(rankingCacheKey)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":    gin.H{"id": user.ID, "name": user.Name},
		"gogumas": listGogumas(s.db, user.ID),
	})
}

// Logout revokes the current session and clears the cookie.
func (s *SessionController) Logout(ctx *gin.Context) {
	if v, exists := ctx.Get(middleware.ContextClaimsKey); exists {
		if claims, ok := v.(*utils.SessionClaims); ok && claims.ExpiresAt != nil {
			utils.RevokeSession(claims.ID, claims.ExpiresAt.Time)
		}
	}
	ctx.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	utils.OK(ctx)
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
