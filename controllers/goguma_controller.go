package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/config"
	"github.com/gogumaworld/goguma/models"
	"github.com/gogumaworld/goguma/services"
	"github.com/gogumaworld/goguma/utils"
)

const rankingCacheKey = "cache:ranking"

// gogumaView is the wire shape for a goguma in user-facing responses.
type gogumaView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	HP   int    `json:"hp"`
}

// rankingRow is one line of the global ranking.
type rankingRow struct {
	UserName   string `json:"userName"`
	GogumaName string `json:"gogumaName"`
	HP         int    `json:"hp"`
}

// GogumaController manages creating, growing, removing, and ranking gogumas.
type GogumaController struct {
	db     *gorm.DB
	growth *services.GrowthService
}

// NewGogumaController creates a new controller instance.
func NewGogumaController(db *gorm.DB, growth *services.GrowthService) *GogumaController {
	return &GogumaController{db: db, growth: growth}
}

// Add creates a goguma for the caller, bounded to MaxGogumasPerUser.
func (g *GogumaController) Add(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	name := strings.TrimSpace(utils.Sanitize(req.Name))
	if name == "" {
		utils.Error(ctx, http.StatusBadRequest, "goguma name is required")
		return
	}

	var count int64
	if err := g.db.Model(&models.Goguma{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create goguma")
		return
	}
	if count >= models.MaxGogumasPerUser {
		utils.Error(ctx, http.StatusBadRequest, "at most 10 gogumas are allowed")
		return
	}

	goguma := models.Goguma{UserID: userID, Name: name, HP: models.DefaultHP}
	if err := g.db.Create(&goguma).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create goguma")
		return
	}

	utils.CacheDel(rankingCacheKey)
	ctx.JSON(http.StatusOK, gin.H{"goguma": gogumaView{ID: goguma.ID, Name: goguma.Name, HP: goguma.HP}})
}

// Grow grants the action's points to the goguma, limited to one use of each
// action type per goguma per day.
func (g *GogumaController) Grow(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		ID         uint   `json:"id"`
		ActionType string `json:"actionType"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	hp, err := g.growth.Grow(userID, req.ID, strings.TrimSpace(req.ActionType), services.Today())
	switch {
	case err == nil:
	case errors.Is(err, services.ErrUnknownAction):
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	case errors.Is(err, services.ErrGogumaNotFound):
		utils.Error(ctx, http.StatusNotFound, "goguma not found")
		return
	case errors.Is(err, services.ErrAlreadyUsedToday):
		utils.Error(ctx, http.StatusBadRequest, "this action was already used today, try again tomorrow")
		return
	default:
		utils.Error(ctx, http.StatusInternalServerError, "failed to grow goguma")
		return
	}

	utils.CacheDel(rankingCacheKey)
	ctx.JSON(http.StatusOK, gin.H{"id": req.ID, "hp": hp})
}

// Remove deletes a goguma owned by the caller.
func (g *GogumaController) Remove(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		ID uint `json:"id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	// A missing or unknown id falls through to the 404 below.
	res := g.db.Where("id = ? AND user_id = ?", req.ID, userID).Delete(&models.Goguma{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to remove goguma")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "goguma not found")
		return
	}

	utils.CacheDel(rankingCacheKey)
	utils.OK(ctx)
}

// Ranking returns the top gogumas across all users, HP descending with ties
// broken by goguma name.
func (g *GogumaController) Ranking(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(rankingCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	rows := []rankingRow{}
	if err := g.db.Model(&models.Goguma{}).
		Select("users.name AS user_name, gogumas.name AS goguma_name, gogumas.hp AS hp").
		Joins("JOIN users ON users.id = gogumas.user_id").
		Order("gogumas.hp DESC, gogumas.name ASC").
		Limit(config.Get().RankingLimit).
		Scan(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load ranking")
		return
	}

	utils.CacheSetJSON(rankingCacheKey, rows, 0)
	ctx.JSON(http.StatusOK, rows)
}

func listGogumas(db *gorm.DB, userID uint) []gogumaView {
	views := []gogumaView{}
	if err := db.Model(&models.Goguma{}).
		Select("id, name, hp").
		Where("user_id = ?", userID).
		Order("id").
		Scan(&views).Error; err != nil && utils.Sugar != nil {
		utils.Sugar.Warnf("failed to list gogumas for user %d: %v", userID, err)
	}
	return views
}
