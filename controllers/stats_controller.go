package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/models"
	"github.com/gogumaworld/goguma/services"
)

// StatsController provides aggregate statistics over the whole garden.
type StatsController struct {
	db *gorm.DB
}

// NewStatsController creates a new controller instance.
func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

// GetStats returns entity counts plus the number of users who visited today.
func (s *StatsController) GetStats(ctx *gin.Context) {
	var userCount, gogumaCount, postCount, activeToday int64

	// Fall back to 0 per counter instead of failing the whole endpoint.
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		userCount = 0
	}
	if err := s.db.Model(&models.Goguma{}).Count(&gogumaCount).Error; err != nil {
		gogumaCount = 0
	}
	if err := s.db.Model(&models.Post{}).Count(&postCount).Error; err != nil {
		postCount = 0
	}
	if err := s.db.Model(&models.UserActivity{}).
		Where("last_visit_date = ?", services.Today()).
		Count(&activeToday).Error; err != nil {
		activeToday = 0
	}

	ctx.JSON(200, gin.H{
		"user_count":   userCount,
		"goguma_count": gogumaCount,
		"post_count":   postCount,
		"active_today": activeToday,
	})
}
