package controllers

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/config"
	"github.com/gogumaworld/goguma/models"
	"github.com/gogumaworld/goguma/utils"
)

const postsCacheKey = "cache:posts:list"

// postView is the wire shape for a post joined with its author's name.
type postView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"userName"`
}

// PostController manages the shared message board.
type PostController struct {
	db *gorm.DB
}

// NewPostController creates a new controller instance.
func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

// List returns the newest posts with author names.
func (p *PostController) List(ctx *gin.Context) {
	if b, ok := utils.CacheGetBytes(postsCacheKey); ok {
		ctx.Data(http.StatusOK, "application/json", b)
		return
	}

	rows := []postView{}
	if err := p.db.Model(&models.Post{}).
		Select("posts.id, posts.user_id, posts.title, posts.content, posts.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.id DESC").
		Limit(config.Get().PostsLimit).
		Scan(&rows).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	utils.CacheSetJSON(postsCacheKey, rows, 0)
	ctx.JSON(http.StatusOK, rows)
}

// Add creates a post for the caller after length validation.
func (p *PostController) Add(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	title := strings.TrimSpace(utils.Sanitize(req.Title))
	content := strings.TrimSpace(utils.Sanitize(req.Content))

	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "title is required")
		return
	}
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, "content is required")
		return
	}
	if utf8.RuneCountInString(title) > models.MaxPostTitleLen {
		utils.Error(ctx, http.StatusBadRequest, "title must be 100 characters or fewer")
		return
	}
	if utf8.RuneCountInString(content) > models.MaxPostContentLen {
		utils.Error(ctx, http.StatusBadRequest, "content must be 1000 characters or fewer")
		return
	}

	post := models.Post{UserID: userID, Title: title, Content: content}
	if err := p.db.Create(&post).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	var view postView
	if err := p.db.Model(&models.Post{}).
		Select("posts.id, posts.user_id, posts.title, posts.content, posts.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.id = ?", post.ID).
		Scan(&view).Error; err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}

	utils.CacheDel(postsCacheKey)
	ctx.JSON(http.StatusOK, gin.H{"post": view})
}

// Delete removes a post owned by the caller.
func (p *PostController) Delete(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		ID uint `json:"id"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "invalid request")
		return
	}

	res := p.db.Where("id = ? AND user_id = ?", req.ID, userID).Delete(&models.Post{})
	if res.Error != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(ctx, http.StatusNotFound, "post not found")
		return
	}

	utils.CacheDel(postsCacheKey)
	utils.OK(ctx)
}
