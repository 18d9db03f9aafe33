package routes

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gogumaworld/goguma/config"
	"github.com/gogumaworld/goguma/controllers"
	"github.com/gogumaworld/goguma/middleware"
	"github.com/gogumaworld/goguma/services"
	"github.com/gogumaworld/goguma/utils"
)

// SetupRouter wires routes, middlewares, and controllers around the injected
// store handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// File-based zap access log instead of gin's console logger.
	if gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.Static("/static", cfg.StaticDir)

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/static/goguma-app.html")
	})

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	decaySvc := services.NewDecayService(db, cfg.DecayPerDay)
	growthSvc := services.NewGrowthService(db, cfg.ExemptUser)

	sessionController := controllers.NewSessionController(db, decaySvc)
	gogumaController := controllers.NewGogumaController(db, growthSvc)
	postController := controllers.NewPostController(db)
	statsController := controllers.NewStatsController(db)

	api := r.Group("/api")
	api.Use(middleware.SessionLoader())

	api.GET("/me", sessionController.Me)
	api.POST("/start", middleware.RateLimitMiddleware(), sessionController.Start)
	api.GET("/ranking", gogumaController.Ranking)
	api.GET("/posts", postController.List)
	api.GET("/stats", statsController.GetStats)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())
	protected.POST("/logout", sessionController.Logout)
	protected.POST("/goguma/add", gogumaController.Add)
	protected.POST("/goguma/grow", gogumaController.Grow)
	protected.POST("/goguma/remove", gogumaController.Remove)
	protected.POST("/posts/add", postController.Add)
	protected.POST("/posts/delete", postController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		if strings.HasPrefix(path, "/api/") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "api route not found"})
			return
		}
		if strings.HasPrefix(path, "/static/") {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "static asset not found"})
			return
		}
		// Everything else falls back to the app page.
		ctx.File(filepath.Join(cfg.StaticDir, "goguma-app.html"))
	})

	return r
}
