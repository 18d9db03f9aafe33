package main

import (
	"github.com/gogumaworld/goguma/config"
	"github.com/gogumaworld/goguma/models"
	"github.com/gogumaworld/goguma/routes"
	"github.com/gogumaworld/goguma/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.User{},
		&models.Goguma{},
		&models.Action{},
		&models.UserActivity{},
		&models.Post{},
	)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting goguma server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
