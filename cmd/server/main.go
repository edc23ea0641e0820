package main // Entry point package

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/blog-api/internal/config"
	"github.com/iliyamo/blog-api/internal/database"
	"github.com/iliyamo/blog-api/internal/handler"
	"github.com/iliyamo/blog-api/internal/logger"
	"github.com/iliyamo/blog-api/internal/queue"
	"github.com/iliyamo/blog-api/internal/repository"
	"github.com/iliyamo/blog-api/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	if err := logger.Init("info"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		logger.Log.Fatalw("database open failed", "err", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	blogs := repository.NewBlogRepo(db)
	events := queue.NewPublisher(cfg.RabbitURL)

	e := echo.New()
	e.HideBanner = true
	e.Use(logger.RequestLogger())
	router.Register(e, handler.NewAuthHandler(cfg, users), handler.NewBlogHandler(blogs, events), cfg.JWTSecret)

	addr := ":" + cfg.Port
	logger.Log.Infow("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		logger.Log.Fatalw("server stopped", "err", err)
	}
}
