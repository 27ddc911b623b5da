package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"securenotes/internal/config"
	"securenotes/internal/database"
	"securenotes/internal/handler"
	"securenotes/internal/logger"
	"securenotes/internal/middleware"
	"securenotes/internal/queue"
	"securenotes/internal/repository"
	"securenotes/internal/router"
	"securenotes/internal/service"
)

func main() {
	// Load .env if present; real environments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		zl.Fatal("cannot open database", zap.Error(err))
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	notes := repository.NewNoteRepo(db)
	events := service.NewNoteEventPublisher(zl)

	accounts := handler.NewAccountHandler(cfg, users, zl)
	noteAPI := handler.NewNoteHandler(notes, users, events, zl)

	// Drain note activity events into logs/notes.log in the background.
	go queue.StartActivityConsumer(zl)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(zl))
	router.Register(e, db, accounts, noteAPI, cfg.JWTSecret)

	addr := ":" + cfg.Port
	zl.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := e.Start(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
