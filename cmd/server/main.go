package main

import (
	"log"
	"net/http"

	_ "creditbank/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"creditbank/internal/cache"
	"creditbank/internal/config"
	"creditbank/internal/customer"
	"creditbank/internal/db"
	"creditbank/internal/handler"
	"creditbank/internal/model"
	"creditbank/internal/repository"
	"creditbank/internal/router"
	"creditbank/internal/service"
)

// @title Credit Account API
// @version 1.0
// @description Credit account service managing personal loans, business loans, and credit cards.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Credit{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	creditRepo := repository.NewCreditRepository(gormDB)

	customerClient := customer.NewClient(customer.Options{
		BaseURL:          cfg.CustomerServiceURL,
		Timeout:          cfg.CustomerTimeout,
		RetryAttempts:    uint(cfg.CustomerRetryAttempts),
		BreakerThreshold: uint32(cfg.CustomerBreakerThreshold),
		BreakerCooldown:  cfg.CustomerBreakerCooldown,
	})

	creditService := service.NewCreditService(creditRepo, customerClient, cacheClient)
	creditHandler := handler.NewCreditHandler(creditService)

	router.Register(e, creditHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
