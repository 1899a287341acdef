package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/configs"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/middlewares"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/repository"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/routes"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/services"
	"github.com/Ravikumara666/Smart-Restaurant-Bar-Management-System-sub000/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedTables(12); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}

	// Realtime hub
	hub := ws.NewEventHub()
	go hub.Run()

	// Expiry sweeper
	sweeper := services.NewSweeper(
		db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		hub,
		cfg.SweepInterval,
		cfg.TableStale,
	)
	go sweeper.Run(context.Background())

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.PrometheusMiddleware())

	// uploaded menu pictures
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
