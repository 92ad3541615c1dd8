package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/flounder11/online-coffee-api/configs"
	"github.com/flounder11/online-coffee-api/middlewares"
	"github.com/flounder11/online-coffee-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if dir := filepath.Dir(cfg.DBSource); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create db dir failed: %v", err)
		}
	}
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		log.Fatalf("create images dir failed: %v", err)
	}
	r.Static("/images", cfg.ImagesDir)

	routes.RegisterRoutes(r, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
