package main

import (
	"flag"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"driftbg/internal/engine"
	"driftbg/internal/web"
)

func main() {
	port := flag.String("port", "9077", "HTTP listen port")
	blobs := flag.Int("blobs", 5, "number of animated background blobs")
	fps := flag.Int("fps", 60, "engine tick rate")
	flag.Parse()

	cfg := engine.DefaultConfig()
	cfg.Blobs = *blobs
	cfg.FPS = *fps

	eng, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	if err := eng.Start(); err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Stop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	web.NewServer(eng).SetupRoutes(r)

	log.Printf("driftbg web demo on http://localhost:%s", *port)
	if err := r.Run(":" + *port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
