// Package web exposes a running engine over HTTP so a browser page can
// push scroll progress and poll animation snapshots.
package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"driftbg/internal/engine"
)

// Server holds the HTTP handlers around one engine instance.
type Server struct {
	engine  *engine.Engine
	started time.Time
}

func NewServer(eng *engine.Engine) *Server {
	return &Server{engine: eng, started: time.Now()}
}

// SetupRoutes registers the API and the static demo page.
func (s *Server) SetupRoutes(r *gin.Engine) {
	r.StaticFile("/", "./static/index.html")
	r.Static("/static", "./static")

	api := r.Group("/api")
	{
		api.GET("/snapshot", s.handleSnapshot)
		api.POST("/progress", s.handleProgress)
		api.GET("/config", s.handleConfig)
		api.GET("/health", s.handleHealth)
	}
}

type colorResponse struct {
	H   float64 `json:"h"`
	S   float64 `json:"s"`
	L   float64 `json:"l"`
	Hex string  `json:"hex"`
}

type snapshotResponse struct {
	Colors    [2]colorResponse `json:"colors"`
	Rotations []float64        `json:"rotations"`
	YOffset   float64          `json:"yOffset"`
	XOffset   float64          `json:"xOffset"`
	Progress  float64          `json:"progress"`
}

func toColorResponse(c engine.HSL) colorResponse {
	return colorResponse{H: c.H, S: c.S, L: c.L, Hex: c.Hex()}
}

func (s *Server) handleSnapshot(c *gin.Context) {
	snap := s.engine.Snapshot()
	c.JSON(http.StatusOK, snapshotResponse{
		Colors: [2]colorResponse{
			toColorResponse(snap.Colors[0]),
			toColorResponse(snap.Colors[1]),
		},
		Rotations: snap.Rotations,
		YOffset:   snap.YOffset,
		XOffset:   snap.XOffset,
		Progress:  snap.Progress,
	})
}

type progressRequest struct {
	// Pointer so an explicit 0 is distinguishable from a missing field.
	Progress *float64 `json:"progress" binding:"required"`
}

func (s *Server) handleProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress field required"})
		return
	}
	// The engine clamps out-of-range and non-finite values itself.
	s.engine.SetProgress(*req.Progress)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	cfg := s.engine.Config()
	c.JSON(http.StatusOK, gin.H{
		"blobs": cfg.Blobs,
		"fps":   cfg.FPS,
		"stops": len(cfg.Stops),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.started).Seconds(),
	})
}
