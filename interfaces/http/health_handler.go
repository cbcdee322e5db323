package http

import (
	"database/sql"
	"net/http"

	"content-pipeline/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

type IHealthHandler interface {
	Healthz(c *gin.Context)
}

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) IHealthHandler {
	return &HealthHandler{db: db}
}

// Healthz returns OK while the store answers pings
func (h *HealthHandler) Healthz(ctx *gin.Context) {
	if err := persistence.HealthCheck(ctx.Request.Context(), h.db); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
