package handler

import (
	"context"
	"net/http"
	"time"

	"teleradiology-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
	log   *logrus.Logger
}

// NewHealthHandler accepts a nil redis client when Redis is disabled.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
		log:   log,
	}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

// Check
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := healthStatus{Status: "ok", Database: "up", Redis: "disabled"}

	if err := h.pingDatabase(ctx); err != nil {
		h.log.Errorf("Health check database ping failed: %+v", err)
		status.Status = "error"
		status.Database = "down"
	}

	if h.redis != nil {
		status.Redis = "up"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			h.log.Errorf("Health check redis ping failed: %+v", err)
			status.Status = "error"
			status.Redis = "down"
		}
	}

	if status.Status != "ok" {
		response.ServiceUnavailable(w, "Service unavailable", status)
		return
	}

	response.Success(w, http.StatusOK, "Service is healthy", status)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
