package handler

import (
	"context"
	"net/http"
	"time"

	"gastropos/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports DB and Redis connectivity plus dead-letter queue depth.
// Redis is optional: a nil client is reported as "disabled" and does not fail
// the check.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "disabled"
		dlq := gin.H{}
		if rdb != nil {
			redisStatus = "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			} else {
				for _, q := range []string{worker.QueueComprobantes, worker.QueueEmail} {
					if n, err := worker.DLQLength(ctx, rdb, q); err == nil {
						dlq[q] = n
					}
				}
			}
		}

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus == "error" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"redis": redisStatus,
			"dlq":   dlq,
			"time":  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
