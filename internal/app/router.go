package app

import (
	"fmt"
	"net/http"
	"time"

	"go-biztime/internal/config"
	"go-biztime/internal/messaging/kafka"
	"go-biztime/internal/middleware"
	"go-biztime/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const idempotencyTTL = 24 * time.Hour

type Dependencies struct {
	DB        *gorm.DB
	Redis     redis.Cmdable
	Publisher kafka.Publisher
}

// NewRouter mounts every resource at the root. ErrorResponder sits outside
// the recovery handler so a panic still answers with the error envelope.
func NewRouter(cfg config.Config, deps Dependencies) *gin.Engine {
	logger := zap.L()

	r := gin.New()
	r.Use(
		middleware.ContextLogger(logger),
		middleware.ErrorResponder(logger),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			_ = c.Error(fmt.Errorf("panic: %v", recovered))
			c.Abort()
		}),
	)

	if cfg.OtelEnabled {
		r.Use(observability.Middleware())
	}
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}
	if deps.Redis != nil {
		r.Use(middleware.Idempotency(deps.Redis, idempotencyTTL))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerModules(r, deps.DB, deps.Publisher)

	r.NoRoute(middleware.NoRoute())
	return r
}
