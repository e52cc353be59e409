package config

import (
	"context"
	"fmt"
	"strings"

	"roombook/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// App gom các thành phần hạ tầng đã khởi tạo
type App struct {
	Config *Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Melody *melody.Melody
	Cron   *cron.Cron
	Logger *logger.ZapLogger
}

func InitApp(ctx context.Context) (*App, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Môi trường dev log dạng console cho dễ đọc
	log := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	if cfg.Env != "dev" {
		log, err = logger.NewZapLogger(logger.ParseLevel(cfg.LogLevel), "roombook")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	if configCors, ok := corsConfig(cfg); ok {
		router.Use(cors.New(configCors))
	} else {
		log.Info("CORS_ALLOWED_ORIGINS chưa cấu hình, chỉ nhận request cùng origin")
	}

	_ = router.SetTrustedProxies(nil)

	db, err := ConnectDB(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	if rdb == nil {
		log.Info("REDIS_ADDR chưa cấu hình, bỏ qua cache và pub/sub")
	}

	log.Info("All components initialized successfully")
	return &App{
		Config: cfg,
		Router: router,
		DB:     db,
		Redis:  rdb,
		Melody: melody.New(),
		Cron:   cron.New(),
		Logger: log,
	}, nil
}

// corsConfig chỉ cho phép các origin được cấu hình; cookie/credential không đi kèm wildcard
func corsConfig(cfg *Config) (cors.Config, bool) {
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "" || origin == "*" {
			continue
		}
		origins = append(origins, origin)
	}
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Call-Value", "X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOrigins = origins
	return configCors, true
}

func InitWebSocket(router *gin.Engine, m *melody.Melody) {
	router.GET("/ws", func(c *gin.Context) {
		_ = m.HandleRequest(c.Writer, c.Request)
	})
}
