package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/routes"
	"github.com/tatthien/church-equipment/pkg/config"
	"github.com/tatthien/church-equipment/pkg/database/postgresql"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
	applogger "github.com/tatthien/church-equipment/pkg/logger"
	appmiddleware "github.com/tatthien/church-equipment/pkg/middleware"
	"github.com/tatthien/church-equipment/pkg/service"
	"github.com/tatthien/church-equipment/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, apperrors.ReasonInternal, "internal server error", err)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.CORS())
	e.Use(appmiddleware.RequestLogger(logger))

	e.Validator = utils.NewValidator(validator.New())

	if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}

	dbConn, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	jwtSvc := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, logger)

	routes.InitRouter(e, dbConn, redisClient, jwtSvc, logger, cfg)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
