package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/controllers"
	"github.com/tatthien/church-equipment/internal/repositories"
	"github.com/tatthien/church-equipment/internal/services"
	"github.com/tatthien/church-equipment/pkg/config"
	"github.com/tatthien/church-equipment/pkg/middleware"
	"github.com/tatthien/church-equipment/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	// Repositories
	userRepo := repositories.NewUserRepository(dbConn, logger)
	departmentRepo := repositories.NewDepartmentRepository(dbConn, logger)
	brandRepo := repositories.NewBrandRepository(dbConn, logger)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// Services
	qrSvc := services.NewQRCodeService(cfg.Server.PublicBaseURL)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	userService := services.NewUserService(userRepo, logger)
	departmentService := services.NewDepartmentService(departmentRepo, logger)
	brandService := services.NewBrandService(brandRepo, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, cacheRepo, qrSvc, services.EquipmentServiceConfig{
		PublicCacheTTL: cfg.Cache.PublicEquipmentTTL,
	}, logger)
	reportService := services.NewReportService(equipmentRepo, logger)

	// Controllers
	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	departmentController := controllers.NewDepartmentController(departmentService, logger)
	brandController := controllers.NewBrandController(brandService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, reportService, logger)
	publicController := controllers.NewPublicController(equipmentService, logger)

	// Routers
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, secureGroup, authController)
	runUserRouter(secureGroup, userController)
	runDepartmentRouter(secureGroup, departmentController)
	runBrandRouter(secureGroup, brandController)
	runEquipmentRouter(secureGroup, equipmentController)
	runPublicRouter(api, publicController)
}
