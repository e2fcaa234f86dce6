package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatthien/church-equipment/internal/controllers"
)

func runAuthRouter(api *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	api.POST("/auth/login", ctrl.Login)
	secure.GET("/auth/me", ctrl.Me)
}
