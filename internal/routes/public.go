package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatthien/church-equipment/internal/controllers"
)

func runPublicRouter(api *echo.Group, ctrl *controllers.PublicController) {
	api.GET("/public/equipment/:publicID", ctrl.GetPublicEquipment)
}
