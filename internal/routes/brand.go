package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatthien/church-equipment/internal/controllers"
)

func runBrandRouter(secure *echo.Group, ctrl *controllers.BrandController) {
	secure.GET("/brands", ctrl.GetBrands)
	secure.GET("/brands/:id", ctrl.FindBrand)
	secure.POST("/brands", ctrl.CreateBrand)
	secure.PUT("/brands/:id", ctrl.UpdateBrand)
	secure.DELETE("/brands/:id", ctrl.DeleteBrand)
}
