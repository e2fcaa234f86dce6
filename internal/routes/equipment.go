package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/tatthien/church-equipment/internal/controllers"
)

func runEquipmentRouter(secure *echo.Group, ctrl *controllers.EquipmentController) {
	secure.GET("/equipment", ctrl.GetEquipment)
	// Registered before /equipment/:id so "export" is not parsed as an id.
	secure.GET("/equipment/export", ctrl.ExportInventory)
	secure.GET("/equipment/:id", ctrl.FindEquipment)
	secure.POST("/equipment", ctrl.CreateEquipment)
	secure.PUT("/equipment/:id", ctrl.UpdateEquipment)
	secure.DELETE("/equipment/:id", ctrl.DeleteEquipment)
	secure.GET("/equipment/:id/qrcode", ctrl.GetEquipmentQRCode)
}
