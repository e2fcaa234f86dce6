package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/services"
	"github.com/tatthien/church-equipment/pkg/utils"
)

// PublicController serves the unauthenticated equipment lookup reached by
// scanning a QR label.
type PublicController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewPublicController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *PublicController {
	return &PublicController{equipmentService: equipmentService, logger: logger}
}

func (c *PublicController) GetPublicEquipment(ctx echo.Context) error {
	res, err := c.equipmentService.GetPublicEquipment(ctx.Request().Context(), ctx.Param("publicID"))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment fetched", http.StatusOK)
}
