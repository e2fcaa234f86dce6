package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/services"
	"github.com/tatthien/church-equipment/pkg/utils"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	reportService    services.ReportServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	equipmentService services.EquipmentServiceInterface,
	reportService services.ReportServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: equipmentService,
		reportService:    reportService,
		logger:           logger,
	}
}

func parseEquipmentFilter(ctx echo.Context) dto.EquipmentFilter {
	query := ctx.Request().URL.Query()
	filter := dto.EquipmentFilter{Search: query.Get("search")}

	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	if raw := query.Get("department_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.DepartmentID = &id
		}
	}
	if raw := query.Get("brand_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.BrandID = &id
		}
	}
	return filter
}

func (c *EquipmentController) GetEquipment(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	page := utils.ParsePaginationParams(ctx.Request().URL.Query())
	items, total, err := c.equipmentService.GetEquipment(ctx.Request().Context(), caller, parseEquipmentFilter(ctx), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, items, "equipment fetched", http.StatusOK, utils.DescribePagination(total, page))
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	res, err := c.equipmentService.FindEquipment(ctx.Request().Context(), caller, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment fetched", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), caller, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), caller, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment updated", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), caller, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "equipment deleted", http.StatusOK)
}

func (c *EquipmentController) GetEquipmentQRCode(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	png, err := c.equipmentService.GetEquipmentQRCode(ctx.Request().Context(), caller, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}

func (c *EquipmentController) ExportInventory(ctx echo.Context) error {
	caller, err := utils.CallerFromContext(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	workbook, err := c.reportService.ExportInventory(ctx.Request().Context(), caller)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
