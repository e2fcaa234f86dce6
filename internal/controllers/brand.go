package controllers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/services"
	"github.com/tatthien/church-equipment/pkg/utils"
)

type BrandController struct {
	brandService services.BrandServiceInterface
	logger       *zap.Logger
}

func NewBrandController(brandService services.BrandServiceInterface, logger *zap.Logger) *BrandController {
	return &BrandController{brandService: brandService, logger: logger}
}

func (c *BrandController) GetBrands(ctx echo.Context) error {
	query := ctx.Request().URL.Query()
	page := utils.ParsePaginationParams(query)

	brands, total, err := c.brandService.GetBrands(ctx.Request().Context(), query.Get("search"), page)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, brands, "brands fetched", http.StatusOK, utils.DescribePagination(total, page))
}

func (c *BrandController) FindBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	res, err := c.brandService.FindBrand(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "brand fetched", http.StatusOK)
}

func (c *BrandController) CreateBrand(ctx echo.Context) error {
	var payload dto.CreateBrandDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.brandService.CreateBrand(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "brand created", http.StatusCreated)
}

func (c *BrandController) UpdateBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	var payload dto.UpdateBrandDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid request body"), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.brandService.UpdateBrand(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "brand updated", http.StatusOK)
}

func (c *BrandController) DeleteBrand(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx, echo.NewHTTPError(http.StatusBadRequest, "invalid id"), c.logger)
	}

	if err := c.brandService.DeleteBrand(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "brand deleted", http.StatusOK)
}
