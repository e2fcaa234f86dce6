package services

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/authz"
	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/internal/repositories"
	"github.com/tatthien/church-equipment/pkg/utils"
)

// exportPageSize bounds each repository round trip while collecting rows.
const exportPageSize = 500

var inventoryHeaders = []interface{}{
	"ID", "Name", "Status", "Brand", "Department", "Purchase date", "Created by", "Created at",
}

type ReportServiceInterface interface {
	ExportInventory(ctx context.Context, caller authz.Caller) ([]byte, error)
}

type ReportService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewReportService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{equipmentRepo: equipmentRepo, logger: logger}
}

// ExportInventory renders the caller-visible inventory as an xlsx workbook.
// Admins export everything; other callers only the rows they created.
func (s *ReportService) ExportInventory(ctx context.Context, caller authz.Caller) ([]byte, error) {
	scope := authz.ScopeForList(caller)

	var items []entities.Equipment
	var offset uint64
	for {
		batch, total, err := s.equipmentRepo.GetEquipment(ctx, dto.EquipmentFilter{
			RestrictToOwner: scope.RestrictToOwner,
			Limit:           exportPageSize,
			Offset:          offset,
		})
		if err != nil {
			s.logger.Error("failed to collect inventory for export", zap.Error(err))
			return nil, err
		}
		items = append(items, batch...)
		offset += uint64(len(batch))
		if offset >= total || len(batch) == 0 {
			break
		}
	}

	f := excelize.NewFile()
	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &inventoryHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i := range items {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := inventoryRow(&items[i])
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "D", "E", 20)
	f.SetColWidth(sheet, "F", "H", 22)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inventoryRow(item *entities.Equipment) []interface{} {
	purchaseDate := ""
	if item.PurchaseDate.Valid {
		purchaseDate = item.PurchaseDate.Time.Format("2006-01-02")
	}
	return []interface{}{
		item.ID,
		item.Name,
		item.Status,
		utils.SafeDeref(item.BrandName.Ptr()),
		utils.SafeDeref(item.DepartmentName.Ptr()),
		purchaseDate,
		utils.SafeDeref(item.CreatorName.Ptr()),
		item.CreatedAt.Format("2006-01-02 15:04"),
	}
}
