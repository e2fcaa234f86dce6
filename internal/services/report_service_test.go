package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/pkg/constants"
	"github.com/tatthien/church-equipment/pkg/utils"
)

func exportRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	return rows
}

func TestExportInventory_AdminGetsAllRows(t *testing.T) {
	repo := newFakeEquipmentRepo()
	seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))
	seedRow(repo, "Camera", constants.StatusOld, utils.ToPtr(otherCaller.ID))

	svc := NewReportService(repo, zap.NewNop())
	data, err := svc.ExportInventory(context.Background(), adminCaller)
	require.NoError(t, err)

	rows := exportRows(t, data)
	require.Len(t, rows, 3, "header plus two data rows")
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Mixer", rows[1][1])
	assert.Equal(t, "Camera", rows[2][1])
}

func TestExportInventory_UserScopedToOwnRows(t *testing.T) {
	repo := newFakeEquipmentRepo()
	seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))
	seedRow(repo, "Camera", constants.StatusOld, utils.ToPtr(otherCaller.ID))

	svc := NewReportService(repo, zap.NewNop())
	data, err := svc.ExportInventory(context.Background(), userCaller)
	require.NoError(t, err)

	rows := exportRows(t, data)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mixer", rows[1][1])
}

func TestExportInventory_EmptyInventory(t *testing.T) {
	svc := NewReportService(newFakeEquipmentRepo(), zap.NewNop())

	data, err := svc.ExportInventory(context.Background(), adminCaller)
	require.NoError(t, err)

	rows := exportRows(t, data)
	assert.Len(t, rows, 1, "only the header row")
}
