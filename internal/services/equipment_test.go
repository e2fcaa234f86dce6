package services

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/authz"
	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	"github.com/tatthien/church-equipment/pkg/constants"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
	"github.com/tatthien/church-equipment/pkg/utils"
)

var (
	adminCaller = authz.Caller{ID: 1, Role: constants.RoleAdmin}
	userCaller  = authz.Caller{ID: 2, Role: constants.RoleUser}
	otherCaller = authz.Caller{ID: 3, Role: constants.RoleUser}
)

func setupEquipmentService() (EquipmentServiceInterface, *fakeEquipmentRepo, *fakeCacheRepo) {
	repo := newFakeEquipmentRepo()
	cache := newFakeCacheRepo()
	qr := NewQRCodeService("http://localhost:8080")
	svc := NewEquipmentService(repo, cache, qr, EquipmentServiceConfig{PublicCacheTTL: time.Minute}, zap.NewNop())
	return svc, repo, cache
}

func seedRow(repo *fakeEquipmentRepo, name, status string, owner *uint64) *entities.Equipment {
	return repo.add(entities.Equipment{Name: name, Status: status, CreatedBy: owner})
}

func defaultPage() utils.PageRequest {
	return utils.PageRequest{Page: 1, Limit: utils.DefaultLimit}
}

func TestGetEquipment_UserSeesOnlyOwnRows(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))
	seedRow(repo, "Camera", constants.StatusNew, utils.ToPtr(otherCaller.ID))
	seedRow(repo, "Orphaned Amp", constants.StatusOld, nil)

	items, total, err := svc.GetEquipment(context.Background(), userCaller, dto.EquipmentFilter{}, defaultPage())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Mixer", items[0].Name)
}

func TestGetEquipment_AdminSeesEverything(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))
	seedRow(repo, "Camera", constants.StatusNew, utils.ToPtr(otherCaller.ID))
	seedRow(repo, "Orphaned Amp", constants.StatusOld, nil)

	items, total, err := svc.GetEquipment(context.Background(), adminCaller, dto.EquipmentFilter{}, defaultPage())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), total)
	assert.Len(t, items, 3)
}

func TestGetEquipment_StatusFilter(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(adminCaller.ID))
	seedRow(repo, "Broken Mic", constants.StatusDamaged, utils.ToPtr(adminCaller.ID))

	filter := dto.EquipmentFilter{Status: utils.ToPtr(constants.StatusDamaged)}
	items, total, err := svc.GetEquipment(context.Background(), adminCaller, filter, defaultPage())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, "Broken Mic", items[0].Name)
}

func TestGetEquipment_InvalidStatusFilter(t *testing.T) {
	svc, _, _ := setupEquipmentService()

	filter := dto.EquipmentFilter{Status: utils.ToPtr("Broken")}
	_, _, err := svc.GetEquipment(context.Background(), adminCaller, filter, defaultPage())

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.ReasonValidationFailed, httpErr.Reason)
	assert.Equal(t, "status", httpErr.Field)
}

func TestFindEquipment_OwnerAndAdmin(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	got, err := svc.FindEquipment(context.Background(), userCaller, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mixer", got.Name)

	got, err = svc.FindEquipment(context.Background(), adminCaller, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mixer", got.Name)
}

func TestFindEquipment_NonOwnerLooksLikeMissing(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	_, err := svc.FindEquipment(context.Background(), otherCaller, row.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.FindEquipment(context.Background(), otherCaller, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "forbidden and absent rows are indistinguishable")
}

func TestFindEquipment_DetachedRowHiddenFromUsers(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Orphaned Amp", constants.StatusOld, nil)

	_, err := svc.FindEquipment(context.Background(), userCaller, row.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := svc.FindEquipment(context.Background(), adminCaller, row.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orphaned Amp", got.Name)
}

func TestCreateEquipment_DefaultsStatusToNew(t *testing.T) {
	svc, _, _ := setupEquipmentService()

	got, err := svc.CreateEquipment(context.Background(), userCaller, dto.CreateEquipmentDTO{Name: "Projector"})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusNew, got.Status)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, userCaller.ID, *got.CreatedBy)
	assert.NotEmpty(t, got.PublicID)
}

func TestCreateEquipment_KeepsExplicitStatus(t *testing.T) {
	svc, _, _ := setupEquipmentService()

	payload := dto.CreateEquipmentDTO{Name: "Old Amp", Status: utils.ToPtr(constants.StatusOld)}
	got, err := svc.CreateEquipment(context.Background(), userCaller, payload)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusOld, got.Status)
}

func TestCreateEquipment_Rejections(t *testing.T) {
	svc, _, _ := setupEquipmentService()
	ctx := context.Background()

	_, err := svc.CreateEquipment(ctx, userCaller, dto.CreateEquipmentDTO{Name: "   "})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "name", httpErr.Field)

	_, err = svc.CreateEquipment(ctx, userCaller, dto.CreateEquipmentDTO{
		Name:   "Mixer",
		Status: utils.ToPtr("New"),
	})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "status", httpErr.Field)

	_, err = svc.CreateEquipment(ctx, userCaller, dto.CreateEquipmentDTO{
		Name:         "Mixer",
		PurchaseDate: utils.ToPtr("last tuesday"),
	})
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "purchase_date", httpErr.Field)
}

func TestCreateEquipment_ParsesPurchaseDate(t *testing.T) {
	svc, repo, _ := setupEquipmentService()

	payload := dto.CreateEquipmentDTO{Name: "Camera", PurchaseDate: utils.ToPtr("2024-03-15")}
	got, err := svc.CreateEquipment(context.Background(), userCaller, payload)
	require.NoError(t, err)
	require.NotNil(t, got.PurchaseDate)

	stored := repo.rows[got.ID]
	require.True(t, stored.PurchaseDate.Valid)
	assert.Equal(t, 2024, stored.PurchaseDate.Time.Year())
	assert.Equal(t, time.March, stored.PurchaseDate.Time.Month())
}

func TestUpdateEquipment_OmittedStatusPreserved(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusDamaged, utils.ToPtr(userCaller.ID))

	payload := dto.UpdateEquipmentDTO{Name: utils.ToPtr("Repaired Mixer")}
	got, err := svc.UpdateEquipment(context.Background(), userCaller, row.ID, payload)
	require.NoError(t, err)
	assert.Equal(t, "Repaired Mixer", got.Name)
	assert.Equal(t, constants.StatusDamaged, got.Status, "an omitted status never resets to the default")
}

func TestUpdateEquipment_NonOwnerLooksLikeMissing(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	_, err := svc.UpdateEquipment(context.Background(), otherCaller, row.ID, dto.UpdateEquipmentDTO{
		Name: utils.ToPtr("Stolen Mixer"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Mixer", repo.rows[row.ID].Name)
}

func TestUpdateEquipment_InvalidatesPublicCache(t *testing.T) {
	svc, repo, cache := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	_, err := svc.UpdateEquipment(context.Background(), userCaller, row.ID, dto.UpdateEquipmentDTO{
		Status: utils.ToPtr(constants.StatusRepairing),
	})
	require.NoError(t, err)
	assert.Contains(t, cache.deleted, publicCacheKey(row.PublicID.String()))
}

func TestDeleteEquipment(t *testing.T) {
	svc, repo, cache := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	err := svc.DeleteEquipment(context.Background(), otherCaller, row.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = svc.DeleteEquipment(context.Background(), userCaller, row.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.rows)
	assert.Contains(t, cache.deleted, publicCacheKey(row.PublicID.String()))
}

func TestGetEquipmentQRCode(t *testing.T) {
	svc, repo, _ := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	png, err := svc.GetEquipmentQRCode(context.Background(), userCaller, row.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected PNG output")

	_, err = svc.GetEquipmentQRCode(context.Background(), otherCaller, row.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetPublicEquipment(t *testing.T) {
	svc, repo, cache := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	got, err := svc.GetPublicEquipment(context.Background(), row.PublicID.String())
	require.NoError(t, err)
	assert.Equal(t, "Mixer", got.Name)
	assert.Contains(t, cache.values, publicCacheKey(row.PublicID.String()), "a miss populates the cache")
}

func TestGetPublicEquipment_ServedFromCache(t *testing.T) {
	svc, repo, cache := setupEquipmentService()
	row := seedRow(repo, "Mixer", constants.StatusNew, utils.ToPtr(userCaller.ID))

	cached, err := json.Marshal(dto.PublicEquipmentDTO{Name: "Cached Mixer", Status: constants.StatusNew})
	require.NoError(t, err)
	cache.values[publicCacheKey(row.PublicID.String())] = string(cached)

	got, err := svc.GetPublicEquipment(context.Background(), row.PublicID.String())
	require.NoError(t, err)
	assert.Equal(t, "Cached Mixer", got.Name)
}

func TestGetPublicEquipment_BadID(t *testing.T) {
	svc, _, _ := setupEquipmentService()

	_, err := svc.GetPublicEquipment(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetPublicEquipment(context.Background(), "b3a9f1d2-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
