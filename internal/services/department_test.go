package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tatthien/church-equipment/internal/dto"
	"github.com/tatthien/church-equipment/internal/entities"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
	"github.com/tatthien/church-equipment/pkg/utils"
)

func setupDepartmentService() (DepartmentServiceInterface, *fakeDepartmentRepo) {
	repo := newFakeDepartmentRepo()
	return NewDepartmentService(repo, zap.NewNop()), repo
}

func TestCreateDepartment(t *testing.T) {
	svc, _ := setupDepartmentService()

	got, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{
		Name:        "Worship",
		Description: utils.ToPtr("Band and stage"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Worship", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Band and stage", *got.Description)
}

func TestCreateDepartment_BlankNameRejected(t *testing.T) {
	svc, _ := setupDepartmentService()

	_, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{Name: "  "})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, apperrors.ReasonValidationFailed, httpErr.Reason)
}

func TestCreateDepartment_DuplicateName(t *testing.T) {
	svc, repo := setupDepartmentService()
	repo.add(entities.Department{Name: "Media"})

	_, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentDTO{Name: "Media"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetDepartments_SearchAndPaging(t *testing.T) {
	svc, repo := setupDepartmentService()
	for _, name := range []string{"Media", "Worship", "Sound", "Media Archive"} {
		repo.add(entities.Department{Name: name})
	}

	items, total, err := svc.GetDepartments(context.Background(), "media", utils.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "Media", items[0].Name)
	assert.Equal(t, "Media Archive", items[1].Name)
}

func TestUpdateDepartment(t *testing.T) {
	svc, repo := setupDepartmentService()
	row := repo.add(entities.Department{Name: "Media"})

	got, err := svc.UpdateDepartment(context.Background(), row.ID, dto.UpdateDepartmentDTO{
		Description: utils.ToPtr("Cameras and projection"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Media", got.Name, "omitted fields stay unchanged")
	require.NotNil(t, got.Description)

	_, err = svc.UpdateDepartment(context.Background(), row.ID, dto.UpdateDepartmentDTO{Name: utils.ToPtr("")})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "name", httpErr.Field)
}

func TestDeleteDepartment(t *testing.T) {
	svc, repo := setupDepartmentService()
	row := repo.add(entities.Department{Name: "Media"})

	require.NoError(t, svc.DeleteDepartment(context.Background(), row.ID))
	assert.Empty(t, repo.rows)

	err := svc.DeleteDepartment(context.Background(), row.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
